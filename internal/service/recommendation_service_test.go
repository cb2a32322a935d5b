package service

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"investr/internal/models"
	"investr/internal/repository"

	"go.uber.org/zap"
)

type fakeScoringClient struct {
	resp  *models.ScoringResponse
	err   error
	calls int
	last  models.PropertyFeatures
}

func (f *fakeScoringClient) Score(_ context.Context, features models.PropertyFeatures) (*models.ScoringResponse, error) {
	f.calls++
	f.last = features
	if f.err != nil {
		return nil, f.err
	}
	// hand out a copy so cached and live answers never share pointers
	resp := *f.resp
	return &resp, nil
}

func boolPtr(v bool) *bool { return &v }

func listing() models.PropertyFeatures {
	return models.PropertyFeatures{
		Title:     "2 bed flat, Leeds",
		Price:     200000,
		Bedrooms:  2,
		Bathrooms: 1,
	}
}

func TestRecommendationService_Recommend(t *testing.T) {
	client := &fakeScoringClient{resp: &models.ScoringResponse{
		Recommendation: "Buy",
		Confidence:     ptr(87.5),
		ROI:            ptr(9),
		GrowthRate:     ptr(3),
	}}
	svc := NewRecommendationService(client, repository.NewMemoryCache(), time.Hour, zap.NewNop())

	advice, err := svc.Recommend(context.Background(), listing())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if client.last.SizeSqFeetMax != 600 || client.last.PropertyType != "Other" {
		t.Errorf("expected defaults sent, got %+v", client.last)
	}
	if advice.Mode != models.ChartModeROI {
		t.Errorf("expected roi mode, got %q", advice.Mode)
	}
	if advice.Label != "Buy (87.5% confidence)" {
		t.Errorf("unexpected label %q", advice.Label)
	}
	wantExplanation := "Although growth is weaker than market average (3% vs 3.5%), the ROI is strong at 9%, well above the benchmark ROI of 7.5%."
	if advice.Explanation != wantExplanation {
		t.Errorf("unexpected explanation %q", advice.Explanation)
	}
	if len(advice.Projected) != DefaultRecommendationHorizon+1 {
		t.Errorf("expected %d projected points, got %d", DefaultRecommendationHorizon+1, len(advice.Projected))
	}
	if advice.Projected[0].Value != 200000 || advice.Benchmark[0].Value != 200000 {
		t.Errorf("expected both series to start at the price")
	}
	if !reflect.DeepEqual(advice.ROIComparison, []float64{9, 7.5}) {
		t.Errorf("unexpected roi bars %v", advice.ROIComparison)
	}
	if advice.Cached {
		t.Errorf("expected first answer to be live")
	}
}

func TestRecommendationService_Recommend_Cached(t *testing.T) {
	client := &fakeScoringClient{resp: &models.ScoringResponse{Recommendation: "Avoid"}}
	svc := NewRecommendationService(client, repository.NewMemoryCache(), time.Hour, zap.NewNop())

	if _, err := svc.Recommend(context.Background(), listing()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	advice, err := svc.Recommend(context.Background(), listing())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if client.calls != 1 {
		t.Errorf("expected one scoring call, got %d", client.calls)
	}
	if !advice.Cached || advice.Response.Recommendation != "Avoid" {
		t.Errorf("expected cached Avoid, got cached=%v %q", advice.Cached, advice.Response.Recommendation)
	}

	other := listing()
	other.Price = 210000
	if _, err := svc.Recommend(context.Background(), other); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.calls != 2 {
		t.Errorf("expected a different listing to be scored, got %d calls", client.calls)
	}
}

func TestRecommendationService_Recommend_ServiceProjection(t *testing.T) {
	client := &fakeScoringClient{resp: &models.ScoringResponse{
		Recommendation:  "Buy",
		ShowGrowthChart: boolPtr(true),
		PriceProjection: []float64{180000, 190000, 200000},
		BenchmarkGrowth: ptr(10),
	}}
	svc := NewRecommendationService(client, nil, 0, zap.NewNop())

	advice, err := svc.Recommend(context.Background(), listing())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if advice.Mode != models.ChartModeGrowth {
		t.Errorf("expected growth mode, got %q", advice.Mode)
	}
	if got := advice.Projected.Values(); !reflect.DeepEqual(got, []float64{180000, 190000, 200000}) {
		t.Errorf("expected service projection, got %v", got)
	}
	if got := advice.Benchmark.Values(); !reflect.DeepEqual(got, []float64{180000, 198000, 217800}) {
		t.Errorf("expected benchmark seeded from the projection, got %v", got)
	}
}

func TestRecommendationService_Recommend_Error(t *testing.T) {
	client := &fakeScoringClient{err: ErrUpstreamUnavailable}
	svc := NewRecommendationService(client, repository.NewMemoryCache(), time.Hour, zap.NewNop())

	if _, err := svc.Recommend(context.Background(), listing()); err != ErrUpstreamUnavailable {
		t.Errorf("expected ErrUpstreamUnavailable, got %v", err)
	}
}

func TestRecommendationService_Recommend_OverflowingGrowth(t *testing.T) {
	tests := []struct {
		name string
		resp models.ScoringResponse
	}{
		{"growth rate", models.ScoringResponse{Recommendation: "Buy", GrowthRate: ptr(1e300)}},
		{"benchmark growth", models.ScoringResponse{Recommendation: "Buy", BenchmarkGrowth: ptr(1e300)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := tt.resp
			svc := NewRecommendationService(&fakeScoringClient{resp: &resp}, nil, 0, zap.NewNop())

			_, err := svc.Recommend(context.Background(), listing())
			if !errors.Is(err, ErrMalformedResponse) {
				t.Errorf("expected ErrMalformedResponse, got %v", err)
			}
		})
	}
}

func TestMergeDefaults(t *testing.T) {
	rc := MergeDefaults(&models.ScoringResponse{
		Recommendation:  "Buy",
		GrowthRate:      ptr(5),
		BenchmarkGrowth: ptr(4),
	})

	want := models.RecommendationContext{
		Label:           "Buy",
		Growth:          5,
		ROI:             0,
		BenchmarkGrowth: 4,
		BenchmarkROI:    7.5,
		GrowthThreshold: 4.5,
	}
	if rc != want {
		t.Errorf("expected %+v, got %+v", want, rc)
	}
}

func TestResolveChartMode(t *testing.T) {
	tests := []struct {
		name   string
		growth *bool
		roi    *bool
		want   models.ChartMode
	}{
		{"neither flag", nil, nil, models.ChartModeROI},
		{"growth only", boolPtr(true), nil, models.ChartModeGrowth},
		{"roi only", nil, boolPtr(true), models.ChartModeROI},
		{"both", boolPtr(true), boolPtr(true), models.ChartModeGrowth},
		{"growth false", boolPtr(false), boolPtr(false), models.ChartModeROI},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := &models.ScoringResponse{ShowGrowthChart: tt.growth, ShowROIChart: tt.roi}
			if got := ResolveChartMode(resp); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestDisplayLabel(t *testing.T) {
	if got := DisplayLabel(&models.ScoringResponse{}); got != "Unable to generate recommendation." {
		t.Errorf("unexpected label %q", got)
	}
	if got := DisplayLabel(&models.ScoringResponse{Recommendation: "Avoid"}); got != "Avoid" {
		t.Errorf("unexpected label %q", got)
	}
	if got := DisplayLabel(&models.ScoringResponse{Recommendation: "Buy", Confidence: ptr(92)}); got != "Buy (92% confidence)" {
		t.Errorf("unexpected label %q", got)
	}
}

func TestNormalizeFeatures(t *testing.T) {
	got := NormalizeFeatures(models.PropertyFeatures{
		Title:         "  Terraced \xffhouse\n near  park ",
		Price:         150000,
		SizeSqFeetMax: 850,
		PropertyType:  " Terraced ",
	})

	if got.Title != "Terraced house near park" {
		t.Errorf("unexpected title %q", got.Title)
	}
	if got.SizeSqFeetMax != 850 {
		t.Errorf("expected size kept, got %v", got.SizeSqFeetMax)
	}
	if got.PropertyType != "Terraced" {
		t.Errorf("unexpected property type %q", got.PropertyType)
	}
}
