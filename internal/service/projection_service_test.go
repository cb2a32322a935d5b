package service

import (
	"errors"
	"reflect"
	"testing"

	"investr/internal/models"
)

func TestProject(t *testing.T) {
	tests := []struct {
		name   string
		start  float64
		growth float64
		years  int
		want   []float64
	}{
		{"zero growth is flat", 100000, 0, 3, []float64{100000, 100000, 100000, 100000}},
		{"zero years is the start only", 250000.4, 5, 0, []float64{250000}},
		{"ten percent", 100000, 10, 2, []float64{100000, 110000, 121000}},
		{"negative growth declines", 100000, -10, 2, []float64{100000, 90000, 81000}},
		{"values are rounded", 1000, 3.33, 1, []float64{1000, 1033}},
		{"negative horizon is empty", 100000, 5, -1, []float64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			series := Project(tt.start, tt.growth, tt.years)
			if got := series.Values(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
			for i, p := range series {
				if p.Year != i {
					t.Errorf("point %d has year %d", i, p.Year)
				}
			}
		})
	}
}

func TestBenchmark_PairsWithSeries(t *testing.T) {
	own := SeriesFromValues([]float64{200000, 230000, 260000, 290000})

	bench := Benchmark(own, 3.5)
	if len(bench) != len(own) {
		t.Fatalf("expected %d points, got %d", len(own), len(bench))
	}
	if bench[0].Value != 200000 {
		t.Errorf("expected benchmark to start at 200000, got %v", bench[0].Value)
	}
	if bench[1].Value != 207000 {
		t.Errorf("expected 207000 after one year, got %v", bench[1].Value)
	}

	if got := Benchmark(models.ProjectionSeries{}, 3.5); len(got) != 0 {
		t.Errorf("expected empty benchmark for empty series, got %v", got)
	}
}

func TestProjectWithBenchmark(t *testing.T) {
	tests := []struct {
		name      string
		start     float64
		growth    float64
		benchmark float64
		wantErr   error
	}{
		{"finite", 100000, 10, 3.5, nil},
		{"projection overflows", 100000, 1e10, 3.5, ErrInvalidInput},
		{"benchmark overflows", 100000, 10, 1e10, ErrInvalidInput},
		{"huge start", 1e307, 100, 3.5, ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			projected, benchmark, err := ProjectWithBenchmark(tt.start, tt.growth, 100, tt.benchmark)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if err == nil && (len(projected) != 101 || len(benchmark) != 101) {
				t.Errorf("expected 101-point series, got %d and %d", len(projected), len(benchmark))
			}
		})
	}
}

func TestProjectionSeries_Labels(t *testing.T) {
	got := Project(100, 1, 2).Labels()
	want := []string{"Year 0", "Year 1", "Year 2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}
