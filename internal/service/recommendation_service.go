package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"investr/internal/models"
	"investr/internal/repository"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"
)

const (
	// DefaultRecommendationHorizon is used when the scoring service sends no
	// price projection of its own.
	DefaultRecommendationHorizon = 10

	noRecommendationLabel = "Unable to generate recommendation."
	cacheKeyPrefix        = "investr:recommendation:"
)

// Advice is a scoring response prepared for display.
type Advice struct {
	Features    models.PropertyFeatures
	Response    *models.ScoringResponse
	Context     models.RecommendationContext
	Mode        models.ChartMode
	Label       string
	Explanation string
	Projected   models.ProjectionSeries
	Benchmark   models.ProjectionSeries
	// ROIComparison holds the bars [roi, benchmark roi].
	ROIComparison []float64
	Cached        bool
}

type RecommendationService struct {
	client   ScoringClient
	cache    repository.CacheRepository
	cacheTTL time.Duration
	logger   *zap.Logger
}

func NewRecommendationService(
	client ScoringClient,
	cache repository.CacheRepository,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *RecommendationService {
	return &RecommendationService{
		client:   client,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

// Recommend scores a listing and turns the answer into rationale and chart
// data.
func (s *RecommendationService) Recommend(ctx context.Context, features models.PropertyFeatures) (*Advice, error) {
	features = NormalizeFeatures(features)

	resp, cached, err := s.score(ctx, features)
	if err != nil {
		return nil, err
	}

	rc := MergeDefaults(resp)
	mode := ResolveChartMode(resp)

	var projected models.ProjectionSeries
	if len(resp.PriceProjection) > 0 {
		projected = SeriesFromValues(resp.PriceProjection)
	} else {
		projected = Project(features.Price, rc.Growth, DefaultRecommendationHorizon)
	}
	benchmark := Benchmark(projected, rc.BenchmarkGrowth)
	if !projected.Finite() || !benchmark.Finite() {
		return nil, fmt.Errorf("%w: growth figures overflow the projection", ErrMalformedResponse)
	}

	advice := &Advice{
		Features:      features,
		Response:      resp,
		Context:       rc,
		Mode:          mode,
		Label:         DisplayLabel(resp),
		Explanation:   Explain(mode, rc),
		Projected:     projected,
		Benchmark:     benchmark,
		ROIComparison: []float64{rc.ROI, rc.BenchmarkROI},
		Cached:        cached,
	}

	s.logger.Info("Recommendation prepared",
		zap.String("title", features.Title),
		zap.String("recommendation", resp.Recommendation),
		zap.String("mode", string(mode)),
		zap.Bool("cached", cached),
	)

	return advice, nil
}

func (s *RecommendationService) score(ctx context.Context, features models.PropertyFeatures) (*models.ScoringResponse, bool, error) {
	key, err := cacheKey(features)
	if err != nil {
		return nil, false, err
	}

	if s.cache != nil {
		if raw, ok := s.cache.Get(ctx, key); ok {
			var resp models.ScoringResponse
			if err := json.Unmarshal([]byte(raw), &resp); err == nil {
				return &resp, true, nil
			}
			s.logger.Warn("Discarding unreadable cached recommendation", zap.String("key", key))
		}
	}

	resp, err := s.client.Score(ctx, features)
	if err != nil {
		return nil, false, err
	}

	if s.cache != nil {
		raw, err := json.Marshal(resp)
		if err == nil {
			err = s.cache.Set(ctx, key, string(raw), s.cacheTTL)
		}
		// not critical, the next request just scores again
		if err != nil {
			s.logger.Warn("Failed to cache recommendation", zap.String("key", key), zap.Error(err))
		}
	}

	return resp, false, nil
}

// NormalizeFeatures fills the listing fields the scoring model cannot do
// without.
func NormalizeFeatures(f models.PropertyFeatures) models.PropertyFeatures {
	f.Title = sanitizeText(f.Title)
	if f.SizeSqFeetMax <= 0 {
		f.SizeSqFeetMax = models.DefaultSizeSqFeet
	}
	f.PropertyType = sanitizeText(f.PropertyType)
	if f.PropertyType == "" {
		f.PropertyType = models.DefaultPropertyType
	}
	return f
}

// MergeDefaults applies the fixed benchmark constants to whatever the
// scoring service left out. Missing growth and ROI count as 0.
func MergeDefaults(resp *models.ScoringResponse) models.RecommendationContext {
	return models.RecommendationContext{
		Label:           resp.Recommendation,
		Growth:          valueOr(resp.GrowthRate, 0),
		ROI:             valueOr(resp.ROI, 0),
		BenchmarkGrowth: valueOr(resp.BenchmarkGrowth, models.DefaultBenchmarkGrowth),
		BenchmarkROI:    valueOr(resp.BenchmarkROI, models.DefaultBenchmarkROI),
		GrowthThreshold: valueOr(resp.GrowthThreshold, models.DefaultGrowthThreshold),
	}
}

// ResolveChartMode picks growth mode when the service asks for the growth
// chart and ROI mode otherwise, including when neither flag is set.
func ResolveChartMode(resp *models.ScoringResponse) models.ChartMode {
	if resp.ShowGrowthChart != nil && *resp.ShowGrowthChart {
		return models.ChartModeGrowth
	}
	return models.ChartModeROI
}

func DisplayLabel(resp *models.ScoringResponse) string {
	if resp.Recommendation == "" {
		return noRecommendationLabel
	}
	if resp.Confidence == nil {
		return resp.Recommendation
	}
	return fmt.Sprintf("%s (%s%% confidence)", resp.Recommendation, figure(*resp.Confidence))
}

func cacheKey(features models.PropertyFeatures) (string, error) {
	raw, err := json.Marshal(features)
	if err != nil {
		return "", fmt.Errorf("failed to encode cache key: %w", err)
	}
	return fmt.Sprintf("%s%016x", cacheKeyPrefix, xxhash.Sum64(raw)), nil
}

func valueOr(v *float64, fallback float64) float64 {
	if v == nil {
		return fallback
	}
	return *v
}
