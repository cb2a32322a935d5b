package models

const (
	DefaultBenchmarkGrowth = 3.5
	DefaultBenchmarkROI    = 7.5
	DefaultGrowthThreshold = 4.5

	DefaultSizeSqFeet   = 600
	DefaultPropertyType = "Other"
)

// PropertyFeatures is the body sent to the scoring service.
type PropertyFeatures struct {
	Title         string  `json:"title"`
	Price         float64 `json:"price"`
	Bedrooms      int     `json:"bedrooms"`
	Bathrooms     int     `json:"bathrooms"`
	SizeSqFeetMax float64 `json:"sizeSqFeetMax"`
	PropertyType  string  `json:"property_type"`
}

// ScoringResponse is the scoring service response. Every figure is optional.
type ScoringResponse struct {
	Recommendation  string    `json:"recommendation"`
	Confidence      *float64  `json:"confidence,omitempty"`
	ROI             *float64  `json:"roi,omitempty"`
	EstimatedRent   *float64  `json:"estimated_rent,omitempty"`
	GrowthRate      *float64  `json:"growth_rate,omitempty"`
	PriceProjection []float64 `json:"price_projection,omitempty"`
	BenchmarkGrowth *float64  `json:"benchmark_growth,omitempty"`
	BenchmarkROI    *float64  `json:"benchmark_roi,omitempty"`
	GrowthThreshold *float64  `json:"growth_threshold,omitempty"`
	ShowGrowthChart *bool     `json:"show_growth_chart,omitempty"`
	ShowROIChart    *bool     `json:"show_roi_chart,omitempty"`
	Explanation     string    `json:"explanation,omitempty"`
}

type ChartMode string

const (
	ChartModeGrowth ChartMode = "growth"
	ChartModeROI    ChartMode = "roi"
)

// RecommendationContext is a scoring response with defaults applied.
type RecommendationContext struct {
	Label           string
	Growth          float64
	ROI             float64
	BenchmarkGrowth float64
	BenchmarkROI    float64
	GrowthThreshold float64
}
