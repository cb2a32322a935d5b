package dto

type RecommendationRequest struct {
	Title         string  `json:"title"`
	Price         float64 `json:"price" validate:"gt=0"`
	Bedrooms      int     `json:"bedrooms" validate:"gte=0"`
	Bathrooms     int     `json:"bathrooms" validate:"gte=0"`
	SizeSqFeetMax float64 `json:"sizeSqFeetMax" validate:"gte=0"`
	PropertyType  string  `json:"property_type"`
}

type RecommendationResponse struct {
	Recommendation     string      `json:"recommendation"`
	Label              string      `json:"label"`
	Confidence         *float64    `json:"confidence,omitempty"`
	ROI                *float64    `json:"roi,omitempty"`
	EstimatedRent      *float64    `json:"estimated_rent,omitempty"`
	GrowthRate         *float64    `json:"growth_rate,omitempty"`
	BenchmarkGrowth    float64     `json:"benchmark_growth"`
	BenchmarkROI       float64     `json:"benchmark_roi"`
	GrowthThreshold    float64     `json:"growth_threshold"`
	ChartMode          string      `json:"chart_mode"`
	Explanation        string      `json:"explanation"`
	ServiceExplanation string      `json:"service_explanation,omitempty"`
	GrowthChart        ChartSeries `json:"growth_chart"`
	ROIChart           BarChart    `json:"roi_chart"`
	Cached             bool        `json:"cached"`
}
