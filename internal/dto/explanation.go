package dto

type ExplanationRequest struct {
	Recommendation  string   `json:"recommendation"`
	ChartMode       string   `json:"chart_mode,omitempty" validate:"omitempty,oneof=growth roi"`
	ShowGrowthChart *bool    `json:"show_growth_chart,omitempty"`
	ShowROIChart    *bool    `json:"show_roi_chart,omitempty"`
	GrowthRate      *float64 `json:"growth_rate,omitempty"`
	ROI             *float64 `json:"roi,omitempty"`
	BenchmarkGrowth *float64 `json:"benchmark_growth,omitempty"`
	BenchmarkROI    *float64 `json:"benchmark_roi,omitempty"`
	GrowthThreshold *float64 `json:"growth_threshold,omitempty"`
}

type ExplanationResponse struct {
	ChartMode       string  `json:"chart_mode"`
	Explanation     string  `json:"explanation"`
	GrowthRate      float64 `json:"growth_rate"`
	ROI             float64 `json:"roi"`
	BenchmarkGrowth float64 `json:"benchmark_growth"`
	BenchmarkROI    float64 `json:"benchmark_roi"`
	GrowthThreshold float64 `json:"growth_threshold"`
}
