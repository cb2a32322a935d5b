package dto

type ProjectionRequest struct {
	StartValue      float64  `json:"start_value" validate:"gte=0"`
	GrowthRate      float64  `json:"growth_rate" validate:"gt=-100"`
	Years           int      `json:"years" validate:"gte=0,lte=100"`
	BenchmarkGrowth *float64 `json:"benchmark_growth,omitempty" validate:"omitempty,gt=-100"`
}

// ChartSeries is a projected-vs-benchmark line chart.
type ChartSeries struct {
	Labels          []string  `json:"labels"`
	Projected       []float64 `json:"projected"`
	Benchmark       []float64 `json:"benchmark"`
	BenchmarkGrowth float64   `json:"benchmark_growth"`
}

type BarChart struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}
