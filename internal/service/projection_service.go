package service

import (
	"math"

	"investr/internal/models"
)

// Project compounds startValue at growthPercent a year and returns years+1
// rounded values, year 0 first. Negative growth models a decline. A negative
// horizon yields an empty series.
func Project(startValue, growthPercent float64, years int) models.ProjectionSeries {
	if years < 0 {
		return models.ProjectionSeries{}
	}
	return compound(startValue, growthPercent, years+1)
}

// Benchmark builds the comparison line for series: same start value, same
// length, compounded at benchmarkPercent instead.
func Benchmark(series models.ProjectionSeries, benchmarkPercent float64) models.ProjectionSeries {
	return compound(series.Start(), benchmarkPercent, len(series))
}

// ProjectWithBenchmark projects startValue and its benchmark line together.
// It fails with ErrInvalidInput when either series overflows float64.
func ProjectWithBenchmark(startValue, growthPercent float64, years int, benchmarkPercent float64) (models.ProjectionSeries, models.ProjectionSeries, error) {
	projected := Project(startValue, growthPercent, years)
	benchmark := Benchmark(projected, benchmarkPercent)
	if !projected.Finite() || !benchmark.Finite() {
		return nil, nil, invalidInput("projection exceeds the representable range")
	}
	return projected, benchmark, nil
}

// SeriesFromValues wraps a plain value list, e.g. a projection computed by the
// scoring service, as a series.
func SeriesFromValues(values []float64) models.ProjectionSeries {
	series := make(models.ProjectionSeries, len(values))
	for i, v := range values {
		series[i] = models.ProjectionPoint{Year: i, Value: v}
	}
	return series
}

func compound(startValue, growthPercent float64, length int) models.ProjectionSeries {
	series := make(models.ProjectionSeries, length)
	factor := 1 + growthPercent/100
	for i := range series {
		series[i] = models.ProjectionPoint{
			Year:  i,
			Value: math.Round(startValue * math.Pow(factor, float64(i))),
		}
	}
	return series
}
