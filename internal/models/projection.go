package models

import (
	"fmt"
	"math"
)

type ProjectionPoint struct {
	Year  int
	Value float64
}

// ProjectionSeries is a yearly value series starting at year 0.
type ProjectionSeries []ProjectionPoint

func (s ProjectionSeries) Values() []float64 {
	values := make([]float64, len(s))
	for i, p := range s {
		values[i] = p.Value
	}
	return values
}

func (s ProjectionSeries) Labels() []string {
	labels := make([]string, len(s))
	for i, p := range s {
		labels[i] = fmt.Sprintf("Year %d", p.Year)
	}
	return labels
}

// Start returns the year-0 value, or 0 for an empty series.
func (s ProjectionSeries) Start() float64 {
	if len(s) == 0 {
		return 0
	}
	return s[0].Value
}

// Finite reports whether every value in the series is a real number.
func (s ProjectionSeries) Finite() bool {
	for _, p := range s {
		if math.IsNaN(p.Value) || math.IsInf(p.Value, 0) {
			return false
		}
	}
	return true
}
