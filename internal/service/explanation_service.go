package service

import (
	"fmt"
	"strconv"
	"strings"

	"investr/internal/models"
)

const (
	msgGrowthBuy   = "This property's projected value is growing faster than the market average. Consider buying for strong returns."
	msgGrowthAvoid = "This property's value grows slower than the market benchmark (%s%%) or may not meet investment criteria. Avoid or investigate further."

	msgROIBuyStrongROI   = "Although growth is weaker than market average (%s%% vs %s%%), the ROI is strong at %s%%, well above the benchmark ROI of %s%%."
	msgROIAvoidLowGrowth = "Although ROI is strong at %s%%, the growth rate of %s%% is too weak compared to the required threshold of %s%%. Avoid unless other factors are favorable."
	msgROIAvoidLowROI    = "Despite a strong growth rate of %s%%, the ROI is only %s%%, which is below the benchmark of %s%%. This suggests it may not be a worthwhile investment."
	msgROIBuyLowROI      = "Growth rate of %s%% exceeds expectations, justifying a buy despite ROI of %s%% being near or below the benchmark ROI of %s%%."
	msgROIMixed          = "The model's recommendation is based on a mix of growth and ROI factors."
)

// Explain picks the rationale shown next to a recommendation. The chart mode
// is chosen by the caller. An empty label has no rationale.
func Explain(mode models.ChartMode, rc models.RecommendationContext) string {
	if rc.Label == "" {
		return ""
	}
	label := strings.ToLower(rc.Label)
	buy := strings.Contains(label, "buy")
	avoid := strings.Contains(label, "avoid")

	switch mode {
	case models.ChartModeGrowth:
		if buy {
			return msgGrowthBuy
		}
		return fmt.Sprintf(msgGrowthAvoid, figure(rc.BenchmarkGrowth))

	case models.ChartModeROI:
		// first match wins; the conditions overlap
		switch {
		case buy && rc.ROI > rc.BenchmarkROI:
			return fmt.Sprintf(msgROIBuyStrongROI,
				figure(rc.Growth), figure(rc.BenchmarkGrowth), figure(rc.ROI), figure(rc.BenchmarkROI))
		case avoid && rc.Growth < rc.GrowthThreshold:
			return fmt.Sprintf(msgROIAvoidLowGrowth,
				figure(rc.ROI), figure(rc.Growth), figure(rc.GrowthThreshold))
		case avoid && rc.ROI < rc.BenchmarkROI:
			return fmt.Sprintf(msgROIAvoidLowROI,
				figure(rc.Growth), figure(rc.ROI), figure(rc.BenchmarkROI))
		case buy && rc.ROI < rc.BenchmarkROI:
			return fmt.Sprintf(msgROIBuyLowROI,
				figure(rc.Growth), figure(rc.ROI), figure(rc.BenchmarkROI))
		default:
			return msgROIMixed
		}
	}

	return ""
}

// figure prints a percentage the shortest way: 3.5, 10, 4.25.
func figure(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
