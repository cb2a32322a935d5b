package handlers

import (
	"sort"
	"time"

	"investr/internal/dto"
	"investr/internal/models"
	"investr/internal/service"
	"investr/internal/session"
)

func toRateQuoteResponse(q models.RateQuote) *dto.RateQuoteResponse {
	return &dto.RateQuoteResponse{
		Deposit:      q.Deposit,
		Loan:         q.Loan,
		LTV:          q.LTV,
		Band:         q.Band.String(),
		TermYears:    q.TermYears,
		BaseRate:     q.BaseRate,
		FallbackRate: q.Fallback,
		Adjustment:   q.Adjustment,
		Rate:         q.Rate,
	}
}

func toRateTableResponse(table models.RateTable) dto.RateTableResponse {
	resp := dto.RateTableResponse{FallbackRate: service.FallbackRate}

	bands := make([]models.Band, 0, len(table))
	for band := range table {
		bands = append(bands, band)
	}
	sort.Slice(bands, func(i, j int) bool { return bands[i] > bands[j] })

	for _, band := range bands {
		b := dto.RateBandResponse{Band: band.String()}
		for _, term := range table.Terms(band) {
			b.Terms = append(b.Terms, dto.RateTermResponse{TermYears: term, Rate: table[band][term]})
		}
		resp.Bands = append(resp.Bands, b)
	}
	return resp
}

func toChartSeries(projected, benchmark models.ProjectionSeries, benchmarkGrowth float64) dto.ChartSeries {
	return dto.ChartSeries{
		Labels:          projected.Labels(),
		Projected:       projected.Values(),
		Benchmark:       benchmark.Values(),
		BenchmarkGrowth: benchmarkGrowth,
	}
}

func toSimulationResponse(o *service.SimulationOutcome) *dto.SimulationResponse {
	if o == nil {
		return nil
	}
	return &dto.SimulationResponse{
		Request: o.Prepared.Request,
		Quote:   *toRateQuoteResponse(o.Prepared.Quote),
		Shape:   string(o.Shape),
		Result:  o.Result,
		Chart:   toChartSeries(o.Projected, o.Benchmark, models.DefaultBenchmarkGrowth),
	}
}

func toRecommendationResponse(a *service.Advice) *dto.RecommendationResponse {
	if a == nil {
		return nil
	}
	return &dto.RecommendationResponse{
		Recommendation:     a.Response.Recommendation,
		Label:              a.Label,
		Confidence:         a.Response.Confidence,
		ROI:                a.Response.ROI,
		EstimatedRent:      a.Response.EstimatedRent,
		GrowthRate:         a.Response.GrowthRate,
		BenchmarkGrowth:    a.Context.BenchmarkGrowth,
		BenchmarkROI:       a.Context.BenchmarkROI,
		GrowthThreshold:    a.Context.GrowthThreshold,
		ChartMode:          string(a.Mode),
		Explanation:        a.Explanation,
		ServiceExplanation: a.Response.Explanation,
		GrowthChart:        toChartSeries(a.Projected, a.Benchmark, a.Context.BenchmarkGrowth),
		ROIChart: dto.BarChart{
			Labels: []string{"ROI (%)", "Benchmark ROI (%)"},
			Values: a.ROIComparison,
		},
		Cached: a.Cached,
	}
}

func toFormView(f models.SimulationForm) dto.SimulationFormView {
	return dto.SimulationFormView{
		PropertyPrice:          f.PropertyPrice,
		DownPaymentPercent:     f.DownPaymentPercent,
		RentalIncome:           f.RentalIncome,
		Appreciation:           string(f.Appreciation),
		CustomAppreciationRate: f.CustomAppreciationRate,
		Years:                  f.Years,
		MortgageTerm:           f.MortgageTerm,
		MarketOutlook:          string(f.MarketOutlook),
	}
}

func toSimulationForm(req dto.SimulationFormRequest) models.SimulationForm {
	form := models.SimulationForm{
		PropertyPrice:          string(req.PropertyPrice),
		DownPaymentPercent:     string(req.DownPaymentPercent),
		RentalIncome:           string(req.RentalIncome),
		Appreciation:           models.AppreciationMode(req.Appreciation),
		CustomAppreciationRate: string(req.CustomAppreciationRate),
		Years:                  string(req.Years),
		MortgageTerm:           string(req.MortgageTerm),
		MarketOutlook:          models.MarketOutlook(req.MarketOutlook),
	}
	defaults := models.DefaultSimulationForm()
	if form.Appreciation == "" {
		form.Appreciation = defaults.Appreciation
	}
	if form.MarketOutlook == "" {
		form.MarketOutlook = defaults.MarketOutlook
	}
	return form
}

func toPropertyFeatures(req dto.RecommendationRequest) models.PropertyFeatures {
	return models.PropertyFeatures{
		Title:         req.Title,
		Price:         req.Price,
		Bedrooms:      req.Bedrooms,
		Bathrooms:     req.Bathrooms,
		SizeSqFeetMax: req.SizeSqFeetMax,
		PropertyType:  req.PropertyType,
	}
}

func toSessionResponse(ws session.Workspace, sims *service.SimulationService) dto.SessionResponse {
	resp := dto.SessionResponse{
		ID:                  ws.ID.String(),
		Form:                toFormView(ws.Form),
		Simulation:          toSimulationResponse(ws.Simulation),
		SimulationError:     ws.SimulationError,
		Recommendation:      toRecommendationResponse(ws.Recommendation),
		RecommendationError: ws.RecommendationError,
		UpdatedAt:           ws.UpdatedAt.Format(time.RFC3339),
	}
	if quote, determined, canSubmit := sims.Gate(ws.Form); determined {
		resp.Rate = toRateQuoteResponse(quote)
		resp.CanSubmit = canSubmit
	}
	return resp
}
