package handlers

import (
	"investr/internal/dto"
	"investr/internal/models"
	"investr/internal/service"
	"investr/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CalculatorHandler serves the stateless calculators: rates, projections,
// rationale, plus one-shot simulation and recommendation calls.
type CalculatorHandler struct {
	rates           *service.RateService
	simulations     *service.SimulationService
	recommendations *service.RecommendationService
	logger          *zap.Logger
}

func NewCalculatorHandler(
	rates *service.RateService,
	simulations *service.SimulationService,
	recommendations *service.RecommendationService,
	logger *zap.Logger,
) *CalculatorHandler {
	return &CalculatorHandler{
		rates:           rates,
		simulations:     simulations,
		recommendations: recommendations,
		logger:          logger,
	}
}

// GetRateTable godoc
// @Summary Get the mortgage rate table
// @Description Base rates per LTV band and fixed term, plus the fallback rate
// @Tags rates
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.RateTableResponse
// @Router /api/v1/rates [get]
func (h *CalculatorHandler) GetRateTable(c *fiber.Ctx) error {
	return c.JSON(toRateTableResponse(h.rates.Table()))
}

// ResolveRate godoc
// @Summary Resolve a mortgage rate
// @Description Derive deposit, LTV band and the outlook-adjusted rate for a purchase
// @Tags rates
// @Accept json
// @Produce json
// @Param request body dto.ResolveRateRequest true "Purchase figures"
// @Security Bearer
// @Success 200 {object} dto.ResolveRateResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/rates/resolve [post]
func (h *CalculatorHandler) ResolveRate(c *fiber.Ctx) error {
	var req dto.ResolveRateRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	outlook := models.MarketOutlook(req.MarketOutlook)
	if outlook == "" {
		outlook = models.OutlookBaseline
	}

	quote, ok := h.rates.Resolve(req.Price, req.DownPaymentPercent, req.MortgageTerm, outlook)
	if !ok {
		return c.JSON(dto.ResolveRateResponse{Determined: false})
	}
	return c.JSON(dto.ResolveRateResponse{
		Determined: true,
		Quote:      toRateQuoteResponse(quote),
	})
}

// Project godoc
// @Summary Project a value series
// @Description Compound a start value yearly and pair it with a benchmark line
// @Tags projections
// @Accept json
// @Produce json
// @Param request body dto.ProjectionRequest true "Projection parameters"
// @Security Bearer
// @Success 200 {object} dto.ChartSeries
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /api/v1/projections [post]
func (h *CalculatorHandler) Project(c *fiber.Ctx) error {
	var req dto.ProjectionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	benchmarkGrowth := models.DefaultBenchmarkGrowth
	if req.BenchmarkGrowth != nil {
		benchmarkGrowth = *req.BenchmarkGrowth
	}

	projected, benchmark, err := service.ProjectWithBenchmark(req.StartValue, req.GrowthRate, req.Years, benchmarkGrowth)
	if err != nil {
		return writeError(c, h.logger, "Projection failed", err)
	}
	return c.JSON(toChartSeries(projected, benchmark, benchmarkGrowth))
}

// Explain godoc
// @Summary Explain a recommendation
// @Description Pick the rationale for a buy/avoid call from growth and ROI figures
// @Tags recommendations
// @Accept json
// @Produce json
// @Param request body dto.ExplanationRequest true "Recommendation figures"
// @Security Bearer
// @Success 200 {object} dto.ExplanationResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/explanations [post]
func (h *CalculatorHandler) Explain(c *fiber.Ctx) error {
	var req dto.ExplanationRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	resp := &models.ScoringResponse{
		Recommendation:  req.Recommendation,
		GrowthRate:      req.GrowthRate,
		ROI:             req.ROI,
		BenchmarkGrowth: req.BenchmarkGrowth,
		BenchmarkROI:    req.BenchmarkROI,
		GrowthThreshold: req.GrowthThreshold,
		ShowGrowthChart: req.ShowGrowthChart,
		ShowROIChart:    req.ShowROIChart,
	}
	rc := service.MergeDefaults(resp)

	mode := models.ChartMode(req.ChartMode)
	if mode == "" {
		mode = service.ResolveChartMode(resp)
	}

	return c.JSON(dto.ExplanationResponse{
		ChartMode:       string(mode),
		Explanation:     service.Explain(mode, rc),
		GrowthRate:      rc.Growth,
		ROI:             rc.ROI,
		BenchmarkGrowth: rc.BenchmarkGrowth,
		BenchmarkROI:    rc.BenchmarkROI,
		GrowthThreshold: rc.GrowthThreshold,
	})
}

// Simulate godoc
// @Summary Run an investment simulation
// @Description Validate the form, resolve the mortgage rate and forward the simulation
// @Tags simulations
// @Accept json
// @Produce json
// @Param request body dto.SimulationFormRequest true "Simulation form"
// @Security Bearer
// @Success 200 {object} dto.SimulationResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /api/v1/simulations [post]
func (h *CalculatorHandler) Simulate(c *fiber.Ctx) error {
	var req dto.SimulationFormRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	outcome, err := h.simulations.Run(c.Context(), toSimulationForm(req))
	if err != nil {
		return writeError(c, h.logger, "Simulation failed", err)
	}

	return c.JSON(toSimulationResponse(outcome))
}

// Recommend godoc
// @Summary Get a buy/avoid recommendation
// @Description Score a listing and return the rationale and chart data
// @Tags recommendations
// @Accept json
// @Produce json
// @Param request body dto.RecommendationRequest true "Listing features"
// @Security Bearer
// @Success 200 {object} dto.RecommendationResponse
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /api/v1/recommendations [post]
func (h *CalculatorHandler) Recommend(c *fiber.Ctx) error {
	var req dto.RecommendationRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	advice, err := h.recommendations.Recommend(c.Context(), toPropertyFeatures(req))
	if err != nil {
		return writeError(c, h.logger, "Recommendation failed", err)
	}

	return c.JSON(toRecommendationResponse(advice))
}
