package service

import (
	"context"
	"fmt"

	"investr/internal/models"

	"go.uber.org/zap"
)

// PreparedSimulation is a validated form, its gating rate and the request
// that will be sent for it.
type PreparedSimulation struct {
	Input   models.SimulationInput
	Quote   models.RateQuote
	Request models.SimulationRequest
}

// SimulationOutcome is what the simulation service answered plus the chart
// series built from the submitted appreciation rate.
type SimulationOutcome struct {
	Prepared  *PreparedSimulation
	Result    *models.SimulationResult
	Shape     models.ResultShape
	Projected models.ProjectionSeries
	Benchmark models.ProjectionSeries
}

type SimulationService struct {
	rates  *RateService
	client SimulationClient
	logger *zap.Logger
}

func NewSimulationService(rates *RateService, client SimulationClient, logger *zap.Logger) *SimulationService {
	return &SimulationService{
		rates:  rates,
		client: client,
		logger: logger,
	}
}

// Gate reports the rate the form currently resolves to and whether it may be
// submitted.
func (s *SimulationService) Gate(form models.SimulationForm) (models.RateQuote, bool, bool) {
	quote, determined := s.rates.ResolveForm(form)
	if !determined {
		return quote, false, false
	}
	_, err := ValidateForm(form)
	return quote, true, err == nil
}

func (s *SimulationService) Prepare(form models.SimulationForm) (*PreparedSimulation, error) {
	input, err := ValidateForm(form)
	if err != nil {
		return nil, err
	}

	quote, ok := s.rates.Resolve(input.Price, input.DownPaymentPercent, input.MortgageTerm, input.Outlook)
	if !ok {
		return nil, ErrRateUndetermined
	}

	return &PreparedSimulation{
		Input: input,
		Quote: quote,
		Request: models.SimulationRequest{
			Price:            input.Price,
			DownPayment:      round2(quote.Deposit),
			MortgageRate:     quote.Rate,
			RentalIncome:     input.RentalIncome,
			AppreciationRate: input.AppreciationRate,
			Years:            input.Years,
			MortgageTerm:     input.MortgageTerm,
			MarketOutlook:    input.Outlook,
		},
	}, nil
}

// Run validates and submits the form. The service's figures are passed
// through untouched; the chart uses the submitted appreciation rate only.
func (s *SimulationService) Run(ctx context.Context, form models.SimulationForm) (*SimulationOutcome, error) {
	prepared, err := s.Prepare(form)
	if err != nil {
		return nil, err
	}

	projected, benchmark, err := ProjectWithBenchmark(
		prepared.Input.Price,
		prepared.Input.AppreciationRate,
		prepared.Input.Years,
		models.DefaultBenchmarkGrowth,
	)
	if err != nil {
		return nil, err
	}

	result, err := s.client.Simulate(ctx, prepared.Request)
	if err != nil {
		return nil, err
	}

	shape, ok := result.Shape()
	if !ok {
		s.logger.Error("Simulation response has neither known shape")
		return nil, fmt.Errorf("%w: simulation response lacks required figures", ErrMalformedResponse)
	}

	s.logger.Info("Simulation completed",
		zap.Float64("price", prepared.Request.Price),
		zap.Float64("mortgage_rate", prepared.Request.MortgageRate),
		zap.Int("years", prepared.Request.Years),
		zap.String("shape", string(shape)),
	)

	return &SimulationOutcome{
		Prepared:  prepared,
		Result:    result,
		Shape:     shape,
		Projected: projected,
		Benchmark: benchmark,
	}, nil
}
