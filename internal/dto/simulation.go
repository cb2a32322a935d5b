package dto

import "investr/internal/models"

// SimulationFormRequest carries the simulation form as typed.
type SimulationFormRequest struct {
	PropertyPrice          FlexString `json:"property_price"`
	DownPaymentPercent     FlexString `json:"down_payment_percent"`
	RentalIncome           FlexString `json:"rental_income"`
	Appreciation           string     `json:"appreciation"`
	CustomAppreciationRate FlexString `json:"custom_appreciation_rate"`
	Years                  FlexString `json:"years"`
	MortgageTerm           FlexString `json:"mortgage_term"`
	MarketOutlook          string     `json:"market_outlook"`
}

type SimulationFormView struct {
	PropertyPrice          string `json:"property_price"`
	DownPaymentPercent     string `json:"down_payment_percent"`
	RentalIncome           string `json:"rental_income"`
	Appreciation           string `json:"appreciation"`
	CustomAppreciationRate string `json:"custom_appreciation_rate"`
	Years                  string `json:"years"`
	MortgageTerm           string `json:"mortgage_term"`
	MarketOutlook          string `json:"market_outlook"`
}

type SimulationResponse struct {
	Request models.SimulationRequest `json:"request"`
	Quote   RateQuoteResponse        `json:"quote"`
	Shape   string                   `json:"shape"`
	Result  *models.SimulationResult `json:"result"`
	Chart   ChartSeries              `json:"chart"`
}
