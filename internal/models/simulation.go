package models

type AppreciationMode string

const (
	AppreciationConservative AppreciationMode = "conservative"
	AppreciationAverage      AppreciationMode = "average"
	AppreciationCustom       AppreciationMode = "custom"
)

var appreciationPresets = map[AppreciationMode]float64{
	AppreciationConservative: 2.5,
	AppreciationAverage:      3.5,
}

// PresetRate returns the annual appreciation (%) of a preset. Custom has none.
func (m AppreciationMode) PresetRate() (float64, bool) {
	rate, ok := appreciationPresets[m]
	return rate, ok
}

func (m AppreciationMode) Valid() bool {
	_, ok := appreciationPresets[m]
	return ok || m == AppreciationCustom
}

// SimulationForm is the as-typed state of the simulation form. Numeric
// fields stay strings so a blank field can be told apart from zero.
type SimulationForm struct {
	PropertyPrice          string
	DownPaymentPercent     string
	RentalIncome           string
	Appreciation           AppreciationMode
	CustomAppreciationRate string
	Years                  string
	MortgageTerm           string
	MarketOutlook          MarketOutlook
}

func DefaultSimulationForm() SimulationForm {
	return SimulationForm{
		Appreciation:  AppreciationAverage,
		MortgageTerm:  "5",
		MarketOutlook: OutlookBaseline,
	}
}

// SimulationInput is a validated, numeric simulation form.
type SimulationInput struct {
	Price              float64
	DownPaymentPercent float64
	RentalIncome       float64
	AppreciationRate   float64
	Years              int
	MortgageTerm       int
	Outlook            MarketOutlook
}

// SimulationRequest is the body sent to the simulation service.
type SimulationRequest struct {
	Price            float64       `json:"price"`
	DownPayment      float64       `json:"down_payment"`
	MortgageRate     float64       `json:"mortgage_rate"`
	RentalIncome     float64       `json:"rental_income"`
	AppreciationRate float64       `json:"appreciation_rate"`
	Years            int           `json:"years"`
	MortgageTerm     int           `json:"mortgage_term"`
	MarketOutlook    MarketOutlook `json:"market_outlook"`
}

type ResultShape string

const (
	ShapeProfit ResultShape = "profit"
	ShapeEquity ResultShape = "equity"
)

// SimulationResult is the simulation service response. Two shapes exist:
// profit (net_profit, annual_cashflow, roi) and equity (projected_net_equity,
// equity_percent).
type SimulationResult struct {
	FutureValue        *float64 `json:"future_value"`
	TotalRentIncome    *float64 `json:"total_rent_income"`
	TotalMortgagePaid  *float64 `json:"total_mortgage_paid"`
	NetProfit          *float64 `json:"net_profit,omitempty"`
	AnnualCashflow     *float64 `json:"annual_cashflow,omitempty"`
	ROI                *float64 `json:"roi,omitempty"`
	ProjectedNetEquity *float64 `json:"projected_net_equity,omitempty"`
	EquityPercent      *float64 `json:"equity_percent,omitempty"`
}

// Shape reports which response form is present. The profit form wins when
// both are complete; ok is false when the common fields or both forms are
// incomplete.
func (r *SimulationResult) Shape() (ResultShape, bool) {
	if r.FutureValue == nil || r.TotalRentIncome == nil || r.TotalMortgagePaid == nil {
		return "", false
	}
	if r.NetProfit != nil && r.AnnualCashflow != nil && r.ROI != nil {
		return ShapeProfit, true
	}
	if r.ProjectedNetEquity != nil && r.EquityPercent != nil {
		return ShapeEquity, true
	}
	return "", false
}
