package dto

type ResolveRateRequest struct {
	Price              float64 `json:"price"`
	DownPaymentPercent float64 `json:"down_payment_percent"`
	MortgageTerm       int     `json:"mortgage_term"`
	MarketOutlook      string  `json:"market_outlook"`
}

type RateQuoteResponse struct {
	Deposit      float64 `json:"deposit"`
	Loan         float64 `json:"loan"`
	LTV          float64 `json:"ltv"`
	Band         string  `json:"band"`
	TermYears    int     `json:"term_years"`
	BaseRate     float64 `json:"base_rate"`
	FallbackRate bool    `json:"fallback_rate"`
	Adjustment   float64 `json:"adjustment"`
	Rate         float64 `json:"rate"`
}

type ResolveRateResponse struct {
	Determined bool               `json:"determined"`
	Quote      *RateQuoteResponse `json:"quote,omitempty"`
}

type RateTermResponse struct {
	TermYears int     `json:"term_years"`
	Rate      float64 `json:"rate"`
}

type RateBandResponse struct {
	Band  string             `json:"band"`
	Terms []RateTermResponse `json:"terms"`
}

type RateTableResponse struct {
	FallbackRate float64            `json:"fallback_rate"`
	Bands        []RateBandResponse `json:"bands"`
}
