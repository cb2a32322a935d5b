package service

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"investr/internal/models"
)

// Simulation form field names, as used by the front end.
const (
	FieldPropertyPrice          = "property_price"
	FieldDownPaymentPercent     = "down_payment_percent"
	FieldRentalIncome           = "rental_income"
	FieldAppreciation           = "appreciation"
	FieldCustomAppreciationRate = "custom_appreciation_rate"
	FieldYears                  = "years"
	FieldMortgageTerm           = "mortgage_term"
	FieldMarketOutlook          = "market_outlook"
)

// Upper bounds on form input. Past these the projection either stops being
// meaningful or overflows float64.
const (
	MaxHorizonYears      = 100
	MaxMortgageTermYears = 50
	MaxAppreciationRate  = 100
)

// ApplyEdit sets one form field from its raw value. An edit that would leave
// a numeric field negative or non-numeric is dropped and the form comes back
// unchanged with applied=false. Blank clears a numeric field.
func ApplyEdit(form models.SimulationForm, field, raw string) (models.SimulationForm, bool, error) {
	raw = strings.TrimSpace(raw)

	numeric := map[string]*string{
		FieldPropertyPrice:          &form.PropertyPrice,
		FieldDownPaymentPercent:     &form.DownPaymentPercent,
		FieldRentalIncome:           &form.RentalIncome,
		FieldCustomAppreciationRate: &form.CustomAppreciationRate,
		FieldYears:                  &form.Years,
		FieldMortgageTerm:           &form.MortgageTerm,
	}
	if target, ok := numeric[field]; ok {
		if raw != "" {
			v, ok := parseNumber(raw)
			if !ok || v < 0 {
				return form, false, nil
			}
		}
		*target = raw
		return form, true, nil
	}

	switch field {
	case FieldAppreciation:
		mode := models.AppreciationMode(raw)
		if !mode.Valid() {
			return form, false, nil
		}
		form.Appreciation = mode
		return form, true, nil
	case FieldMarketOutlook:
		outlook := models.MarketOutlook(raw)
		if !outlook.Valid() {
			return form, false, nil
		}
		form.MarketOutlook = outlook
		return form, true, nil
	}

	return form, false, fmt.Errorf("%w: %q", ErrUnknownField, field)
}

// ValidateForm coerces the form into numbers and checks every range.
func ValidateForm(form models.SimulationForm) (models.SimulationInput, error) {
	var input models.SimulationInput

	price, ok := parseNumber(form.PropertyPrice)
	if !ok || price <= 0 {
		return input, invalidInput("property price must be a positive number")
	}
	deposit, ok := parseNumber(form.DownPaymentPercent)
	if !ok || deposit < 0 || deposit >= 100 {
		return input, invalidInput("down payment must be at least 0%% and below 100%%")
	}
	rent, ok := parseNumber(form.RentalIncome)
	if !ok || rent < 0 {
		return input, invalidInput("rental income must be zero or more")
	}
	years, ok := parseWholeYears(form.Years, MaxHorizonYears)
	if !ok {
		return input, invalidInput("investment horizon must be a whole number of years, from 1 to %d", MaxHorizonYears)
	}
	term, ok := parseWholeYears(form.MortgageTerm, MaxMortgageTermYears)
	if !ok {
		return input, invalidInput("mortgage term must be a whole number of years, from 1 to %d", MaxMortgageTermYears)
	}
	if !form.MarketOutlook.Valid() {
		return input, invalidInput("unknown market outlook %q", form.MarketOutlook)
	}
	appreciation, err := appreciationRate(form)
	if err != nil {
		return input, err
	}

	return models.SimulationInput{
		Price:              price,
		DownPaymentPercent: deposit,
		RentalIncome:       rent,
		AppreciationRate:   appreciation,
		Years:              years,
		MortgageTerm:       term,
		Outlook:            form.MarketOutlook,
	}, nil
}

// ResolveForm resolves the gating rate from whatever the form holds right
// now. Anything unparseable leaves the rate undetermined.
func (s *RateService) ResolveForm(form models.SimulationForm) (models.RateQuote, bool) {
	price, ok := parseNumber(form.PropertyPrice)
	if !ok {
		return models.RateQuote{}, false
	}
	deposit, ok := parseNumber(form.DownPaymentPercent)
	if !ok {
		return models.RateQuote{}, false
	}
	term, ok := parseWholeYears(form.MortgageTerm, MaxMortgageTermYears)
	if !ok {
		return models.RateQuote{}, false
	}
	return s.Resolve(price, deposit, term, form.MarketOutlook)
}

func appreciationRate(form models.SimulationForm) (float64, error) {
	if rate, ok := form.Appreciation.PresetRate(); ok {
		return rate, nil
	}
	if form.Appreciation != models.AppreciationCustom {
		return 0, invalidInput("unknown appreciation preset %q", form.Appreciation)
	}
	if strings.TrimSpace(form.CustomAppreciationRate) == "" {
		return 0, ErrCustomRateRequired
	}
	rate, ok := parseNumber(form.CustomAppreciationRate)
	if !ok || rate < 0 || rate > MaxAppreciationRate {
		return 0, invalidInput("custom appreciation rate must be between 0 and %d", MaxAppreciationRate)
	}
	return rate, nil
}

func parseNumber(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || !isFinite(v) {
		return 0, false
	}
	return v, true
}

func parseWholeYears(raw string, limit int) (int, bool) {
	v, ok := parseNumber(raw)
	if !ok || v < 1 || v != math.Trunc(v) || v > float64(limit) {
		return 0, false
	}
	return int(v), true
}
