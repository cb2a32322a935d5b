package service

import (
	"context"
	"errors"
	"math"

	"investr/internal/models"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// FallbackRate applies when a band does not offer the requested term.
const FallbackRate = 5.5

// RateSource supplies the base rate table.
type RateSource interface {
	Name() string
	LoadRates(ctx context.Context) (models.RateTable, error)
}

// LoadRateTable returns the first non-empty table among sources, in order.
func LoadRateTable(ctx context.Context, logger *zap.Logger, sources ...RateSource) (models.RateTable, error) {
	for _, source := range sources {
		table, err := source.LoadRates(ctx)
		if err != nil {
			logger.Warn("Rate source failed, trying next", zap.String("source", source.Name()), zap.Error(err))
			continue
		}
		if len(table) == 0 {
			logger.Warn("Rate source is empty, trying next", zap.String("source", source.Name()))
			continue
		}
		logger.Info("Rate table loaded",
			zap.String("source", source.Name()),
			zap.Int("rows", len(table.Rows())),
		)
		return table, nil
	}
	return nil, errors.New("no rate source produced a rate table")
}

type RateService struct {
	table  models.RateTable
	logger *zap.Logger
}

func NewRateService(table models.RateTable, logger *zap.Logger) *RateService {
	return &RateService{
		table:  table,
		logger: logger,
	}
}

func (s *RateService) Table() models.RateTable {
	return s.table
}

// Resolve is ResolveRate over the service's table.
func (s *RateService) Resolve(price, depositPercent float64, termYears int, outlook models.MarketOutlook) (models.RateQuote, bool) {
	quote, ok := ResolveRate(s.table, price, depositPercent, termYears, outlook)
	if !ok {
		s.logger.Debug("Rate undetermined",
			zap.Float64("price", price),
			zap.Float64("deposit_percent", depositPercent),
			zap.Int("term_years", termYears),
		)
		return quote, false
	}
	if quote.Fallback {
		s.logger.Debug("Term not offered for band, using fallback rate",
			zap.Stringer("band", quote.Band),
			zap.Int("term_years", termYears),
		)
	}
	return quote, true
}

// ResolveRate derives the mortgage rate for a purchase. ok is false when the
// price is not positive, the deposit covers the whole price or the term is
// not a positive number of years.
//
// LTV is rounded to two decimals before the band is chosen, so it matches
// the LTV shown to the user: a 25.004% deposit reads as LTV 75.00 and lands
// in the 75 band rather than 60.
func ResolveRate(
	table models.RateTable,
	price float64,
	depositPercent float64,
	termYears int,
	outlook models.MarketOutlook,
) (models.RateQuote, bool) {
	if !isFinite(price) || price <= 0 || !isFinite(depositPercent) || termYears <= 0 {
		return models.RateQuote{}, false
	}

	deposit := depositPercent / 100 * price
	if deposit >= price {
		return models.RateQuote{}, false
	}

	loan := price - deposit
	ltv := round2(loan / price * 100)
	band := SelectBand(ltv)

	base, ok := table[band][termYears]
	if !ok {
		base = FallbackRate
	}
	adjustment := outlook.Adjustment()

	return models.RateQuote{
		Deposit:    deposit,
		Loan:       loan,
		LTV:        ltv,
		Band:       band,
		TermYears:  termYears,
		BaseRate:   base,
		Fallback:   !ok,
		Adjustment: adjustment,
		Rate:       round2(base + adjustment),
	}, true
}

// SelectBand picks the highest band whose threshold ltv reaches. Anything
// under 75 lands in the 60 band.
func SelectBand(ltv float64) models.Band {
	for _, band := range models.Bands {
		if ltv >= float64(band) {
			return band
		}
	}
	return models.Band60
}

func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
