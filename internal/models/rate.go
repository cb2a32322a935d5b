package models

import (
	"sort"
	"strconv"
	"time"
)

// Band is an LTV bracket; a loan falls in the band when its LTV is at or
// above the threshold.
type Band int

const (
	Band95 Band = 95
	Band90 Band = 90
	Band85 Band = 85
	Band75 Band = 75
	Band60 Band = 60
)

// Bands lists every band in the order they are checked.
var Bands = []Band{Band95, Band90, Band85, Band75, Band60}

func (b Band) String() string {
	return strconv.Itoa(int(b))
}

func (b Band) Valid() bool {
	for _, known := range Bands {
		if b == known {
			return true
		}
	}
	return false
}

// RateTable maps band -> fixed term in years -> base annual rate (%).
type RateTable map[Band]map[int]float64

// MortgageRate is one row of the persisted rate table.
type MortgageRate struct {
	Band      Band      `db:"ltv_band" yaml:"band"`
	TermYears int       `db:"term_years" yaml:"term_years"`
	Rate      float64   `db:"rate" yaml:"rate"`
	UpdatedAt time.Time `db:"updated_at" yaml:"-"`
}

func TableFromRows(rows []MortgageRate) RateTable {
	table := make(RateTable, len(Bands))
	for _, row := range rows {
		if table[row.Band] == nil {
			table[row.Band] = make(map[int]float64)
		}
		table[row.Band][row.TermYears] = row.Rate
	}
	return table
}

// Rows flattens the table, highest band first and shortest term first.
func (t RateTable) Rows() []MortgageRate {
	var rows []MortgageRate
	for band, terms := range t {
		for term, rate := range terms {
			rows = append(rows, MortgageRate{Band: band, TermYears: term, Rate: rate})
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Band != rows[j].Band {
			return rows[i].Band > rows[j].Band
		}
		return rows[i].TermYears < rows[j].TermYears
	})
	return rows
}

// Terms returns the sorted fixed terms offered for a band.
func (t RateTable) Terms(band Band) []int {
	terms := make([]int, 0, len(t[band]))
	for term := range t[band] {
		terms = append(terms, term)
	}
	sort.Ints(terms)
	return terms
}

type MarketOutlook string

const (
	OutlookOptimistic  MarketOutlook = "optimistic"
	OutlookBaseline    MarketOutlook = "baseline"
	OutlookPessimistic MarketOutlook = "pessimistic"
)

var outlookAdjustments = map[MarketOutlook]float64{
	OutlookOptimistic:  -0.25,
	OutlookBaseline:    0,
	OutlookPessimistic: 0.25,
}

// Adjustment is the one-off shift in percentage points; unknown outlooks
// shift nothing.
func (o MarketOutlook) Adjustment() float64 {
	return outlookAdjustments[o]
}

func (o MarketOutlook) Valid() bool {
	_, ok := outlookAdjustments[o]
	return ok
}

// RateQuote is a resolved mortgage rate together with the figures it was
// derived from.
type RateQuote struct {
	Deposit    float64
	Loan       float64
	LTV        float64
	Band       Band
	TermYears  int
	BaseRate   float64
	Fallback   bool // term missing from the band, FallbackRate used
	Adjustment float64
	Rate       float64
}
