package returns

import (
	"fmt"

	"github.com/etnz/returns/date"
)

// Default columns read from the records.
const (
	DefaultPriceColumn  = "adj_close"
	DefaultSharesColumn = "shares"
)

// Report is the outcome of the whole pipeline over a set of records.
type Report struct {
	PriceColumn  string
	SharesColumn string
	Prices       *Series
	Returns      *Series
	MarketValues *Series
	Portfolio    *date.History[Point]
}

// NewReport runs the pipeline over records.
//
// Returns are computed from priceColumn, market values from priceColumn and
// sharesColumn. Empty column names use the defaults.
func NewReport(records []Record, priceColumn, sharesColumn string) (*Report, error) {
	if priceColumn == "" {
		priceColumn = DefaultPriceColumn
	}
	if sharesColumn == "" {
		sharesColumn = DefaultSharesColumn
	}
	prices, err := Organize(records, priceColumn)
	if err != nil {
		return nil, fmt.Errorf("organizing %q: %w", priceColumn, err)
	}
	shares, err := Organize(records, sharesColumn)
	if err != nil {
		return nil, fmt.Errorf("organizing %q: %w", sharesColumn, err)
	}
	rets := Returns(prices)
	mktVal := MarketValues(prices, shares)
	return &Report{
		PriceColumn:  priceColumn,
		SharesColumn: sharesColumn,
		Prices:       prices,
		Returns:      rets,
		MarketValues: mktVal,
		Portfolio:    ValueWeightedPoints(rets, mktVal),
	}, nil
}

// PortfolioReturns returns the value-weighted portfolio return of each date.
func (r *Report) PortfolioReturns() *date.History[float64] { return returnsOf(r.Portfolio) }

// Compute turns raw lines into the value-weighted portfolio returns by date.
//
// It reads prices from priceColumn (DefaultPriceColumn when empty) and share
// counts from DefaultSharesColumn.
func Compute(lines []string, priceColumn string) (*date.History[float64], error) {
	records, err := ParseRecords(lines)
	if err != nil {
		return nil, err
	}
	r, err := NewReport(records, priceColumn, "")
	if err != nil {
		return nil, err
	}
	return r.PortfolioReturns(), nil
}
