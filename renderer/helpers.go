package renderer

import (
	"github.com/Rhymond/go-money"
	"github.com/etnz/returns"
	"github.com/shopspring/decimal"
)

// missing is how a Missing value is displayed.
const missing = "n/a"

// formatMoney formats v as an amount of currency, rounded to the currency's minor unit.
func formatMoney(v float64, currency string) string {
	// to get a never nil currency I need to call the Money constructor
	cur := *money.New(0, currency).Currency()
	minor := decimal.NewFromFloat(v).Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}

// formatValue formats a raw observation with at most 4 decimals.
func formatValue(v returns.Value) string {
	f, ok := v.Float()
	if !ok {
		return missing
	}
	return decimal.NewFromFloat(f).Round(4).String()
}

// formatReturn formats a return as a signed percentage.
func formatReturn(v returns.Value) string {
	f, ok := v.Float()
	if !ok {
		return missing
	}
	return returns.PercentOf(f).SignedString()
}
