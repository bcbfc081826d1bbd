package returns

import "github.com/etnz/returns/date"

// CalcReturns computes the simple returns of a chronological series of prices.
//
// The result has the same dates as prices. The return at a date is
// price/prior - 1, where prior is the price at the previous date in the
// series, whatever the calendar gap. It is Missing at the first date, when
// either price is Missing, or when prior is not strictly positive.
//
// prices is not modified.
func CalcReturns(prices *date.History[Value]) *date.History[Value] {
	rets := new(date.History[Value])
	prior := Missing
	for on, v := range prices.Values() {
		rets.Append(on, simpleReturn(prior, v))
		prior = v
	}
	return rets
}

func simpleReturn(prior, current Value) Value {
	p, ok := prior.Float()
	if !ok || p <= 0 {
		return Missing
	}
	c, ok := current.Float()
	if !ok {
		return Missing
	}
	return V(c/p - 1)
}

// Returns computes CalcReturns for every ticker of prices.
//
// The result is a new Series of returns with the same tickers and dates;
// prices itself is left untouched. The result must not be used where prices
// are expected: values that were prices are now returns.
func Returns(prices *Series) *Series {
	rets := NewSeries()
	for _, ticker := range prices.tickers {
		rets.put(ticker, CalcReturns(prices.index[ticker]))
	}
	return rets
}
