package returns

// MarketValues multiplies prices by shares for matching tickers and dates.
//
// The result is keyed by the tickers of prices that are also in shares:
// tickers found only in shares are ignored. A date contributes only when it
// is in both series and both values are present; other dates are absent from
// the result. A ticker whose dates never match yields an empty History.
func MarketValues(prices, shares *Series) *Series {
	mv := NewSeries()
	for _, ticker := range prices.tickers {
		sh, ok := shares.index[ticker]
		if !ok {
			continue
		}
		h := mv.Add(ticker)
		for on, price := range prices.index[ticker].Values() {
			n, ok := sh.Get(on)
			if !ok {
				continue
			}
			p, pok := price.Float()
			q, qok := n.Float()
			if pok && qok {
				h.Append(on, V(p*q))
			}
		}
	}
	return mv
}
