package returns

import "github.com/etnz/returns/date"

// Point is the value-weighted return of one date, with the market value it is weighted on.
type Point struct {
	Return      float64
	MarketValue float64 // sum of the contributing market values.
	Count       int     // number of contributing tickers.
}

// aggregate accumulates, per date, the market values and weighted returns.
//
// Dates are visited in chronological order and, within a date, tickers in
// ascending order, so the floating point sums are repeatable.
func aggregate(rets, mktVal *Series) *date.History[Point] {
	var rs, mvs []*date.History[Value]
	for _, ticker := range rets.tickers {
		if mv, ok := mktVal.index[ticker]; ok {
			rs = append(rs, rets.index[ticker])
			mvs = append(mvs, mv)
		}
	}
	sums := new(date.History[Point])
	// a date without any market value cannot contribute.
	for on := range date.Iterate(mvs...) {
		var p Point
		for i, h := range rs {
			ret, _ := h.Get(on)
			mv, _ := mvs[i].Get(on)
			r, rok := ret.Float()
			m, mok := mv.Float()
			if !rok || !mok {
				continue
			}
			p.Return += m * r // numerator until normalized
			p.MarketValue += m
			p.Count++
		}
		if p.Count > 0 {
			sums.Append(on, p)
		}
	}
	return sums
}

// ValueWeightedPoints is like ValueWeighted but keeps the weights of each date.
func ValueWeightedPoints(rets, mktVal *Series) *date.History[Point] {
	out := new(date.History[Point])
	for on, p := range aggregate(rets, mktVal).Values() {
		if p.MarketValue > 0 {
			p.Return /= p.MarketValue
			out.Append(on, p)
		}
	}
	return out
}

// ValueWeighted computes the portfolio return of each date, weighting each
// ticker's return by its market value:
//
//	sum(mv * ret) / sum(mv)
//
// Only tickers with both a present return and a present market value at a
// date contribute. A date is in the result only if the summed market value is
// strictly positive.
func ValueWeighted(rets, mktVal *Series) *date.History[float64] {
	return returnsOf(ValueWeightedPoints(rets, mktVal))
}

func returnsOf(points *date.History[Point]) *date.History[float64] {
	out := new(date.History[float64])
	for on, p := range points.Values() {
		out.Append(on, p.Return)
	}
	return out
}
