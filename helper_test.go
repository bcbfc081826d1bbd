package returns

import (
	"math"

	"github.com/etnz/returns/date"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// approx compares floats up to the last few bits.
var approx = cmpopts.EquateApprox(0, 1e-12)

// valueCmp compares Values: both Missing, or both present and approximately equal.
var valueCmp = cmp.Comparer(func(a, b Value) bool {
	x, xok := a.Float()
	y, yok := b.Float()
	if xok != yok {
		return false
	}
	if !xok {
		return true
	}
	return x == y || math.Abs(x-y) <= 1e-12*math.Max(math.Abs(x), math.Abs(y))
})

// table is the literal form of a Series used in tests: ticker -> date -> value.
type table map[string]map[string]Value

// newSeries builds a Series from a table.
func newSeries(t table) *Series {
	s := NewSeries()
	for tic, rows := range t {
		h := s.Add(MustParseTicker(tic))
		for on, v := range rows {
			h.Append(date.MustParse(on), v)
		}
	}
	return s
}

// dump converts a Series back into a table.
func dump(s *Series) table {
	out := make(table)
	for _, tic := range s.Tickers() {
		rows := make(map[string]Value)
		for on, v := range s.History(tic).Values() {
			rows[on.String()] = v
		}
		out[tic.String()] = rows
	}
	return out
}

// dumpHistory converts a History into a map keyed by formatted date.
func dumpHistory[T any](h *date.History[T]) map[string]T {
	out := make(map[string]T)
	for on, v := range h.Values() {
		out[on.String()] = v
	}
	return out
}
