package returns

import (
	"slices"

	"github.com/etnz/returns/date"
)

// Series holds one chronological History of values per ticker.
//
// Prices, share counts, returns and market values all share this shape. A
// ticker can be present with an empty History.
type Series struct {
	tickers []Ticker // sorted
	index   map[Ticker]*date.History[Value]
}

// NewSeries returns a new empty Series.
func NewSeries() *Series {
	return &Series{
		tickers: make([]Ticker, 0),
		index:   make(map[Ticker]*date.History[Value]),
	}
}

// Has reports whether the ticker is present, even with an empty History.
func (s *Series) Has(ticker Ticker) bool {
	_, ok := s.index[ticker]
	return ok
}

// History returns the ticker's History, or nil when the ticker is absent.
func (s *Series) History(ticker Ticker) *date.History[Value] { return s.index[ticker] }

// Tickers returns the tickers in ascending order.
func (s *Series) Tickers() []Ticker { return slices.Clone(s.tickers) }

// Len returns the number of tickers.
func (s *Series) Len() int { return len(s.tickers) }

// Add makes sure ticker is present and returns its History.
func (s *Series) Add(ticker Ticker) *date.History[Value] {
	if h, ok := s.index[ticker]; ok {
		return h
	}
	return s.put(ticker, new(date.History[Value]))
}

// put sets the History of a ticker, replacing any previous one.
func (s *Series) put(ticker Ticker, h *date.History[Value]) *date.History[Value] {
	if _, ok := s.index[ticker]; !ok {
		i, _ := slices.BinarySearch(s.tickers, ticker)
		s.tickers = slices.Insert(s.tickers, i, ticker)
	}
	s.index[ticker] = h
	return h
}

// Set records v for (ticker, day). An existing value for that pair is replaced: last write wins.
func (s *Series) Set(ticker Ticker, day date.Date, v Value) {
	s.Add(ticker).Append(day, v)
}

// Get returns the value at (ticker, day) and whether the pair exists.
//
// A pair can exist and hold Missing.
func (s *Series) Get(ticker Ticker, day date.Date) (Value, bool) {
	h, ok := s.index[ticker]
	if !ok {
		return Missing, false
	}
	return h.Get(day)
}
