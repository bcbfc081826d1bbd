package returns

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestValueWeighted(t *testing.T) {
	testCases := []struct {
		name   string
		rets   table
		mktVal table
		want   map[string]float64
	}{
		{
			name: "weighted by market value",
			rets: table{
				"AAPL": {"2025-01-01": V(0.1), "2025-01-02": V(0.1)},
				"MSFT": {"2025-01-01": Missing, "2025-01-02": V(0.2)},
			},
			mktVal: table{
				"AAPL": {"2025-01-01": V(100), "2025-01-02": V(100)},
				"MSFT": {"2025-01-02": V(200)},
			},
			want: map[string]float64{"2025-01-01": 0.1, "2025-01-02": 0.16666666666666666},
		},
		{
			name: "dates without any contribution are absent",
			rets: table{
				"AAPL": {"2025-01-01": Missing, "2025-01-02": V(0.1), "2025-01-03": V(0.3)},
			},
			mktVal: table{
				"AAPL": {"2025-01-01": V(100), "2025-01-02": Missing},
			},
			want: map[string]float64{},
		},
		{
			name: "non positive total market value is excluded",
			rets: table{
				"A": {"2025-01-01": V(0.1), "2025-01-02": V(0.1)},
				"B": {"2025-01-01": V(0.2), "2025-01-02": V(0.2)},
			},
			mktVal: table{
				"A": {"2025-01-01": V(100), "2025-01-02": V(0)},
				"B": {"2025-01-01": V(-100), "2025-01-02": V(0)},
			},
			want: map[string]float64{},
		},
		{
			name: "tickers without market values do not contribute",
			rets: table{
				"A": {"2025-01-01": V(0.1)},
				"B": {"2025-01-01": V(0.5)},
			},
			mktVal: table{
				"A": {"2025-01-01": V(100)},
			},
			want: map[string]float64{"2025-01-01": 0.1},
		},
		{
			name: "market value dates differ across tickers",
			rets: table{
				"A": {"2025-01-01": V(0.1), "2025-01-03": V(0.1)},
				"B": {"2025-01-02": V(0.2), "2025-01-03": V(0.4), "2025-01-04": V(0.5)},
			},
			mktVal: table{
				"A": {"2025-01-01": V(100), "2025-01-03": V(100)},
				"B": {"2025-01-02": V(50), "2025-01-03": V(300)},
			},
			want: map[string]float64{"2025-01-01": 0.1, "2025-01-02": 0.2, "2025-01-03": 0.325},
		},
		{
			name: "zero return is a contribution",
			rets: table{
				"A": {"2025-01-01": V(0)},
				"B": {"2025-01-01": V(0.3)},
			},
			mktVal: table{
				"A": {"2025-01-01": V(200)},
				"B": {"2025-01-01": V(100)},
			},
			want: map[string]float64{"2025-01-01": 0.1},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ValueWeighted(newSeries(tc.rets), newSeries(tc.mktVal))
			if diff := cmp.Diff(tc.want, dumpHistory(got), approx); diff != "" {
				t.Errorf("ValueWeighted() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValueWeightedPoints(t *testing.T) {
	rets := newSeries(table{
		"AAPL": {"2025-01-01": V(0.1), "2025-01-02": V(0.1)},
		"MSFT": {"2025-01-01": Missing, "2025-01-02": V(0.2)},
	})
	mktVal := newSeries(table{
		"AAPL": {"2025-01-01": V(100), "2025-01-02": V(100)},
		"MSFT": {"2025-01-02": V(200)},
	})
	got := dumpHistory(ValueWeightedPoints(rets, mktVal))
	want := map[string]Point{
		"2025-01-01": {Return: 0.1, MarketValue: 100, Count: 1},
		"2025-01-02": {Return: 0.16666666666666666, MarketValue: 300, Count: 2},
	}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("ValueWeightedPoints() mismatch (-want +got):\n%s", diff)
	}
}
