// Package returns computes value-weighted portfolio returns from plain text price records.
//
// The pipeline goes, left to right:
//   - Records: each input line such as
//     "date:2016-02-10,ticker:CSCO,adj_close:16.8671,shares:5076080000"
//     is parsed into a Record (ParseRecords, DecodeRecords).
//   - Series: records are grouped by ticker and date for one column
//     (Organize). Empty fields become the Missing marker.
//   - Returns: simple period-over-period returns per ticker (Returns,
//     CalcReturns).
//   - Market values: price times shares, where both are known (MarketValues).
//   - Portfolio: the market value weighted average of returns, per date
//     (ValueWeighted).
//
// Missing values are data, not errors: they never fail a computation and are
// simply skipped by later stages. Structural problems (malformed lines,
// missing fields, non numeric values, invalid keys) fail fast.
//
// Dates are date.Date values, so series are always in chronological order.
//
// Compute and NewReport run the whole pipeline; the vwr command (see the cmd
// package) wraps it for .dat files on disk.
package returns
