package cmd

import (
	"fmt"

	"github.com/etnz/returns"
	"go.uber.org/zap"
)

// loadRecords reads and parses the record files of tickers, or of every
// ticker in the data folder when none is given.
func loadRecords(log *zap.Logger, tickers []string) ([]returns.Record, error) {
	if len(tickers) == 0 {
		all, err := returns.ListTickers(config.DataDir)
		if err != nil {
			return nil, err
		}
		if len(all) == 0 {
			return nil, fmt.Errorf("no %s file in %q", returns.DataFileExt, config.DataDir)
		}
		tickers = all
	}
	log.Debug("reading records", zap.String("dir", config.DataDir), zap.Strings("tickers", tickers))

	lines, err := returns.ReadAllLines(config.DataDir, tickers)
	if err != nil {
		return nil, err
	}
	records, err := returns.ParseRecords(lines)
	if err != nil {
		return nil, err
	}
	log.Debug("parsed records", zap.Int("lines", len(lines)), zap.Int("records", len(records)))
	return records, nil
}
