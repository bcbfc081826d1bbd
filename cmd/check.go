package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/returns"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

type checkCmd struct {
	priceColumn  string
	sharesColumn string
}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "validates record files" }
func (*checkCmd) Usage() string {
	return `vwr check [-col <column>] [-shares <column>] [ticker...]

  Parses the record files of the given tickers (all the data folder by default)
  and organizes their price and shares columns, reporting the first error of
  each file.
`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.priceColumn, "col", returns.DefaultPriceColumn, "Column holding the prices.")
	f.StringVar(&c.sharesColumn, "shares", returns.DefaultSharesColumn, "Column holding the shares outstanding.")
}

func (c *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	log, err := setup()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	defer log.Sync()

	tickers := f.Args()
	if len(tickers) == 0 {
		if tickers, err = returns.ListTickers(config.DataDir); err != nil {
			fmt.Fprintf(os.Stderr, "Error listing %q: %v\n", config.DataDir, err)
			return subcommands.ExitFailure
		}
	}

	status := subcommands.ExitSuccess
	for _, tic := range tickers {
		n, err := c.check(tic)
		if err != nil {
			fmt.Fprintf(stdout, "%s: %v\n", tic, err)
			status = subcommands.ExitFailure
			continue
		}
		log.Debug("checked", zap.String("ticker", tic), zap.Int("records", n))
		fmt.Fprintf(stdout, "%s: ok, %d records\n", tic, n)
	}
	return status
}

// check decodes the file of ticker and organizes every checked column.
func (c *checkCmd) check(ticker string) (int, error) {
	name, err := returns.DataFile(config.DataDir, ticker)
	if err != nil {
		return 0, err
	}
	file, err := os.Open(name)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	records, err := returns.DecodeRecords(file)
	if err != nil {
		return 0, err
	}
	for _, col := range []string{c.priceColumn, c.sharesColumn} {
		if _, err := returns.Organize(records, col); err != nil {
			return 0, err
		}
	}
	return len(records), nil
}
