package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/returns"
	"github.com/etnz/returns/renderer"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

type vwCmd struct {
	priceColumn  string
	sharesColumn string
	raw          bool
}

func (*vwCmd) Name() string     { return "vw" }
func (*vwCmd) Synopsis() string { return "value-weighted portfolio returns" }
func (*vwCmd) Usage() string {
	return `vwr vw [-col <column>] [-shares <column>] [-raw] [ticker...]

  Computes, for every date, the return of the portfolio of the given tickers
  weighted by their market value (price times shares outstanding).
  All the tickers of the data folder are used when none is given.
`
}

func (c *vwCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.priceColumn, "col", returns.DefaultPriceColumn, "Column holding the prices.")
	f.StringVar(&c.sharesColumn, "shares", returns.DefaultSharesColumn, "Column holding the shares outstanding.")
	f.BoolVar(&c.raw, "raw", false, "Print one 'date return' line per date instead of a report.")
}

func (c *vwCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	log, err := setup()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	defer log.Sync()

	records, err := loadRecords(log, f.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading records: %v\n", err)
		return subcommands.ExitFailure
	}

	report, err := returns.NewReport(records, c.priceColumn, c.sharesColumn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing returns: %v\n", err)
		return subcommands.ExitFailure
	}
	log.Debug("computed portfolio", zap.Int("tickers", report.Prices.Len()), zap.Int("dates", report.Portfolio.Len()))
	if report.Portfolio.Len() == 0 {
		log.Warn("no date has both a return and a market value")
	}

	if c.raw {
		for on, ret := range report.PortfolioReturns().Values() {
			fmt.Fprintf(stdout, "%s\t%v\n", on, ret)
		}
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.PortfolioMarkdown(report, config.Currency))
	return subcommands.ExitSuccess
}
