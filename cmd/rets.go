package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/returns"
	"github.com/etnz/returns/renderer"
	"github.com/google/subcommands"
)

type retsCmd struct {
	priceColumn string
}

func (*retsCmd) Name() string     { return "rets" }
func (*retsCmd) Synopsis() string { return "simple returns of a single ticker" }
func (*retsCmd) Usage() string {
	return `vwr rets [-col <column>] <ticker>

  Displays the prices of a ticker and their simple returns, date by date.
`
}

func (c *retsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.priceColumn, "col", returns.DefaultPriceColumn, "Column holding the prices.")
}

func (c *retsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "exactly one ticker must be provided")
		return subcommands.ExitUsageError
	}
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
	prices, err := returns.Organize(records, c.priceColumn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error organizing %q: %v\n", c.priceColumn, err)
		return subcommands.ExitFailure
	}

	// file names are lower case, tickers inside the file are usually not.
	ticker := returns.Ticker(f.Arg(0))
	for _, tic := range prices.Tickers() {
		if strings.EqualFold(tic.String(), f.Arg(0)) {
			ticker = tic
			break
		}
	}
	printMarkdown(renderer.ReturnsMarkdown(ticker, c.priceColumn, prices))
	return subcommands.ExitSuccess
}
