package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/etnz/returns"
	md "github.com/nao1215/markdown"
)

// PortfolioMarkdown renders the value-weighted portfolio returns of a report,
// one row per date, with the market value the return is weighted on.
//
// Market values are formatted in currency.
func PortfolioMarkdown(r *returns.Report, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Value-Weighted Portfolio Returns")

	tickers := make([]string, 0, r.Prices.Len())
	for _, tic := range r.Prices.Tickers() {
		tickers = append(tickers, tic.String())
	}
	doc.PlainText(fmt.Sprintf("Returns on %s, weighted by %s × %s, for %s.",
		md.Code(r.PriceColumn), md.Code(r.PriceColumn), md.Code(r.SharesColumn), strings.Join(tickers, ", ")))

	if r.Portfolio.Len() == 0 {
		doc.PlainText("No date has both a return and a market value.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Date", "Return", "Market Value", "Tickers"},
		Rows:   [][]string{},
	}
	for on, p := range r.Portfolio.Values() {
		table.Rows = append(table.Rows, []string{
			on.String(),
			returns.PercentOf(p.Return).SignedString(),
			formatMoney(p.MarketValue, currency),
			fmt.Sprintf("%d", p.Count),
		})
	}
	doc.Table(table)

	on, last := r.Portfolio.Latest()
	doc.H2("Latest")
	doc.PlainText(fmt.Sprintf("%s: %s on %s.", on, md.Bold(returns.PercentOf(last.Return).SignedString()), formatMoney(last.MarketValue, currency)))

	return doc.String()
}
