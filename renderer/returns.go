package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/returns"
	md "github.com/nao1215/markdown"
)

// ReturnsMarkdown renders the prices and simple returns of a single ticker.
func ReturnsMarkdown(ticker returns.Ticker, column string, prices *returns.Series) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Returns for %s", ticker))

	h := prices.History(ticker)
	if h == nil {
		doc.PlainText(fmt.Sprintf("No %s records.", md.Code(string(ticker))))
		return doc.String()
	}
	rets := returns.CalcReturns(h)

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Date", column, "Return"},
		Rows:   [][]string{},
	}
	for on, price := range h.Values() {
		ret, _ := rets.Get(on)
		table.Rows = append(table.Rows, []string{
			on.String(),
			formatValue(price),
			formatReturn(ret),
		})
	}
	doc.Table(table)

	return doc.String()
}
