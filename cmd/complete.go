package cmd

import (
	"github.com/etnz/returns"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// columns suggested for the price and shares flags.
var columns = predict.Set{"adj_close", "close", "open", "shares"}

// predictTickers suggests the tickers having a record file in the data folder.
//
// Flags are not parsed yet when completing, so the folder comes from the environment.
var predictTickers = complete.PredictFunc(func(prefix string) []string {
	tickers, err := returns.ListTickers(envOr(EnvDataDir, "data"))
	if err != nil {
		return nil
	}
	return tickers
})

// Completion describes vwr for shell completion.
func Completion() *complete.Command {
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"data":     predict.Dirs("*"),
			"currency": predict.Set{"USD", "EUR", "GBP", "JPY", "CHF"},
			"v":        predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"vw": {
				Flags: map[string]complete.Predictor{"col": columns, "shares": columns, "raw": predict.Nothing},
				Args:  predictTickers,
			},
			"rets": {
				Flags: map[string]complete.Predictor{"col": columns},
				Args:  predictTickers,
			},
			"check": {
				Flags: map[string]complete.Predictor{"col": columns, "shares": columns},
				Args:  predictTickers,
			},
		},
	}
}
