package returns

import (
	"fmt"
	"regexp"
)

// tickerRegex accepts exchange tickers such as "AAPL", "BRK.B", "^GSPC" or "EURUSD=X".
var tickerRegex = regexp.MustCompile(`^[A-Za-z0-9^][A-Za-z0-9._^=-]*$`)

// Ticker identifies one security's series.
type Ticker string

// ParseTicker validates s as a Ticker.
//
// The field and key/value delimiters of the record format are rejected, so a
// valid ticker can always be written back into a record line.
func ParseTicker(s string) (Ticker, error) {
	if !tickerRegex.MatchString(s) {
		return "", fmt.Errorf("invalid ticker %q: want %s", s, tickerRegex)
	}
	return Ticker(s), nil
}

// MustParseTicker is like ParseTicker but panics on error.
func MustParseTicker(s string) Ticker {
	t, err := ParseTicker(s)
	if err != nil {
		panic(err.Error())
	}
	return t
}

func (t Ticker) String() string { return string(t) }
