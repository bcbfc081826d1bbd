package returns

import "github.com/etnz/returns/date"

// Fields every record must carry to be organized.
const (
	TickerField = "ticker"
	DateField   = "date"
)

// Organize groups records by ticker and date, reading the value of column.
//
// An empty value is Missing; any other value must be a number. When the same
// (ticker, date) pair appears several times, the last record wins.
//
// Organize does not retain records: calling it twice on the same input
// returns equal, independent Series.
func Organize(records []Record, column string) (*Series, error) {
	s := NewSeries()
	for _, rec := range records {
		ticker, on, err := keys(rec)
		if err != nil {
			return nil, err
		}
		raw, err := rec.Field(column)
		if err != nil {
			return nil, err
		}
		v, err := ParseValue(raw)
		if err != nil {
			return nil, &NumericConversionError{Field: column, Value: raw, Err: err}
		}
		s.Set(ticker, on, v)
	}
	return s, nil
}

// keys reads and validates the ticker and date of a record.
func keys(rec Record) (Ticker, date.Date, error) {
	rawTicker, err := rec.Field(TickerField)
	if err != nil {
		return "", date.Date{}, err
	}
	rawDate, err := rec.Field(DateField)
	if err != nil {
		return "", date.Date{}, err
	}
	ticker, err := ParseTicker(rawTicker)
	if err != nil {
		return "", date.Date{}, &InvalidKeyError{Field: TickerField, Value: rawTicker, Err: err}
	}
	on, err := date.Parse(rawDate)
	if err != nil {
		return "", date.Date{}, &InvalidKeyError{Field: DateField, Value: rawDate, Err: err}
	}
	return ticker, on, nil
}
