package returns

import (
	"errors"
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// Value is an optional observation: either a float64 or the missing marker.
//
// The zero Value is Missing. V(0) is a present value, distinct from Missing.
type Value struct {
	v  float64
	ok bool
}

// Missing is the marker for "no observation".
var Missing = Value{}

// V returns a present Value.
func V(f float64) Value { return Value{v: f, ok: true} }

// Float returns the value and true, or 0 and false when missing.
func (v Value) Float() (float64, bool) { return v.v, v.ok }

// IsMissing reports whether v is the missing marker.
func (v Value) IsMissing() bool { return !v.ok }

func (v Value) String() string {
	if !v.ok {
		return "None"
	}
	return strconv.FormatFloat(v.v, 'g', -1, 64)
}

// ParseValue coerces a raw field value.
//
// An empty string is Missing. Anything else must be a finite decimal number.
func ParseValue(s string) (Value, error) {
	if s == "" {
		return Missing, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Missing, err
	}
	f, _ := d.Float64()
	if math.IsInf(f, 0) {
		return Missing, errors.New("out of float64 range")
	}
	return V(f), nil
}
