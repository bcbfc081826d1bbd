package returns

import "fmt"

// Percent is a return expressed in percent.
type Percent float64

// PercentOf converts a return such as 0.1 into Percent(10).
func PercentOf(ret float64) Percent { return Percent(100 * ret) }

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

// SignedString formats p with an explicit sign. Values rounding to zero print
// as "+0.00%".
func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", float64(p))
	if res == "-0.00%" {
		return "+0.00%"
	}
	return res
}
