package startupmetrics

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Months is a duration expressed in months, used for cash runway. It is a
// tagged value: an unbounded runway (no net burn) carries no number, so
// callers cannot accidentally do arithmetic with it.
type Months struct {
	value    decimal.Decimal
	infinite bool
}

func newMonths(value decimal.Decimal) Months { return Months{value: value} }

func infiniteMonths() Months { return Months{infinite: true} }

// IsInfinite reports whether the duration is unbounded.
func (m Months) IsInfinite() bool { return m.infinite }

// Finite returns the number of months and true, or false when the duration
// is unbounded.
func (m Months) Finite() (float64, bool) {
	if m.infinite {
		return 0, false
	}
	return m.value.InexactFloat64(), true
}

// String formats the duration as "10.0 months", or "∞" when unbounded.
func (m Months) String() string {
	if m.infinite {
		return "∞"
	}
	return m.value.StringFixed(1) + " months"
}

// MarshalJSON writes a JSON number of months, or the string "∞" when the
// duration is unbounded.
func (m Months) MarshalJSON() ([]byte, error) {
	if m.infinite {
		return json.Marshal("∞")
	}
	return []byte(m.value.String()), nil
}

// UnmarshalJSON reads back either form.
func (m *Months) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s == "∞" {
			*m = infiniteMonths()
			return nil
		}
		return fmt.Errorf("invalid runway duration %q", s)
	}
	d, err := decimal.NewFromString(string(data))
	if err != nil {
		return err
	}
	*m = newMonths(d)
	return nil
}

var _ json.Marshaler = (*Months)(nil)
var _ json.Unmarshaler = (*Months)(nil)
