package startupmetrics

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Amount represents a monetary value in the reporting currency (USD).
type Amount struct {
	value decimal.Decimal // as major unit value
}

// NewAmount returns the Amount for a raw major-unit value.
func NewAmount(value float64) Amount {
	return Amount{value: decimal.NewFromFloat(value)}
}

// usd returns the reporting currency. The constructor is the only way to get
// a never nil currency.
func usd() money.Currency {
	return *money.New(0, money.USD).Currency()
}

// String formats the amount the way a report displays it, e.g. "$1,234.56".
func (a Amount) String() string {
	cur := usd()
	dec := a.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.Round(0).IntPart())
}

// Rounded returns the amount rounded to the currency precision (cents).
func (a Amount) Rounded() Amount { return Amount{value: a.value.Round(int32(usd().Fraction))} }

// Simple wrappers around decimal.Decimal.

func (a Amount) Equal(b Amount) bool    { return a.value.Equal(b.value) }
func (a Amount) IsZero() bool           { return a.value.IsZero() }
func (a Amount) IsPositive() bool       { return a.value.IsPositive() }
func (a Amount) IsNegative() bool       { return a.value.IsNegative() }
func (a Amount) LessThan(b Amount) bool { return a.value.LessThan(b.value) }

// binary operators.
func (a Amount) Add(b Amount) Amount { return Amount{value: a.value.Add(b.value)} }
func (a Amount) Sub(b Amount) Amount { return Amount{value: a.value.Sub(b.value)} }

// Times returns the amount multiplied by a whole number, e.g. 12 monthly
// payments in a year.
func (a Amount) Times(n int64) Amount {
	return Amount{value: a.value.Mul(decimal.NewFromInt(n))}
}

// Deprecated: Float64 should only feed display paths, the engine keeps the
// calculation exact.
func (a Amount) Float64() float64 { return a.value.InexactFloat64() }

// MarshalJSON writes the amount as a plain JSON number.
func (a Amount) MarshalJSON() ([]byte, error) { return []byte(a.value.String()), nil }

// UnmarshalJSON reads a plain JSON number back into an Amount.
func (a *Amount) UnmarshalJSON(data []byte) error {
	d, err := decimal.NewFromString(string(data))
	if err != nil {
		return err
	}
	a.value = d
	return nil
}
