// Package period provides the calendar-month value type that keys every
// derived metric: churn cohorts, recorded KPI points and history queries.
package period

import (
	"encoding/json"
	"fmt"
	"time"
)

const readMonthFormat = "2006-1" // Permissive read month format (allows single-digit month).

// MonthFormat is the format used to represent months as strings in ISO-8601 form.
const MonthFormat = "2006-01" // write month format

// Month represents a calendar month with no finer granularity.
type Month struct {
	y int
	m time.Month
}

// time returns a time.Time that is a canonical representation of that month
// (first day at midnight UTC).
func (p Month) time() time.Time { return time.Date(p.y, p.m, 1, 0, 0, 0, 0, time.UTC) }

// New returns a normalized Month for the given year and month.
func New(year int, month time.Month) Month {
	p := Month{year, month}
	p.y, p.m, _ = p.time().Date()
	return p
}

// Of returns the Month containing the given instant, evaluated in UTC.
func Of(t time.Time) Month {
	y, m, _ := t.UTC().Date()
	return Month{y, m}
}

// Current returns the month containing the present instant.
func Current() Month { return Of(time.Now()) }

// IsZero reports whether p is the zero Month.
func (p Month) IsZero() bool { return p.y == 0 && p.m == 0 }

// Year returns the calendar year of the month.
func (p Month) Year() int { return p.y }

// Start returns the first instant of the month, midnight UTC on the 1st.
func (p Month) Start() time.Time { return p.time() }

// End returns the first instant of the following month, so that the month
// covers the half-open interval [Start, End).
func (p Month) End() time.Time { return p.Next().time() }

// Next returns the following calendar month.
func (p Month) Next() Month { return New(p.y, p.m+1) }

// Prev returns the preceding calendar month.
func (p Month) Prev() Month { return New(p.y, p.m-1) }

// Contains reports whether the instant t falls within the month.
func (p Month) Contains(t time.Time) bool {
	u := t.UTC()
	return !u.Before(p.Start()) && u.Before(p.End())
}

// Before reports whether the month p is before x.
func (p Month) Before(x Month) bool { return p.time().Before(x.time()) }

// After reports whether the month p is after x.
func (p Month) After(x Month) bool { return p.time().After(x.time()) }

// String formats the month in its standard "2006-01" form.
func (p Month) String() string { return p.time().Format(MonthFormat) }

// Parse parses a Month from a string. It is lenient and accepts formats like "2025-7".
func Parse(str string) (Month, error) {
	on, err := time.Parse(readMonthFormat, str)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q want format %q: %w", str, MonthFormat, err)
	}
	y, m, _ := on.Date()
	return New(y, m), nil
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Month {
	p, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return p
}

func (p Month) MarshalJSON() ([]byte, error) {
	str := p.String()
	return json.Marshal(&str)
}

// UnmarshalJSON implements the json specific way to unmarshal a month from a json string.
func (p *Month) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	m, err := Parse(str)
	if err != nil {
		return err
	}
	*p = m
	return nil
}

// check that a Month pointer is a valid json marshal/unmarshaller type.
var _ json.Marshaler = (*Month)(nil)
var _ json.Unmarshaler = (*Month)(nil)
