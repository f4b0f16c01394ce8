/*
Package calendar provides day-resolution date primitives for the benefit engine.

PURPOSE:
  Leave windows and due-date validation work on whole calendar days. Wrapping
  time.Time in a Date type keeps every comparison and every span calculation
  at day granularity, so no caller can accidentally leak hours or time zones
  into a window boundary.

KEY CONCEPTS:
  - Date: a calendar day (UTC midnight internally)
  - Period: an inclusive span of days with its day count

DESIGN PRINCIPLES:
  1. Real calendar arithmetic: AddDays/AddMonths use time.AddDate, so leap
     years and month lengths are handled by the standard library, never by
     fixed 30-day approximations.
  2. Day normalization: all comparisons normalize to UTC midnight first.
  3. Wire format: dates marshal as "2006-01-02" for the API layer.

SEE ALSO:
  - period.go: inclusive Period type
  - benefit/periods.go: prenatal/postnatal window calculation
*/
package calendar

import (
	"fmt"
	"time"
)

// DateFormat is the wire and display format for dates.
const DateFormat = "2006-01-02"

// Date is a calendar day. The zero value means "no date".
type Date struct {
	t time.Time
}

// NewDate builds a Date for the given year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current calendar day.
func Today() Date {
	now := time.Now()
	return NewDate(now.Year(), now.Month(), now.Day())
}

// FromTime truncates a time.Time to its calendar day.
func FromTime(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate parses a "2006-01-02" string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return FromTime(t), nil
}

func (d Date) normalize() time.Time {
	return time.Date(d.t.Year(), d.t.Month(), d.t.Day(), 0, 0, 0, 0, time.UTC)
}

// Comparison
func (d Date) Before(other Date) bool        { return d.normalize().Before(other.normalize()) }
func (d Date) After(other Date) bool         { return d.normalize().After(other.normalize()) }
func (d Date) Equal(other Date) bool         { return d.normalize().Equal(other.normalize()) }
func (d Date) BeforeOrEqual(other Date) bool { return d.Before(other) || d.Equal(other) }
func (d Date) AfterOrEqual(other Date) bool  { return d.After(other) || d.Equal(other) }

// Arithmetic
func (d Date) AddDays(n int) Date   { return Date{t: d.t.AddDate(0, 0, n)} }
func (d Date) AddMonths(n int) Date { return Date{t: d.t.AddDate(0, n, 0)} }

// Properties
func (d Date) Year() int         { return d.t.Year() }
func (d Date) Month() time.Month { return d.t.Month() }
func (d Date) Day() int          { return d.t.Day() }
func (d Date) IsZero() bool      { return d.t.IsZero() }

func (d Date) String() string {
	return d.normalize().Format(DateFormat)
}

// DaysBetween returns the signed number of days from one date to another.
// Same day yields 0.
func DaysBetween(from, to Date) int {
	return int(to.normalize().Sub(from.normalize()).Hours() / 24)
}

// MarshalJSON encodes the date as "2006-01-02".
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON decodes "2006-01-02" or null.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" || s == `""` {
		*d = Date{}
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date %s: expected %q string", s, DateFormat)
	}
	parsed, err := ParseDate(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
