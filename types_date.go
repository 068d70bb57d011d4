package cashflow

import (
	"fmt"
	"strings"
	"time"
)

// DateFormat is the canonical format used to persist dates.
const DateFormat = "2006-01-02"

// readDateFormats are the formats accepted on read, most canonical
// first. The slash and dot forms appear in rows typed directly into the
// legacy spreadsheet.
var readDateFormats = []string{
	DateFormat,
	"2006-1-2", // permissive ISO (single-digit month/day)
	"02/01/2006",
	"2/1/2006",
	"2.1.2006",
}

// Date represents a date with day-level granularity.
//
// The zero Date stands for a missing or unparseable date: such rows are
// kept in the ledger but excluded from time-bucketed views.
type Date struct {
	y int
	m time.Month
	d int
}

// NewDate returns a normalized Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Today returns the current date.
func Today() Date { return NewDate(time.Now().Date()) }

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// String formats the date in ISO-8601, or "" for the zero date.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.time().Format(DateFormat)
}

// time returns the canonical time.Time for that day (midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Format returns a textual representation of the date value formatted
// according to the layout, see [time.Format].
func (d Date) Format(layout string) string { return d.time().Format(layout) }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(days int) Date { return NewDate(d.y, d.m, d.d+days) }

// AddMonth returns a new Date with the given number of months added.
func (d Date) AddMonth(months int) Date { return NewDate(d.y, d.m+time.Month(months), d.d) }

// StartOfMonth truncates the date to the first day of its calendar
// month. This is the time bucket used by monthly breakdowns.
func (d Date) StartOfMonth() Date {
	if d.IsZero() {
		return Date{}
	}
	return NewDate(d.y, d.m, 1)
}

// ParseDate parses a Date from a string. It accepts the canonical
// ISO form plus the slash and dot forms found in legacy sheet rows.
func ParseDate(str string) (Date, error) {
	str = strings.TrimSpace(str)
	if str == "" {
		return Date{}, fmt.Errorf("empty date: %w", ErrValidation)
	}
	for _, layout := range readDateFormats {
		if on, err := time.Parse(layout, str); err == nil {
			return NewDate(on.Date()), nil
		}
	}
	return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, DateFormat, ErrValidation)
}

// ParseDateOrZero parses a Date, coercing anything unparseable to the
// zero Date. This is the load-boundary policy: bad historical data
// never fails a load.
func ParseDateOrZero(str string) Date {
	d, err := ParseDate(str)
	if err != nil {
		return Date{}
	}
	return d
}

// MustParseDate is like ParseDate but panics on error. Test helper.
func MustParseDate(str string) Date {
	d, err := ParseDate(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}
