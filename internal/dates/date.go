// Package dates provides a timezone-naive calendar date value type.
// The canonical wire and storage form is the YYYY-MM-DD string; Day gives
// that form defined ordering and whole-day arithmetic.
package dates

import (
	"fmt"
	"time"

	"github.com/jmallicoat/tally/internal/constants"
)

// Day is a single calendar date with no time-of-day or timezone.
type Day struct {
	t time.Time // midnight UTC
}

// New returns the Day for the given calendar date.
func New(year int, month time.Month, day int) Day {
	return Day{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Parse parses a YYYY-MM-DD string.
func Parse(s string) (Day, error) {
	t, err := time.Parse(constants.DateFormat, s)
	if err != nil {
		return Day{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", s, err)
	}
	return Day{t: t.UTC()}, nil
}

// FromTime truncates a wall-clock time to its calendar date, as observed
// in the time's own location.
func FromTime(t time.Time) Day {
	return New(t.Year(), t.Month(), t.Day())
}

// Today returns the current calendar date in the given location.
// A nil location means the system's local timezone.
func Today(loc *time.Location) Day {
	if loc == nil {
		loc = time.Local
	}
	return FromTime(time.Now().In(loc))
}

func (d Day) String() string {
	return d.t.Format(constants.DateFormat)
}

// IsZero reports whether d is the zero Day.
func (d Day) IsZero() bool {
	return d.t.IsZero()
}

// AddDays returns the Day n calendar days after d (before, if n is negative).
func (d Day) AddDays(n int) Day {
	return Day{t: d.t.AddDate(0, 0, n)}
}

// Sub returns the number of whole calendar days from o to d.
// Positive when d is after o.
func (d Day) Sub(o Day) int {
	return int(d.t.Sub(o.t) / (24 * time.Hour))
}

func (d Day) Before(o Day) bool { return d.t.Before(o.t) }
func (d Day) After(o Day) bool  { return d.t.After(o.t) }
func (d Day) Equal(o Day) bool  { return d.t.Equal(o.t) }

// Weekday returns the day of the week (Sunday = 0).
func (d Day) Weekday() time.Weekday {
	return d.t.Weekday()
}

func (d Day) Year() int         { return d.t.Year() }
func (d Day) Month() time.Month { return d.t.Month() }
func (d Day) DayOfMonth() int   { return d.t.Day() }

// MonthIndex returns the absolute month number (year*12 + month), useful
// for calendar-month distance arithmetic.
func (d Day) MonthIndex() int {
	return d.t.Year()*12 + int(d.t.Month()) - 1
}

// Format formats the date with an arbitrary time layout.
func (d Day) Format(layout string) string {
	return d.t.Format(layout)
}

// MarshalText implements encoding.TextMarshaler using the canonical form.
func (d Day) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Day) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
