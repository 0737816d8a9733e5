package period

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

var ErrInvalidTimestamp = errors.New("invalid timestamp")

// CalendarDate is a wall-clock date as the user sees it. It carries no zone
// and is never used as a period identity.
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf reads the calendar fields of t in t's own location.
func DateOf(t time.Time) CalendarDate {
	y, m, d := t.Date()
	return CalendarDate{Year: y, Month: m, Day: d}
}

func ParseDate(s string) (CalendarDate, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return CalendarDate{}, fmt.Errorf("%w: %q is not a YYYY-MM-DD date", ErrInvalidTimestamp, s)
	}
	return DateOf(t), nil
}

// anchor reads the date as UTC midnight so that the bucketing functions see
// the same Y-M-D the user picked regardless of the process timezone.
func (d CalendarDate) anchor() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// In returns local midnight of the date in loc.
func (d CalendarDate) In(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

func (d CalendarDate) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

func (d CalendarDate) Before(o CalendarDate) bool {
	return d.anchor().Before(o.anchor())
}

func (d CalendarDate) After(o CalendarDate) bool {
	return d.anchor().After(o.anchor())
}

func (d CalendarDate) String() string {
	return d.anchor().Format(dateLayout)
}

func (d CalendarDate) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *CalendarDate) UnmarshalText(b []byte) error {
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseTimestamp accepts an RFC 3339 timestamp or a bare YYYY-MM-DD date.
// A bare date is anchored the same way StartOfDate anchors it.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", ErrInvalidTimestamp)
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	if d, err := ParseDate(s); err == nil {
		return d.anchor(), nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, s)
}
