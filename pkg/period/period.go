// Package period maps timestamps onto canonical daily, weekly and monthly
// buckets. Every bucket is identified by the UTC instant it starts at; weeks
// start on Monday.
package period

import (
	"fmt"
	"time"
)

const keyLayout = "2006-01-02T15:04:05.000Z"

// Instant is the canonical UTC start of a period. It is the only value that
// may be stored or compared for period identity.
type Instant struct {
	t time.Time
}

// Restore wraps a period start read back from storage. Stored values are
// canonical already; StartUTC on the result is a no-op.
func Restore(t time.Time) Instant {
	return Instant{t: t.UTC()}
}

func (i Instant) Time() time.Time {
	return i.t
}

func (i Instant) IsZero() bool {
	return i.t.IsZero()
}

func (i Instant) Equal(o Instant) bool {
	return i.t.Equal(o.t)
}

func (i Instant) After(o Instant) bool {
	return i.t.After(o.t)
}

// Date is the calendar date the period starts on.
func (i Instant) Date() CalendarDate {
	return DateOf(i.t)
}

// Key is the ISO-8601 UTC form used for lookups and deduplication.
func (i Instant) Key() string {
	return i.t.UTC().Format(keyLayout)
}

func (i Instant) String() string {
	return i.Key()
}

func (i Instant) MarshalText() ([]byte, error) {
	return []byte(i.Key()), nil
}

func (i *Instant) UnmarshalText(b []byte) error {
	t, err := time.Parse(time.RFC3339Nano, string(b))
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimestamp, string(b))
	}
	*i = Restore(t)
	return nil
}

// StartUTC returns the start of the period t falls into, computed from t's
// UTC calendar fields. Unknown frequencies are bucketed daily; callers
// validate frequency at the boundary.
func StartUTC(t time.Time, f Frequency) Instant {
	y, m, d := t.UTC().Date()
	switch f {
	case Weekly:
		shift := (int(t.UTC().Weekday()) + 6) % 7
		return Instant{t: time.Date(y, m, d-shift, 0, 0, 0, 0, time.UTC)}
	case Monthly:
		return Instant{t: time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)}
	default:
		return Instant{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
	}
}

// StartOfDate buckets a calendar date picked in the user's timezone.
func StartOfDate(d CalendarDate, f Frequency) Instant {
	return StartUTC(d.anchor(), f)
}

// StartLocal re-expresses the canonical start as local midnight in loc.
// Display only.
func StartLocal(i Instant, loc *time.Location) time.Time {
	return i.Date().In(loc)
}

func Key(t time.Time, f Frequency) string {
	return StartUTC(t, f).Key()
}

// Range is a period with an inclusive End: the start of its last day.
type Range struct {
	Start Instant
	End   Instant
}

func RangeOf(t time.Time, f Frequency) Range {
	start := StartUTC(t, f)
	switch f {
	case Weekly:
		return Range{Start: start, End: Instant{t: start.t.AddDate(0, 0, 6)}}
	case Monthly:
		return Range{Start: start, End: Instant{t: start.t.AddDate(0, 1, -1)}}
	default:
		return Range{Start: start, End: start}
	}
}

// LastDay is the final calendar day covered by the range.
func (r Range) LastDay() CalendarDate {
	return r.End.Date()
}

// IsCurrent reports whether a stored period start is the period ref falls in.
func IsCurrent(start Instant, f Frequency, ref time.Time) bool {
	return StartUTC(start.Time(), f).Key() == Key(ref, f)
}

func HasLogFor(starts []Instant, f Frequency, ref time.Time) bool {
	current := Key(ref, f)
	for _, s := range starts {
		if StartUTC(s.Time(), f).Key() == current {
			return true
		}
	}
	return false
}

// IsActive reports whether a habit starting on startDate can be logged for
// the period containing ref. A nil startDate is always active.
func IsActive(startDate *CalendarDate, f Frequency, ref time.Time) bool {
	if startDate == nil || startDate.IsZero() {
		return true
	}
	return !RangeOf(ref, f).LastDay().Before(*startDate)
}
