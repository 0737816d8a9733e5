package period

import "fmt"

// Label is the human readable name of the period starting at i.
func Label(i Instant, f Frequency) string {
	r := RangeOf(i.Time(), f)
	start, end := r.Start.Time(), r.End.Time()
	switch f {
	case Weekly:
		sameMonth := start.Month() == end.Month()
		sameYear := start.Year() == end.Year()
		var endLabel string
		switch {
		case sameMonth && sameYear:
			endLabel = end.Format("2")
		case sameYear:
			endLabel = end.Format("Jan 2")
		default:
			endLabel = end.Format("Jan 2, 2006")
		}
		suffix := ""
		if sameYear {
			suffix = end.Format(", 2006")
		}
		return fmt.Sprintf("Week of %s – %s%s", start.Format("Jan 2"), endLabel, suffix)
	case Monthly:
		return start.Format("January 2006")
	default:
		return start.Format("Jan 2, 2006")
	}
}

// AxisLabel is the short form used on chart axes.
func AxisLabel(i Instant, f Frequency) string {
	start := StartUTC(i.Time(), f).Time()
	if f == Monthly {
		return start.Format("Jan 2006")
	}
	return start.Format("Jan 2")
}
