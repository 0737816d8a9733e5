package service

import (
	"errors"
	"strings"
	"time"

	errorvalues "github.com/limbo/habitlog/internal/error_values"
	"github.com/limbo/habitlog/pkg/period"
)

// DescribePeriod resolves the period of the given frequency containing at.
// An empty at means ref.
func DescribePeriod(frequency, at string, ref time.Time) (*PeriodInfo, error) {
	f, err := period.ParseFrequency(frequency)
	if err != nil {
		return nil, errors.Join(errorvalues.ErrUnsupportedFrequency, err)
	}
	ts := ref
	if strings.TrimSpace(at) != "" {
		ts, err = parseTimestamp(at)
		if err != nil {
			return nil, err
		}
	}
	r := period.RangeOf(ts, f)
	return &PeriodInfo{
		Frequency: f,
		Start:     r.Start,
		End:       r.End,
		Key:       r.Start.Key(),
		Label:     period.Label(r.Start, f),
		AxisLabel: period.AxisLabel(r.Start, f),
		Current:   period.IsCurrent(r.Start, f, ref),
	}, nil
}
