package period

import (
	"fmt"
	"strings"
)

type Frequency string

const (
	Daily   Frequency = "daily"
	Weekly  Frequency = "weekly"
	Monthly Frequency = "monthly"
)

var ErrUnknownFrequency = fmt.Errorf("unknown frequency, expected one of: %s, %s, %s", Daily, Weekly, Monthly)

func ParseFrequency(s string) (Frequency, error) {
	f := Frequency(strings.ToLower(strings.TrimSpace(s)))
	if !f.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownFrequency, s)
	}
	return f, nil
}

func (f Frequency) Valid() bool {
	switch f {
	case Daily, Weekly, Monthly:
		return true
	}
	return false
}

func (f Frequency) String() string {
	return string(f)
}
