package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/limbo/habitlog/pkg/period"
)

type User struct {
	Name         string
	PasswordHash string
}

type Rating string

const (
	RatingBad  Rating = "bad"
	RatingOkay Rating = "okay"
	RatingGood Rating = "good"
)

// RatingOrder is indexed by ordinal. Do not reorder.
var RatingOrder = []Rating{RatingBad, RatingOkay, RatingGood}

func (r Rating) Valid() bool {
	return r.Ordinal() >= 0
}

// Ordinal maps bad=0, okay=1, good=2 and -1 for anything else.
func (r Rating) Ordinal() int {
	for i, v := range RatingOrder {
		if v == r {
			return i
		}
	}
	return -1
}

// RatingFromOrdinal is the inverse of Ordinal; out of range values are clamped.
func RatingFromOrdinal(n int) Rating {
	switch {
	case n <= 0:
		return RatingBad
	case n >= len(RatingOrder)-1:
		return RatingGood
	default:
		return RatingOrder[n]
	}
}

type RatingDescriptions struct {
	Good string `json:"good"`
	Okay string `json:"okay"`
	Bad  string `json:"bad"`
}

type Habit struct {
	ID                 uuid.UUID            `json:"id"`
	Name               string               `json:"name"`
	Description        string               `json:"description,omitempty"`
	RatingDescriptions RatingDescriptions   `json:"ratingDescriptions"`
	Frequency          period.Frequency     `json:"frequency"`
	StartDate          *period.CalendarDate `json:"startDate,omitempty"`
	CreatedAt          time.Time            `json:"createdAt"`
	UpdatedAt          time.Time            `json:"updatedAt"`
}

type HabitLog struct {
	ID          uuid.UUID      `json:"id"`
	HabitID     uuid.UUID      `json:"habitId"`
	PeriodStart period.Instant `json:"periodStart"`
	Rating      Rating         `json:"rating"`
	Comment     *string        `json:"comment,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}
