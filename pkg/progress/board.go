package progress

import (
	"time"

	"github.com/google/uuid"
	"github.com/limbo/habitlog/pkg/entity"
	"github.com/limbo/habitlog/pkg/period"
)

type Entry struct {
	Habit         *entity.Habit `json:"habit"`
	Category      *Category     `json:"category,omitempty"`
	LogCount      int           `json:"logCount"`
	AverageRating float64       `json:"averageRating"`
	AverageLabel  entity.Rating `json:"averageLabel"`
}

// Board partitions habits that have at least one log. Habits without logs
// appear only in the Overview totals.
type Board struct {
	HotStreak      []Entry `json:"hotStreak"`
	NeedsAttention []Entry `json:"needsAttention"`
	Improving      []Entry `json:"improving"`
	Declining      []Entry `json:"declining"`
	BackOnTrack    []Entry `json:"backOnTrack"`
	Uncategorized  []Entry `json:"uncategorized"`
}

func (c *Classifier) Board(habits []*entity.Habit, logs map[uuid.UUID][]entity.HabitLog) Board {
	b := Board{
		HotStreak:      []Entry{},
		NeedsAttention: []Entry{},
		Improving:      []Entry{},
		Declining:      []Entry{},
		BackOnTrack:    []Entry{},
		Uncategorized:  []Entry{},
	}
	for _, h := range habits {
		habitLogs := logs[h.ID]
		if len(habitLogs) == 0 {
			continue
		}
		avg := meanOrdinal(newestFirst(habitLogs))
		e := Entry{
			Habit:         h,
			LogCount:      len(habitLogs),
			Category:      c.Classify(h, habitLogs),
			AverageRating: avg,
			AverageLabel:  entity.RatingFromOrdinal(roundOrdinal(avg)),
		}
		if e.Category == nil {
			b.Uncategorized = append(b.Uncategorized, e)
			continue
		}
		switch e.Category.Kind {
		case HotStreak:
			b.HotStreak = append(b.HotStreak, e)
		case NeedsAttention:
			b.NeedsAttention = append(b.NeedsAttention, e)
		case Improving:
			b.Improving = append(b.Improving, e)
		case Declining:
			b.Declining = append(b.Declining, e)
		case BackOnTrack:
			b.BackOnTrack = append(b.BackOnTrack, e)
		}
	}
	return b
}

type Overview struct {
	TotalHabits    int                   `json:"totalHabits"`
	HabitsWithLogs int                   `json:"habitsWithLogs"`
	TotalLogs      int                   `json:"totalLogs"`
	AverageRating  *float64              `json:"averageRating"`
	AverageLabel   entity.Rating         `json:"averageLabel,omitempty"`
	Distribution   map[entity.Rating]int `json:"distribution"`

	// Habits with a log for the period containing the reference time.
	LoggedThisPeriod int `json:"loggedThisPeriod"`

	// Habits active in the current period that have no log for it yet.
	Unlogged []uuid.UUID `json:"unlogged"`
}

// Summarize computes totals over all logs and the coverage of the period
// each habit is in at ref.
func Summarize(habits []*entity.Habit, logs map[uuid.UUID][]entity.HabitLog, ref time.Time) Overview {
	o := Overview{
		TotalHabits: len(habits),
		Distribution: map[entity.Rating]int{
			entity.RatingGood: 0,
			entity.RatingOkay: 0,
			entity.RatingBad:  0,
		},
		Unlogged: []uuid.UUID{},
	}
	sum := 0
	for _, h := range habits {
		starts := make([]period.Instant, 0, len(logs[h.ID]))
		for _, l := range logs[h.ID] {
			if !l.Rating.Valid() {
				continue
			}
			starts = append(starts, l.PeriodStart)
			sum += l.Rating.Ordinal()
			o.Distribution[l.Rating]++
		}
		if len(starts) > 0 {
			o.HabitsWithLogs++
			o.TotalLogs += len(starts)
		}
		if !h.Frequency.Valid() {
			continue
		}
		switch {
		case period.HasLogFor(starts, h.Frequency, ref):
			o.LoggedThisPeriod++
		case period.IsActive(h.StartDate, h.Frequency, ref):
			o.Unlogged = append(o.Unlogged, h.ID)
		}
	}
	if o.TotalLogs > 0 {
		avg := float64(sum) / float64(o.TotalLogs)
		o.AverageRating = &avg
		o.AverageLabel = entity.RatingFromOrdinal(roundOrdinal(avg))
	}
	return o
}

// Insights is the dashboard payload: the board and the overview computed
// from the same snapshot of habits and logs.
type Insights struct {
	Board       Board     `json:"board"`
	Overview    Overview  `json:"overview"`
	GeneratedAt time.Time `json:"generatedAt"`
}
