// Package progress derives dashboard categories from a habit's log history.
// Everything here is a pure function of its inputs: no storage, no clock.
package progress

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/limbo/habitlog/pkg/entity"
	"github.com/limbo/habitlog/pkg/period"
)

type Kind string

const (
	HotStreak      Kind = "hot_streak"
	NeedsAttention Kind = "needs_attention"
	Improving      Kind = "improving"
	Declining      Kind = "declining"
	BackOnTrack    Kind = "back_on_track"
)

// Category is the single label a habit receives. Only the fields relevant to
// Kind are set.
type Category struct {
	Kind    Kind          `json:"kind"`
	Label   string        `json:"label"`
	Count   int           `json:"count,omitempty"`
	From    entity.Rating `json:"from,omitempty"`
	To      entity.Rating `json:"to,omitempty"`
	Delta   float64       `json:"delta,omitempty"`
	GapDays int           `json:"gapDays,omitempty"`
}

type Config struct {
	// Minimum run of identical leading ratings for a streak category.
	StreakMin int
	// Minimum history length before trends are computed.
	TrendMinLogs int
	// Upper bound for each of the recent/previous windows.
	TrendWindow int
	// Minimum absolute change of the mean ordinal rating.
	TrendDelta float64
	// Days between the two latest logs after which a good log counts as a return.
	GapDays map[period.Frequency]int
}

func DefaultConfig() Config {
	return Config{
		StreakMin:    3,
		TrendMinLogs: 4,
		TrendWindow:  5,
		TrendDelta:   0.5,
		GapDays: map[period.Frequency]int{
			period.Daily:   14,
			period.Weekly:  21,
			period.Monthly: 60,
		},
	}
}

const epsilon = 1e-9

type Classifier struct {
	cfg Config
}

// New fills zero fields of cfg from DefaultConfig.
func New(cfg Config) *Classifier {
	def := DefaultConfig()
	if cfg.StreakMin <= 0 {
		cfg.StreakMin = def.StreakMin
	}
	if cfg.TrendMinLogs <= 0 {
		cfg.TrendMinLogs = def.TrendMinLogs
	}
	if cfg.TrendWindow <= 0 {
		cfg.TrendWindow = def.TrendWindow
	}
	if cfg.TrendDelta <= 0 {
		cfg.TrendDelta = def.TrendDelta
	}
	gaps := make(map[period.Frequency]int, len(def.GapDays))
	for f, days := range def.GapDays {
		gaps[f] = days
	}
	for f, days := range cfg.GapDays {
		if days > 0 {
			gaps[f] = days
		}
	}
	cfg.GapDays = gaps
	return &Classifier{cfg: cfg}
}

func (c *Classifier) Config() Config {
	return c.cfg
}

// Classify returns the first matching category for the habit, or nil.
// logs may be in any order; logs with unknown ratings are ignored.
func (c *Classifier) Classify(habit *entity.Habit, logs []entity.HabitLog) *Category {
	sorted := newestFirst(logs)
	if len(sorted) == 0 {
		return nil
	}
	if n := leadingRun(sorted, entity.RatingGood); n >= c.cfg.StreakMin {
		return &Category{
			Kind:  HotStreak,
			Count: n,
			Label: fmt.Sprintf("%d good in a row", n),
		}
	}
	if n := leadingRun(sorted, entity.RatingBad); n >= c.cfg.StreakMin {
		return &Category{
			Kind:  NeedsAttention,
			Count: n,
			Label: fmt.Sprintf("%d bad in a row", n),
		}
	}
	if cat := c.trend(sorted); cat != nil {
		return cat
	}
	var freq period.Frequency
	if habit != nil {
		freq = habit.Frequency
	}
	return c.backOnTrack(sorted, freq)
}

func (c *Classifier) trend(sorted []entity.HabitLog) *Category {
	n := len(sorted)
	if n < c.cfg.TrendMinLogs {
		return nil
	}
	recentSize := min(c.cfg.TrendWindow, n/2)
	previousSize := min(c.cfg.TrendWindow, n-recentSize)
	if recentSize == 0 || previousSize == 0 {
		return nil
	}
	recentMean := meanOrdinal(sorted[:recentSize])
	previousMean := meanOrdinal(sorted[recentSize : recentSize+previousSize])
	delta := recentMean - previousMean
	from := entity.RatingFromOrdinal(roundOrdinal(previousMean))
	to := entity.RatingFromOrdinal(roundOrdinal(recentMean))
	if from == to {
		return nil
	}
	switch {
	case delta >= c.cfg.TrendDelta-epsilon:
		return &Category{Kind: Improving, From: from, To: to, Delta: delta, Label: fmt.Sprintf("%s → %s", from, to)}
	case delta <= -c.cfg.TrendDelta+epsilon:
		return &Category{Kind: Declining, From: from, To: to, Delta: delta, Label: fmt.Sprintf("%s → %s", from, to)}
	}
	return nil
}

func (c *Classifier) backOnTrack(sorted []entity.HabitLog, freq period.Frequency) *Category {
	if len(sorted) < 2 || sorted[0].Rating != entity.RatingGood {
		return nil
	}
	threshold, ok := c.cfg.GapDays[freq]
	if !ok {
		threshold = c.cfg.GapDays[period.Daily]
	}
	gap := daysBetween(sorted[1].PeriodStart, sorted[0].PeriodStart)
	if gap <= threshold {
		return nil
	}
	return &Category{
		Kind:    BackOnTrack,
		GapDays: gap,
		Label:   fmt.Sprintf("back after %d days", gap),
	}
}

func newestFirst(logs []entity.HabitLog) []entity.HabitLog {
	sorted := make([]entity.HabitLog, 0, len(logs))
	for _, l := range logs {
		if l.Rating.Valid() {
			sorted = append(sorted, l)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PeriodStart.After(sorted[j].PeriodStart)
	})
	return sorted
}

func leadingRun(sorted []entity.HabitLog, r entity.Rating) int {
	n := 0
	for _, l := range sorted {
		if l.Rating != r {
			break
		}
		n++
	}
	return n
}

func meanOrdinal(logs []entity.HabitLog) float64 {
	if len(logs) == 0 {
		return 0
	}
	sum := 0
	for _, l := range logs {
		sum += l.Rating.Ordinal()
	}
	return float64(sum) / float64(len(logs))
}

// roundOrdinal rounds to the nearest rating, halves go up.
func roundOrdinal(mean float64) int {
	n := int(math.Floor(mean + 0.5 + epsilon))
	return max(0, min(n, len(entity.RatingOrder)-1))
}

func daysBetween(earlier, later period.Instant) int {
	return int(later.Time().Sub(earlier.Time()) / (24 * time.Hour))
}
