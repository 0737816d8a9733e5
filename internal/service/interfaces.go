package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/limbo/habitlog/pkg/entity"
	"github.com/limbo/habitlog/pkg/period"
	"github.com/limbo/habitlog/pkg/progress"
)

//go:generate mockgen -destination=mocks/mocks.go -package=mocks . HabitsServiceI,HabitLogsServiceI,InsightsServiceI,AuthServiceI,InsightsCacheI

type CreateHabitRequest struct {
	Name        string  `validate:"required,max=120"`
	Description string  `validate:"max=500"`
	RatingGood  string  `validate:"max=500"`
	RatingOkay  string  `validate:"max=500"`
	RatingBad   string  `validate:"max=500"`
	Frequency   string  `validate:"required,frequency"`
	StartDate   *string `validate:"omitempty,datetime=2006-01-02"`
}

// UpdateHabitRequest is a partial update: nil fields are kept. An empty
// StartDate clears the start date.
type UpdateHabitRequest struct {
	Name        *string `validate:"omitempty,min=1,max=120"`
	Description *string `validate:"omitempty,max=500"`
	RatingGood  *string `validate:"omitempty,max=500"`
	RatingOkay  *string `validate:"omitempty,max=500"`
	RatingBad   *string `validate:"omitempty,max=500"`
	Frequency   *string `validate:"omitempty,frequency"`
	StartDate   *string
}

type UpsertLogRequest struct {
	// RFC 3339 timestamp or YYYY-MM-DD date inside the period being logged
	PeriodStart string  `validate:"required"`
	Rating      string  `validate:"required,rating"`
	Comment     *string `validate:"omitempty,max=500"`
}

type UpdateLogRequest struct {
	PeriodStart *string `validate:"omitempty,min=1"`
	Rating      *string `validate:"omitempty,rating"`
	Comment     *string `validate:"omitempty,max=500"`
}

type HabitsServiceI interface {
	CreateHabit(ctx context.Context, req CreateHabitRequest) (*entity.Habit, error)
	GetHabit(ctx context.Context, id uuid.UUID) (*entity.Habit, error)
	ListHabits(ctx context.Context) ([]*entity.Habit, error)
	UpdateHabit(ctx context.Context, id uuid.UUID, req UpdateHabitRequest) (*entity.Habit, error)
	// Deletes habit together with all of its logs
	DeleteHabit(ctx context.Context, id uuid.UUID) error
}

type HabitLogsServiceI interface {
	// Records the rating for the period containing req.PeriodStart. A second
	// call for the same period overwrites the first one.
	Upsert(ctx context.Context, habitID uuid.UUID, req UpsertLogRequest) (*entity.HabitLog, error)
	Update(ctx context.Context, habitID, logID uuid.UUID, req UpdateLogRequest) (*entity.HabitLog, error)
	Delete(ctx context.Context, habitID, logID uuid.UUID) error
	List(ctx context.Context, habitID uuid.UUID) ([]entity.HabitLog, error)
}

type InsightsServiceI interface {
	// Classifies one habit. Returns nil category when no rule matches
	Progress(ctx context.Context, habitID uuid.UUID) (*progress.Category, error)
	Insights(ctx context.Context) (*progress.Insights, error)
}

type AuthServiceI interface {
	// Reports whether login is required at all
	Enabled() bool
	Login(ctx context.Context, name, password string) (*entity.User, error)
}

// InsightsCacheI stores dashboards per generation. Invalidate starts a new
// generation, so a dashboard built from data read before a write is never
// served after that write. Get returns nil on miss.
type InsightsCacheI interface {
	Generation(ctx context.Context) (int64, error)
	Get(ctx context.Context, gen int64) (*progress.Insights, error)
	Set(ctx context.Context, gen int64, insights *progress.Insights) error
	Invalidate(ctx context.Context) error
}

type PeriodInfo struct {
	Frequency period.Frequency `json:"frequency"`
	Start     period.Instant   `json:"start"`
	End       period.Instant   `json:"end"`
	Key       string           `json:"key"`
	Label     string           `json:"label"`
	AxisLabel string           `json:"axisLabel"`
	Current   bool             `json:"current"`
}
