package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/habitlog/internal/error_values"
	"github.com/limbo/habitlog/internal/repository"
	"github.com/limbo/habitlog/pkg/entity"
	"github.com/limbo/habitlog/pkg/period"
)

type HabitLogsService struct {
	habitsRepo repository.HabitsRepositoryI
	logsRepo   repository.HabitLogsRepositoryI
	cache      InsightsCacheI
	logger     *slog.Logger
}

func NewHabitLogsService(habitsRepo repository.HabitsRepositoryI, logsRepo repository.HabitLogsRepositoryI, cache InsightsCacheI) *HabitLogsService {
	if habitsRepo == nil || logsRepo == nil {
		log.Fatal("on habit logs service provided nil repos")
	}
	return &HabitLogsService{
		habitsRepo: habitsRepo,
		logsRepo:   logsRepo,
		cache:      cache,
		logger:     slog.Default().With(slog.String("component", "habit_logs_service")),
	}
}

func (serv *HabitLogsService) Upsert(ctx context.Context, habitID uuid.UUID, req UpsertLogRequest) (*entity.HabitLog, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	ts, err := parseTimestamp(req.PeriodStart)
	if err != nil {
		return nil, err
	}
	habit, err := serv.habitsRepo.GetByID(ctx, habitID)
	if err != nil {
		return nil, err
	}
	if !habit.Frequency.Valid() {
		return nil, errorvalues.ErrUnsupportedFrequency
	}
	if !period.IsActive(habit.StartDate, habit.Frequency, ts) {
		return nil, errorvalues.ErrHabitNotStarted
	}
	result, err := serv.upsert(ctx, &entity.HabitLog{
		HabitID:     habit.ID,
		PeriodStart: period.StartUTC(ts, habit.Frequency),
		Rating:      entity.Rating(req.Rating),
		Comment:     trimComment(req.Comment),
	})
	if err != nil {
		return nil, err
	}
	invalidateInsights(ctx, serv.cache)
	return result, nil
}

func (serv *HabitLogsService) upsert(ctx context.Context, entry *entity.HabitLog) (*entity.HabitLog, error) {
	updated, err := serv.overwrite(ctx, entry)
	if !errors.Is(err, errorvalues.ErrLogNotFound) {
		return updated, err
	}
	created, err := serv.logsRepo.Create(ctx, entry)
	if !errors.Is(err, errorvalues.ErrLogConflict) {
		return created, err
	}
	// A concurrent writer inserted the same period first.
	serv.logger.Debug("log insert conflicted, retrying as update",
		slog.String("habit_id", entry.HabitID.String()),
		slog.String("period_start", entry.PeriodStart.Key()),
	)
	updated, err = serv.overwrite(ctx, entry)
	if errors.Is(err, errorvalues.ErrLogNotFound) || errors.Is(err, errorvalues.ErrLogConflict) {
		// The conflicting row vanished again.
		return nil, errorvalues.Storage("upserting log error", err)
	}
	return updated, err
}

// overwrite replaces rating and comment of the log already stored for the
// period. ErrLogNotFound means the period is free.
func (serv *HabitLogsService) overwrite(ctx context.Context, entry *entity.HabitLog) (*entity.HabitLog, error) {
	existing, err := serv.logsRepo.FindByPeriod(ctx, entry.HabitID, entry.PeriodStart)
	if err != nil {
		return nil, err
	}
	existing.Rating = entry.Rating
	existing.Comment = entry.Comment
	existing.PeriodStart = entry.PeriodStart
	return serv.logsRepo.Update(ctx, existing)
}

func (serv *HabitLogsService) Update(ctx context.Context, habitID, logID uuid.UUID, req UpdateLogRequest) (*entity.HabitLog, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	existing, err := serv.logsRepo.GetByID(ctx, habitID, logID)
	if err != nil {
		return nil, err
	}
	if req.PeriodStart != nil {
		ts, err := parseTimestamp(*req.PeriodStart)
		if err != nil {
			return nil, err
		}
		habit, err := serv.habitsRepo.GetByID(ctx, habitID)
		if err != nil {
			return nil, err
		}
		if !habit.Frequency.Valid() {
			return nil, errorvalues.ErrUnsupportedFrequency
		}
		if !period.IsActive(habit.StartDate, habit.Frequency, ts) {
			return nil, errorvalues.ErrHabitNotStarted
		}
		existing.PeriodStart = period.StartUTC(ts, habit.Frequency)
	}
	if req.Rating != nil {
		existing.Rating = entity.Rating(*req.Rating)
	}
	if req.Comment != nil {
		existing.Comment = trimComment(req.Comment)
	}
	updated, err := serv.logsRepo.Update(ctx, existing)
	if err != nil {
		if errors.Is(err, errorvalues.ErrLogConflict) {
			return nil, errorvalues.ErrPeriodTaken
		}
		return nil, err
	}
	invalidateInsights(ctx, serv.cache)
	return updated, nil
}

func (serv *HabitLogsService) Delete(ctx context.Context, habitID, logID uuid.UUID) error {
	if err := serv.logsRepo.Delete(ctx, habitID, logID); err != nil {
		return err
	}
	invalidateInsights(ctx, serv.cache)
	return nil
}

func (serv *HabitLogsService) List(ctx context.Context, habitID uuid.UUID) ([]entity.HabitLog, error) {
	if _, err := serv.habitsRepo.GetByID(ctx, habitID); err != nil {
		return nil, err
	}
	return serv.logsRepo.ListByHabit(ctx, habitID)
}

// trimComment drops surrounding whitespace. A blank comment is stored as none.
func trimComment(c *string) *string {
	if c == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*c)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func parseTimestamp(raw string) (time.Time, error) {
	ts, err := period.ParseTimestamp(raw)
	if err != nil {
		return time.Time{}, errors.Join(errorvalues.ErrInvalidTimestamp, err)
	}
	return ts, nil
}
