package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/habitlog/internal/error_values"
	"github.com/limbo/habitlog/internal/repository"
	"github.com/limbo/habitlog/pkg/entity"
	"github.com/limbo/habitlog/pkg/period"
)

type HabitsService struct {
	repo  repository.HabitsRepositoryI
	cache InsightsCacheI
}

// NewHabitsService creates the service. cache may be nil.
func NewHabitsService(habitsRepo repository.HabitsRepositoryI, cache InsightsCacheI) *HabitsService {
	if habitsRepo == nil {
		log.Fatal("provided nil habitsRepo")
	}
	return &HabitsService{
		repo:  habitsRepo,
		cache: cache,
	}
}

func (hs *HabitsService) CreateHabit(ctx context.Context, req CreateHabitRequest) (*entity.Habit, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Frequency = strings.ToLower(strings.TrimSpace(req.Frequency))
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	startDate, err := parseStartDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	habit, err := hs.repo.Create(ctx, &entity.Habit{
		Name:        req.Name,
		Description: req.Description,
		RatingDescriptions: entity.RatingDescriptions{
			Good: req.RatingGood,
			Okay: req.RatingOkay,
			Bad:  req.RatingBad,
		},
		Frequency: period.Frequency(req.Frequency),
		StartDate: startDate,
	})
	if err != nil {
		return nil, err
	}
	invalidateInsights(ctx, hs.cache)
	return habit, nil
}

func (hs *HabitsService) GetHabit(ctx context.Context, id uuid.UUID) (*entity.Habit, error) {
	return hs.repo.GetByID(ctx, id)
}

func (hs *HabitsService) ListHabits(ctx context.Context) ([]*entity.Habit, error) {
	return hs.repo.List(ctx)
}

func (hs *HabitsService) UpdateHabit(ctx context.Context, id uuid.UUID, req UpdateHabitRequest) (*entity.Habit, error) {
	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		req.Name = &trimmed
	}
	if req.Frequency != nil {
		normalized := strings.ToLower(strings.TrimSpace(*req.Frequency))
		req.Frequency = &normalized
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	habit, err := hs.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		habit.Name = *req.Name
	}
	if req.Description != nil {
		habit.Description = *req.Description
	}
	if req.RatingGood != nil {
		habit.RatingDescriptions.Good = *req.RatingGood
	}
	if req.RatingOkay != nil {
		habit.RatingDescriptions.Okay = *req.RatingOkay
	}
	if req.RatingBad != nil {
		habit.RatingDescriptions.Bad = *req.RatingBad
	}
	if req.Frequency != nil {
		habit.Frequency = period.Frequency(*req.Frequency)
	}
	if req.StartDate != nil {
		if strings.TrimSpace(*req.StartDate) == "" {
			habit.StartDate = nil
		} else {
			startDate, err := parseStartDate(req.StartDate)
			if err != nil {
				return nil, err
			}
			habit.StartDate = startDate
		}
	}
	updated, err := hs.repo.Update(ctx, habit)
	if err != nil {
		return nil, err
	}
	invalidateInsights(ctx, hs.cache)
	return updated, nil
}

func (hs *HabitsService) DeleteHabit(ctx context.Context, id uuid.UUID) error {
	if err := hs.repo.Delete(ctx, id); err != nil {
		return err
	}
	invalidateInsights(ctx, hs.cache)
	return nil
}

func parseStartDate(raw *string) (*period.CalendarDate, error) {
	if raw == nil {
		return nil, nil
	}
	d, err := period.ParseDate(*raw)
	if err != nil {
		return nil, errors.Join(errorvalues.ErrInvalidTimestamp, err)
	}
	return &d, nil
}

// Cache failures never fail the write that triggered them.
func invalidateInsights(ctx context.Context, cache InsightsCacheI) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx); err != nil {
		slog.Default().Warn("insights cache invalidation failed", slog.String("error", err.Error()))
	}
}
