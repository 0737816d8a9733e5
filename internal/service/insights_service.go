package service

import (
	"context"
	"log"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/habitlog/internal/repository"
	"github.com/limbo/habitlog/pkg/entity"
	"github.com/limbo/habitlog/pkg/progress"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// Concurrent ListByHabit calls while building the dashboard.
const insightsFetchLimit = 4

type InsightsService struct {
	habitsRepo repository.HabitsRepositoryI
	logsRepo   repository.HabitLogsRepositoryI
	classifier *progress.Classifier
	cache      InsightsCacheI
	sf         singleflight.Group
}

func NewInsightsService(habitsRepo repository.HabitsRepositoryI, logsRepo repository.HabitLogsRepositoryI, classifier *progress.Classifier, cache InsightsCacheI) *InsightsService {
	if habitsRepo == nil || logsRepo == nil {
		log.Fatal("on insights service provided nil repos")
	}
	if classifier == nil {
		classifier = progress.New(progress.DefaultConfig())
	}
	return &InsightsService{
		habitsRepo: habitsRepo,
		logsRepo:   logsRepo,
		classifier: classifier,
		cache:      cache,
	}
}

func (s *InsightsService) Progress(ctx context.Context, habitID uuid.UUID) (*progress.Category, error) {
	habit, err := s.habitsRepo.GetByID(ctx, habitID)
	if err != nil {
		return nil, err
	}
	logs, err := s.logsRepo.ListByHabit(ctx, habitID)
	if err != nil {
		return nil, err
	}
	return s.classifier.Classify(habit, logs), nil
}

// Insights serves the dashboard of the current cache generation. Without a
// cache, or when the generation cannot be read, it is built on every call.
func (s *InsightsService) Insights(ctx context.Context) (*progress.Insights, error) {
	gen, cached := s.generation(ctx)
	v, err, _ := s.sf.Do("insights:"+strconv.FormatInt(gen, 10), func() (any, error) {
		if cached {
			hit, err := s.cache.Get(ctx, gen)
			if err != nil {
				slog.Default().Warn("reading insights cache failed", slog.String("error", err.Error()))
			}
			if hit != nil {
				return hit, nil
			}
		}
		insights, err := s.build(ctx)
		if err != nil {
			return nil, err
		}
		if cached {
			if err := s.cache.Set(ctx, gen, insights); err != nil {
				slog.Default().Warn("writing insights cache failed", slog.String("error", err.Error()))
			}
		}
		return insights, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*progress.Insights), nil
}

// generation is read before any data so that a write committed during the
// build bumps it past the snapshot being stored.
func (s *InsightsService) generation(ctx context.Context) (int64, bool) {
	if s.cache == nil {
		return -1, false
	}
	gen, err := s.cache.Generation(ctx)
	if err != nil {
		slog.Default().Warn("reading insights generation failed", slog.String("error", err.Error()))
		return -1, false
	}
	return gen, true
}

func (s *InsightsService) build(ctx context.Context) (*progress.Insights, error) {
	habits, err := s.habitsRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	results := make([][]entity.HabitLog, len(habits))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(insightsFetchLimit)
	for i, h := range habits {
		g.Go(func() error {
			logs, err := s.logsRepo.ListByHabit(gctx, h.ID)
			if err != nil {
				return err
			}
			results[i] = logs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	logsByHabit := make(map[uuid.UUID][]entity.HabitLog, len(habits))
	for i, h := range habits {
		logsByHabit[h.ID] = results[i]
	}
	return &progress.Insights{
		Board:       s.classifier.Board(habits, logsByHabit),
		Overview:    progress.Summarize(habits, logsByHabit, now),
		GeneratedAt: now,
	}, nil
}
