package repository_test

import (
	"context"
	"errors"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/habitlog/internal/error_values"
	"github.com/limbo/habitlog/internal/repository"
	"github.com/limbo/habitlog/pkg/entity"
	"github.com/limbo/habitlog/pkg/period"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var logRowColumns = []string{"id", "habit_id", "period_start", "rating", "comment", "created_at", "updated_at"}

func testLog() entity.HabitLog {
	comment := "felt great"
	now := time.Now().UTC().Truncate(time.Microsecond)
	return entity.HabitLog{
		ID:          uuid.New(),
		HabitID:     uuid.New(),
		PeriodStart: period.StartUTC(time.Date(2025, time.March, 12, 15, 0, 0, 0, time.UTC), period.Weekly),
		Rating:      entity.RatingGood,
		Comment:     &comment,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func logRow(l entity.HabitLog) *pgxmock.Rows {
	return pgxmock.NewRows(logRowColumns).AddRow(
		l.ID, l.HabitID, l.PeriodStart.Time(), string(l.Rating), l.Comment, l.CreatedAt, l.UpdatedAt,
	)
}

func TestCreateLog(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewHabitLogsRepo(mock)
	log := testLog()
	query := regexp.QuoteMeta(`INSERT INTO habit_logs (habit_id, period_start, rating, comment) VALUES ($1, $2, $3, $4) RETURNING id, habit_id, period_start, rating, comment, created_at, updated_at;`)
	ctx := context.Background()
	args := []any{log.HabitID, log.PeriodStart.Time(), "good", log.Comment}
	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(args...).WillReturnRows(logRow(log))
		created, err := repo.Create(ctx, &log)
		require.NoError(t, err)
		assert.Equal(t, log, *created)
	})
	t.Run("duplicate period", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(args...).WillReturnError(&pgconn.PgError{Code: "23505"})
		_, err := repo.Create(ctx, &log)
		assert.ErrorIs(t, err, errorvalues.ErrLogConflict)
	})
	t.Run("habit missing", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(args...).WillReturnError(&pgconn.PgError{Code: "23503"})
		_, err := repo.Create(ctx, &log)
		assert.ErrorIs(t, err, errorvalues.ErrHabitNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(args...).WillReturnError(errors.New("db error"))
		_, err := repo.Create(ctx, &log)
		assert.EqualError(t, err, "creating log error: db error")
		assert.ErrorIs(t, err, errorvalues.ErrStorageUnavailable)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetLogByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewHabitLogsRepo(mock)
	log := testLog()
	query := regexp.QuoteMeta(`SELECT id, habit_id, period_start, rating, comment, created_at, updated_at FROM habit_logs WHERE id = $1 AND habit_id = $2;`)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(log.ID, log.HabitID).WillReturnRows(logRow(log))
		result, err := repo.GetByID(ctx, log.HabitID, log.ID)
		require.NoError(t, err)
		assert.Equal(t, log, *result)
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(log.ID, log.HabitID).WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetByID(ctx, log.HabitID, log.ID)
		assert.ErrorIs(t, err, errorvalues.ErrLogNotFound)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindLogByPeriod(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewHabitLogsRepo(mock)
	log := testLog()
	log.Comment = nil
	query := regexp.QuoteMeta(`SELECT id, habit_id, period_start, rating, comment, created_at, updated_at FROM habit_logs WHERE habit_id = $1 AND period_start = $2;`)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(log.HabitID, log.PeriodStart.Time()).WillReturnRows(logRow(log))
		result, err := repo.FindByPeriod(ctx, log.HabitID, log.PeriodStart)
		require.NoError(t, err)
		assert.Nil(t, result.Comment)
		assert.True(t, log.PeriodStart.Equal(result.PeriodStart))
	})
	t.Run("no log yet", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(log.HabitID, log.PeriodStart.Time()).WillReturnError(pgx.ErrNoRows)
		_, err := repo.FindByPeriod(ctx, log.HabitID, log.PeriodStart)
		assert.ErrorIs(t, err, errorvalues.ErrLogNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(log.HabitID, log.PeriodStart.Time()).WillReturnError(errors.New("conn refused"))
		_, err := repo.FindByPeriod(ctx, log.HabitID, log.PeriodStart)
		assert.ErrorIs(t, err, errorvalues.ErrStorageUnavailable)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateLog(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewHabitLogsRepo(mock)
	log := testLog()
	query := regexp.QuoteMeta(`UPDATE habit_logs SET period_start = $1, rating = $2, comment = $3, updated_at = NOW() WHERE id = $4 AND habit_id = $5 RETURNING id, habit_id, period_start, rating, comment, created_at, updated_at;`)
	ctx := context.Background()
	args := []any{log.PeriodStart.Time(), "good", log.Comment, log.ID, log.HabitID}
	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(args...).WillReturnRows(logRow(log))
		updated, err := repo.Update(ctx, &log)
		require.NoError(t, err)
		assert.Equal(t, log, *updated)
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(args...).WillReturnError(pgx.ErrNoRows)
		_, err := repo.Update(ctx, &log)
		assert.ErrorIs(t, err, errorvalues.ErrLogNotFound)
	})
	t.Run("period taken", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(args...).WillReturnError(&pgconn.PgError{Code: "23505"})
		_, err := repo.Update(ctx, &log)
		assert.ErrorIs(t, err, errorvalues.ErrLogConflict)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteLog(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewHabitLogsRepo(mock)
	query := regexp.QuoteMeta(`DELETE FROM habit_logs WHERE id = $1 AND habit_id = $2;`)
	ctx := context.Background()
	habitID, logID := uuid.New(), uuid.New()
	t.Run("success", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(logID, habitID).WillReturnResult(pgxmock.NewResult("DELETE", 1))
		assert.NoError(t, repo.Delete(ctx, habitID, logID))
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(logID, habitID).WillReturnResult(pgxmock.NewResult("DELETE", 0))
		assert.ErrorIs(t, repo.Delete(ctx, habitID, logID), errorvalues.ErrLogNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(logID, habitID).WillReturnError(errors.New("db error"))
		assert.EqualError(t, repo.Delete(ctx, habitID, logID), "deleting log error: db error")
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListLogsByHabit(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewHabitLogsRepo(mock)
	query := regexp.QuoteMeta(`SELECT id, habit_id, period_start, rating, comment, created_at, updated_at FROM habit_logs WHERE habit_id = $1 ORDER BY period_start ASC;`)
	ctx := context.Background()
	habitID := uuid.New()
	t.Run("success", func(t *testing.T) {
		first, second := testLog(), testLog()
		first.HabitID, second.HabitID = habitID, habitID
		second.PeriodStart = period.StartUTC(time.Date(2025, time.March, 19, 0, 0, 0, 0, time.UTC), period.Weekly)
		second.Rating = entity.RatingBad
		rows := pgxmock.NewRows(logRowColumns)
		for _, l := range []entity.HabitLog{first, second} {
			rows.AddRow(l.ID, l.HabitID, l.PeriodStart.Time(), string(l.Rating), l.Comment, l.CreatedAt, l.UpdatedAt)
		}
		mock.ExpectQuery(query).WithArgs(habitID).WillReturnRows(rows)
		logs, err := repo.ListByHabit(ctx, habitID)
		require.NoError(t, err)
		assert.Equal(t, []entity.HabitLog{first, second}, logs)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(habitID).WillReturnError(errors.New("db error"))
		_, err := repo.ListByHabit(ctx, habitID)
		assert.EqualError(t, err, "listing logs error: db error")
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHabitLogsIntegrational(t *testing.T) {
	pool := setupTestDB(t)
	habits := repository.NewHabitsRepo(pool)
	logs := repository.NewHabitLogsRepo(pool)
	ctx := context.Background()

	habit, err := habits.Create(ctx, &entity.Habit{Name: "journaling", Frequency: period.Weekly})
	require.NoError(t, err)
	periodStart := period.StartUTC(time.Date(2025, time.March, 12, 9, 30, 0, 0, time.UTC), period.Weekly)

	t.Run("one row per period under concurrent inserts", func(t *testing.T) {
		const writers = 8
		var (
			wg        sync.WaitGroup
			mu        sync.Mutex
			created   int
			conflicts int
		)
		for range writers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := logs.Create(ctx, &entity.HabitLog{
					HabitID:     habit.ID,
					PeriodStart: periodStart,
					Rating:      entity.RatingOkay,
				})
				mu.Lock()
				defer mu.Unlock()
				switch {
				case err == nil:
					created++
				case errors.Is(err, errorvalues.ErrLogConflict):
					conflicts++
				default:
					t.Errorf("unexpected error: %v", err)
				}
			}()
		}
		wg.Wait()
		assert.Equal(t, 1, created)
		assert.Equal(t, writers-1, conflicts)
		list, err := logs.ListByHabit(ctx, habit.ID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.True(t, periodStart.Equal(list[0].PeriodStart))
	})
	t.Run("find and update", func(t *testing.T) {
		found, err := logs.FindByPeriod(ctx, habit.ID, periodStart)
		require.NoError(t, err)
		comment := "second thoughts"
		found.Rating = entity.RatingGood
		found.Comment = &comment
		updated, err := logs.Update(ctx, found)
		require.NoError(t, err)
		assert.Equal(t, entity.RatingGood, updated.Rating)
		require.NotNil(t, updated.Comment)
		assert.Equal(t, comment, *updated.Comment)
	})
	t.Run("unknown habit", func(t *testing.T) {
		_, err := logs.Create(ctx, &entity.HabitLog{HabitID: uuid.New(), PeriodStart: periodStart, Rating: entity.RatingBad})
		assert.ErrorIs(t, err, errorvalues.ErrHabitNotFound)
	})
	t.Run("logs removed with habit", func(t *testing.T) {
		require.NoError(t, habits.Delete(ctx, habit.ID))
		list, err := logs.ListByHabit(ctx, habit.ID)
		require.NoError(t, err)
		assert.Empty(t, list)
	})
}
