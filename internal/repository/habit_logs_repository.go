package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/habitlog/internal/error_values"
	"github.com/limbo/habitlog/pkg/entity"
	"github.com/limbo/habitlog/pkg/period"
)

const logColumns = `id, habit_id, period_start, rating, comment, created_at, updated_at`

type HabitLogsRepository struct {
	conn PgConnection
}

func NewHabitLogsRepo(conn PgConnection) *HabitLogsRepository {
	return &HabitLogsRepository{
		conn: conn,
	}
}

func (logsRepo *HabitLogsRepository) Create(ctx context.Context, log *entity.HabitLog) (*entity.HabitLog, error) {
	row := logsRepo.conn.QueryRow(
		ctx,
		`INSERT INTO habit_logs (habit_id, period_start, rating, comment) VALUES ($1, $2, $3, $4) RETURNING `+logColumns+`;`,
		log.HabitID,
		log.PeriodStart.Time(),
		string(log.Rating),
		log.Comment,
	)
	created, err := scanLog(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return nil, errorvalues.ErrLogConflict
			// FK violation
			case "23503":
				return nil, errorvalues.ErrHabitNotFound
			}
		}
		return nil, errorvalues.Storage("creating log error", err)
	}
	return created, nil
}

func (logsRepo *HabitLogsRepository) GetByID(ctx context.Context, habitID, logID uuid.UUID) (*entity.HabitLog, error) {
	row := logsRepo.conn.QueryRow(
		ctx,
		`SELECT `+logColumns+` FROM habit_logs WHERE id = $1 AND habit_id = $2;`,
		logID,
		habitID,
	)
	log, err := scanLog(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrLogNotFound
		}
		return nil, errorvalues.Storage("getting log by id error", err)
	}
	return log, nil
}

func (logsRepo *HabitLogsRepository) FindByPeriod(ctx context.Context, habitID uuid.UUID, periodStart period.Instant) (*entity.HabitLog, error) {
	row := logsRepo.conn.QueryRow(
		ctx,
		`SELECT `+logColumns+` FROM habit_logs WHERE habit_id = $1 AND period_start = $2;`,
		habitID,
		periodStart.Time(),
	)
	log, err := scanLog(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrLogNotFound
		}
		return nil, errorvalues.Storage("getting log by period error", err)
	}
	return log, nil
}

func (logsRepo *HabitLogsRepository) Update(ctx context.Context, log *entity.HabitLog) (*entity.HabitLog, error) {
	row := logsRepo.conn.QueryRow(
		ctx,
		`UPDATE habit_logs SET period_start = $1, rating = $2, comment = $3, updated_at = NOW() WHERE id = $4 AND habit_id = $5 RETURNING `+logColumns+`;`,
		log.PeriodStart.Time(),
		string(log.Rating),
		log.Comment,
		log.ID,
		log.HabitID,
	)
	updated, err := scanLog(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrLogNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, errorvalues.ErrLogConflict
		}
		return nil, errorvalues.Storage("updating log error", err)
	}
	return updated, nil
}

func (logsRepo *HabitLogsRepository) Delete(ctx context.Context, habitID, logID uuid.UUID) error {
	ct, err := logsRepo.conn.Exec(
		ctx,
		`DELETE FROM habit_logs WHERE id = $1 AND habit_id = $2;`,
		logID,
		habitID,
	)
	if err != nil {
		return errorvalues.Storage("deleting log error", err)
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrLogNotFound
	}
	return nil
}

func (logsRepo *HabitLogsRepository) ListByHabit(ctx context.Context, habitID uuid.UUID) ([]entity.HabitLog, error) {
	rows, err := logsRepo.conn.Query(
		ctx,
		`SELECT `+logColumns+` FROM habit_logs WHERE habit_id = $1 ORDER BY period_start ASC;`,
		habitID,
	)
	if err != nil {
		return nil, errorvalues.Storage("listing logs error", err)
	}
	defer rows.Close()
	result := make([]entity.HabitLog, 0, 8)
	for rows.Next() {
		log, err := scanLog(rows)
		if err != nil {
			return nil, errorvalues.Storage("log row parsing error", err)
		}
		result = append(result, *log)
	}
	if err = rows.Err(); err != nil {
		return nil, errorvalues.Storage("unexpected log rows error", err)
	}
	return result, nil
}

func scanLog(row pgx.Row) (*entity.HabitLog, error) {
	var (
		log         entity.HabitLog
		periodStart time.Time
		rating      string
	)
	err := row.Scan(
		&log.ID,
		&log.HabitID,
		&periodStart,
		&rating,
		&log.Comment,
		&log.CreatedAt,
		&log.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	log.PeriodStart = period.Restore(periodStart)
	log.Rating = entity.Rating(rating)
	return &log, nil
}
