package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/habitlog/pkg/entity"
	"github.com/limbo/habitlog/pkg/period"
)

//go:generate mockgen -destination=mocks/mocks.go -package=mocks . HabitsRepositoryI,HabitLogsRepositoryI

type HabitsRepositoryI interface {
	// Creates new habit. Returns stored row with generated ID and timestamps
	Create(ctx context.Context, habit *entity.Habit) (*entity.Habit, error)
	// Searches habit with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Habit, error)
	// Lists all habits, newest first
	List(ctx context.Context) ([]*entity.Habit, error)
	// Updates habit by ID (ID in habit is necessary)
	Update(ctx context.Context, habit *entity.Habit) (*entity.Habit, error)
	// Deletes habit with id. Its logs are removed by the FK cascade
	Delete(ctx context.Context, id uuid.UUID) error
}

type HabitLogsRepositoryI interface {
	// Inserts a log. Fails with ErrLogConflict if the period is already logged
	Create(ctx context.Context, log *entity.HabitLog) (*entity.HabitLog, error)
	// Looks up log by its id within the habit
	GetByID(ctx context.Context, habitID, logID uuid.UUID) (*entity.HabitLog, error)
	// Looks up the log of the period starting at periodStart
	FindByPeriod(ctx context.Context, habitID uuid.UUID, periodStart period.Instant) (*entity.HabitLog, error)
	// Overwrites period, rating and comment of the log with log.ID
	Update(ctx context.Context, log *entity.HabitLog) (*entity.HabitLog, error)
	// Deletes log with logID within the habit
	Delete(ctx context.Context, habitID, logID uuid.UUID) error
	// Lists all logs of the habit ordered by period start ascending
	ListByHabit(ctx context.Context, habitID uuid.UUID) ([]entity.HabitLog, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
	SSLMode  string
}

func (pgcfg *PGCfg) ConnString() string {
	connStr := fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
	if pgcfg.SSLMode != "" {
		connStr += "?sslmode=" + pgcfg.SSLMode
	}
	return connStr
}
