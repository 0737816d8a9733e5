package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/habitlog/internal/error_values"
	"github.com/limbo/habitlog/pkg/entity"
	"github.com/limbo/habitlog/pkg/period"
)

const habitColumns = `id, name, description, rating_good, rating_okay, rating_bad, frequency, start_date, created_at, updated_at`

type HabitsRepository struct {
	conn PgConnection
}

func NewHabitsRepo(conn PgConnection) *HabitsRepository {
	return &HabitsRepository{
		conn: conn,
	}
}

func (hr *HabitsRepository) Create(ctx context.Context, habit *entity.Habit) (*entity.Habit, error) {
	row := hr.conn.QueryRow(ctx, `INSERT INTO habits (name, description, rating_good, rating_okay, rating_bad, frequency, start_date) VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING `+habitColumns+`;`,
		habit.Name,
		habit.Description,
		habit.RatingDescriptions.Good,
		habit.RatingDescriptions.Okay,
		habit.RatingDescriptions.Bad,
		string(habit.Frequency),
		startDateArg(habit.StartDate),
	)
	created, err := scanHabit(row)
	if err != nil {
		return nil, errorvalues.Storage("creating habit error", err)
	}
	return created, nil
}

func (hr *HabitsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Habit, error) {
	row := hr.conn.QueryRow(ctx, `SELECT `+habitColumns+` FROM habits WHERE id = $1;`, id)
	habit, err := scanHabit(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrHabitNotFound
		}
		return nil, errorvalues.Storage("getting habit by id error", err)
	}
	return habit, nil
}

func (hr *HabitsRepository) List(ctx context.Context) ([]*entity.Habit, error) {
	habits := make([]*entity.Habit, 0)
	rows, err := hr.conn.Query(ctx, `SELECT `+habitColumns+` FROM habits ORDER BY created_at DESC;`)
	if err != nil {
		return nil, errorvalues.Storage("listing habits error", err)
	}
	defer rows.Close()
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, errorvalues.Storage("unmarshalling habit error", err)
		}
		habits = append(habits, h)
	}
	if err = rows.Err(); err != nil {
		return nil, errorvalues.Storage("unexpected error after scanning habits", err)
	}
	return habits, nil
}

func (hr *HabitsRepository) Update(ctx context.Context, habit *entity.Habit) (*entity.Habit, error) {
	row := hr.conn.QueryRow(ctx, `UPDATE habits SET name = $1, description = $2, rating_good = $3, rating_okay = $4, rating_bad = $5, frequency = $6, start_date = $7, updated_at = NOW() WHERE id = $8 RETURNING `+habitColumns+`;`,
		habit.Name,
		habit.Description,
		habit.RatingDescriptions.Good,
		habit.RatingDescriptions.Okay,
		habit.RatingDescriptions.Bad,
		string(habit.Frequency),
		startDateArg(habit.StartDate),
		habit.ID,
	)
	updated, err := scanHabit(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrHabitNotFound
		}
		return nil, errorvalues.Storage("updating habit error", err)
	}
	return updated, nil
}

func (hr *HabitsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := hr.conn.Exec(ctx, `DELETE FROM habits WHERE id = $1;`, id)
	if err != nil {
		return errorvalues.Storage("deleting habit error", err)
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrHabitNotFound
	}
	return nil
}

func scanHabit(row pgx.Row) (*entity.Habit, error) {
	var (
		h         entity.Habit
		frequency string
		startDate *time.Time
	)
	err := row.Scan(
		&h.ID,
		&h.Name,
		&h.Description,
		&h.RatingDescriptions.Good,
		&h.RatingDescriptions.Okay,
		&h.RatingDescriptions.Bad,
		&frequency,
		&startDate,
		&h.CreatedAt,
		&h.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	h.Frequency = period.Frequency(frequency)
	if startDate != nil {
		d := period.DateOf(startDate.UTC())
		h.StartDate = &d
	}
	return &h, nil
}

// DATE columns carry no zone, so the calendar date goes in as UTC midnight.
func startDateArg(d *period.CalendarDate) *time.Time {
	if d == nil {
		return nil
	}
	t := d.In(time.UTC)
	return &t
}
