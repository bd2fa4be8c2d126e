package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/BuzzLyutic/organizador-api/internal/model"
)

var (
	ErrorNotFound = errors.New("not found")
	ErrorConflict = errors.New("conflict")
)

const taskColumns = `id, title, description, date, status`

type TaskRepo struct { // Репозиторий поверх PostgreSQL
	pool *pgxpool.Pool
}

func NewTaskRepo(pool *pgxpool.Pool) *TaskRepo {
	return &TaskRepo{
		pool: pool,
	}
}

func (r *TaskRepo) Create(ctx context.Context, t model.Task) (model.Task, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO tasks (title, description, date, status)
		VALUES ($1, $2, $3, $4)
		RETURNING `+taskColumns,
		t.Title, t.Description, model.WallClock(t.Date), string(t.Status),
	)
	created, err := scanTask(row)
	if err != nil {
		return t, r.mapError(err)
	}
	return created, nil
}

func (r *TaskRepo) Get(ctx context.Context, id int64) (model.Task, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = $1`, id)
	t, err := scanTask(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return t, ErrorNotFound
	}
	return t, err
}

func (r *TaskRepo) List(ctx context.Context, filter model.TaskFilter) ([]model.Task, error) {
	// NULL в параметре означает "без фильтра"
	var (
		dayFrom, dayTo *time.Time
		status         *string
	)
	if filter.Day != nil {
		from, to := model.DayRange(*filter.Day)
		dayFrom, dayTo = &from, &to
	}
	if filter.Status != nil {
		s := string(*filter.Status)
		status = &s
	}

	rows, err := r.pool.Query(ctx, `
		SELECT `+taskColumns+`
		FROM tasks
		WHERE ($1::text IS NULL OR strpos(title, $1) > 0)
		  AND ($2::timestamp IS NULL OR (date >= $2 AND date < $3::timestamp))
		  AND ($4::text IS NULL OR status = $4)
		ORDER BY id
	`, filter.Title, dayFrom, dayTo, status)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	tasks := make([]model.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *TaskRepo) Update(ctx context.Context, t model.Task) (model.Task, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE tasks
		SET title = $2, description = $3, date = $4, status = $5
		WHERE id = $1
		RETURNING `+taskColumns,
		t.ID, t.Title, t.Description, model.WallClock(t.Date), string(t.Status),
	)
	updated, err := scanTask(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return t, ErrorNotFound
	}
	if err != nil {
		return t, r.mapError(err)
	}
	return updated, nil
}

func (r *TaskRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, "DELETE FROM tasks WHERE id = $1", id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrorNotFound
	}
	return nil
}

func scanTask(row pgx.Row) (model.Task, error) {
	var (
		t      model.Task
		status string
	)
	err := row.Scan(&t.ID, &t.Title, &t.Description, &t.Date, &status)
	t.Status = model.TaskStatus(status)
	return t, err
}

func (r *TaskRepo) mapError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			return ErrorConflict
		}
	}
	return err
}
