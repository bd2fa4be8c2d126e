package repo

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/BuzzLyutic/organizador-api/internal/model"
)

// GormTaskRepo хранит задачи через gorm (используется с sqlite)
type GormTaskRepo struct {
	db *gorm.DB
}

func NewGormTaskRepo(db *gorm.DB) *GormTaskRepo {
	return &GormTaskRepo{db: db}
}

// EnsureSchema создает таблицу tasks, если ее еще нет
func (r *GormTaskRepo) EnsureSchema(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&model.Task{}); err != nil {
		return fmt.Errorf("ensure tasks schema: %w", err)
	}
	return nil
}

func (r *GormTaskRepo) Create(ctx context.Context, t model.Task) (model.Task, error) {
	t.ID = 0
	t.Date = model.WallClock(t.Date)
	if err := r.db.WithContext(ctx).Create(&t).Error; err != nil {
		return t, fmt.Errorf("create task: %w", err)
	}
	return t, nil
}

func (r *GormTaskRepo) Get(ctx context.Context, id int64) (model.Task, error) {
	var t model.Task
	if err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return t, ErrorNotFound
		}
		return t, fmt.Errorf("get task: %w", err)
	}
	t.Date = model.WallClock(t.Date)
	return t, nil
}

func (r *GormTaskRepo) List(ctx context.Context, filter model.TaskFilter) ([]model.Task, error) {
	q := r.db.WithContext(ctx).Model(&model.Task{})
	if filter.Title != nil {
		q = q.Where("instr(title, ?) > 0", *filter.Title)
	}
	if filter.Day != nil {
		from, to := model.DayRange(*filter.Day)
		q = q.Where("date >= ? AND date < ?", from, to)
	}
	if filter.Status != nil {
		q = q.Where("status = ?", string(*filter.Status))
	}

	tasks := make([]model.Task, 0)
	if err := q.Order("id").Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	for i := range tasks {
		tasks[i].Date = model.WallClock(tasks[i].Date)
	}
	return tasks, nil
}

func (r *GormTaskRepo) Update(ctx context.Context, t model.Task) (model.Task, error) {
	t.Date = model.WallClock(t.Date)
	// map, а не структура: пустые значения тоже должны перезаписываться
	result := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ?", t.ID).
		Updates(map[string]any{
			"title":       t.Title,
			"description": t.Description,
			"date":        t.Date,
			"status":      string(t.Status),
		})
	if err := result.Error; err != nil {
		return t, fmt.Errorf("update task: %w", err)
	}
	if result.RowsAffected == 0 {
		return t, ErrorNotFound
	}
	return t, nil
}

func (r *GormTaskRepo) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&model.Task{}, "id = ?", id)
	if err := result.Error; err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if result.RowsAffected == 0 {
		return ErrorNotFound
	}
	return nil
}
