package service

import (
	"context"
	"errors"
	"time"

	"github.com/BuzzLyutic/organizador-api/internal/model"
	"github.com/BuzzLyutic/organizador-api/internal/repo"
)

var (
	ErrValidation = errors.New("validation error")
)

const msgEmptyDate = "A data da tarefa não pode ser vazia"

// ValidationError несет сообщение, которое уходит клиенту как есть
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

type TaskService struct {
	repo repo.TaskRepository
}

func NewTaskService(repo repo.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

func (s *TaskService) Get(ctx context.Context, id int64) (model.Task, error) {
	return s.repo.Get(ctx, id)
}

func (s *TaskService) List(ctx context.Context) ([]model.Task, error) {
	return s.repo.List(ctx, model.TaskFilter{})
}

func (s *TaskService) ListByTitle(ctx context.Context, title string) ([]model.Task, error) {
	return s.repo.List(ctx, model.TaskFilter{Title: &title})
}

func (s *TaskService) ListByDate(ctx context.Context, date time.Time) ([]model.Task, error) {
	day := model.WallClock(date)
	return s.repo.List(ctx, model.TaskFilter{Day: &day})
}

func (s *TaskService) ListByStatus(ctx context.Context, status model.TaskStatus) ([]model.Task, error) {
	if !status.Valid() {
		return nil, &ValidationError{Message: model.ErrUnknownStatus.Error()}
	}
	return s.repo.List(ctx, model.TaskFilter{Status: &status})
}

func (s *TaskService) Create(ctx context.Context, t model.Task) (model.Task, error) {
	if err := s.validate(t); err != nil {
		return t, err
	}
	return s.repo.Create(ctx, t)
}

// Update сначала ищет задачу (404 важнее 400), затем целиком заменяет изменяемые поля
func (s *TaskService) Update(ctx context.Context, id int64, t model.Task) (model.Task, error) {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return t, err
	}

	if err := s.validate(t); err != nil {
		return t, err
	}

	existing.Title = t.Title
	existing.Description = t.Description
	existing.Date = t.Date
	existing.Status = t.Status

	return s.repo.Update(ctx, existing)
}

func (s *TaskService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// validate проверяет только дату; пустой заголовок допустим
func (s *TaskService) validate(t model.Task) error {
	if t.Date.IsZero() {
		return &ValidationError{Message: msgEmptyDate}
	}
	return nil
}
