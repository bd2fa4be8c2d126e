package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type TaskStatus string

const (
	StatusPending TaskStatus = "Pendente"
	StatusDone    TaskStatus = "Finalizado"
)

var ErrUnknownStatus = errors.New("unknown task status")

// ParseStatus допускает только значения из закрытого набора статусов
func ParseStatus(s string) (TaskStatus, error) {
	switch st := TaskStatus(strings.TrimSpace(s)); st {
	case StatusPending, StatusDone:
		return st, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
}

func (s TaskStatus) Valid() bool {
	_, err := ParseStatus(string(s))
	return err == nil
}

type Task struct {
	ID          int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string     `json:"titulo" gorm:"not null"`
	Description string     `json:"descricao"`
	Date        time.Time  `json:"data" gorm:"not null;index"`
	Status      TaskStatus `json:"status" gorm:"not null;index"`
}

func (Task) TableName() string {
	return "tasks"
}

type TaskFilter struct {
	Title  *string
	Day    *time.Time
	Status *TaskStatus
}

// WallClock отбрасывает часовой пояс, сохраняя календарные поля
func WallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

// DayRange возвращает полуинтервал [начало дня, начало следующего дня)
func DayRange(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 0, 1)
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDate разбирает дату из тела запроса или query-параметра
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return WallClock(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}
