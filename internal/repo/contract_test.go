package repo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BuzzLyutic/organizador-api/internal/model"
)

func ptr[T any](v T) *T { return &v }

// testRepository прогоняет одинаковые проверки для любой реализации TaskRepository
func testRepository(t *testing.T, newRepo func(t *testing.T) TaskRepository) {
	ctx := context.Background()

	t.Run("create assigns id and round-trips fields", func(t *testing.T) {
		r := newRepo(t)
		in := model.Task{
			Title:       "Buy milk",
			Description: "2 liters",
			Date:        time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC),
			Status:      model.StatusPending,
		}

		created, err := r.Create(ctx, in)
		require.NoError(t, err)
		assert.NotZero(t, created.ID)

		got, err := r.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, in.Title, got.Title)
		assert.Equal(t, in.Description, got.Description)
		assert.True(t, in.Date.Equal(got.Date), "date: want %s, got %s", in.Date, got.Date)
		assert.Equal(t, in.Status, got.Status)
	})

	t.Run("get missing", func(t *testing.T) {
		r := newRepo(t)
		_, err := r.Get(ctx, 99999)
		assert.ErrorIs(t, err, ErrorNotFound)
	})

	t.Run("list empty store", func(t *testing.T) {
		r := newRepo(t)
		tasks, err := r.List(ctx, model.TaskFilter{})
		require.NoError(t, err)
		assert.NotNil(t, tasks)
		assert.Empty(t, tasks)
	})

	t.Run("list filters", func(t *testing.T) {
		r := newRepo(t)
		seed := []model.Task{
			{Title: "Buy milk", Date: time.Date(2024, 5, 1, 23, 0, 0, 0, time.UTC), Status: model.StatusPending},
			{Title: "buy bread", Date: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), Status: model.StatusDone},
			{Title: "Pay rent", Date: time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC), Status: model.StatusPending},
			{Title: "Call mom", Date: time.Date(2024, 4, 30, 23, 59, 59, 0, time.UTC), Status: model.StatusDone},
		}
		for _, s := range seed {
			_, err := r.Create(ctx, s)
			require.NoError(t, err)
		}

		titles := func(tasks []model.Task) []string {
			out := make([]string, 0, len(tasks))
			for _, tk := range tasks {
				out = append(out, tk.Title)
			}
			return out
		}

		tests := []struct {
			name   string
			filter model.TaskFilter
			want   []string
		}{
			{name: "no filter", filter: model.TaskFilter{}, want: []string{"Buy milk", "buy bread", "Pay rent", "Call mom"}},
			{name: "title is case sensitive", filter: model.TaskFilter{Title: ptr("Buy")}, want: []string{"Buy milk"}},
			{name: "title substring", filter: model.TaskFilter{Title: ptr("r")}, want: []string{"buy bread", "Pay rent"}},
			{name: "empty title matches all", filter: model.TaskFilter{Title: ptr("")}, want: []string{"Buy milk", "buy bread", "Pay rent", "Call mom"}},
			{name: "day ignores time of day", filter: model.TaskFilter{Day: ptr(time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC))}, want: []string{"Buy milk", "buy bread"}},
			{name: "day with no tasks", filter: model.TaskFilter{Day: ptr(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC))}, want: []string{}},
			{name: "status", filter: model.TaskFilter{Status: ptr(model.StatusDone)}, want: []string{"buy bread", "Call mom"}},
			{name: "combined", filter: model.TaskFilter{Title: ptr("a"), Status: ptr(model.StatusPending)}, want: []string{"Pay rent"}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				tasks, err := r.List(ctx, tt.filter)
				require.NoError(t, err)
				assert.Equal(t, tt.want, titles(tasks))
			})
		}
	})

	t.Run("update replaces all mutable fields", func(t *testing.T) {
		r := newRepo(t)
		created, err := r.Create(ctx, model.Task{
			Title:       "Original",
			Description: "something",
			Date:        time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			Status:      model.StatusPending,
		})
		require.NoError(t, err)

		updated, err := r.Update(ctx, model.Task{
			ID:     created.ID,
			Title:  "Updated",
			Date:   time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
			Status: model.StatusDone,
		})
		require.NoError(t, err)
		assert.Equal(t, created.ID, updated.ID)

		got, err := r.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Updated", got.Title)
		assert.Empty(t, got.Description)
		assert.Equal(t, model.StatusDone, got.Status)
		assert.Equal(t, 2, got.Date.Day())
	})

	t.Run("update missing", func(t *testing.T) {
		r := newRepo(t)
		_, err := r.Update(ctx, model.Task{ID: 99999, Title: "x", Date: time.Now(), Status: model.StatusDone})
		assert.ErrorIs(t, err, ErrorNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		r := newRepo(t)
		created, err := r.Create(ctx, model.Task{Title: "To delete", Date: time.Now(), Status: model.StatusPending})
		require.NoError(t, err)

		require.NoError(t, r.Delete(ctx, created.ID))

		_, err = r.Get(ctx, created.ID)
		assert.ErrorIs(t, err, ErrorNotFound)

		assert.ErrorIs(t, r.Delete(ctx, created.ID), ErrorNotFound)
	})
}
