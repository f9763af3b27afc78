package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EASS-HIT-PART-A-2025-CLASS-VII/ezlife/internal/model"
	"github.com/EASS-HIT-PART-A-2025-CLASS-VII/ezlife/internal/task/usecase"
)

func datePtr(t time.Time) *time.Time { return &t }

func TestCategorize(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

	yesterday := datePtr(time.Date(2025, 6, 14, 10, 0, 0, 0, time.UTC))
	thisMorning := datePtr(time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC))
	tonight := datePtr(time.Date(2025, 6, 15, 23, 59, 59, 0, time.UTC))
	tomorrow := datePtr(time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC))
	nextWeek := datePtr(time.Date(2025, 6, 22, 9, 0, 0, 0, time.UTC))

	tasks := []model.Task{
		{ID: "overdue", DueDate: yesterday},
		{ID: "today-am", DueDate: thisMorning}, // earlier today but not completed: still today, not overdue
		{ID: "today-pm", DueDate: tonight},
		{ID: "upcoming-midnight", DueDate: tomorrow}, // next midnight exactly is upcoming, not today
		{ID: "upcoming", DueDate: nextWeek},
		{ID: "dateless"},
		{ID: "done-overdue", DueDate: yesterday, Completed: true}, // completion beats the time buckets
		{ID: "done-dateless", Completed: true},
	}

	views := usecase.Categorize(tasks, now)

	ids := func(list []model.Task) []string {
		out := make([]string, 0, len(list))
		for _, x := range list {
			out = append(out, x.ID)
		}
		return out
	}

	assert.Len(t, views.All, len(tasks), "all is the identity view")
	assert.Equal(t, []string{"overdue"}, ids(views.Overdue))
	assert.Equal(t, []string{"today-am", "today-pm"}, ids(views.Today))
	assert.Equal(t, []string{"upcoming-midnight", "upcoming"}, ids(views.Upcoming))
	assert.Equal(t, []string{"done-overdue", "done-dateless"}, ids(views.Completed))

	t.Run("partition with precedence", func(t *testing.T) {
		// every not-completed task with a due date appears in exactly one
		// time bucket; dateless and completed tasks in none of the three
		seen := map[string]int{}
		for _, bucket := range [][]model.Task{views.Today, views.Upcoming, views.Overdue} {
			for _, x := range bucket {
				seen[x.ID]++
			}
		}
		for _, x := range tasks {
			want := 1
			if x.Completed || x.DueDate == nil {
				want = 0
			}
			assert.Equal(t, want, seen[x.ID], "task %s", x.ID)
		}
	})
}

func TestCompletionRate(t *testing.T) {
	t.Run("empty list is exactly zero", func(t *testing.T) {
		rate := usecase.CompletionRate(nil)
		require.Equal(t, 0.0, rate)
		assert.False(t, rate != rate, "rate must not be NaN")
	})

	t.Run("half done", func(t *testing.T) {
		tasks := []model.Task{
			{ID: "a", Completed: true},
			{ID: "b"},
			{ID: "c", Completed: true},
			{ID: "d"},
		}
		assert.Equal(t, 0.5, usecase.CompletionRate(tasks))
	})
}
