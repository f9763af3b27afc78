package usecase

import (
	"time"

	"github.com/EASS-HIT-PART-A-2025-CLASS-VII/ezlife/internal/model"
	"github.com/EASS-HIT-PART-A-2025-CLASS-VII/ezlife/internal/task"
	"github.com/EASS-HIT-PART-A-2025-CLASS-VII/ezlife/pkg/datemath"
)

// Views partitions the current working copy relative to now.
func (uc *implUseCase) Views(now time.Time) task.Views {
	return Categorize(uc.snapshot(), now)
}

// Stats aggregates completion over the current working copy.
func (uc *implUseCase) Stats() task.Stats {
	tasks := uc.snapshot()
	completed := 0
	for _, t := range tasks {
		if t.Completed {
			completed++
		}
	}
	return task.Stats{
		Total:          len(tasks),
		Completed:      completed,
		CompletionRate: CompletionRate(tasks),
	}
}

// Categorize is a pure function of the task list and the current instant.
// Completion takes precedence: a completed task never lands in a time
// bucket, whatever its due date. A not-completed task with a due date lands
// in exactly one of today/upcoming/overdue; without a due date it lands in
// none of the three.
func Categorize(tasks []model.Task, now time.Time) task.Views {
	midnight := datemath.StartOfDay(now)
	nextMidnight := datemath.NextMidnight(now)

	views := task.Views{All: tasks}
	for _, t := range tasks {
		if t.Completed {
			views.Completed = append(views.Completed, t)
			continue
		}
		if t.DueDate == nil {
			continue
		}
		due := t.DueDate.In(now.Location())
		switch {
		case due.Before(midnight):
			views.Overdue = append(views.Overdue, t)
		case due.Before(nextMidnight):
			views.Today = append(views.Today, t)
		default:
			views.Upcoming = append(views.Upcoming, t)
		}
	}
	return views
}

// CompletionRate returns completed/total, and 0 for an empty list.
func CompletionRate(tasks []model.Task) float64 {
	if len(tasks) == 0 {
		return 0
	}
	completed := 0
	for _, t := range tasks {
		if t.Completed {
			completed++
		}
	}
	return float64(completed) / float64(len(tasks))
}
