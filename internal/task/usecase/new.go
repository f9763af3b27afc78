package usecase

import (
	"sync"

	"github.com/EASS-HIT-PART-A-2025-CLASS-VII/ezlife/internal/model"
	"github.com/EASS-HIT-PART-A-2025-CLASS-VII/ezlife/internal/task"
	"github.com/EASS-HIT-PART-A-2025-CLASS-VII/ezlife/internal/task/repository"
	pkgLog "github.com/EASS-HIT-PART-A-2025-CLASS-VII/ezlife/pkg/log"
)

// implUseCase keeps the working copy of the task list. The mutex guards the
// slice itself; it does not order concurrent mutations against the same
// entity — the last server response to land wins, as in the web client.
// Per-entity sequence numbers would close that gap if it ever matters.
type implUseCase struct {
	l    pkgLog.Logger
	repo repository.TaskRepository

	mu    sync.Mutex
	tasks []model.Task
}

var _ task.UseCase = (*implUseCase)(nil)

// New creates a task UseCase with an empty working copy.
func New(l pkgLog.Logger, repo repository.TaskRepository) *implUseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
	}
}

// snapshot returns a copy of the working copy.
func (uc *implUseCase) snapshot() []model.Task {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	out := make([]model.Task, len(uc.tasks))
	copy(out, uc.tasks)
	return out
}

// indexOf returns the position of id in the working copy, or -1. Callers
// hold the mutex.
func (uc *implUseCase) indexOf(id string) int {
	for i := range uc.tasks {
		if uc.tasks[i].ID == id {
			return i
		}
	}
	return -1
}
