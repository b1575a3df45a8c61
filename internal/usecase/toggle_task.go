package usecase

import (
	"context"
	"fmt"

	"github.com/stardustlabs/stardust/internal/domain"
)

// ToggleTaskInput contains the parameters for toggling task completion.
type ToggleTaskInput struct {
	TaskID int // Task ID to toggle
}

// ToggleTaskOutput contains the result of toggling a task.
type ToggleTaskOutput struct {
	Task *domain.Task // The task after the toggle
}

// ToggleTask is the use case for flipping a task's completion state.
// Completing a task stamps completedAt; un-completing clears it.
type ToggleTask struct {
	tasks    domain.TaskRepository
	clock    domain.Clock
	notifier domain.Notifier
	logger   domain.Logger
}

// NewToggleTask creates a new ToggleTask use case.
func NewToggleTask(tasks domain.TaskRepository, clock domain.Clock, notifier domain.Notifier, logger domain.Logger) *ToggleTask {
	return &ToggleTask{
		tasks:    tasks,
		clock:    clock,
		notifier: notifier,
		logger:   logger,
	}
}

// Execute toggles the task with the given ID.
// Returns domain.ErrTaskNotFound if the ID is absent.
func (uc *ToggleTask) Execute(_ context.Context, in ToggleTaskInput) (*ToggleTaskOutput, error) {
	task := uc.tasks.Get(in.TaskID)
	if task == nil {
		return nil, domain.ErrTaskNotFound
	}

	task.Completed = !task.Completed
	if task.Completed {
		completedAt := uc.clock.Now().UnixMilli()
		task.CompletedAt = &completedAt
	} else {
		task.CompletedAt = nil
	}

	if err := uc.tasks.Update(task); err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}

	if task.Completed && uc.notifier != nil {
		uc.notifier.TaskCompleted()
	}
	if uc.logger != nil {
		uc.logger.Info("task", fmt.Sprintf("toggled #%d (completed: %t)", task.ID, task.Completed))
	}

	return &ToggleTaskOutput{Task: task}, nil
}
