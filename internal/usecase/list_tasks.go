package usecase

import (
	"context"

	"github.com/stardustlabs/stardust/internal/domain"
)

// ListTasksInput contains the parameters for listing tasks.
type ListTasksInput struct {
	Scope domain.TimeScope // Time bucket to filter by; unknown scopes pass everything
}

// ListTasksOutput contains the filtered task snapshot.
type ListTasksOutput struct {
	Tasks []*domain.Task // Matching tasks in insertion order
}

// ListTasks is the use case for deriving the filtered star-field view.
// The result is a fresh read-only snapshot, never a live view.
type ListTasks struct {
	tasks domain.TaskRepository
	clock domain.Clock
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(tasks domain.TaskRepository, clock domain.Clock) *ListTasks {
	return &ListTasks{
		tasks: tasks,
		clock: clock,
	}
}

// Execute returns the tasks belonging to the requested scope at the current
// instant, preserving the collection's insertion order.
func (uc *ListTasks) Execute(_ context.Context, in ListTasksInput) (*ListTasksOutput, error) {
	now := uc.clock.Now().UnixMilli()

	all := uc.tasks.List()
	filtered := make([]*domain.Task, 0, len(all))
	for _, task := range all {
		if domain.Classify(task, in.Scope, now) {
			filtered = append(filtered, task)
		}
	}

	return &ListTasksOutput{Tasks: filtered}, nil
}
