package usecase

import (
	"context"
	"fmt"

	"github.com/stardustlabs/stardust/internal/domain"
)

// RepositionTaskInput contains the parameters for moving a star.
type RepositionTaskInput struct {
	X      float64 // Target x in percent, clamped to [0, 100]
	Y      float64 // Target y in percent, clamped to [0, 100]
	TaskID int     // Task ID to move
}

// RepositionTaskOutput contains the result of moving a star.
type RepositionTaskOutput struct {
	Task *domain.Task // The task after the move
}

// RepositionTask is the use case for committing a star's canvas position.
type RepositionTask struct {
	tasks domain.TaskRepository
}

// NewRepositionTask creates a new RepositionTask use case.
func NewRepositionTask(tasks domain.TaskRepository) *RepositionTask {
	return &RepositionTask{
		tasks: tasks,
	}
}

// Execute overwrites the task's position with the clamped coordinates.
// Returns domain.ErrTaskNotFound if the ID is absent.
func (uc *RepositionTask) Execute(_ context.Context, in RepositionTaskInput) (*RepositionTaskOutput, error) {
	task := uc.tasks.Get(in.TaskID)
	if task == nil {
		return nil, domain.ErrTaskNotFound
	}

	task.Position = domain.Position{X: in.X, Y: in.Y}.Clamp()

	if err := uc.tasks.Update(task); err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}

	return &RepositionTaskOutput{Task: task}, nil
}
