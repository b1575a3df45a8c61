package usecase

import (
	"context"
	"fmt"

	"github.com/stardustlabs/stardust/internal/domain"
)

// DeleteTaskInput contains the parameters for deleting a task.
type DeleteTaskInput struct {
	TaskID int // Task ID to delete
}

// DeleteTaskOutput contains the result of deleting a task.
type DeleteTaskOutput struct{}

// DeleteTask is the use case for removing a task permanently.
// Deletion is idempotent: an absent ID is not an error.
type DeleteTask struct {
	tasks  domain.TaskRepository
	logger domain.Logger
}

// NewDeleteTask creates a new DeleteTask use case.
func NewDeleteTask(tasks domain.TaskRepository, logger domain.Logger) *DeleteTask {
	return &DeleteTask{
		tasks:  tasks,
		logger: logger,
	}
}

// Execute deletes the task with the given ID.
func (uc *DeleteTask) Execute(_ context.Context, in DeleteTaskInput) (*DeleteTaskOutput, error) {
	uc.tasks.Delete(in.TaskID)

	if uc.logger != nil {
		uc.logger.Info("task", fmt.Sprintf("deleted #%d", in.TaskID))
	}

	return &DeleteTaskOutput{}, nil
}
