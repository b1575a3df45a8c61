// Package usecase contains application use cases.
package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/stardustlabs/stardust/internal/domain"
)

// Creation-time placement is sampled uniformly inside [15, 85] per axis so
// new stars never crowd the container edges.
const placementPadding = 15.0

// CreateTaskInput contains the parameters for creating a new task.
type CreateTaskInput struct {
	Title       string            // Task title (required, must be non-blank)
	Description string            // Task description (optional)
	Category    domain.Category   // Star color
	Difficulty  domain.Difficulty // Star size tier
}

// CreateTaskOutput contains the result of creating a new task.
type CreateTaskOutput struct {
	Task *domain.Task // The created task
}

// CreateTask is the use case for lifting a new star into the sky.
type CreateTask struct {
	tasks    domain.TaskRepository
	clock    domain.Clock
	rand     domain.Rand
	notifier domain.Notifier
	logger   domain.Logger
}

// NewCreateTask creates a new CreateTask use case.
func NewCreateTask(tasks domain.TaskRepository, clock domain.Clock, rand domain.Rand, notifier domain.Notifier, logger domain.Logger) *CreateTask {
	return &CreateTask{
		tasks:    tasks,
		clock:    clock,
		rand:     rand,
		notifier: notifier,
		logger:   logger,
	}
}

// Execute creates a new task with the given input.
// The title is rejected before any state change when blank.
func (uc *CreateTask) Execute(_ context.Context, in CreateTaskInput) (*CreateTaskOutput, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, domain.ErrEmptyTitle
	}
	if !in.Category.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidCategory, in.Category)
	}
	if !in.Difficulty.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidDifficulty, in.Difficulty)
	}

	task := &domain.Task{
		ID:          uc.tasks.NextID(),
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		Category:    in.Category,
		Difficulty:  in.Difficulty,
		CreatedAt:   uc.clock.Now().UnixMilli(),
		Position:    uc.randomPosition(),
	}
	uc.tasks.Insert(task)

	if uc.notifier != nil {
		uc.notifier.TaskCreated()
	}
	if uc.logger != nil {
		uc.logger.Info("task", fmt.Sprintf("created #%d: %q", task.ID, task.Title))
	}

	return &CreateTaskOutput{Task: task}, nil
}

// randomPosition samples each axis independently within [15, 85].
func (uc *CreateTask) randomPosition() domain.Position {
	span := 100 - placementPadding*2
	return domain.Position{
		X: uc.rand.Float64()*span + placementPadding,
		Y: uc.rand.Float64()*span + placementPadding,
	}
}
