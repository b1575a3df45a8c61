package usecase

import (
	"context"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/stardustlabs/stardust/internal/domain"
)

// ImportTasksInput contains the parameters for importing a YAML backup.
type ImportTasksInput struct {
	Data []byte // YAML document produced by ExportTasks (or hand-written)
}

// ImportTasksOutput contains the result of the import.
type ImportTasksOutput struct {
	Imported int // Number of tasks added to the collection
}

// ImportTasks is the use case for appending tasks from a YAML backup.
// Imported tasks get fresh IDs; the whole document is validated before the
// first insertion so a bad record never leaves a partial import behind.
type ImportTasks struct {
	tasks  domain.TaskRepository
	clock  domain.Clock
	logger domain.Logger
}

// NewImportTasks creates a new ImportTasks use case.
func NewImportTasks(tasks domain.TaskRepository, clock domain.Clock, logger domain.Logger) *ImportTasks {
	return &ImportTasks{
		tasks:  tasks,
		clock:  clock,
		logger: logger,
	}
}

// Execute parses and validates the document, then appends every task.
func (uc *ImportTasks) Execute(_ context.Context, in ImportTasksInput) (*ImportTasksOutput, error) {
	var doc taskDocument
	if err := yaml.Unmarshal(in.Data, &doc); err != nil {
		return nil, fmt.Errorf("parse tasks: %w", err)
	}

	nowMS := uc.clock.Now().UnixMilli()

	incoming := make([]*domain.Task, 0, len(doc.Tasks))
	for i, rec := range doc.Tasks {
		task, err := uc.buildTask(rec, nowMS)
		if err != nil {
			return nil, fmt.Errorf("task %d: %w", i+1, err)
		}
		incoming = append(incoming, task)
	}

	for _, task := range incoming {
		task.ID = uc.tasks.NextID()
		uc.tasks.Insert(task)
	}

	if uc.logger != nil {
		uc.logger.Info("task", fmt.Sprintf("imported %d task(s)", len(incoming)))
	}

	return &ImportTasksOutput{Imported: len(incoming)}, nil
}

func (uc *ImportTasks) buildTask(rec taskRecord, nowMS int64) (*domain.Task, error) {
	title := strings.TrimSpace(rec.Title)
	if title == "" {
		return nil, domain.ErrEmptyTitle
	}

	category := domain.Category(rec.Category)
	if !category.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidCategory, rec.Category)
	}
	difficulty := domain.Difficulty(rec.Difficulty)
	if !difficulty.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidDifficulty, rec.Difficulty)
	}

	createdAt := rec.CreatedAt
	if createdAt == 0 {
		createdAt = nowMS
	}

	task := &domain.Task{
		Title:       title,
		Description: strings.TrimSpace(rec.Description),
		Category:    category,
		Difficulty:  difficulty,
		Completed:   rec.Completed,
		CreatedAt:   createdAt,
		Deadline:    rec.Deadline,
		Position:    domain.Position{X: rec.Position.X, Y: rec.Position.Y}.Clamp(),
	}

	// Keep the completedAt-iff-completed invariant regardless of what the
	// document claims.
	if task.Completed {
		if rec.CompletedAt != nil {
			task.CompletedAt = rec.CompletedAt
		} else {
			stamped := nowMS
			task.CompletedAt = &stamped
		}
	}

	return task, nil
}
