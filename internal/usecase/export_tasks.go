package usecase

import (
	"context"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/stardustlabs/stardust/internal/domain"
)

// taskDocument is the YAML backup format for the task collection.
type taskDocument struct {
	Tasks []taskRecord `yaml:"tasks"`
}

// taskRecord is the YAML representation of a single task.
type taskRecord struct {
	CompletedAt *int64         `yaml:"completedAt,omitempty"`
	Deadline    *int64         `yaml:"deadline,omitempty"`
	Title       string         `yaml:"title"`
	Description string         `yaml:"description,omitempty"`
	Category    string         `yaml:"category"`
	Difficulty  string         `yaml:"difficulty"`
	Position    positionRecord `yaml:"position"`
	CreatedAt   int64          `yaml:"createdAt"`
	Completed   bool           `yaml:"completed"`
}

type positionRecord struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// ExportTasksInput contains the parameters for exporting the collection.
type ExportTasksInput struct{}

// ExportTasksOutput contains the serialized backup.
type ExportTasksOutput struct {
	Data  []byte // YAML document
	Count int    // Number of exported tasks
}

// ExportTasks is the use case for serializing the whole collection to a
// YAML backup that ImportTasks understands.
type ExportTasks struct {
	tasks domain.TaskRepository
}

// NewExportTasks creates a new ExportTasks use case.
func NewExportTasks(tasks domain.TaskRepository) *ExportTasks {
	return &ExportTasks{
		tasks: tasks,
	}
}

// Execute serializes all tasks in insertion order.
func (uc *ExportTasks) Execute(_ context.Context, _ ExportTasksInput) (*ExportTasksOutput, error) {
	all := uc.tasks.List()

	doc := taskDocument{Tasks: make([]taskRecord, 0, len(all))}
	for _, t := range all {
		doc.Tasks = append(doc.Tasks, taskRecord{
			Title:       t.Title,
			Description: t.Description,
			Category:    string(t.Category),
			Difficulty:  string(t.Difficulty),
			Completed:   t.Completed,
			CreatedAt:   t.CreatedAt,
			CompletedAt: t.CompletedAt,
			Deadline:    t.Deadline,
			Position:    positionRecord{X: t.Position.X, Y: t.Position.Y},
		})
	}

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return nil, fmt.Errorf("marshal tasks: %w", err)
	}

	return &ExportTasksOutput{Data: data, Count: len(doc.Tasks)}, nil
}
