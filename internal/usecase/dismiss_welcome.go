package usecase

import (
	"context"

	"github.com/stardustlabs/stardust/internal/domain"
)

// DismissWelcomeInput contains the parameters for dismissing the welcome screen.
type DismissWelcomeInput struct{}

// DismissWelcomeOutput contains the result of dismissing the welcome screen.
type DismissWelcomeOutput struct{}

// DismissWelcome is the use case for recording that the first-run welcome
// overlay has been dismissed, so it is not shown on later launches.
type DismissWelcome struct {
	tasks domain.TaskRepository
}

// NewDismissWelcome creates a new DismissWelcome use case.
func NewDismissWelcome(tasks domain.TaskRepository) *DismissWelcome {
	return &DismissWelcome{
		tasks: tasks,
	}
}

// Execute marks the welcome screen as seen.
func (uc *DismissWelcome) Execute(_ context.Context, _ DismissWelcomeInput) (*DismissWelcomeOutput, error) {
	uc.tasks.SetVisited(true)
	return &DismissWelcomeOutput{}, nil
}
