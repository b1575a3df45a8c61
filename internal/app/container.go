// Package app provides the dependency injection container for the application.
package app

import (
	"os"
	"path/filepath"

	"github.com/stardustlabs/stardust/internal/domain"
	"github.com/stardustlabs/stardust/internal/infra/config"
	"github.com/stardustlabs/stardust/internal/infra/jsonstore"
	"github.com/stardustlabs/stardust/internal/infra/logging"
	"github.com/stardustlabs/stardust/internal/notify"
	"github.com/stardustlabs/stardust/internal/usecase"
)

// Paths holds the resolved filesystem locations used by the application.
type Paths struct {
	DataDir   string // Root data directory (e.g., ~/.local/share/stardust)
	StorePath string // Path to state.json
}

// resolvePaths determines the data directory, honoring the config override
// and the XDG convention.
func resolvePaths(cfg *domain.Config) Paths {
	dataDir := cfg.DataDir
	if dataDir == "" {
		dataHome := os.Getenv("XDG_DATA_HOME")
		if dataHome == "" {
			home, err := os.UserHomeDir()
			if err == nil {
				dataHome = filepath.Join(home, ".local", "share")
			}
		}
		if dataHome != "" {
			dataDir = filepath.Join(dataHome, "stardust")
		}
	}
	return Paths{
		DataDir:   dataDir,
		StorePath: filepath.Join(dataDir, "state.json"),
	}
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Tasks    domain.TaskRepository
	Clock    domain.Clock
	Rand     domain.Rand
	Logger   domain.Logger
	Notifier *notify.Dispatcher

	// Configuration
	AppConfig *domain.Config
	Paths     Paths
}

// New creates a new Container, loading config and the task store from disk.
func New() (*Container, error) {
	appConfig, err := config.NewLoader().Load()
	if err != nil {
		return nil, err
	}

	paths := resolvePaths(appConfig)
	clock := domain.RealClock{}
	rand := domain.RealRand{}
	logger := logging.New(paths.DataDir, logging.ParseLevel(appConfig.LogLevel))

	store := jsonstore.New(paths.StorePath, clock, logger)
	store.Load()

	return &Container{
		Tasks:     store,
		Clock:     clock,
		Rand:      rand,
		Logger:    logger,
		Notifier:  notify.NewDispatcher(clock, rand, appConfig.NotificationDuration()),
		AppConfig: appConfig,
		Paths:     paths,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(tasks domain.TaskRepository, clock domain.Clock, rand domain.Rand, logger domain.Logger, notifier *notify.Dispatcher) *Container {
	return &Container{
		Tasks:    tasks,
		Clock:    clock,
		Rand:     rand,
		Logger:   logger,
		Notifier: notifier,
	}
}

// UseCase factory methods

// CreateTaskUseCase returns a new CreateTask use case.
func (c *Container) CreateTaskUseCase() *usecase.CreateTask {
	return usecase.NewCreateTask(c.Tasks, c.Clock, c.Rand, c.Notifier, c.Logger)
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Tasks, c.Clock)
}

// ToggleTaskUseCase returns a new ToggleTask use case.
func (c *Container) ToggleTaskUseCase() *usecase.ToggleTask {
	return usecase.NewToggleTask(c.Tasks, c.Clock, c.Notifier, c.Logger)
}

// DeleteTaskUseCase returns a new DeleteTask use case.
func (c *Container) DeleteTaskUseCase() *usecase.DeleteTask {
	return usecase.NewDeleteTask(c.Tasks, c.Logger)
}

// RepositionTaskUseCase returns a new RepositionTask use case.
func (c *Container) RepositionTaskUseCase() *usecase.RepositionTask {
	return usecase.NewRepositionTask(c.Tasks)
}

// DismissWelcomeUseCase returns a new DismissWelcome use case.
func (c *Container) DismissWelcomeUseCase() *usecase.DismissWelcome {
	return usecase.NewDismissWelcome(c.Tasks)
}

// ExportTasksUseCase returns a new ExportTasks use case.
func (c *Container) ExportTasksUseCase() *usecase.ExportTasks {
	return usecase.NewExportTasks(c.Tasks)
}

// ImportTasksUseCase returns a new ImportTasks use case.
func (c *Container) ImportTasksUseCase() *usecase.ImportTasks {
	return usecase.NewImportTasks(c.Tasks, c.Clock, c.Logger)
}
