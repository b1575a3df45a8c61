package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stardustlabs/stardust/internal/app"
	"github.com/stardustlabs/stardust/internal/domain"
	"github.com/stardustlabs/stardust/internal/drag"
	"github.com/stardustlabs/stardust/internal/usecase"
)

// newStarForm collects input during the new-star flow.
type newStarForm struct {
	title      string
	desc       string
	category   domain.Category
	difficulty domain.Difficulty
}

// Model is the main bubbletea model for the TUI.
type Model struct {
	// Dependencies (pointers first for alignment)
	container *app.Container
	dragging  *drag.Engine
	err       error

	// State
	tasks []*domain.Task // All tasks; filtered per scope at render time

	// Components
	keys   KeyMap
	styles Styles
	help   help.Model

	// Input state
	titleInput textinput.Model
	descInput  textinput.Model
	form       newStarForm

	// Numeric state (smaller types last)
	screen        Screen
	mode          Mode
	scope         domain.TimeScope
	width         int
	height        int
	selected      int // Index into visible tasks, -1 when none
	pickCursor    int
	confirmTaskID int
	dragMoved     bool // Pointer moved since press; suppresses click-to-toggle
}

// repoPositioner adapts the reposition use case for the drag engine.
type repoPositioner struct {
	container *app.Container
}

func (p repoPositioner) Reposition(id int, x, y float64) error {
	_, err := p.container.RepositionTaskUseCase().Execute(
		context.Background(),
		usecase.RepositionTaskInput{TaskID: id, X: x, Y: y},
	)
	return err
}

// New creates a new TUI Model with the given container.
func New(c *app.Container) *Model {
	ti := textinput.New()
	ti.Placeholder = "Name your star"
	ti.CharLimit = 200

	di := textinput.New()
	di.Placeholder = "Description (optional)"
	di.CharLimit = 1000

	mode := ModeNormal
	if !c.Tasks.Visited() {
		mode = ModeWelcome
	}

	return &Model{
		container:  c,
		dragging:   drag.NewEngine(repoPositioner{container: c}),
		keys:       DefaultKeyMap(),
		styles:     DefaultStyles(),
		help:       help.New(),
		titleInput: ti,
		descInput:  di,
		screen:     ScreenSky,
		mode:       mode,
		scope:      domain.ScopeAll,
		selected:   -1,
	}
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	return m.loadTasks()
}

// loadTasks returns a command that loads all tasks from the repository.
func (m *Model) loadTasks() tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.ListTasksUseCase().Execute(
			context.Background(),
			usecase.ListTasksInput{Scope: domain.ScopeAll},
		)
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTasksLoaded{Tasks: out.Tasks}
	}
}

// createTask returns a command that creates a new task from the form.
func (m *Model) createTask(form newStarForm) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.CreateTaskUseCase().Execute(
			context.Background(),
			usecase.CreateTaskInput{
				Title:       form.title,
				Description: form.desc,
				Category:    form.category,
				Difficulty:  form.difficulty,
			},
		)
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskCreated{Task: out.Task}
	}
}

// toggleTask returns a command that flips a task's completion.
func (m *Model) toggleTask(taskID int) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.ToggleTaskUseCase().Execute(
			context.Background(),
			usecase.ToggleTaskInput{TaskID: taskID},
		)
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskToggled{Task: out.Task}
	}
}

// deleteTask returns a command that deletes a task.
func (m *Model) deleteTask(taskID int) tea.Cmd {
	return func() tea.Msg {
		_, err := m.container.DeleteTaskUseCase().Execute(
			context.Background(),
			usecase.DeleteTaskInput{TaskID: taskID},
		)
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskDeleted{TaskID: taskID}
	}
}

// dismissWelcome returns a command that records the welcome dismissal.
func (m *Model) dismissWelcome() tea.Cmd {
	return func() tea.Msg {
		_, err := m.container.DismissWelcomeUseCase().Execute(
			context.Background(),
			usecase.DismissWelcomeInput{},
		)
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgWelcomeDismissed{}
	}
}

// notificationTick schedules a re-render when the current notification is due
// to expire.
func (m *Model) notificationTick() tea.Cmd {
	return tea.Tick(m.container.Notifier.Duration(), func(time.Time) tea.Msg {
		return MsgNotificationTick{}
	})
}

// visibleTasks returns the tasks matching the active scope, in insertion order.
func (m *Model) visibleTasks() []*domain.Task {
	now := m.container.Clock.Now().UnixMilli()
	out := make([]*domain.Task, 0, len(m.tasks))
	for _, task := range m.tasks {
		if domain.Classify(task, m.scope, now) {
			out = append(out, task)
		}
	}
	return out
}

// SelectedTask returns the currently selected task, or nil if none.
func (m *Model) SelectedTask() *domain.Task {
	visible := m.visibleTasks()
	if m.selected < 0 || m.selected >= len(visible) {
		return nil
	}
	return visible[m.selected]
}

// clampSelection keeps the selection index inside the visible set.
func (m *Model) clampSelection() {
	n := len(m.visibleTasks())
	if n == 0 {
		m.selected = -1
		return
	}
	if m.selected < 0 {
		m.selected = 0
	}
	if m.selected >= n {
		m.selected = n - 1
	}
}

// refreshTask replaces the local copy of a task with the stored one.
func (m *Model) refreshTask(id int) {
	updated := m.container.Tasks.Get(id)
	if updated == nil {
		return
	}
	for i, task := range m.tasks {
		if task.ID == id {
			m.tasks[i] = updated
			return
		}
	}
}
