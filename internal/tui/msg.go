package tui

import "github.com/stardustlabs/stardust/internal/domain"

// Msg is the sealed interface for all TUI messages.
// All message types must implement the sealed() method.
type Msg interface {
	sealed()
}

// MsgTasksLoaded is sent when tasks are loaded from the repository.
type MsgTasksLoaded struct {
	Tasks []*domain.Task
}

func (MsgTasksLoaded) sealed() {}

// MsgTaskCreated is sent when a new task is created.
type MsgTaskCreated struct {
	Task *domain.Task
}

func (MsgTaskCreated) sealed() {}

// MsgTaskToggled is sent when a task's completion is flipped.
type MsgTaskToggled struct {
	Task *domain.Task
}

func (MsgTaskToggled) sealed() {}

// MsgTaskDeleted is sent when a task is deleted.
type MsgTaskDeleted struct {
	TaskID int
}

func (MsgTaskDeleted) sealed() {}

// MsgTaskMoved is sent when a star has been repositioned.
type MsgTaskMoved struct {
	TaskID int
}

func (MsgTaskMoved) sealed() {}

// MsgWelcomeDismissed is sent when the first-run welcome is closed.
type MsgWelcomeDismissed struct{}

func (MsgWelcomeDismissed) sealed() {}

// MsgNotificationTick is sent to re-render when the notification may have
// expired.
type MsgNotificationTick struct{}

func (MsgNotificationTick) sealed() {}

// MsgError is sent when an operation fails.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}

// MsgClearError clears the displayed error.
type MsgClearError struct{}

func (MsgClearError) sealed() {}
