package domain

import (
	"math/rand/v2"
	"time"
)

// TaskRepository owns the canonical task collection. It is the only
// component permitted to mutate stored tasks; every accessor returns
// snapshot copies, never live references.
type TaskRepository interface {
	// List returns all tasks in insertion order.
	List() []*Task

	// Get retrieves a task by ID. Returns nil if not found.
	Get(id int) *Task

	// Insert appends a new task to the collection.
	Insert(task *Task)

	// Update overwrites the stored task with the same ID.
	// Returns ErrTaskNotFound if the ID is absent.
	Update(task *Task) error

	// Delete removes a task by ID. Idempotent when the ID is absent.
	Delete(id int)

	// NextID returns the next available task ID.
	NextID() int

	// Visited reports whether the first-run welcome has been dismissed.
	Visited() bool

	// SetVisited records the first-run welcome dismissal.
	SetVisited(v bool)
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// Rand provides randomness for testability. Initial star placement and
// affirmation selection are the only randomized operations.
type Rand interface {
	// Float64 returns a pseudo-random number in [0, 1).
	Float64() float64

	// IntN returns a pseudo-random number in [0, n).
	IntN(n int) int
}

// RealRand implements Rand using math/rand/v2.
type RealRand struct{}

// Float64 returns a pseudo-random number in [0, 1).
func (RealRand) Float64() float64 {
	return rand.Float64()
}

// IntN returns a pseudo-random number in [0, n).
func (RealRand) IntN(n int) int {
	return rand.IntN(n)
}

// Notifier receives task lifecycle events.
type Notifier interface {
	// TaskCreated is invoked after a task is created.
	TaskCreated()

	// TaskCompleted is invoked when a task transitions to completed.
	TaskCompleted()
}

// Logger provides leveled logging for application events.
type Logger interface {
	// Debug logs a debug message.
	Debug(category, msg string)

	// Info logs an info message.
	Info(category, msg string)

	// Warn logs a warning message.
	Warn(category, msg string)

	// Error logs an error message.
	Error(category, msg string)
}
