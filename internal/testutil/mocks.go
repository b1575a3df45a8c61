// Package testutil provides mock implementations for testing.
package testutil

import (
	"time"

	"github.com/stardustlabs/stardust/internal/domain"
)

// MockClock is a controllable clock for tests.
type MockClock struct {
	NowTime time.Time
}

func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// Advance moves the clock forward.
func (m *MockClock) Advance(d time.Duration) {
	m.NowTime = m.NowTime.Add(d)
}

// MockRand returns scripted values, falling back to zero when the script
// runs out.
type MockRand struct {
	Floats []float64
	Ints   []int
	fi     int
	ii     int
}

func (m *MockRand) Float64() float64 {
	if m.fi >= len(m.Floats) {
		return 0
	}
	v := m.Floats[m.fi]
	m.fi++
	return v
}

func (m *MockRand) IntN(n int) int {
	if m.ii >= len(m.Ints) {
		return 0
	}
	v := m.Ints[m.ii] % n
	m.ii++
	return v
}

// MockNotifier counts lifecycle events.
type MockNotifier struct {
	CreatedCount   int
	CompletedCount int
}

func (m *MockNotifier) TaskCreated() {
	m.CreatedCount++
}

func (m *MockNotifier) TaskCompleted() {
	m.CompletedCount++
}

// NopLogger discards all log output.
type NopLogger struct{}

func (NopLogger) Debug(category, msg string) {}
func (NopLogger) Info(category, msg string)  {}
func (NopLogger) Warn(category, msg string)  {}
func (NopLogger) Error(category, msg string) {}

// MockTaskRepository is an in-memory, insertion-ordered task repository.
type MockTaskRepository struct {
	TasksList []*domain.Task
	NextIDN   int
	VisitedV  bool
}

// NewMockTaskRepository creates an empty repository with NextID starting at 1.
func NewMockTaskRepository() *MockTaskRepository {
	return &MockTaskRepository{NextIDN: 1}
}

func (m *MockTaskRepository) List() []*domain.Task {
	out := make([]*domain.Task, len(m.TasksList))
	for i, t := range m.TasksList {
		out[i] = t.Clone()
	}
	return out
}

func (m *MockTaskRepository) Get(id int) *domain.Task {
	for _, t := range m.TasksList {
		if t.ID == id {
			return t.Clone()
		}
	}
	return nil
}

func (m *MockTaskRepository) Insert(task *domain.Task) {
	m.TasksList = append(m.TasksList, task.Clone())
	if task.ID >= m.NextIDN {
		m.NextIDN = task.ID + 1
	}
}

func (m *MockTaskRepository) Update(task *domain.Task) error {
	for i, t := range m.TasksList {
		if t.ID == task.ID {
			m.TasksList[i] = task.Clone()
			return nil
		}
	}
	return domain.ErrTaskNotFound
}

func (m *MockTaskRepository) Delete(id int) {
	for i, t := range m.TasksList {
		if t.ID == id {
			m.TasksList = append(m.TasksList[:i], m.TasksList[i+1:]...)
			return
		}
	}
}

func (m *MockTaskRepository) NextID() int {
	id := m.NextIDN
	m.NextIDN++
	return id
}

func (m *MockTaskRepository) Visited() bool {
	return m.VisitedV
}

func (m *MockTaskRepository) SetVisited(v bool) {
	m.VisitedV = v
}

var (
	_ domain.TaskRepository = (*MockTaskRepository)(nil)
	_ domain.Clock          = (*MockClock)(nil)
	_ domain.Rand           = (*MockRand)(nil)
	_ domain.Notifier       = (*MockNotifier)(nil)
	_ domain.Logger         = NopLogger{}
)
