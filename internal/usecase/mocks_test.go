package usecase

import (
	"time"

	"github.com/stardustlabs/stardust/internal/domain"
)

// mockClock is a test double for domain.Clock.
type mockClock struct {
	now time.Time
}

func (m *mockClock) Now() time.Time {
	return m.now
}

// mockRand is a test double for domain.Rand returning scripted values.
type mockRand struct {
	floats []float64
	ints   []int
	fi     int
	ii     int
}

func (m *mockRand) Float64() float64 {
	if m.fi >= len(m.floats) {
		return 0
	}
	v := m.floats[m.fi]
	m.fi++
	return v
}

func (m *mockRand) IntN(n int) int {
	if m.ii >= len(m.ints) {
		return 0
	}
	v := m.ints[m.ii] % n
	m.ii++
	return v
}

// mockNotifier records lifecycle events.
type mockNotifier struct {
	created   int
	completed int
}

func (m *mockNotifier) TaskCreated() {
	m.created++
}

func (m *mockNotifier) TaskCompleted() {
	m.completed++
}

// mockTaskRepository is an insertion-ordered test double for
// domain.TaskRepository.
type mockTaskRepository struct {
	tasks   []*domain.Task
	nextID  int
	visited bool
}

func newMockTaskRepository() *mockTaskRepository {
	return &mockTaskRepository{nextID: 1}
}

func (m *mockTaskRepository) List() []*domain.Task {
	tasks := make([]*domain.Task, 0, len(m.tasks))
	for _, t := range m.tasks {
		tasks = append(tasks, t.Clone())
	}
	return tasks
}

func (m *mockTaskRepository) Get(id int) *domain.Task {
	for _, t := range m.tasks {
		if t.ID == id {
			return t.Clone()
		}
	}
	return nil
}

func (m *mockTaskRepository) Insert(task *domain.Task) {
	m.tasks = append(m.tasks, task.Clone())
}

func (m *mockTaskRepository) Update(task *domain.Task) error {
	for i, t := range m.tasks {
		if t.ID == task.ID {
			m.tasks[i] = task.Clone()
			return nil
		}
	}
	return domain.ErrTaskNotFound
}

func (m *mockTaskRepository) Delete(id int) {
	for i, t := range m.tasks {
		if t.ID == id {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			return
		}
	}
}

func (m *mockTaskRepository) NextID() int {
	id := m.nextID
	m.nextID++
	return id
}

func (m *mockTaskRepository) Visited() bool {
	return m.visited
}

func (m *mockTaskRepository) SetVisited(v bool) {
	m.visited = v
}
