// Package jsonstore provides the JSON file-backed implementation of
// domain.TaskRepository. The in-memory collection is the source of truth for
// the running session; every mutation is mirrored to disk write-through,
// and write failures are logged but never propagated.
package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/stardustlabs/stardust/internal/domain"
)

// storeData represents the JSON file structure. The logical keys mirror the
// original durable layout: "tasks" and "visited", plus the ID counter.
type storeData struct {
	Tasks   []*domain.Task `json:"tasks"`
	Meta    meta           `json:"meta"`
	Visited bool           `json:"visited"`
}

// meta contains store metadata.
type meta struct {
	NextID int `json:"nextID"`
}

// Store implements domain.TaskRepository using an in-memory collection
// mirrored to a JSON file.
type Store struct {
	clock   domain.Clock
	logger  domain.Logger
	path    string
	tasks   []*domain.Task
	mu      sync.Mutex
	nextID  int
	visited bool
}

// New creates a Store for the given file path. Call Load before use.
func New(path string, clock domain.Clock, logger domain.Logger) *Store {
	return &Store{
		path:   path,
		clock:  clock,
		logger: logger,
	}
}

// Load reads the prior snapshot from disk. A missing or unparseable snapshot
// falls back to the built-in seed set; Load itself never fails.
func (s *Store) Load() {
	s.mu.Lock()
	defer s.mu.Unlock()

	content, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) && s.logger != nil {
			s.logger.Warn("store", fmt.Sprintf("read snapshot: %v", err))
		}
		s.seed()
		return
	}

	var data storeData
	if err := json.Unmarshal(content, &data); err != nil {
		if s.logger != nil {
			s.logger.Warn("store", fmt.Sprintf("parse snapshot, falling back to seed: %v", err))
		}
		s.seed()
		return
	}

	s.tasks = data.Tasks
	if s.tasks == nil {
		s.tasks = []*domain.Task{}
	}
	s.visited = data.Visited
	s.nextID = data.Meta.NextID
	if s.nextID <= s.maxID() {
		s.nextID = s.maxID() + 1
	}
}

// seed installs the example sky. Caller must hold the lock.
func (s *Store) seed() {
	s.tasks = domain.SeedTasks(s.clock.Now())
	s.visited = false
	s.nextID = s.maxID() + 1
}

func (s *Store) maxID() int {
	maxID := 0
	for _, t := range s.tasks {
		if t.ID > maxID {
			maxID = t.ID
		}
	}
	return maxID
}

// List returns all tasks in insertion order as snapshot copies.
func (s *Store) List() []*domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := make([]*domain.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		tasks = append(tasks, t.Clone())
	}
	return tasks
}

// Get retrieves a task by ID. Returns nil if not found.
func (s *Store) Get(id int) *domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.tasks {
		if t.ID == id {
			return t.Clone()
		}
	}
	return nil
}

// Insert appends a new task to the collection.
func (s *Store) Insert(task *domain.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks = append(s.tasks, task.Clone())
	s.persist()
}

// Update overwrites the stored task with the same ID.
func (s *Store) Update(task *domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.tasks {
		if t.ID == task.ID {
			s.tasks[i] = task.Clone()
			s.persist()
			return nil
		}
	}
	return domain.ErrTaskNotFound
}

// Delete removes a task by ID. Idempotent when the ID is absent.
func (s *Store) Delete(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.tasks {
		if t.ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			s.persist()
			return
		}
	}
}

// NextID returns the next available task ID.
func (s *Store) NextID() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	return id
}

// Visited reports whether the first-run welcome has been dismissed.
func (s *Store) Visited() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visited
}

// SetVisited records the first-run welcome dismissal.
func (s *Store) SetVisited(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.visited = v
	s.persist()
}

// persist mirrors the in-memory state to disk. Failures are logged and
// swallowed: durability is best-effort and must never block an interaction.
// Caller must hold the lock.
func (s *Store) persist() {
	data := storeData{
		Tasks:   s.tasks,
		Visited: s.visited,
		Meta:    meta{NextID: s.nextID},
	}

	content, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		s.logError(fmt.Errorf("marshal state: %w", err))
		return
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		s.logError(fmt.Errorf("create data directory: %w", err))
		return
	}

	// Write to temp file first, then rename for atomicity.
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		s.logError(fmt.Errorf("write temp file: %w", err))
		return
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		s.logError(fmt.Errorf("rename temp file: %w", err))
	}
}

func (s *Store) logError(err error) {
	if s.logger != nil {
		s.logger.Error("store", err.Error())
	}
}

// Ensure Store implements TaskRepository.
var _ domain.TaskRepository = (*Store)(nil)
