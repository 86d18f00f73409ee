// Package store holds the in-memory task collection.
//
// The store is owned by the TUI event loop: all mutation and reads happen
// from Update handlers, and background commands work on snapshots taken
// before they launch. Nothing is persisted; the collection resets to its
// seed state on every start.
package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/quadra/internal/domain"
	"github.com/google/uuid"
)

// TaskStore is an ordered, in-memory collection of tasks.
type TaskStore struct {
	tasks []*domain.Task
	byID  map[string]*domain.Task
}

// New creates an empty TaskStore.
func New() *TaskStore {
	return &TaskStore{byID: make(map[string]*domain.Task)}
}

// Add validates and appends a new task. The name must be non-blank;
// axis values are clamped into the 1–10 scale.
func (s *TaskStore) Add(name string, importance, urgency float64) (*domain.Task, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("task name must not be empty")
	}

	t := &domain.Task{
		ID:         uuid.NewString(),
		Name:       name,
		Importance: domain.ClampAxis(importance),
		Urgency:    domain.ClampAxis(urgency),
		CreatedAt:  time.Now(),
	}
	s.tasks = append(s.tasks, t)
	s.byID[t.ID] = t
	return t, nil
}

// Remove deletes the task with the given ID. Returns false if no such
// task exists.
func (s *TaskStore) Remove(id string) bool {
	if _, ok := s.byID[id]; !ok {
		return false
	}
	delete(s.byID, id)
	for i, t := range s.tasks {
		if t.ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			break
		}
	}
	return true
}

// Get returns the task with the given ID.
func (s *TaskStore) Get(id string) (*domain.Task, bool) {
	t, ok := s.byID[id]
	return t, ok
}

// List returns the tasks in insertion order. The returned slice is a
// copy and safe to hand to background commands.
func (s *TaskStore) List() []*domain.Task {
	out := make([]*domain.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Len returns the number of stored tasks.
func (s *TaskStore) Len() int {
	return len(s.tasks)
}
