package todo

import (
	"errors"
	"strings"
	"time"
)

// Priority constants.
const (
	PriorityLow    = "low"
	PriorityNormal = "normal"
	PriorityHigh   = "high"
)

// Status constants.
const (
	StatusPlanned    = "planned"
	StatusInProgress = "in_progress"
	StatusDone       = "done"
)

// Max length constants.
const (
	MaxTextLength = 500
)

// priorityRank orders priorities for the list views: high first.
var priorityRank = map[string]int{
	PriorityHigh:   0,
	PriorityNormal: 1,
	PriorityLow:    2,
}

// statusRank orders statuses for the list views: open work first.
var statusRank = map[string]int{
	StatusPlanned:    0,
	StatusInProgress: 1,
	StatusDone:       2,
}

// Domain errors
var (
	ErrEmptyText         = errors.New("todo text cannot be empty")
	ErrInvalidPriority   = errors.New("todo priority must be one of: low, normal, high")
	ErrInvalidStatus     = errors.New("todo status must be one of: planned, in_progress, done")
	ErrInvalidTransition = errors.New("todo cannot move back from done")
)

// Todo is a task on the volunteers' shared list. A zero DueDate means the
// task has no deadline; such tasks sort after every dated one.
type Todo struct {
	ID         string
	Text       string
	DueDate    time.Time // zero value means no deadline
	Priority   string
	Status     string
	AssigneeID string // volunteer ID, may be empty
	CreatedBy  string // account ID
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Validate checks the todo's invariants.
// PRE: none
// POST: returns nil if valid, error describing the first violation otherwise
func (t *Todo) Validate() error {
	if strings.TrimSpace(t.Text) == "" {
		return ErrEmptyText
	}
	if len(t.Text) > MaxTextLength {
		return errors.New("todo text cannot exceed 500 characters")
	}
	if _, ok := priorityRank[t.Priority]; !ok {
		return ErrInvalidPriority
	}
	if _, ok := statusRank[t.Status]; !ok {
		return ErrInvalidStatus
	}
	return nil
}

// HasDueDate returns true if the todo carries a deadline.
// INVARIANT: Todo fields are not mutated
func (t *Todo) HasDueDate() bool {
	return !t.DueDate.IsZero()
}

// PriorityRank returns the sort rank of the priority: high=0, normal=1, low=2.
// PRE: Priority is valid
// INVARIANT: Todo fields are not mutated
func (t *Todo) PriorityRank() int {
	return priorityRank[t.Priority]
}

// StatusRank returns the sort rank of the status: planned=0, in_progress=1, done=2.
// PRE: Status is valid
// INVARIANT: Todo fields are not mutated
func (t *Todo) StatusRank() int {
	return statusRank[t.Status]
}

// SetStatus transitions the todo to a new status. Going back from done is
// not allowed; reopening means creating a new task.
// PRE: next is a valid status
// POST: Status is updated and UpdatedAt set, or an error is returned
func (t *Todo) SetStatus(next string) error {
	if _, ok := statusRank[next]; !ok {
		return ErrInvalidStatus
	}
	if t.Status == StatusDone && next != StatusDone {
		return ErrInvalidTransition
	}
	t.Status = next
	t.UpdatedAt = time.Now()
	return nil
}

// IsOpen returns true if the todo is not done yet.
// INVARIANT: Todo fields are not mutated
func (t *Todo) IsOpen() bool {
	return t.Status != StatusDone
}
