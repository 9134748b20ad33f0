package orchestrators

import (
	"context"
	"errors"
	"time"

	"waaranders/internal/domain/todo"
	"waaranders/internal/domain/volunteer"

	"github.com/google/uuid"
)

// TodoStore defines the interface for todo persistence.
type TodoStore interface {
	Save(ctx context.Context, t todo.Todo) error
	GetByID(ctx context.Context, id string) (todo.Todo, error)
	Delete(ctx context.Context, id string) error
}

// VolunteerStoreForTodo resolves assignees.
type VolunteerStoreForTodo interface {
	GetByID(ctx context.Context, id string) (volunteer.Volunteer, error)
}

// SaveTodoInput carries input for the orchestrator. An empty ID means create.
// DueDate stays zero for todos without a deadline.
type SaveTodoInput struct {
	ID         string
	Text       string
	DueDate    time.Time
	Priority   string
	AssigneeID string
	CreatedBy  string
}

// SaveTodoDeps holds dependencies for SaveTodo.
type SaveTodoDeps struct {
	TodoStore      TodoStore
	VolunteerStore VolunteerStoreForTodo
}

var (
	ErrUnknownAssignee = errors.New("assignee does not refer to a known volunteer")
	ErrTodoNotFound    = errors.New("todo not found")
)

// ExecuteSaveTodo creates or updates a todo item.
// PRE: Text is non-empty and within the length limit
// POST: Todo is persisted; returns the todo ID
// INVARIANT: AssigneeID, when set, refers to an existing volunteer
func ExecuteSaveTodo(ctx context.Context, input SaveTodoInput, deps SaveTodoDeps) (string, error) {
	if input.AssigneeID != "" {
		if _, err := deps.VolunteerStore.GetByID(ctx, input.AssigneeID); err != nil {
			return "", ErrUnknownAssignee
		}
	}

	t := todo.Todo{
		ID:         input.ID,
		Text:       input.Text,
		DueDate:    input.DueDate,
		Priority:   input.Priority,
		Status:     todo.StatusPlanned,
		AssigneeID: input.AssigneeID,
		CreatedBy:  input.CreatedBy,
	}
	if t.Priority == "" {
		t.Priority = todo.PriorityNormal
	}

	if input.ID == "" {
		t.ID = uuid.New().String()
		t.CreatedAt = time.Now()
	} else {
		existing, err := deps.TodoStore.GetByID(ctx, input.ID)
		if err != nil {
			return "", ErrTodoNotFound
		}
		t.Status = existing.Status
		t.CreatedAt = existing.CreatedAt
		t.CreatedBy = existing.CreatedBy
		t.UpdatedAt = time.Now()
	}

	// Validate domain rules
	if err := t.Validate(); err != nil {
		return "", err
	}

	if err := deps.TodoStore.Save(ctx, t); err != nil {
		return "", err
	}
	return t.ID, nil
}

// UpdateTodoStatusInput carries input for a status change.
type UpdateTodoStatusInput struct {
	ID        string
	NewStatus string
}

// ExecuteUpdateTodoStatus moves a todo to a new status.
// PRE: ID refers to an existing todo
// POST: Status is updated if the transition is allowed
// INVARIANT: Done todos cannot be reopened
func ExecuteUpdateTodoStatus(ctx context.Context, input UpdateTodoStatusInput, deps SaveTodoDeps) error {
	t, err := deps.TodoStore.GetByID(ctx, input.ID)
	if err != nil {
		return ErrTodoNotFound
	}

	if err := t.SetStatus(input.NewStatus); err != nil {
		return err
	}
	t.UpdatedAt = time.Now()

	return deps.TodoStore.Save(ctx, t)
}

// ExecuteDeleteTodo removes a todo item.
// PRE: ID refers to an existing todo
// POST: Todo is removed from the store
func ExecuteDeleteTodo(ctx context.Context, id string, deps SaveTodoDeps) error {
	if id == "" {
		return errors.New("id cannot be empty")
	}
	if _, err := deps.TodoStore.GetByID(ctx, id); err != nil {
		return ErrTodoNotFound
	}
	return deps.TodoStore.Delete(ctx, id)
}
