package todo

import (
	"context"

	domain "waaranders/internal/domain/todo"
)

// ListFilter narrows List results.
type ListFilter struct {
	OpenOnly   bool   // exclude done todos
	AssigneeID string // only todos assigned to this volunteer
	Limit      int    // 0 means no limit
	Offset     int
}

// Store defines persistence for todos.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Todo, error)
	Save(ctx context.Context, t domain.Todo) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ListFilter) ([]domain.Todo, error)
}
