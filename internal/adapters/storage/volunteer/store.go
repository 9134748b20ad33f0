package volunteer

import (
	"context"

	domain "waaranders/internal/domain/volunteer"
)

// ListFilter narrows List results.
type ListFilter struct {
	ActiveOnly bool
	Search     string // matches name or email, case-insensitive substring
	Sort       string // "name" or "email"; "" means name
	Dir        string // "asc" or "desc"
	Limit      int    // 0 means no limit
	Offset     int
}

// Store defines persistence for volunteers.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Volunteer, error)
	GetByAccountID(ctx context.Context, accountID string) (domain.Volunteer, error)
	GetByEmail(ctx context.Context, email string) (domain.Volunteer, error)
	Save(ctx context.Context, v domain.Volunteer) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ListFilter) ([]domain.Volunteer, error)
	ListActive(ctx context.Context) ([]domain.Volunteer, error)
	Count(ctx context.Context, filter ListFilter) (int, error)
}
