package klant

import (
	"context"

	domain "waaranders/internal/domain/klant"
)

// ListFilter narrows List results.
type ListFilter struct {
	Search string // matches name, city or address, case-insensitive substring
	City   string // exact match
	Sort   string // "name" or "city"; "" means name
	Dir    string // "asc" or "desc"
	Limit  int    // 0 means no limit
	Offset int
}

// Store defines persistence for klanten.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Klant, error)
	Save(ctx context.Context, k domain.Klant) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ListFilter) ([]domain.Klant, error)
	Count(ctx context.Context, filter ListFilter) (int, error)
}
