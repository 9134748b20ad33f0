package activity

import (
	"context"
	"time"

	domain "waaranders/internal/domain/activity"
)

// ListFilter narrows List results.
type ListFilter struct {
	From  time.Time // only activities on or after this date (zero = all)
	Until time.Time // only activities on or before this date (zero = all)
	Limit int       // 0 means no limit
}

// Store defines persistence for activities.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Activity, error)
	Save(ctx context.Context, a domain.Activity) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ListFilter) ([]domain.Activity, error)
}
