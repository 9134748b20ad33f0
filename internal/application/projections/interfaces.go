package projections

import (
	"context"

	"waaranders/internal/adapters/storage/activity"
	"waaranders/internal/adapters/storage/klant"
	"waaranders/internal/adapters/storage/todo"
	"waaranders/internal/adapters/storage/volunteer"
	domainAccount "waaranders/internal/domain/account"
	domainActivity "waaranders/internal/domain/activity"
	domainKlant "waaranders/internal/domain/klant"
	domainTodo "waaranders/internal/domain/todo"
	domainVolunteer "waaranders/internal/domain/volunteer"
)

// VolunteerStore interface for volunteer queries.
type VolunteerStore interface {
	GetByID(ctx context.Context, id string) (domainVolunteer.Volunteer, error)
	GetByAccountID(ctx context.Context, accountID string) (domainVolunteer.Volunteer, error)
	List(ctx context.Context, filter volunteer.ListFilter) ([]domainVolunteer.Volunteer, error)
	Count(ctx context.Context, filter volunteer.ListFilter) (int, error)
}

// KlantStore interface for klant queries.
type KlantStore interface {
	GetByID(ctx context.Context, id string) (domainKlant.Klant, error)
	List(ctx context.Context, filter klant.ListFilter) ([]domainKlant.Klant, error)
	Count(ctx context.Context, filter klant.ListFilter) (int, error)
}

// TodoStore interface for todo queries.
type TodoStore interface {
	List(ctx context.Context, filter todo.ListFilter) ([]domainTodo.Todo, error)
}

// ActivityStore interface for activity queries.
type ActivityStore interface {
	List(ctx context.Context, filter activity.ListFilter) ([]domainActivity.Activity, error)
}

// AccountStore interface for account queries.
type AccountStore interface {
	List(ctx context.Context) ([]domainAccount.Account, error)
}
