package projections

import (
	"context"
	"errors"
	"time"

	"waaranders/internal/adapters/storage/activity"
	"waaranders/internal/application/ordering"
	domainVolunteer "waaranders/internal/domain/volunteer"
)

// GetVolunteerProfileQuery carries query parameters. Exactly one of
// VolunteerID and AccountID must be set.
type GetVolunteerProfileQuery struct {
	VolunteerID string
	AccountID   string
	Now         time.Time // reference time for the upcoming-activities list
}

// GetVolunteerProfileResult carries the query result.
type GetVolunteerProfileResult struct {
	Volunteer domainVolunteer.Volunteer
	OpenTodos []TodoRow
	Upcoming  []ActivityRow
}

// GetVolunteerProfileDeps holds dependencies for GetVolunteerProfile.
type GetVolunteerProfileDeps struct {
	VolunteerStore VolunteerStore
	TodoStore      TodoStore
	ActivityStore  ActivityStore
}

var ErrVolunteerNotFound = errors.New("volunteer not found")

// QueryGetVolunteerProfile retrieves a volunteer with their open todos and
// the next upcoming activities.
// PRE: One of VolunteerID or AccountID identifies an existing volunteer
// POST: OpenTodos are in priority display order; Upcoming is chronological
func QueryGetVolunteerProfile(ctx context.Context, query GetVolunteerProfileQuery, deps GetVolunteerProfileDeps) (GetVolunteerProfileResult, error) {
	v, err := resolveVolunteer(ctx, query, deps.VolunteerStore)
	if err != nil {
		return GetVolunteerProfileResult{}, err
	}

	todoList, err := QueryGetTodoList(ctx, GetTodoListQuery{
		Mode:       ordering.ByPriority,
		OpenOnly:   true,
		AssigneeID: v.ID,
	}, GetTodoListDeps{TodoStore: deps.TodoStore, VolunteerStore: deps.VolunteerStore})
	if err != nil {
		return GetVolunteerProfileResult{}, err
	}

	now := query.Now
	if now.IsZero() {
		now = time.Now()
	}
	upcoming, err := deps.ActivityStore.List(ctx, activity.ListFilter{
		From:  now,
		Limit: 5,
	})
	if err != nil {
		return GetVolunteerProfileResult{}, err
	}

	rows := make([]ActivityRow, 0, len(upcoming))
	f := formatterForCalendar()
	for _, a := range upcoming {
		rows = append(rows, ActivityRow{Activity: a, DayLabel: f.DayLabel(a.Date)})
	}

	return GetVolunteerProfileResult{
		Volunteer: v,
		OpenTodos: todoList.Todos,
		Upcoming:  rows,
	}, nil
}

func resolveVolunteer(ctx context.Context, query GetVolunteerProfileQuery, store VolunteerStore) (domainVolunteer.Volunteer, error) {
	if query.VolunteerID != "" {
		v, err := store.GetByID(ctx, query.VolunteerID)
		if err != nil {
			return domainVolunteer.Volunteer{}, ErrVolunteerNotFound
		}
		return v, nil
	}
	v, err := store.GetByAccountID(ctx, query.AccountID)
	if err != nil {
		return domainVolunteer.Volunteer{}, ErrVolunteerNotFound
	}
	return v, nil
}
