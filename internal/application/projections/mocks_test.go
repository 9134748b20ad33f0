package projections

import (
	"context"
	"errors"
	"sort"
	"strings"

	storageActivity "waaranders/internal/adapters/storage/activity"
	storageKlant "waaranders/internal/adapters/storage/klant"
	storageTodo "waaranders/internal/adapters/storage/todo"
	storageVolunteer "waaranders/internal/adapters/storage/volunteer"
	domainActivity "waaranders/internal/domain/activity"
	domainKlant "waaranders/internal/domain/klant"
	domainTodo "waaranders/internal/domain/todo"
	domainVolunteer "waaranders/internal/domain/volunteer"
)

var errNotFound = errors.New("not found")

// mockVolunteerStore implements VolunteerStore over a fixed slice.
type mockVolunteerStore struct {
	volunteers []domainVolunteer.Volunteer
}

func (m *mockVolunteerStore) GetByID(_ context.Context, id string) (domainVolunteer.Volunteer, error) {
	for _, v := range m.volunteers {
		if v.ID == id {
			return v, nil
		}
	}
	return domainVolunteer.Volunteer{}, errNotFound
}

func (m *mockVolunteerStore) GetByAccountID(_ context.Context, accountID string) (domainVolunteer.Volunteer, error) {
	for _, v := range m.volunteers {
		if v.AccountID == accountID {
			return v, nil
		}
	}
	return domainVolunteer.Volunteer{}, errNotFound
}

func (m *mockVolunteerStore) List(_ context.Context, filter storageVolunteer.ListFilter) ([]domainVolunteer.Volunteer, error) {
	var out []domainVolunteer.Volunteer
	for _, v := range m.volunteers {
		if filter.ActiveOnly && !v.Active {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(v.Name), strings.ToLower(filter.Search)) {
			continue
		}
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	out = applyWindow(out, filter.Limit, filter.Offset)
	return out, nil
}

func (m *mockVolunteerStore) Count(ctx context.Context, filter storageVolunteer.ListFilter) (int, error) {
	noWindow := filter
	noWindow.Limit = 0
	noWindow.Offset = 0
	all, err := m.List(ctx, noWindow)
	return len(all), err
}

// mockKlantStore implements KlantStore over a fixed slice.
type mockKlantStore struct {
	klanten []domainKlant.Klant
}

func (m *mockKlantStore) GetByID(_ context.Context, id string) (domainKlant.Klant, error) {
	for _, k := range m.klanten {
		if k.ID == id {
			return k, nil
		}
	}
	return domainKlant.Klant{}, errNotFound
}

func (m *mockKlantStore) List(_ context.Context, filter storageKlant.ListFilter) ([]domainKlant.Klant, error) {
	var out []domainKlant.Klant
	for _, k := range m.klanten {
		if filter.Search != "" {
			q := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(k.Name), q) && !strings.Contains(strings.ToLower(k.City), q) {
				continue
			}
		}
		if filter.City != "" && k.City != filter.City {
			continue
		}
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool {
		if filter.Sort == "city" {
			if filter.Dir == "desc" {
				return out[i].City > out[j].City
			}
			return out[i].City < out[j].City
		}
		if filter.Dir == "desc" {
			return out[i].Name > out[j].Name
		}
		return out[i].Name < out[j].Name
	})
	out = applyWindow(out, filter.Limit, filter.Offset)
	return out, nil
}

func (m *mockKlantStore) Count(ctx context.Context, filter storageKlant.ListFilter) (int, error) {
	noWindow := filter
	noWindow.Limit = 0
	noWindow.Offset = 0
	all, err := m.List(ctx, noWindow)
	return len(all), err
}

// mockTodoStore implements TodoStore over a fixed slice.
type mockTodoStore struct {
	todos []domainTodo.Todo
}

func (m *mockTodoStore) List(_ context.Context, filter storageTodo.ListFilter) ([]domainTodo.Todo, error) {
	var out []domainTodo.Todo
	for _, t := range m.todos {
		if filter.OpenOnly && t.Status == domainTodo.StatusDone {
			continue
		}
		if filter.AssigneeID != "" && t.AssigneeID != filter.AssigneeID {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

// mockActivityStore implements ActivityStore over a fixed slice.
type mockActivityStore struct {
	activities []domainActivity.Activity
}

func (m *mockActivityStore) List(_ context.Context, filter storageActivity.ListFilter) ([]domainActivity.Activity, error) {
	var out []domainActivity.Activity
	for _, a := range m.activities {
		if !filter.From.IsZero() && a.Date.Before(filter.From) {
			continue
		}
		if !filter.Until.IsZero() && a.Date.After(filter.Until) {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func applyWindow[T any](items []T, limit, offset int) []T {
	if offset > 0 {
		if offset >= len(items) {
			return nil
		}
		items = items[offset:]
	}
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}
