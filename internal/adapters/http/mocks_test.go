package web

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"time"

	"waaranders/internal/adapters/http/middleware"
	activityStore "waaranders/internal/adapters/storage/activity"
	klantStore "waaranders/internal/adapters/storage/klant"
	todoStore "waaranders/internal/adapters/storage/todo"
	volunteerStore "waaranders/internal/adapters/storage/volunteer"

	accountDomain "waaranders/internal/domain/account"
	activityDomain "waaranders/internal/domain/activity"
	klantDomain "waaranders/internal/domain/klant"
	todoDomain "waaranders/internal/domain/todo"
	volunteerDomain "waaranders/internal/domain/volunteer"
)

// --- Mock stores ---

type mockAccountStore struct {
	accounts map[string]accountDomain.Account
}

func (m *mockAccountStore) GetByID(ctx context.Context, id string) (accountDomain.Account, error) {
	if a, ok := m.accounts[id]; ok {
		return a, nil
	}
	return accountDomain.Account{}, sql.ErrNoRows
}

func (m *mockAccountStore) GetByEmail(ctx context.Context, email string) (accountDomain.Account, error) {
	for _, a := range m.accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return accountDomain.Account{}, sql.ErrNoRows
}

func (m *mockAccountStore) Save(ctx context.Context, a accountDomain.Account) error {
	m.accounts[a.ID] = a
	return nil
}

func (m *mockAccountStore) Delete(ctx context.Context, id string) error {
	delete(m.accounts, id)
	return nil
}

func (m *mockAccountStore) List(ctx context.Context) ([]accountDomain.Account, error) {
	var list []accountDomain.Account
	for _, a := range m.accounts {
		list = append(list, a)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Email < list[j].Email })
	return list, nil
}

func (m *mockAccountStore) Count(ctx context.Context) (int, error) {
	return len(m.accounts), nil
}

type mockVolunteerStore struct {
	volunteers map[string]volunteerDomain.Volunteer
}

func (m *mockVolunteerStore) GetByID(ctx context.Context, id string) (volunteerDomain.Volunteer, error) {
	if v, ok := m.volunteers[id]; ok {
		return v, nil
	}
	return volunteerDomain.Volunteer{}, sql.ErrNoRows
}

func (m *mockVolunteerStore) GetByAccountID(ctx context.Context, accountID string) (volunteerDomain.Volunteer, error) {
	for _, v := range m.volunteers {
		if v.AccountID == accountID {
			return v, nil
		}
	}
	return volunteerDomain.Volunteer{}, sql.ErrNoRows
}

func (m *mockVolunteerStore) GetByEmail(ctx context.Context, email string) (volunteerDomain.Volunteer, error) {
	for _, v := range m.volunteers {
		if v.Email == email {
			return v, nil
		}
	}
	return volunteerDomain.Volunteer{}, sql.ErrNoRows
}

func (m *mockVolunteerStore) Save(ctx context.Context, v volunteerDomain.Volunteer) error {
	m.volunteers[v.ID] = v
	return nil
}

func (m *mockVolunteerStore) Delete(ctx context.Context, id string) error {
	delete(m.volunteers, id)
	return nil
}

func (m *mockVolunteerStore) List(ctx context.Context, filter volunteerStore.ListFilter) ([]volunteerDomain.Volunteer, error) {
	var list []volunteerDomain.Volunteer
	for _, v := range m.volunteers {
		if filter.ActiveOnly && !v.Active {
			continue
		}
		if filter.Search != "" {
			q := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(v.Name), q) && !strings.Contains(strings.ToLower(v.Email), q) {
				continue
			}
		}
		list = append(list, v)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return window(list, filter.Limit, filter.Offset), nil
}

func (m *mockVolunteerStore) ListActive(ctx context.Context) ([]volunteerDomain.Volunteer, error) {
	return m.List(ctx, volunteerStore.ListFilter{ActiveOnly: true})
}

func (m *mockVolunteerStore) Count(ctx context.Context, filter volunteerStore.ListFilter) (int, error) {
	f := filter
	f.Limit, f.Offset = 0, 0
	list, _ := m.List(ctx, f)
	return len(list), nil
}

type mockKlantStore struct {
	klanten map[string]klantDomain.Klant
}

func (m *mockKlantStore) GetByID(ctx context.Context, id string) (klantDomain.Klant, error) {
	if k, ok := m.klanten[id]; ok {
		return k, nil
	}
	return klantDomain.Klant{}, sql.ErrNoRows
}

func (m *mockKlantStore) Save(ctx context.Context, k klantDomain.Klant) error {
	m.klanten[k.ID] = k
	return nil
}

func (m *mockKlantStore) Delete(ctx context.Context, id string) error {
	delete(m.klanten, id)
	return nil
}

func (m *mockKlantStore) List(ctx context.Context, filter klantStore.ListFilter) ([]klantDomain.Klant, error) {
	var list []klantDomain.Klant
	for _, k := range m.klanten {
		if filter.City != "" && k.City != filter.City {
			continue
		}
		if filter.Search != "" {
			q := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(k.Name), q) &&
				!strings.Contains(strings.ToLower(k.City), q) &&
				!strings.Contains(strings.ToLower(k.Address), q) {
				continue
			}
		}
		list = append(list, k)
	}
	sort.Slice(list, func(i, j int) bool {
		a, b := list[i].Name, list[j].Name
		if filter.Sort == "city" {
			a, b = list[i].City, list[j].City
		}
		if filter.Dir == "desc" {
			return a > b
		}
		return a < b
	})
	return window(list, filter.Limit, filter.Offset), nil
}

func (m *mockKlantStore) Count(ctx context.Context, filter klantStore.ListFilter) (int, error) {
	f := filter
	f.Limit, f.Offset = 0, 0
	list, _ := m.List(ctx, f)
	return len(list), nil
}

type mockTodoStore struct {
	todos map[string]todoDomain.Todo
}

func (m *mockTodoStore) GetByID(ctx context.Context, id string) (todoDomain.Todo, error) {
	if t, ok := m.todos[id]; ok {
		return t, nil
	}
	return todoDomain.Todo{}, sql.ErrNoRows
}

func (m *mockTodoStore) Save(ctx context.Context, t todoDomain.Todo) error {
	m.todos[t.ID] = t
	return nil
}

func (m *mockTodoStore) Delete(ctx context.Context, id string) error {
	delete(m.todos, id)
	return nil
}

func (m *mockTodoStore) List(ctx context.Context, filter todoStore.ListFilter) ([]todoDomain.Todo, error) {
	var list []todoDomain.Todo
	for _, t := range m.todos {
		if filter.OpenOnly && t.Status == todoDomain.StatusDone {
			continue
		}
		if filter.AssigneeID != "" && t.AssigneeID != filter.AssigneeID {
			continue
		}
		list = append(list, t)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

type mockActivityStore struct {
	activities map[string]activityDomain.Activity
}

func (m *mockActivityStore) GetByID(ctx context.Context, id string) (activityDomain.Activity, error) {
	if a, ok := m.activities[id]; ok {
		return a, nil
	}
	return activityDomain.Activity{}, sql.ErrNoRows
}

func (m *mockActivityStore) Save(ctx context.Context, a activityDomain.Activity) error {
	m.activities[a.ID] = a
	return nil
}

func (m *mockActivityStore) Delete(ctx context.Context, id string) error {
	delete(m.activities, id)
	return nil
}

func (m *mockActivityStore) List(ctx context.Context, filter activityStore.ListFilter) ([]activityDomain.Activity, error) {
	var list []activityDomain.Activity
	for _, a := range m.activities {
		if !filter.From.IsZero() && a.Date.Before(filter.From) {
			continue
		}
		if !filter.Until.IsZero() && a.Date.After(filter.Until) {
			continue
		}
		list = append(list, a)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Date.Before(list[j].Date) })
	if filter.Limit > 0 && len(list) > filter.Limit {
		list = list[:filter.Limit]
	}
	return list, nil
}

func window[T any](items []T, limit, offset int) []T {
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

// --- Test helpers ---

// newFullStores returns a Stores with all mock stores initialized.
func newFullStores() *Stores {
	return &Stores{
		AccountStore:   &mockAccountStore{accounts: make(map[string]accountDomain.Account)},
		VolunteerStore: &mockVolunteerStore{volunteers: make(map[string]volunteerDomain.Volunteer)},
		KlantStore:     &mockKlantStore{klanten: make(map[string]klantDomain.Klant)},
		TodoStore:      &mockTodoStore{todos: make(map[string]todoDomain.Todo)},
		ActivityStore:  &mockActivityStore{activities: make(map[string]activityDomain.Activity)},
	}
}

// authRequest returns a request with the given session injected into context.
func authRequest(method, url string, body string, sess middleware.Session) *http.Request {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, url, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}
	ctx := middleware.ContextWithSession(req.Context(), sess)
	return req.WithContext(ctx)
}

// jsonRequest returns a JSON request without any session attached.
func jsonRequest(method, url string, body string) *http.Request {
	req := httptest.NewRequest(method, url, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// formRequest returns a form POST with the given session injected into context.
func formRequest(url string, form string, sess middleware.Session) *http.Request {
	req := httptest.NewRequest("POST", url, strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	ctx := middleware.ContextWithSession(req.Context(), sess)
	return req.WithContext(ctx)
}

var adminSession = middleware.Session{
	AccountID: "admin-001",
	Email:     "admin@waaranders.nl",
	Role:      accountDomain.RoleAdmin,
	CreatedAt: time.Now(),
}

var volunteerSession = middleware.Session{
	AccountID: "acc-v1",
	Email:     "vrijwilliger@waaranders.nl",
	Role:      accountDomain.RoleVrijwillig,
	CreatedAt: time.Now(),
}
