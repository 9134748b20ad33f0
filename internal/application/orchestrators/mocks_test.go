package orchestrators

import (
	"context"
	"errors"
	"sort"

	"waaranders/internal/adapters/email"
	"waaranders/internal/domain/account"
	"waaranders/internal/domain/activity"
	"waaranders/internal/domain/klant"
	"waaranders/internal/domain/todo"
	"waaranders/internal/domain/volunteer"
)

var errNotFound = errors.New("not found")

// mockAccountStore implements the account store interfaces for testing.
type mockAccountStore struct {
	accounts map[string]account.Account
	saveErr  error
}

func newMockAccountStore() *mockAccountStore {
	return &mockAccountStore{accounts: make(map[string]account.Account)}
}

func (m *mockAccountStore) GetByID(_ context.Context, id string) (account.Account, error) {
	a, ok := m.accounts[id]
	if !ok {
		return account.Account{}, errNotFound
	}
	return a, nil
}

func (m *mockAccountStore) GetByEmail(_ context.Context, email string) (account.Account, error) {
	for _, a := range m.accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return account.Account{}, errNotFound
}

func (m *mockAccountStore) Save(_ context.Context, a account.Account) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.accounts[a.ID] = a
	return nil
}

func (m *mockAccountStore) Delete(_ context.Context, id string) error {
	delete(m.accounts, id)
	return nil
}

func (m *mockAccountStore) List(_ context.Context) ([]account.Account, error) {
	var out []account.Account
	for _, a := range m.accounts {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return out, nil
}

func (m *mockAccountStore) Count(_ context.Context) (int, error) {
	return len(m.accounts), nil
}

// mockVolunteerStore implements the volunteer store interfaces for testing.
type mockVolunteerStore struct {
	volunteers map[string]volunteer.Volunteer
}

func newMockVolunteerStore() *mockVolunteerStore {
	return &mockVolunteerStore{volunteers: make(map[string]volunteer.Volunteer)}
}

func (m *mockVolunteerStore) GetByID(_ context.Context, id string) (volunteer.Volunteer, error) {
	v, ok := m.volunteers[id]
	if !ok {
		return volunteer.Volunteer{}, errNotFound
	}
	return v, nil
}

func (m *mockVolunteerStore) GetByEmail(_ context.Context, email string) (volunteer.Volunteer, error) {
	for _, v := range m.volunteers {
		if v.Email == email {
			return v, nil
		}
	}
	return volunteer.Volunteer{}, errNotFound
}

func (m *mockVolunteerStore) Save(_ context.Context, v volunteer.Volunteer) error {
	m.volunteers[v.ID] = v
	return nil
}

func (m *mockVolunteerStore) ListActive(_ context.Context) ([]volunteer.Volunteer, error) {
	var out []volunteer.Volunteer
	for _, v := range m.volunteers {
		if v.Active {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// mockKlantStore implements KlantStore for testing.
type mockKlantStore struct {
	klanten map[string]klant.Klant
}

func newMockKlantStore() *mockKlantStore {
	return &mockKlantStore{klanten: make(map[string]klant.Klant)}
}

func (m *mockKlantStore) GetByID(_ context.Context, id string) (klant.Klant, error) {
	k, ok := m.klanten[id]
	if !ok {
		return klant.Klant{}, errNotFound
	}
	return k, nil
}

func (m *mockKlantStore) Save(_ context.Context, k klant.Klant) error {
	m.klanten[k.ID] = k
	return nil
}

func (m *mockKlantStore) Delete(_ context.Context, id string) error {
	delete(m.klanten, id)
	return nil
}

// mockTodoStore implements TodoStore for testing.
type mockTodoStore struct {
	todos map[string]todo.Todo
}

func newMockTodoStore() *mockTodoStore {
	return &mockTodoStore{todos: make(map[string]todo.Todo)}
}

func (m *mockTodoStore) GetByID(_ context.Context, id string) (todo.Todo, error) {
	t, ok := m.todos[id]
	if !ok {
		return todo.Todo{}, errNotFound
	}
	return t, nil
}

func (m *mockTodoStore) Save(_ context.Context, t todo.Todo) error {
	m.todos[t.ID] = t
	return nil
}

func (m *mockTodoStore) Delete(_ context.Context, id string) error {
	delete(m.todos, id)
	return nil
}

// mockActivityStore implements ActivityStore for testing.
type mockActivityStore struct {
	activities map[string]activity.Activity
}

func newMockActivityStore() *mockActivityStore {
	return &mockActivityStore{activities: make(map[string]activity.Activity)}
}

func (m *mockActivityStore) GetByID(_ context.Context, id string) (activity.Activity, error) {
	a, ok := m.activities[id]
	if !ok {
		return activity.Activity{}, errNotFound
	}
	return a, nil
}

func (m *mockActivityStore) Save(_ context.Context, a activity.Activity) error {
	m.activities[a.ID] = a
	return nil
}

func (m *mockActivityStore) Delete(_ context.Context, id string) error {
	delete(m.activities, id)
	return nil
}

// mockSender records sent emails instead of delivering them.
type mockSender struct {
	sent    []email.SendRequest
	sendErr error
}

func (m *mockSender) Send(_ context.Context, req email.SendRequest) (email.SendResult, error) {
	if m.sendErr != nil {
		return email.SendResult{}, m.sendErr
	}
	m.sent = append(m.sent, req)
	return email.SendResult{MessageID: "mock"}, nil
}

func (m *mockSender) SendBatch(_ context.Context, reqs []email.SendRequest) ([]email.SendResult, error) {
	if m.sendErr != nil {
		return nil, m.sendErr
	}
	m.sent = append(m.sent, reqs...)
	results := make([]email.SendResult, len(reqs))
	return results, nil
}
