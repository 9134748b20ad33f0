package orchestrators

import (
	"context"
	"testing"

	"waaranders/internal/domain/account"
)

func TestExecuteCreateAccount_Valid(t *testing.T) {
	store := newMockAccountStore()
	id, err := ExecuteCreateAccount(context.Background(), CreateAccountInput{
		Email:    "anna@example.org",
		Password: "wachtwoord12345",
		Role:     account.RoleVrijwillig,
	}, CreateAccountDeps{AccountStore: store})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	saved, ok := store.accounts[id]
	if !ok {
		t.Fatal("account not persisted")
	}
	if saved.Role != account.RoleVrijwillig {
		t.Errorf("expected role vrijwilliger, got %s", saved.Role)
	}
	if saved.PasswordHash == "" || saved.PasswordHash == "wachtwoord12345" {
		t.Error("password not hashed")
	}
	if err := saved.CheckPassword("wachtwoord12345"); err != nil {
		t.Errorf("stored hash does not verify: %v", err)
	}
}

func TestExecuteCreateAccount_DuplicateEmail(t *testing.T) {
	store := newMockAccountStore()
	seedAccount(t, store, "anna@example.org", "wachtwoord12345", account.RoleVrijwillig)

	_, err := ExecuteCreateAccount(context.Background(), CreateAccountInput{
		Email:    "anna@example.org",
		Password: "ander-wachtwoord1",
		Role:     account.RoleVrijwillig,
	}, CreateAccountDeps{AccountStore: store})
	if err != ErrEmailAlreadyExists {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestExecuteCreateAccount_ShortPassword(t *testing.T) {
	store := newMockAccountStore()
	_, err := ExecuteCreateAccount(context.Background(), CreateAccountInput{
		Email:    "anna@example.org",
		Password: "kort",
		Role:     account.RoleVrijwillig,
	}, CreateAccountDeps{AccountStore: store})
	if err != account.ErrPasswordTooShort {
		t.Fatalf("expected ErrPasswordTooShort, got %v", err)
	}
}

func TestExecuteCreateAccount_MissingFields(t *testing.T) {
	store := newMockAccountStore()
	tests := []struct {
		name  string
		input CreateAccountInput
	}{
		{"no email", CreateAccountInput{Password: "wachtwoord12345", Role: account.RoleAdmin}},
		{"no password", CreateAccountInput{Email: "a@example.org", Role: account.RoleAdmin}},
		{"no role", CreateAccountInput{Email: "a@example.org", Password: "wachtwoord12345"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ExecuteCreateAccount(context.Background(), tc.input, CreateAccountDeps{AccountStore: store}); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestExecuteSeedAdmin_EmptyStore(t *testing.T) {
	store := newMockAccountStore()
	err := ExecuteSeedAdmin(context.Background(), CreateAccountDeps{AccountStore: store}, "admin@waaranders.nl", "beheer-wachtwoord1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.accounts) != 1 {
		t.Fatalf("expected 1 account, got %d", len(store.accounts))
	}
	for _, a := range store.accounts {
		if a.Role != account.RoleAdmin {
			t.Errorf("expected admin role, got %s", a.Role)
		}
		if !a.PasswordChangeRequired {
			t.Error("seeded admin should be forced to change password")
		}
	}
}

func TestExecuteSeedAdmin_SkipsWhenAccountsExist(t *testing.T) {
	store := newMockAccountStore()
	seedAccount(t, store, "anna@example.org", "wachtwoord12345", account.RoleVrijwillig)

	err := ExecuteSeedAdmin(context.Background(), CreateAccountDeps{AccountStore: store}, "admin@waaranders.nl", "beheer-wachtwoord1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.accounts) != 1 {
		t.Fatalf("seeding should be skipped, got %d accounts", len(store.accounts))
	}
}
