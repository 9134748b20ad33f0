package orchestrators

import (
	"context"
	"testing"

	"waaranders/internal/domain/account"
)

func TestExecuteChangePassword_Success(t *testing.T) {
	store := newMockAccountStore()
	acct := seedAccount(t, store, "anna@example.org", "oud-wachtwoord123", account.RoleVrijwillig)
	acct.PasswordChangeRequired = true
	store.accounts[acct.ID] = acct

	err := ExecuteChangePassword(context.Background(), ChangePasswordInput{
		AccountID:       acct.ID,
		CurrentPassword: "oud-wachtwoord123",
		NewPassword:     "nieuw-wachtwoord123",
	}, ChangePasswordDeps{AccountStore: store})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated := store.accounts[acct.ID]
	if err := updated.CheckPassword("nieuw-wachtwoord123"); err != nil {
		t.Errorf("new password does not verify: %v", err)
	}
	if updated.PasswordChangeRequired {
		t.Error("expected PasswordChangeRequired to be cleared")
	}
}

func TestExecuteChangePassword_WrongCurrent(t *testing.T) {
	store := newMockAccountStore()
	acct := seedAccount(t, store, "anna@example.org", "oud-wachtwoord123", account.RoleVrijwillig)

	err := ExecuteChangePassword(context.Background(), ChangePasswordInput{
		AccountID:       acct.ID,
		CurrentPassword: "verkeerd-wachtwoord",
		NewPassword:     "nieuw-wachtwoord123",
	}, ChangePasswordDeps{AccountStore: store})
	if err != ErrCurrentPasswordWrong {
		t.Fatalf("expected ErrCurrentPasswordWrong, got %v", err)
	}
}

func TestExecuteChangePassword_SamePassword(t *testing.T) {
	store := newMockAccountStore()
	acct := seedAccount(t, store, "anna@example.org", "oud-wachtwoord123", account.RoleVrijwillig)

	err := ExecuteChangePassword(context.Background(), ChangePasswordInput{
		AccountID:       acct.ID,
		CurrentPassword: "oud-wachtwoord123",
		NewPassword:     "oud-wachtwoord123",
	}, ChangePasswordDeps{AccountStore: store})
	if err != ErrNewPasswordSame {
		t.Fatalf("expected ErrNewPasswordSame, got %v", err)
	}
}

func TestExecuteChangePassword_TooShort(t *testing.T) {
	store := newMockAccountStore()
	acct := seedAccount(t, store, "anna@example.org", "oud-wachtwoord123", account.RoleVrijwillig)

	err := ExecuteChangePassword(context.Background(), ChangePasswordInput{
		AccountID:       acct.ID,
		CurrentPassword: "oud-wachtwoord123",
		NewPassword:     "kort",
	}, ChangePasswordDeps{AccountStore: store})
	if err != account.ErrPasswordTooShort {
		t.Fatalf("expected ErrPasswordTooShort, got %v", err)
	}
}
