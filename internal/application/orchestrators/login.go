package orchestrators

import (
	"context"
	"errors"
	"log/slog"

	"waaranders/internal/domain/account"
)

// AccountStoreForLogin defines the store interface needed by Login.
type AccountStoreForLogin interface {
	GetByEmail(ctx context.Context, email string) (account.Account, error)
	Save(ctx context.Context, a account.Account) error
}

// LoginInput carries input for the login orchestrator.
type LoginInput struct {
	Email    string
	Password string
}

// LoginResult carries what the HTTP layer needs to start a session.
type LoginResult struct {
	AccountID              string
	Email                  string
	Role                   string
	PasswordChangeRequired bool
}

// LoginDeps holds dependencies for Login.
type LoginDeps struct {
	AccountStore AccountStoreForLogin
}

var (
	// ErrInvalidCredentials deliberately covers both unknown email and wrong
	// password, so the login form cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("onjuist e-mailadres of wachtwoord")
	ErrAccountLocked      = errors.New("account is tijdelijk vergrendeld na te veel mislukte pogingen")
)

// ExecuteLogin checks credentials and maintains the failed-login counter that
// drives the temporary lockout.
// PRE: Email and password provided
// POST: Counter reset on success, incremented on a wrong password
// INVARIANT: A locked account never reaches the password check
func ExecuteLogin(ctx context.Context, input LoginInput, deps LoginDeps) (LoginResult, error) {
	if input.Email == "" || input.Password == "" {
		return LoginResult{}, ErrInvalidCredentials
	}

	acct, err := deps.AccountStore.GetByEmail(ctx, input.Email)
	if err != nil {
		slog.Info("login_failed", "email", input.Email, "reason", "unknown_email")
		return LoginResult{}, ErrInvalidCredentials
	}

	if acct.IsLocked() {
		slog.Info("login_blocked", "email", input.Email, "locked_until", acct.LockedUntil)
		return LoginResult{}, ErrAccountLocked
	}

	if err := acct.CheckPassword(input.Password); err != nil {
		acct.RecordFailedLogin()
		// Best effort; a failed save only loses the counter bump
		_ = deps.AccountStore.Save(ctx, acct)
		slog.Info("login_failed", "email", input.Email, "reason", "wrong_password", "failed_logins", acct.FailedLogins)
		return LoginResult{}, ErrInvalidCredentials
	}

	acct.ResetFailedLogins()
	_ = deps.AccountStore.Save(ctx, acct)
	slog.Info("login_success", "email", input.Email, "role", acct.Role)

	return LoginResult{
		AccountID:              acct.ID,
		Email:                  acct.Email,
		Role:                   acct.Role,
		PasswordChangeRequired: acct.PasswordChangeRequired,
	}, nil
}
