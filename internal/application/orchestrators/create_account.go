package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"waaranders/internal/domain/account"

	"github.com/google/uuid"
)

// AccountStoreForCreate defines the store interface needed by CreateAccount.
type AccountStoreForCreate interface {
	GetByEmail(ctx context.Context, email string) (account.Account, error)
	Save(ctx context.Context, a account.Account) error
	Count(ctx context.Context) (int, error)
}

// CreateAccountInput carries input for the orchestrator.
type CreateAccountInput struct {
	Email    string
	Password string
	Role     string
	// PasswordChangeRequired forces a password change on first login. Set for
	// seeded admins and for volunteer accounts created with a temporary
	// password.
	PasswordChangeRequired bool
}

// CreateAccountDeps holds dependencies for CreateAccount.
type CreateAccountDeps struct {
	AccountStore AccountStoreForCreate
}

var ErrEmailAlreadyExists = errors.New("er bestaat al een account met dit e-mailadres")

// ExecuteCreateAccount provisions a login account. It backs both the admin
// seeding on first run and volunteer registration, which passes a generated
// temporary password.
// PRE: Valid email, password within domain limits, role admin or vrijwilliger
// POST: Account persisted with a bcrypt password hash
// INVARIANT: Email must be unique across accounts
func ExecuteCreateAccount(ctx context.Context, input CreateAccountInput, deps CreateAccountDeps) (string, error) {
	if input.Email == "" {
		return "", errors.New("email is required")
	}
	if input.Password == "" {
		return "", errors.New("password is required")
	}
	if input.Role == "" {
		return "", errors.New("role is required")
	}

	// Uniqueness check; the store returns an error when no row matches
	if _, err := deps.AccountStore.GetByEmail(ctx, input.Email); err == nil {
		return "", ErrEmailAlreadyExists
	}

	acct := account.Account{
		ID:                     uuid.New().String(),
		Email:                  input.Email,
		Role:                   input.Role,
		CreatedAt:              time.Now(),
		PasswordChangeRequired: input.PasswordChangeRequired,
	}
	if err := acct.Validate(); err != nil {
		return "", err
	}
	// SetPassword enforces the length bounds and hashes
	if err := acct.SetPassword(input.Password); err != nil {
		return "", err
	}

	if err := deps.AccountStore.Save(ctx, acct); err != nil {
		return "", err
	}

	slog.Info("account_created", "email", input.Email, "role", input.Role)
	return acct.ID, nil
}

// ExecuteSeedAdmin bootstraps the very first admin account so a fresh
// Waaranders install is reachable. It is a no-op once any account exists.
// PRE: Database is initialized
// POST: Admin account created when the account table is empty
func ExecuteSeedAdmin(ctx context.Context, deps CreateAccountDeps, email, password string) error {
	count, err := deps.AccountStore.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if _, err := ExecuteCreateAccount(ctx, CreateAccountInput{
		Email:                  email,
		Password:               password,
		Role:                   account.RoleAdmin,
		PasswordChangeRequired: true,
	}, deps); err != nil {
		return err
	}

	slog.Info("admin_seeded", "email", email)
	return nil
}
