package orchestrators

import (
	"context"
	"errors"
	"log/slog"

	"waaranders/internal/domain/account"
)

// AccountStoreForChangeRole defines the store interface needed by ChangeRole.
type AccountStoreForChangeRole interface {
	GetByID(ctx context.Context, id string) (account.Account, error)
	Save(ctx context.Context, a account.Account) error
	List(ctx context.Context) ([]account.Account, error)
}

// ChangeRoleInput carries input for the change-role orchestrator.
type ChangeRoleInput struct {
	AccountID string
	NewRole   string
	ActorID   string // admin performing the change
}

// ChangeRoleDeps holds dependencies for ChangeRole.
type ChangeRoleDeps struct {
	AccountStore AccountStoreForChangeRole
}

var ErrLastAdmin = errors.New("cannot demote the last admin")

// ExecuteChangeRole changes an account's role.
// PRE: NewRole is a valid role; ActorID is an admin
// POST: Role is updated
// INVARIANT: At least one admin account remains
func ExecuteChangeRole(ctx context.Context, input ChangeRoleInput, deps ChangeRoleDeps) error {
	if input.NewRole != account.RoleAdmin && input.NewRole != account.RoleVrijwillig {
		return account.ErrInvalidRole
	}

	acct, err := deps.AccountStore.GetByID(ctx, input.AccountID)
	if err != nil {
		return errors.New("account not found")
	}
	if acct.Role == input.NewRole {
		return nil
	}

	// Demoting an admin requires another admin to remain
	if acct.IsAdmin() && input.NewRole != account.RoleAdmin {
		all, err := deps.AccountStore.List(ctx)
		if err != nil {
			return err
		}
		admins := 0
		for _, a := range all {
			if a.IsAdmin() {
				admins++
			}
		}
		if admins <= 1 {
			return ErrLastAdmin
		}
	}

	acct.Role = input.NewRole
	if err := deps.AccountStore.Save(ctx, acct); err != nil {
		return err
	}

	slog.Info("role_changed", "account_id", input.AccountID, "new_role", input.NewRole, "actor", input.ActorID)
	return nil
}
