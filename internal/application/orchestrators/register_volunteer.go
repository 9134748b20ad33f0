package orchestrators

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"log/slog"
	"time"

	"waaranders/internal/adapters/email"
	"waaranders/internal/domain/account"
	"waaranders/internal/domain/volunteer"

	"github.com/google/uuid"
)

// VolunteerStore defines the interface for volunteer persistence.
type VolunteerStore interface {
	Save(ctx context.Context, v volunteer.Volunteer) error
	GetByID(ctx context.Context, id string) (volunteer.Volunteer, error)
	GetByEmail(ctx context.Context, email string) (volunteer.Volunteer, error)
}

// RegisterVolunteerInput carries input for the orchestrator.
type RegisterVolunteerInput struct {
	Name    string
	Email   string
	Phone   string
	Notes   string
	BaseURL string // login link base for the invite email
}

// RegisterVolunteerDeps holds dependencies for RegisterVolunteer.
type RegisterVolunteerDeps struct {
	VolunteerStore VolunteerStore
	AccountStore   AccountStoreForCreate
	EmailSender    email.Sender
}

var ErrVolunteerEmailExists = errors.New("a volunteer with this email already exists")

// ExecuteRegisterVolunteer coordinates volunteer registration: it creates the
// vrijwilliger account with a generated temporary password, the volunteer
// profile linked to it, and sends the invite email. A failed invite email does
// not fail the registration; the admin can reset the password by hand.
// PRE: Valid email, non-empty name
// POST: Volunteer and account created; account has PasswordChangeRequired set
// INVARIANT: Email must be unique across volunteers and accounts
func ExecuteRegisterVolunteer(ctx context.Context, input RegisterVolunteerInput, deps RegisterVolunteerDeps) (string, error) {
	if input.Name == "" {
		return "", errors.New("name cannot be empty")
	}
	if input.Email == "" {
		return "", errors.New("email cannot be empty")
	}

	// Check if a volunteer with this email already exists
	if _, err := deps.VolunteerStore.GetByEmail(ctx, input.Email); err == nil {
		return "", ErrVolunteerEmailExists
	}

	v := volunteer.Volunteer{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Notes:     input.Notes,
		Active:    true,
		CreatedAt: time.Now(),
	}

	// Validate the profile before provisioning the account, so a rejected
	// registration leaves no orphan account blocking the email address
	if err := v.Validate(); err != nil {
		return "", err
	}

	tempPassword, err := generateTempPassword()
	if err != nil {
		return "", err
	}

	accountID, err := ExecuteCreateAccount(ctx, CreateAccountInput{
		Email:                  input.Email,
		Password:               tempPassword,
		Role:                   account.RoleVrijwillig,
		PasswordChangeRequired: true,
	}, CreateAccountDeps{AccountStore: deps.AccountStore})
	if err != nil {
		return "", err
	}
	v.AccountID = accountID

	if err := deps.VolunteerStore.Save(ctx, v); err != nil {
		return "", err
	}

	// Invite failure is logged but not fatal
	if deps.EmailSender != nil {
		req := email.InviteRequest(input.Email, input.Name, tempPassword, input.BaseURL)
		if _, err := deps.EmailSender.Send(ctx, req); err != nil {
			slog.Error("invite_email_failed", "error", err, "email", input.Email)
		}
	}

	slog.Info("volunteer_registered", "volunteer_id", v.ID, "email", input.Email)
	return v.ID, nil
}

// UpdateVolunteerInput carries input for profile updates.
type UpdateVolunteerInput struct {
	ID     string
	Name   string
	Email  string
	Phone  string
	Notes  string
	Active bool
}

// ExecuteUpdateVolunteer applies edits to an existing volunteer profile.
// PRE: ID refers to an existing volunteer
// POST: Profile fields are updated; AccountID and CreatedAt are preserved
func ExecuteUpdateVolunteer(ctx context.Context, input UpdateVolunteerInput, deps RegisterVolunteerDeps) error {
	v, err := deps.VolunteerStore.GetByID(ctx, input.ID)
	if err != nil {
		return errors.New("volunteer not found")
	}

	v.Name = input.Name
	v.Email = input.Email
	v.Phone = input.Phone
	v.Notes = input.Notes
	v.Active = input.Active
	v.UpdatedAt = time.Now()

	if err := v.Validate(); err != nil {
		return err
	}

	return deps.VolunteerStore.Save(ctx, v)
}

// generateTempPassword returns a random URL-safe password long enough to pass
// the account minimum length check.
func generateTempPassword() (string, error) {
	buf := make([]byte, 18)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
