package volunteer

import (
	"errors"
	"strings"
	"time"
)

// Max length constants.
const (
	MaxNameLength  = 200
	MaxEmailLength = 254
	MaxPhoneLength = 30
	MaxNotesLength = 2000
)

// Domain errors
var (
	ErrEmptyName    = errors.New("volunteer name cannot be empty")
	ErrEmptyEmail   = errors.New("volunteer email cannot be empty")
	ErrInvalidEmail = errors.New("volunteer email must contain '@'")
)

// Volunteer is the profile of a registered volunteer. Credentials live on
// the linked account; this entity carries the contact details the admin
// screens and the todo assignee lookup use.
type Volunteer struct {
	ID        string
	AccountID string // may be empty until an account is provisioned
	Name      string
	Email     string
	Phone     string
	Notes     string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the volunteer's invariants.
// PRE: none
// POST: returns nil if valid, error describing the first violation otherwise
func (v *Volunteer) Validate() error {
	if strings.TrimSpace(v.Name) == "" {
		return ErrEmptyName
	}
	if len(v.Name) > MaxNameLength {
		return errors.New("volunteer name cannot exceed 200 characters")
	}
	if strings.TrimSpace(v.Email) == "" {
		return ErrEmptyEmail
	}
	if len(v.Email) > MaxEmailLength {
		return errors.New("volunteer email cannot exceed 254 characters")
	}
	if !strings.Contains(v.Email, "@") {
		return ErrInvalidEmail
	}
	if len(v.Phone) > MaxPhoneLength {
		return errors.New("volunteer phone cannot exceed 30 characters")
	}
	if len(v.Notes) > MaxNotesLength {
		return errors.New("volunteer notes cannot exceed 2000 characters")
	}
	return nil
}

// Deactivate marks the volunteer as inactive.
// PRE: none
// POST: Active is false, UpdatedAt is set to now
func (v *Volunteer) Deactivate() {
	v.Active = false
	v.UpdatedAt = time.Now()
}

// Reactivate marks the volunteer as active again.
// PRE: none
// POST: Active is true, UpdatedAt is set to now
func (v *Volunteer) Reactivate() {
	v.Active = true
	v.UpdatedAt = time.Now()
}
