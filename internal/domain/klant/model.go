package klant

import (
	"errors"
	"strings"
	"time"
)

// Max length constants.
const (
	MaxNameLength    = 200
	MaxAddressLength = 300
	MaxCityLength    = 100
	MaxPhoneLength   = 30
	MaxEmailLength   = 254
	MaxNotesLength   = 2000
)

// Domain errors
var (
	ErrEmptyName    = errors.New("klant name cannot be empty")
	ErrInvalidEmail = errors.New("klant email must contain '@'")
)

// Klant is a customer/client the volunteers work for.
type Klant struct {
	ID         string
	Name       string
	Address    string
	PostalCode string
	City       string
	Phone      string
	Email      string // optional
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Validate checks the klant's invariants.
// PRE: none
// POST: returns nil if valid, error describing the first violation otherwise
func (k *Klant) Validate() error {
	if strings.TrimSpace(k.Name) == "" {
		return ErrEmptyName
	}
	if len(k.Name) > MaxNameLength {
		return errors.New("klant name cannot exceed 200 characters")
	}
	if len(k.Address) > MaxAddressLength {
		return errors.New("klant address cannot exceed 300 characters")
	}
	if len(k.City) > MaxCityLength {
		return errors.New("klant city cannot exceed 100 characters")
	}
	if len(k.Phone) > MaxPhoneLength {
		return errors.New("klant phone cannot exceed 30 characters")
	}
	if k.Email != "" {
		if len(k.Email) > MaxEmailLength {
			return errors.New("klant email cannot exceed 254 characters")
		}
		if !strings.Contains(k.Email, "@") {
			return ErrInvalidEmail
		}
	}
	if len(k.Notes) > MaxNotesLength {
		return errors.New("klant notes cannot exceed 2000 characters")
	}
	return nil
}
