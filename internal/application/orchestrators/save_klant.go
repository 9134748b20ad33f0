package orchestrators

import (
	"context"
	"errors"
	"time"

	"waaranders/internal/domain/klant"

	"github.com/google/uuid"
)

// KlantStore defines the interface for klant persistence.
type KlantStore interface {
	Save(ctx context.Context, k klant.Klant) error
	GetByID(ctx context.Context, id string) (klant.Klant, error)
	Delete(ctx context.Context, id string) error
}

// SaveKlantInput carries input for the orchestrator. An empty ID means create.
type SaveKlantInput struct {
	ID         string
	Name       string
	Address    string
	PostalCode string
	City       string
	Phone      string
	Email      string
	Notes      string
}

// SaveKlantDeps holds dependencies for SaveKlant.
type SaveKlantDeps struct {
	KlantStore KlantStore
}

// ExecuteSaveKlant creates or updates a klant record.
// PRE: Name is non-empty
// POST: Klant is persisted; returns the klant ID
func ExecuteSaveKlant(ctx context.Context, input SaveKlantInput, deps SaveKlantDeps) (string, error) {
	k := klant.Klant{
		ID:         input.ID,
		Name:       input.Name,
		Address:    input.Address,
		PostalCode: input.PostalCode,
		City:       input.City,
		Phone:      input.Phone,
		Email:      input.Email,
		Notes:      input.Notes,
	}

	if input.ID == "" {
		k.ID = uuid.New().String()
		k.CreatedAt = time.Now()
	} else {
		existing, err := deps.KlantStore.GetByID(ctx, input.ID)
		if err != nil {
			return "", errors.New("klant not found")
		}
		k.CreatedAt = existing.CreatedAt
		k.UpdatedAt = time.Now()
	}

	// Validate domain rules
	if err := k.Validate(); err != nil {
		return "", err
	}

	if err := deps.KlantStore.Save(ctx, k); err != nil {
		return "", err
	}
	return k.ID, nil
}

// ExecuteDeleteKlant removes a klant record.
// PRE: ID refers to an existing klant
// POST: Klant is removed from the store
func ExecuteDeleteKlant(ctx context.Context, id string, deps SaveKlantDeps) error {
	if id == "" {
		return errors.New("id cannot be empty")
	}
	if _, err := deps.KlantStore.GetByID(ctx, id); err != nil {
		return errors.New("klant not found")
	}
	return deps.KlantStore.Delete(ctx, id)
}
