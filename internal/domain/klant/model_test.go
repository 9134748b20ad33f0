package klant

import (
	"strings"
	"testing"
)

// TestKlant_Validate tests Klant validation rules.
func TestKlant_Validate(t *testing.T) {
	valid := Klant{
		ID:         "k1",
		Name:       "Mevrouw Jansen",
		Address:    "Dorpsstraat 1",
		PostalCode: "1234 AB",
		City:       "Waarland",
		Phone:      "0226-123456",
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid klant, got: %v", err)
	}

	// Email is optional; empty passes, malformed fails.
	noEmail := valid
	noEmail.Email = ""
	if err := noEmail.Validate(); err != nil {
		t.Fatalf("expected klant without email to be valid, got: %v", err)
	}

	tests := []struct {
		name    string
		modify  func(k *Klant)
		wantErr string
	}{
		{"empty name", func(k *Klant) { k.Name = "" }, "name cannot be empty"},
		{"name too long", func(k *Klant) { k.Name = strings.Repeat("a", MaxNameLength+1) }, "name cannot exceed"},
		{"address too long", func(k *Klant) { k.Address = strings.Repeat("a", MaxAddressLength+1) }, "address cannot exceed"},
		{"city too long", func(k *Klant) { k.City = strings.Repeat("a", MaxCityLength+1) }, "city cannot exceed"},
		{"phone too long", func(k *Klant) { k.Phone = strings.Repeat("1", MaxPhoneLength+1) }, "phone cannot exceed"},
		{"bad email", func(k *Klant) { k.Email = "jansen.example.nl" }, "must contain '@'"},
		{"notes too long", func(k *Klant) { k.Notes = strings.Repeat("n", MaxNotesLength+1) }, "notes cannot exceed"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			k := valid
			tc.modify(&k)
			err := k.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("expected error containing %q, got: %v", tc.wantErr, err)
			}
		})
	}
}
