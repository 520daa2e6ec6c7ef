package validators_test

import (
	"testing"

	"github.com/MKhiriev/go-pass-autofill/internal/validators"
	"github.com/MKhiriev/go-pass-autofill/models"
	"github.com/stretchr/testify/assert"
)

func TestCredentialValidator_ValidateEntry(t *testing.T) {
	v := validators.NewCredentialValidator()

	tests := []struct {
		name    string
		entry   models.VaultEntry
		domain  string
		wantErr error
	}{
		{
			name:   "valid entry",
			entry:  models.VaultEntry{ID: "p1", Username: "u"},
			domain: "example.com",
		},
		{
			name:    "missing domain",
			entry:   models.VaultEntry{ID: "p2", Username: "u"},
			domain:  "",
			wantErr: validators.ErrMissingDomain,
		},
		{
			name:    "missing username",
			entry:   models.VaultEntry{ID: "p3"},
			domain:  "example.com",
			wantErr: validators.ErrMissingUsername,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateEntry(tt.entry, tt.domain)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCredentialValidator_ValidateEnvelope(t *testing.T) {
	v := validators.NewCredentialValidator()

	tests := []struct {
		name     string
		envelope models.CredentialEnvelope
		wantErr  error
	}{
		{
			name:     "encrypted with full triple",
			envelope: models.CredentialEnvelope{Password: "ct", Salt: "s", IV: "i", Tag: "t", Encrypted: true},
		},
		{
			name:     "plaintext with empty triple",
			envelope: models.CredentialEnvelope{Password: "pw", Encrypted: false},
		},
		{
			name:     "encrypted missing tag",
			envelope: models.CredentialEnvelope{Password: "ct", Salt: "s", IV: "i", Encrypted: true},
			wantErr:  validators.ErrInconsistentEnvelope,
		},
		{
			name:     "plaintext with stray salt",
			envelope: models.CredentialEnvelope{Password: "pw", Salt: "s", Encrypted: false},
			wantErr:  validators.ErrInconsistentEnvelope,
		},
		{
			name:     "no password",
			envelope: models.CredentialEnvelope{Encrypted: false},
			wantErr:  validators.ErrEmptyPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateEnvelope(tt.envelope)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
