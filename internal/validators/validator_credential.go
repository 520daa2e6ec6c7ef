package validators

import "github.com/MKhiriev/go-pass-autofill/models"

type credentialValidator struct{}

// NewCredentialValidator constructs the default [CredentialValidator].
func NewCredentialValidator() CredentialValidator {
	return &credentialValidator{}
}

// ValidateEntry implements [CredentialValidator].
func (v *credentialValidator) ValidateEntry(entry models.VaultEntry, domain string) error {
	if domain == "" {
		return ErrMissingDomain
	}
	if entry.Username == "" {
		return ErrMissingUsername
	}
	return nil
}

// ValidateEnvelope implements [CredentialValidator].
func (v *credentialValidator) ValidateEnvelope(envelope models.CredentialEnvelope) error {
	if envelope.Password == "" {
		return ErrEmptyPassword
	}
	if !envelope.Consistent() {
		return ErrInconsistentEnvelope
	}
	return nil
}
