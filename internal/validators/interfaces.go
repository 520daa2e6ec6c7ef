package validators

//go:generate mockgen -source=interfaces.go -destination=../mock/credential_validator_mock.go -package=mock

import "github.com/MKhiriev/go-pass-autofill/models"

// CredentialValidator checks vault entries on their way into the envelope
// builder and the envelopes coming out of it. The builder never constructs
// an inconsistent envelope; the validator is the gate that enforces it.
type CredentialValidator interface {
	// ValidateEntry checks that an entry is fillable at all: it must yield a
	// non-empty normalised domain and carry a username. Returns
	// [ErrMissingDomain] or [ErrMissingUsername] otherwise.
	ValidateEntry(entry models.VaultEntry, domain string) error

	// ValidateEnvelope checks the envelope encryption invariant: the
	// salt/iv/tag triple is fully present when Encrypted is set and fully
	// absent when it is not, and the password field is non-empty. Returns
	// [ErrInconsistentEnvelope] or [ErrEmptyPassword] otherwise.
	ValidateEnvelope(envelope models.CredentialEnvelope) error
}
