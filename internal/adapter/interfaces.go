package adapter

//go:generate mockgen -source=interfaces.go -destination=../mock/autofill_bridge_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-pass-autofill/models"
)

// AutofillBridge is the outbound half of the channel to the external
// autofill runtime: the privilege-separated platform service that stores
// prepared credentials, matches form fields and raises decrypt-request
// events back into this pipeline.
//
// The runtime never receives key material. It holds either ciphertext plus
// its envelope (biometric-gated fill) or, under an explicit policy decision,
// plaintext. Which of the two it gets is encoded per credential by the
// Encrypted flag.
type AutofillBridge interface {
	// IsSupported reports whether the platform autofill service exists on
	// this device at all.
	IsSupported(ctx context.Context) (bool, error)

	// IsEnabled reports whether this application is the currently selected
	// autofill provider.
	IsEnabled(ctx context.Context) (bool, error)

	// RequestEnable asks the platform to offer the user the flow for
	// selecting this application as the autofill provider.
	RequestEnable(ctx context.Context) error

	// RequestDisable asks the platform to release this application as the
	// autofill provider.
	RequestDisable(ctx context.Context) error

	// PrepareCredentials replaces the runtime's credential set with the
	// given envelope list.
	PrepareCredentials(ctx context.Context, credentials []models.CredentialEnvelope) error

	// UpdateSettings mirrors the current settings policy to the runtime.
	// The runtime must see the policy before it receives credentials shaped
	// by that policy; callers are responsible for the ordering.
	UpdateSettings(ctx context.Context, policy models.SettingsPolicy) error

	// ClearCache asks the runtime to drop every stored credential and any
	// cached fill material.
	ClearCache(ctx context.Context) error

	// StoreDecryptedPasswordForAutofill hands the runtime a just-decrypted
	// password so an imminent fill does not need another decrypt handshake.
	StoreDecryptedPasswordForAutofill(ctx context.Context, credentialID, plaintext string) error

	// UpdateDecryptResult answers a decrypt-request event. Failure results
	// carry a reason and never carry plaintext.
	UpdateDecryptResult(ctx context.Context, result models.DecryptResult) error
}
