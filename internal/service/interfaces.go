package service

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pass-autofill/models"
)

// CredentialService prepares vault entries for the external autofill
// runtime. It is the only component that performs fresh credential
// encryption.
type CredentialService interface {
	// PrepareCredentials converts entries into credential envelopes shaped
	// by the current settings policy, persists the full list encrypted
	// under masterSecret, and pushes it to the runtime. Per-entry failures
	// are logged and skipped; only the authoritative opaque-store write can
	// fail the call. The runtime push is best-effort and always preceded by
	// a settings sync.
	PrepareCredentials(ctx context.Context, entries []models.VaultEntry, masterSecret string) error

	// PrepareFromRepository loads all entries from the injected vault
	// repository and delegates to PrepareCredentials.
	PrepareFromRepository(ctx context.Context, masterSecret string) error

	// LoadCredentials decrypts and returns the persisted envelope list.
	// Returns an empty list when nothing has been prepared yet.
	LoadCredentials(ctx context.Context, masterSecret string) ([]models.CredentialEnvelope, error)

	// ClearCredentials removes the persisted envelope bundle and the
	// plaintext cache, and asks the runtime to drop its copy (best-effort).
	ClearCredentials(ctx context.Context) error
}

// SettingsService owns the autofill settings policy singleton: persisted
// locally, mirrored to the runtime after every change.
type SettingsService interface {
	// Get returns the persisted policy, or the default policy when none has
	// been saved yet.
	Get(ctx context.Context) (models.SettingsPolicy, error)

	// Update shallow-merges the partial update over the current policy,
	// persists the merged result, then mirrors it to the runtime. The
	// mirror is best-effort: persistence is authoritative and the runtime
	// catches up on the next successful sync. Returns the merged policy.
	Update(ctx context.Context, update models.SettingsPolicyUpdate) (models.SettingsPolicy, error)

	// Sync mirrors the current persisted policy to the runtime.
	Sync(ctx context.Context) error

	// Enable turns autofill on and asks the platform to offer the
	// provider-selection flow.
	Enable(ctx context.Context) (models.SettingsPolicy, error)

	// Disable turns autofill off and asks the platform to release this
	// application as the autofill provider.
	Disable(ctx context.Context) (models.SettingsPolicy, error)
}

// HandshakeService answers the runtime's decrypt-request events. One call
// handles one event; concurrent calls for distinct credential IDs are safe.
type HandshakeService interface {
	// HandleDecryptRequest runs the decrypt protocol for one request and
	// reports the outcome to the runtime via the bridge. The returned
	// result mirrors what was sent; failure results carry a reason and
	// never plaintext.
	HandleDecryptRequest(ctx context.Context, req models.DecryptRequest) models.DecryptResult
}

// PlaintextCacheService is the short-lived store of decrypted passwords the
// runtime reads while filling a form. Entries expire lazily on read.
type PlaintextCacheService interface {
	// Store caches plaintext for credentialID for ttl. A non-positive ttl
	// falls back to the 60-second default.
	Store(ctx context.Context, credentialID, plaintext string, ttl time.Duration) error

	// Retrieve returns the cached plaintext, or [ErrCacheEntryNotFound]
	// when the entry is absent or expired. An expired entry is removed
	// from the persisted map before the miss is reported.
	Retrieve(ctx context.Context, credentialID string) (string, error)

	// Clear removes the entry for credentialID, if any.
	Clear(ctx context.Context, credentialID string) error

	// ClearAll drops the whole cache blob from the opaque store.
	ClearAll(ctx context.Context) error
}

// StatisticsService records autofill usage counters. Recording is
// best-effort: failures are logged, never returned.
type StatisticsService interface {
	RecordFillSuccess(ctx context.Context, domain string)
	RecordFillFailure(ctx context.Context, domain, reason string)
	RecordCredentialsSaved(ctx context.Context, count int)

	// Get returns the persisted counters, or zero counters when none exist.
	Get(ctx context.Context) (models.FillStatistics, error)
}
