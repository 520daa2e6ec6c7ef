package service

import (
	"github.com/MKhiriev/go-pass-autofill/internal/adapter"
	"github.com/MKhiriev/go-pass-autofill/internal/crypto"
	"github.com/MKhiriev/go-pass-autofill/internal/logger"
	"github.com/MKhiriev/go-pass-autofill/internal/repository"
	"github.com/MKhiriev/go-pass-autofill/internal/session"
	"github.com/MKhiriev/go-pass-autofill/internal/store"
	"github.com/MKhiriev/go-pass-autofill/internal/validators"
)

// Services bundles every pipeline service behind one handle, wired once at
// startup.
type Services struct {
	Credentials CredentialService
	Settings    SettingsService
	Handshake   HandshakeService
	Cache       PlaintextCacheService
	Statistics  StatisticsService
}

// Dependencies are the external collaborators the services are built on.
type Dependencies struct {
	Store      store.SecretStore
	Keychain   crypto.KeyChainService
	Sessions   *session.Cache
	Repository repository.VaultRepository
	Bridge     adapter.AutofillBridge
	Logger     *logger.Logger
}

// NewServices wires the full service graph in dependency order.
func NewServices(deps Dependencies) *Services {
	cache := NewPlaintextCacheService(deps.Store, deps.Logger)
	stats := NewStatisticsService(deps.Store, deps.Logger)
	settings := NewSettingsService(deps.Store, deps.Bridge, deps.Logger)

	credentials := NewCredentialService(
		deps.Store,
		deps.Keychain,
		validators.NewCredentialValidator(),
		settings,
		cache,
		stats,
		deps.Repository,
		deps.Bridge,
		deps.Logger,
	)

	handshake := NewHandshakeService(
		deps.Sessions,
		deps.Keychain,
		cache,
		stats,
		deps.Bridge,
		deps.Logger,
	)

	return &Services{
		Credentials: credentials,
		Settings:    settings,
		Handshake:   handshake,
		Cache:       cache,
		Statistics:  stats,
	}
}
