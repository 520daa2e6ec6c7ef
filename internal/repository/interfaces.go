package repository

//go:generate mockgen -source=interfaces.go -destination=../mock/vault_repository_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-pass-autofill/models"
)

// VaultRepository is the pipeline's read-only view of the password vault.
// The vault subsystem owns the records; this repository only loads them for
// credential preparation and the by-id decrypt path.
type VaultRepository interface {
	// FindByID returns the vault entry with the given id, or
	// [ErrEntryNotFound].
	FindByID(ctx context.Context, id string) (models.VaultEntry, error)

	// FindAll returns every vault entry.
	FindAll(ctx context.Context) ([]models.VaultEntry, error)
}
