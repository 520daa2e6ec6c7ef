package store

//go:generate mockgen -source=interfaces.go -destination=../mock/secret_store_mock.go -package=mock

import "context"

// SecretStore is the opaque platform key-value store the pipeline persists
// into. Operations are atomic per key; there is no transactionality across
// keys, so multi-key updates are last-writer-wins.
type SecretStore interface {
	// GetItem returns the value stored under key. Returns [ErrItemNotFound]
	// when the key has never been set or has been removed.
	GetItem(ctx context.Context, key string) (string, error)

	// SetItem stores value under key, replacing any previous value.
	SetItem(ctx context.Context, key, value string) error

	// RemoveItem deletes the value stored under key. Removing an absent key
	// is not an error.
	RemoveItem(ctx context.Context, key string) error
}
