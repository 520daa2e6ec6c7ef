package service

import "errors"

var (
	// Decrypt handshake failure reasons. The error text is the reason
	// string surfaced to the runtime, so the wording is part of the
	// protocol.
	ErrMasterSecretNotAvailable    = errors.New("master secret not available")
	ErrMissingEncryptionComponents = errors.New("missing encryption components")
	ErrEmptyDecryptedPassword      = errors.New("decryption resulted in empty password")
	ErrDecryptFailed               = errors.New("failed to decrypt password")

	ErrCacheEntryNotFound = errors.New("cache entry not found")
)
