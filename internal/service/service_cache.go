package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-pass-autofill/internal/logger"
	"github.com/MKhiriev/go-pass-autofill/internal/store"
	"github.com/MKhiriev/go-pass-autofill/models"
)

// DefaultPlaintextTTL bounds how long a decrypted password stays readable
// after a successful handshake.
const DefaultPlaintextTTL = 60 * time.Second

// plaintextCacheService persists the decrypted-password map as one JSON
// blob in the opaque store. Every call is a read-modify-write of the whole
// map: the store offers no per-key transactionality, so concurrent stores
// to different credential IDs are last-writer-wins. The mutex serialises
// writers within this process.
type plaintextCacheService struct {
	store  store.SecretStore
	logger *logger.Logger

	mu sync.Mutex
}

// NewPlaintextCacheService constructs a [PlaintextCacheService] backed by
// the given opaque store.
func NewPlaintextCacheService(secretStore store.SecretStore, logger *logger.Logger) PlaintextCacheService {
	return &plaintextCacheService{store: secretStore, logger: logger}
}

// Store implements [PlaintextCacheService].
func (s *plaintextCacheService) Store(ctx context.Context, credentialID, plaintext string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = DefaultPlaintextTTL
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load(ctx)
	if err != nil {
		return err
	}

	now := time.Now()
	entries[credentialID] = models.PlaintextCacheEntry{
		Password:   plaintext,
		StoredAt:   now,
		ExpiryTime: now.Add(ttl),
	}

	return s.persist(ctx, entries)
}

// Retrieve implements [PlaintextCacheService]. Expiry is checked lazily
// here; an expired entry is deleted and the shrunk map persisted before the
// miss is reported, so a second retrieve is an identical miss.
func (s *plaintextCacheService) Retrieve(ctx context.Context, credentialID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load(ctx)
	if err != nil {
		return "", err
	}

	entry, ok := entries[credentialID]
	if !ok {
		return "", ErrCacheEntryNotFound
	}

	if entry.Expired(time.Now()) {
		delete(entries, credentialID)
		if err = s.persist(ctx, entries); err != nil {
			s.logger.Err(err).Str("credential_id", credentialID).Msg("failed to persist cache after expiry")
		}
		return "", ErrCacheEntryNotFound
	}

	return entry.Password, nil
}

// Clear implements [PlaintextCacheService].
func (s *plaintextCacheService) Clear(ctx context.Context, credentialID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load(ctx)
	if err != nil {
		return err
	}
	if _, ok := entries[credentialID]; !ok {
		return nil
	}

	delete(entries, credentialID)
	return s.persist(ctx, entries)
}

// ClearAll implements [PlaintextCacheService].
func (s *plaintextCacheService) ClearAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.RemoveItem(ctx, store.KeyDecryptedPasswords); err != nil {
		return fmt.Errorf("remove plaintext cache: %w", err)
	}
	return nil
}

func (s *plaintextCacheService) load(ctx context.Context) (map[string]models.PlaintextCacheEntry, error) {
	raw, err := s.store.GetItem(ctx, store.KeyDecryptedPasswords)
	if errors.Is(err, store.ErrItemNotFound) {
		return make(map[string]models.PlaintextCacheEntry), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read plaintext cache: %w", err)
	}

	entries := make(map[string]models.PlaintextCacheEntry)
	if err = json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, fmt.Errorf("decode plaintext cache: %w", err)
	}
	return entries, nil
}

func (s *plaintextCacheService) persist(ctx context.Context, entries map[string]models.PlaintextCacheEntry) error {
	payload, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode plaintext cache: %w", err)
	}
	if err = s.store.SetItem(ctx, store.KeyDecryptedPasswords, string(payload)); err != nil {
		return fmt.Errorf("write plaintext cache: %w", err)
	}
	return nil
}
