// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-autofill/internal/adapter"
	"github.com/MKhiriev/go-pass-autofill/internal/crypto"
	"github.com/MKhiriev/go-pass-autofill/internal/logger"
	"github.com/MKhiriev/go-pass-autofill/internal/repository"
	"github.com/MKhiriev/go-pass-autofill/internal/store"
	"github.com/MKhiriev/go-pass-autofill/internal/utils"
	"github.com/MKhiriev/go-pass-autofill/internal/validators"
	"github.com/MKhiriev/go-pass-autofill/models"
)

// credentialService builds transport-ready credential envelopes out of
// vault entries. The opaque-store write of the encrypted bundle is the
// authoritative side effect; the runtime push is best-effort and strictly
// preceded by a settings sync, so the runtime never interprets credentials
// under a stale biometric policy.
type credentialService struct {
	store     store.SecretStore
	keychain  crypto.KeyChainService
	validator validators.CredentialValidator
	settings  SettingsService
	cache     PlaintextCacheService
	stats     StatisticsService
	repo      repository.VaultRepository
	bridge    adapter.AutofillBridge
	logger    *logger.Logger
}

// NewCredentialService constructs a [CredentialService].
func NewCredentialService(
	secretStore store.SecretStore,
	keychain crypto.KeyChainService,
	validator validators.CredentialValidator,
	settings SettingsService,
	cache PlaintextCacheService,
	stats StatisticsService,
	repo repository.VaultRepository,
	bridge adapter.AutofillBridge,
	logger *logger.Logger,
) CredentialService {
	return &credentialService{
		store:     secretStore,
		keychain:  keychain,
		validator: validator,
		settings:  settings,
		cache:     cache,
		stats:     stats,
		repo:      repo,
		bridge:    bridge,
		logger:    logger,
	}
}

// PrepareCredentials implements [CredentialService].
func (s *credentialService) PrepareCredentials(ctx context.Context, entries []models.VaultEntry, masterSecret string) error {
	policy, err := s.settings.Get(ctx)
	if err != nil {
		return fmt.Errorf("read settings policy: %w", err)
	}

	envelopes := make([]models.CredentialEnvelope, 0, len(entries))
	plaintexts := make(map[string]string)

	for _, entry := range entries {
		envelope, plaintext, err := s.buildEnvelope(entry, policy, masterSecret)
		if err != nil {
			s.logger.Warn().Err(err).Str("entry_id", entry.ID).Msg("skipping vault entry")
			continue
		}

		envelopes = append(envelopes, envelope)
		if plaintext != "" {
			plaintexts[envelope.ID] = plaintext
		}
	}

	// Authoritative persistence: the encrypted bundle in the opaque store.
	blob, err := s.keychain.EncryptPayload(envelopes, masterSecret)
	if err != nil {
		return fmt.Errorf("encrypt credential bundle: %w", err)
	}
	if err = s.store.SetItem(ctx, store.KeyCredentials, blob); err != nil {
		return fmt.Errorf("persist credential bundle: %w", err)
	}

	// The runtime must see the policy that shaped these envelopes before it
	// sees the envelopes. If the policy cannot be delivered the credential
	// push is withheld too; both arrive together on the next pass.
	if err = s.bridge.UpdateSettings(ctx, policy); err != nil {
		s.logger.Err(err).Msg("failed to sync settings to runtime, skipping credential push")
	} else if err = s.bridge.PrepareCredentials(ctx, envelopes); err != nil {
		s.logger.Err(err).Msg("failed to push credentials to runtime")
	}

	// Pre-warm the plaintext cache for entries that arrived as plaintext so
	// an immediate fill does not need a decrypt round trip.
	for id, plaintext := range plaintexts {
		if err = s.cache.Store(ctx, id, plaintext, 0); err != nil {
			s.logger.Err(err).Str("credential_id", id).Msg("failed to pre-warm plaintext cache")
		}
	}

	s.stats.RecordCredentialsSaved(ctx, len(envelopes))

	return nil
}

// buildEnvelope classifies one vault entry and produces its envelope. The
// second return value carries the entry's plaintext when the source was
// plaintext, for pre-warming the cache; it is empty otherwise.
func (s *credentialService) buildEnvelope(entry models.VaultEntry, policy models.SettingsPolicy, masterSecret string) (models.CredentialEnvelope, string, error) {
	domain := utils.NormalizeDomain(entry.Website)
	if err := s.validator.ValidateEntry(entry, domain); err != nil {
		return models.CredentialEnvelope{}, "", err
	}

	switch {
	case entry.IsDecrypted && entry.Password != "":
		envelope, err := s.buildFromPlaintext(entry, domain, policy, masterSecret)
		if err != nil {
			return models.CredentialEnvelope{}, "", err
		}
		if err = s.validator.ValidateEnvelope(envelope); err != nil {
			return models.CredentialEnvelope{}, "", err
		}
		return envelope, entry.Password, nil

	case !entry.IsDecrypted && entry.Password != "" && entry.HasFullEnvelope():
		// Already encrypted with a complete envelope: pass through as-is.
		envelope := models.CredentialEnvelope{
			ID:        entry.ID,
			Domain:    domain,
			Username:  entry.Username,
			Password:  entry.Password,
			Salt:      entry.PasswordSalt,
			IV:        entry.PasswordIV,
			Tag:       entry.PasswordTag,
			Encrypted: true,
		}
		if err := s.validator.ValidateEnvelope(envelope); err != nil {
			return models.CredentialEnvelope{}, "", err
		}
		return envelope, "", nil

	case !entry.IsDecrypted && entry.Password != "":
		// Legacy record: ciphertext without a complete salt/iv/tag triple.
		// No plaintext is obtainable here, so the entry cannot be
		// re-encrypted; it needs a re-keying pass with a verified plaintext
		// source before it can be served to autofill.
		return models.CredentialEnvelope{}, "", fmt.Errorf("entry %s has ciphertext without a usable envelope, needs re-keying", entry.ID)

	default:
		return models.CredentialEnvelope{}, "", fmt.Errorf("entry %s has no password material", entry.ID)
	}
}

// buildFromPlaintext is the only path that performs fresh encryption. When
// the policy does not require biometric confirmation the envelope is
// deliberately downgraded to plaintext: the runtime treats an encryption
// envelope as the signal to force a biometric prompt before fill, and the
// user has explicitly opted out of that prompt.
func (s *credentialService) buildFromPlaintext(entry models.VaultEntry, domain string, policy models.SettingsPolicy, masterSecret string) (models.CredentialEnvelope, error) {
	envelope := models.CredentialEnvelope{
		ID:       entry.ID,
		Domain:   domain,
		Username: entry.Username,
	}

	if !policy.RequireBiometric {
		envelope.Password = entry.Password
		envelope.Encrypted = false
		return envelope, nil
	}

	salt, err := s.keychain.GenerateSalt()
	if err != nil {
		return models.CredentialEnvelope{}, fmt.Errorf("generate salt for entry %s: %w", entry.ID, err)
	}
	iv, err := s.keychain.GenerateIV()
	if err != nil {
		return models.CredentialEnvelope{}, fmt.Errorf("generate iv for entry %s: %w", entry.ID, err)
	}

	key := s.keychain.DeriveKey(masterSecret, salt)
	ciphertext, tag, err := s.keychain.EncryptPassword(entry.Password, key, iv)
	if err != nil {
		return models.CredentialEnvelope{}, fmt.Errorf("encrypt entry %s: %w", entry.ID, err)
	}

	envelope.Password = ciphertext
	envelope.Salt = base64.StdEncoding.EncodeToString(salt)
	envelope.IV = base64.StdEncoding.EncodeToString(iv)
	envelope.Tag = tag
	envelope.Encrypted = true

	return envelope, nil
}

// PrepareFromRepository implements [CredentialService].
func (s *credentialService) PrepareFromRepository(ctx context.Context, masterSecret string) error {
	entries, err := s.repo.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("load vault entries: %w", err)
	}
	return s.PrepareCredentials(ctx, entries, masterSecret)
}

// LoadCredentials implements [CredentialService].
func (s *credentialService) LoadCredentials(ctx context.Context, masterSecret string) ([]models.CredentialEnvelope, error) {
	blob, err := s.store.GetItem(ctx, store.KeyCredentials)
	if errors.Is(err, store.ErrItemNotFound) {
		return []models.CredentialEnvelope{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read credential bundle: %w", err)
	}

	var envelopes []models.CredentialEnvelope
	if err = s.keychain.DecryptPayload(blob, masterSecret, &envelopes); err != nil {
		return nil, fmt.Errorf("decrypt credential bundle: %w", err)
	}
	return envelopes, nil
}

// ClearCredentials implements [CredentialService].
func (s *credentialService) ClearCredentials(ctx context.Context) error {
	if err := s.store.RemoveItem(ctx, store.KeyCredentials); err != nil {
		return fmt.Errorf("remove credential bundle: %w", err)
	}
	if err := s.cache.ClearAll(ctx); err != nil {
		return fmt.Errorf("clear plaintext cache: %w", err)
	}
	if err := s.bridge.ClearCache(ctx); err != nil {
		s.logger.Err(err).Msg("failed to clear runtime credential cache")
	}
	return nil
}
