// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/base64"

	"github.com/MKhiriev/go-pass-autofill/internal/adapter"
	"github.com/MKhiriev/go-pass-autofill/internal/crypto"
	"github.com/MKhiriev/go-pass-autofill/internal/logger"
	"github.com/MKhiriev/go-pass-autofill/internal/session"
	"github.com/MKhiriev/go-pass-autofill/models"
)

// handshakeService answers decrypt-request events from the autofill
// runtime. It holds no per-request state of its own: the session cache and
// plaintext cache are both keyed, so concurrent requests for distinct
// credential IDs never interfere.
//
// The handshake never prompts for authentication. If the master secret is
// not in the session cache the request fails and the runtime's own UI deals
// with it.
type handshakeService struct {
	sessions *session.Cache
	keychain crypto.KeyChainService
	cache    PlaintextCacheService
	stats    StatisticsService
	bridge   adapter.AutofillBridge
	logger   *logger.Logger
}

// NewHandshakeService constructs a [HandshakeService].
func NewHandshakeService(
	sessions *session.Cache,
	keychain crypto.KeyChainService,
	cache PlaintextCacheService,
	stats StatisticsService,
	bridge adapter.AutofillBridge,
	logger *logger.Logger,
) HandshakeService {
	return &handshakeService{
		sessions: sessions,
		keychain: keychain,
		cache:    cache,
		stats:    stats,
		bridge:   bridge,
		logger:   logger,
	}
}

// HandleDecryptRequest implements [HandshakeService].
func (s *handshakeService) HandleDecryptRequest(ctx context.Context, req models.DecryptRequest) models.DecryptResult {
	masterSecret, ok := s.sessions.Get(session.MasterSecretKey)
	if !ok {
		return s.fail(ctx, req, ErrMasterSecretNotAvailable.Error())
	}

	if !req.Complete() {
		return s.fail(ctx, req, ErrMissingEncryptionComponents.Error())
	}

	salt, err := base64.StdEncoding.DecodeString(req.Salt)
	if err != nil {
		s.logger.Debug().Err(err).Str("credential_id", req.CredentialID).Msg("malformed salt in decrypt request")
		return s.fail(ctx, req, ErrDecryptFailed.Error())
	}
	iv, err := base64.StdEncoding.DecodeString(req.IV)
	if err != nil {
		s.logger.Debug().Err(err).Str("credential_id", req.CredentialID).Msg("malformed iv in decrypt request")
		return s.fail(ctx, req, ErrDecryptFailed.Error())
	}

	key := s.keychain.DeriveKey(masterSecret, salt)
	plaintext, err := s.keychain.DecryptPassword(req.EncryptedPassword, req.Tag, key, iv)
	if err != nil {
		s.logger.Debug().Err(err).Str("credential_id", req.CredentialID).Msg("decrypt request failed")
		return s.fail(ctx, req, ErrDecryptFailed.Error())
	}
	if plaintext == "" {
		// Empty-but-successful is not success; an empty password cannot
		// fill anything.
		return s.fail(ctx, req, ErrEmptyDecryptedPassword.Error())
	}

	s.stats.RecordFillSuccess(ctx, req.Domain)

	if err = s.cache.Store(ctx, req.CredentialID, plaintext, 0); err != nil {
		s.logger.Err(err).Str("credential_id", req.CredentialID).Msg("failed to cache decrypted password")
	}
	if err = s.bridge.StoreDecryptedPasswordForAutofill(ctx, req.CredentialID, plaintext); err != nil {
		s.logger.Err(err).Str("credential_id", req.CredentialID).Msg("failed to hand decrypted password to runtime")
	}

	result := models.DecryptResult{
		CredentialID: req.CredentialID,
		Password:     plaintext,
		Success:      true,
	}
	if err = s.bridge.UpdateDecryptResult(ctx, result); err != nil {
		s.logger.Err(err).Str("credential_id", req.CredentialID).Msg("failed to deliver decrypt result")
	}

	return result
}

func (s *handshakeService) fail(ctx context.Context, req models.DecryptRequest, reason string) models.DecryptResult {
	s.stats.RecordFillFailure(ctx, req.Domain, reason)

	result := models.DecryptResult{
		CredentialID: req.CredentialID,
		Success:      false,
		ErrorMessage: reason,
	}
	if err := s.bridge.UpdateDecryptResult(ctx, result); err != nil {
		s.logger.Err(err).Str("credential_id", req.CredentialID).Msg("failed to deliver decrypt failure")
	}

	return result
}
