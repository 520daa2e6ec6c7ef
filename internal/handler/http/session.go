// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-pass-autofill/internal/logger"
	"github.com/MKhiriev/go-pass-autofill/internal/session"
	"github.com/MKhiriev/go-pass-autofill/models"
)

// unlockSession opens an autofill session after the host application has
// unlocked the vault. The master secret is stored in the session cache for
// the configured session window, and credential preparation is kicked off in
// the background so envelopes are ready before the first fill request
// arrives. The call is acknowledged with 202 Accepted without waiting for
// the preparation to finish.
func (h *Handler) unlockSession(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.UnlockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.unlockSession").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if req.MasterSecret == "" {
		log.Error().Str("func", "*Handler.unlockSession").Msg("unlock request without master secret")
		http.Error(w, "missing master secret", http.StatusBadRequest)
		return
	}

	h.sessions.Set(session.MasterSecretKey, req.MasterSecret, h.sessionTTL)

	// Detach from the request context so the preparation survives the ack.
	ctx := context.WithoutCancel(r.Context())
	go func() {
		if err := h.services.Credentials.PrepareFromRepository(ctx, req.MasterSecret); err != nil {
			log.Err(err).Msg("credential preparation after unlock failed")
		}
	}()

	w.WriteHeader(http.StatusAccepted)
}

// lockSession closes the autofill session: the master secret leaves the
// session cache and the plaintext cache is dropped. The encrypted envelope
// bundle stays; it is useless without the master secret.
func (h *Handler) lockSession(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	h.sessions.Clear()

	if err := h.services.Cache.ClearAll(r.Context()); err != nil {
		// The session is gone either way; a stale cache entry expires on its
		// own within the cache TTL.
		log.Err(err).Msg("failed to drop plaintext cache on lock")
	}

	w.WriteHeader(http.StatusNoContent)
}
