package http

import (
	"net/http"

	"github.com/MKhiriev/go-pass-autofill/internal/logger"
	"github.com/MKhiriev/go-pass-autofill/internal/session"
)

// prepareCredentials rebuilds the credential envelopes from the local vault
// and pushes them to the runtime. The host application calls it after vault
// edits so the runtime's list stays current without waiting for the next
// unlock. Requires an open session; otherwise there is no key to encrypt
// under.
func (h *Handler) prepareCredentials(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	masterSecret, ok := h.sessions.Get(session.MasterSecretKey)
	if !ok {
		log.Error().Str("func", "*Handler.prepareCredentials").Msg("prepare requested without an open session")
		http.Error(w, "master secret not available", http.StatusConflict)
		return
	}

	if err := h.services.Credentials.PrepareFromRepository(ctx, masterSecret); err != nil {
		log.Err(err).Msg("credential preparation failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
