package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-pass-autofill/internal/logger"
	"github.com/MKhiriev/go-pass-autofill/models"
)

// decryptRequest receives one decrypt-request event from the autofill
// runtime. The event is acknowledged with 202 Accepted immediately and the
// handshake runs in the background; the runtime must never block on this
// call while a form is waiting to be filled. The outcome travels back over
// the bridge, not over this response.
func (h *Handler) decryptRequest(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.DecryptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.decryptRequest").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if req.CredentialID == "" {
		log.Error().Str("func", "*Handler.decryptRequest").Msg("decrypt request without credential id")
		http.Error(w, "missing credential id", http.StatusBadRequest)
		return
	}

	// Detach from the request context so the handshake survives the 202 ack,
	// keeping the trace-scoped logger attached.
	ctx := context.WithoutCancel(r.Context())
	go func() {
		result := h.services.Handshake.HandleDecryptRequest(ctx, req)
		if !result.Success {
			log.Debug().
				Str("credential_id", req.CredentialID).
				Str("reason", result.ErrorMessage).
				Msg("decrypt request rejected")
		}
	}()

	w.WriteHeader(http.StatusAccepted)
}
