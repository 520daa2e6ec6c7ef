package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-pass-autofill/internal/logger"
	"github.com/MKhiriev/go-pass-autofill/internal/utils"
	"github.com/MKhiriev/go-pass-autofill/models"
)

func (h *Handler) getSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	policy, err := h.services.Settings.Get(ctx)
	if err != nil {
		log.Err(err).Msg("failed to read autofill settings")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, policy, http.StatusOK)
}

// updateSettings applies a partial settings change from the host
// application. Absent fields keep their current value. The merged policy is
// returned so the host can render the effective state.
func (h *Handler) updateSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var update models.SettingsPolicyUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Str("func", "*Handler.updateSettings").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	policy, err := h.services.Settings.Update(ctx, update)
	if err != nil {
		log.Err(err).Msg("failed to update autofill settings")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, policy, http.StatusOK)
}

func (h *Handler) enableAutofill(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	policy, err := h.services.Settings.Enable(ctx)
	if err != nil {
		log.Err(err).Msg("failed to enable autofill")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, policy, http.StatusOK)
}

func (h *Handler) disableAutofill(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	policy, err := h.services.Settings.Disable(ctx)
	if err != nil {
		log.Err(err).Msg("failed to disable autofill")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, policy, http.StatusOK)
}
