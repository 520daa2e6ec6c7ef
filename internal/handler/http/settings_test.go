package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-pass-autofill/internal/mock"
	"github.com/MKhiriev/go-pass-autofill/internal/service"
	"github.com/MKhiriev/go-pass-autofill/internal/session"
	"github.com/MKhiriev/go-pass-autofill/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ---- Helpers ----

func newSettingsHandler(settings service.SettingsService) *Handler {
	return newSessionHandler(session.NewCache(), &service.Services{Settings: settings})
}

func executeSettings(h *Handler, method, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/api/autofill/settings", strings.NewReader(body))
	req = injectNopLogger(req)
	rr := httptest.NewRecorder()

	switch method {
	case http.MethodGet:
		h.getSettings(rr, req)
	default:
		h.updateSettings(rr, req)
	}
	return rr
}

func decodePolicy(t *testing.T, rr *httptest.ResponseRecorder) models.SettingsPolicy {
	t.Helper()

	var policy models.SettingsPolicy
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &policy))
	return policy
}

// ---- getSettings ----

func TestGetSettings(t *testing.T) {
	ctrl := gomock.NewController(t)
	settings := mock.NewMockSettingsService(ctrl)
	settings.EXPECT().Get(gomock.Any()).Return(models.SettingsPolicy{
		Enabled:          true,
		RequireBiometric: true,
		TrustedDomains:   []string{"example.com"},
	}, nil)

	rr := executeSettings(newSettingsHandler(settings), http.MethodGet, "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	policy := decodePolicy(t, rr)
	assert.True(t, policy.Enabled)
	assert.Equal(t, []string{"example.com"}, policy.TrustedDomains)
}

func TestGetSettings_ServiceFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	settings := mock.NewMockSettingsService(ctrl)
	settings.EXPECT().Get(gomock.Any()).Return(models.SettingsPolicy{}, errors.New("store offline"))

	rr := executeSettings(newSettingsHandler(settings), http.MethodGet, "")

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

// ---- updateSettings ----

func TestUpdateSettings(t *testing.T) {
	ctrl := gomock.NewController(t)
	settings := mock.NewMockSettingsService(ctrl)
	settings.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, update models.SettingsPolicyUpdate) (models.SettingsPolicy, error) {
			require.NotNil(t, update.Enabled)
			assert.True(t, *update.Enabled)
			assert.Nil(t, update.RequireBiometric)
			return update.Apply(models.DefaultSettingsPolicy()), nil
		})

	rr := executeSettings(newSettingsHandler(settings), http.MethodPatch, `{"enabled":true}`)

	assert.Equal(t, http.StatusOK, rr.Code)
	policy := decodePolicy(t, rr)
	assert.True(t, policy.Enabled)
	assert.True(t, policy.RequireBiometric)
}

func TestUpdateSettings_InvalidJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	settings := mock.NewMockSettingsService(ctrl)
	// no Update expectation: malformed input must not reach the service

	rr := executeSettings(newSettingsHandler(settings), http.MethodPatch, `{not json`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUpdateSettings_ServiceFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	settings := mock.NewMockSettingsService(ctrl)
	settings.EXPECT().Update(gomock.Any(), gomock.Any()).Return(models.SettingsPolicy{}, errors.New("store offline"))

	rr := executeSettings(newSettingsHandler(settings), http.MethodPatch, `{"enabled":true}`)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

// ---- enableAutofill / disableAutofill ----

func TestEnableAutofill(t *testing.T) {
	ctrl := gomock.NewController(t)
	settings := mock.NewMockSettingsService(ctrl)
	settings.EXPECT().Enable(gomock.Any()).Return(models.SettingsPolicy{Enabled: true, RequireBiometric: true}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/autofill/enable", nil)
	req = injectNopLogger(req)
	rr := httptest.NewRecorder()
	newSettingsHandler(settings).enableAutofill(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, decodePolicy(t, rr).Enabled)
}

func TestDisableAutofill(t *testing.T) {
	ctrl := gomock.NewController(t)
	settings := mock.NewMockSettingsService(ctrl)
	settings.EXPECT().Disable(gomock.Any()).Return(models.SettingsPolicy{Enabled: false, RequireBiometric: true}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/autofill/disable", nil)
	req = injectNopLogger(req)
	rr := httptest.NewRecorder()
	newSettingsHandler(settings).disableAutofill(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.False(t, decodePolicy(t, rr).Enabled)
}
