package adapter_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-pass-autofill/internal/adapter"
	"github.com/MKhiriev/go-pass-autofill/internal/logger"
	"github.com/MKhiriev/go-pass-autofill/internal/utils"
	"github.com/MKhiriev/go-pass-autofill/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bridgeSignKey = "bridge-sign-key"

func newTestBridge(t *testing.T, handler http.Handler) (adapter.AutofillBridge, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	b, err := adapter.NewHTTPBridge(adapter.HTTPBridgeConfig{
		BaseURL:     srv.URL,
		SignKey:     bridgeSignKey,
		TokenIssuer: "go-pass-autofill",
		TokenTTL:    time.Minute,
		Timeout:     2 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	return b, srv
}

func TestHTTPBridge_PrepareCredentials(t *testing.T) {
	var gotPath string
	var gotCreds []models.CredentialEnvelope
	var gotAuth string

	b, _ := newTestBridge(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotCreds))
		w.WriteHeader(http.StatusOK)
	}))

	creds := []models.CredentialEnvelope{
		{ID: "p1", Domain: "example.com", Username: "u", Password: "ct", Salt: "s", IV: "i", Tag: "t", Encrypted: true},
	}
	require.NoError(t, b.PrepareCredentials(context.Background(), creds))

	assert.Equal(t, "/api/autofill/credentials", gotPath)
	assert.Equal(t, creds, gotCreds)

	// Every call carries a signed bearer token the runtime can verify.
	token, err := utils.ParseBearerToken(gotAuth)
	require.NoError(t, err)
	assert.NoError(t, utils.ValidateBridgeToken(token, bridgeSignKey, "go-pass-autofill"))
}

func TestHTTPBridge_UpdateSettings(t *testing.T) {
	var gotPolicy models.SettingsPolicy

	b, _ := newTestBridge(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/autofill/settings", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPolicy))
	}))

	policy := models.SettingsPolicy{Enabled: true, RequireBiometric: false, AllowSubdomains: true, TrustedDomains: []string{"example.com"}}
	require.NoError(t, b.UpdateSettings(context.Background(), policy))
	assert.Equal(t, policy, gotPolicy)
}

func TestHTTPBridge_UpdateDecryptResult(t *testing.T) {
	var gotResult models.DecryptResult

	b, _ := newTestBridge(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/autofill/decrypt-result", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotResult))
	}))

	result := models.DecryptResult{CredentialID: "p1", Password: "Secr3t!", Success: true}
	require.NoError(t, b.UpdateDecryptResult(context.Background(), result))
	assert.Equal(t, result, gotResult)
}

func TestHTTPBridge_IsEnabled(t *testing.T) {
	b, _ := newTestBridge(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/autofill/enabled", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]bool{"value": true})
	}))

	enabled, err := b.IsEnabled(context.Background())
	require.NoError(t, err)
	assert.True(t, enabled)
}

func TestHTTPBridge_Unauthorized(t *testing.T) {
	b, _ := newTestBridge(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad token", http.StatusUnauthorized)
	}))

	err := b.ClearCache(context.Background())
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
}

func TestHTTPBridge_RuntimeDown(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // connection refused from here on

	b, err := adapter.NewHTTPBridge(adapter.HTTPBridgeConfig{
		BaseURL: srv.URL,
		SignKey: bridgeSignKey,
		Timeout: time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	err = b.RequestEnable(context.Background())
	assert.ErrorIs(t, err, adapter.ErrBridgeUnavailable)
}

func TestNewHTTPBridge_EmptyBaseURL(t *testing.T) {
	_, err := adapter.NewHTTPBridge(adapter.HTTPBridgeConfig{SignKey: bridgeSignKey}, logger.Nop())
	require.Error(t, err)
}
