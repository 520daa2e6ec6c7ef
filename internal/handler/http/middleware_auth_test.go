package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-pass-autofill/internal/logger"
	"github.com/MKhiriev/go-pass-autofill/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSignKey = "bridge-sign-key"
	testIssuer  = "go-pass-autofill"
)

// ---- Helpers ----

func executeAuth(t *testing.T, authHeader string) *httptest.ResponseRecorder {
	t.Helper()

	h := &Handler{logger: logger.Nop(), signKey: testSignKey, tokenIssuer: testIssuer}
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/autofill/decrypt-request", nil)
	req = injectNopLogger(req)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	rr := httptest.NewRecorder()
	h.withAuth(next).ServeHTTP(rr, req)
	return rr
}

// ---- withAuth ----

func TestWithAuth_ValidToken(t *testing.T) {
	token, err := utils.GenerateBridgeToken(testIssuer, time.Minute, testSignKey)
	require.NoError(t, err)

	rr := executeAuth(t, "Bearer "+token)
	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestWithAuth_MissingHeader(t *testing.T) {
	rr := executeAuth(t, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestWithAuth_MalformedHeader(t *testing.T) {
	rr := executeAuth(t, "Bearer")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestWithAuth_WrongSignKey(t *testing.T) {
	token, err := utils.GenerateBridgeToken(testIssuer, time.Minute, "some other key")
	require.NoError(t, err)

	rr := executeAuth(t, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestWithAuth_WrongIssuer(t *testing.T) {
	token, err := utils.GenerateBridgeToken("impostor", time.Minute, testSignKey)
	require.NoError(t, err)

	rr := executeAuth(t, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestWithAuth_ExpiredToken(t *testing.T) {
	token, err := utils.GenerateBridgeToken(testIssuer, -time.Minute, testSignKey)
	require.NoError(t, err)

	rr := executeAuth(t, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "bridge token expired")
}
