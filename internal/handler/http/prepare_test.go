package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-pass-autofill/internal/mock"
	"github.com/MKhiriev/go-pass-autofill/internal/service"
	"github.com/MKhiriev/go-pass-autofill/internal/session"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func executePrepare(h *Handler) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/autofill/prepare", nil)
	req = injectNopLogger(req)
	rr := httptest.NewRecorder()
	h.prepareCredentials(rr, req)
	return rr
}

func TestPrepareCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	credentials := mock.NewMockCredentialService(ctrl)
	credentials.EXPECT().PrepareFromRepository(gomock.Any(), "vault secret").Return(nil)

	sessions := session.NewCache()
	sessions.Set(session.MasterSecretKey, "vault secret", time.Minute)
	h := newSessionHandler(sessions, &service.Services{Credentials: credentials})

	rr := executePrepare(h)

	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestPrepareCredentials_SessionLocked(t *testing.T) {
	ctrl := gomock.NewController(t)
	credentials := mock.NewMockCredentialService(ctrl)
	// no PrepareFromRepository expectation: without a session there is no key

	h := newSessionHandler(session.NewCache(), &service.Services{Credentials: credentials})

	rr := executePrepare(h)

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "master secret not available")
}

func TestPrepareCredentials_ServiceFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	credentials := mock.NewMockCredentialService(ctrl)
	credentials.EXPECT().PrepareFromRepository(gomock.Any(), "vault secret").Return(errors.New("vault offline"))

	sessions := session.NewCache()
	sessions.Set(session.MasterSecretKey, "vault secret", time.Minute)
	h := newSessionHandler(sessions, &service.Services{Credentials: credentials})

	rr := executePrepare(h)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
