package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-pass-autofill/internal/logger"
	"github.com/MKhiriev/go-pass-autofill/internal/utils"
	"github.com/golang-jwt/jwt/v5"
)

// withAuth is an HTTP middleware that enforces the bridge token handshake.
//
// The autofill runtime signs every call with the shared bridge key; the
// middleware extracts the bearer token from the "Authorization" header,
// verifies it via [utils.ValidateBridgeToken] and rejects the request with
// HTTP 401 Unauthorized when the header is absent, malformed, expired or
// carries an invalid signature.
func (h *Handler) withAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		if err = utils.ValidateBridgeToken(tokenString, h.signKey, h.tokenIssuer); err != nil {
			switch {
			case errors.Is(err, jwt.ErrTokenExpired):
				log.Err(err).Msg("bridge token expired")
				http.Error(w, "bridge token expired", http.StatusUnauthorized)
			default:
				log.Err(err).Msg("invalid bridge token")
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			}
			return
		}

		next.ServeHTTP(w, r)
	})
}
