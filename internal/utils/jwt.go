package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateBridgeToken creates the signed HMAC-SHA256 JWT the agent and the
// autofill runtime present to each other on the local bridge. The token
// carries the standard iss/iat/exp claims; there is no per-user subject
// because the bridge is a single-tenant, device-local channel.
//
// Returns an error if issuer or signKey is empty, tokenDuration is zero, or
// signing fails.
func GenerateBridgeToken(issuer string, tokenDuration time.Duration, signKey string) (string, error) {
	if issuer == "" || tokenDuration == 0 || signKey == "" {
		return "", errors.New("invalid params for generating bridge token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing bridge token: %w", err)
	}

	return signed, nil
}

// ValidateBridgeToken verifies the signature, issuer and expiry of a bridge
// token. Returns jwt.ErrTokenExpired (wrapped) when the token has expired.
func ValidateBridgeToken(tokenString, signKey, issuer string) error {
	_, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, jwt.WithIssuer(issuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return fmt.Errorf("error occurred validating bridge token: %w", err)
	}

	return nil
}

// ParseBearerToken extracts the token part of an "Authorization: Bearer x"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
