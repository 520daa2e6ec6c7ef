package http

import (
	"time"

	"github.com/MKhiriev/go-pass-autofill/internal/logger"
	"github.com/MKhiriev/go-pass-autofill/internal/service"
	"github.com/MKhiriev/go-pass-autofill/internal/session"
)

type Handler struct {
	services *service.Services
	sessions *session.Cache

	signKey     string
	tokenIssuer string
	sessionTTL  time.Duration

	logger *logger.Logger
}

func NewHandler(
	services *service.Services,
	sessions *session.Cache,
	signKey, tokenIssuer string,
	sessionTTL time.Duration,
	logger *logger.Logger,
) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:    services,
		sessions:    sessions,
		signKey:     signKey,
		tokenIssuer: tokenIssuer,
		sessionTTL:  sessionTTL,
		logger:      logger,
	}
}
