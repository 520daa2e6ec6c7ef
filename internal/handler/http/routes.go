package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// every inbound route requires a signed bridge token
	router.Group(func(r chi.Router) {
		r.Use(h.withAuth)

		// runtime-facing
		r.Post("/api/autofill/decrypt-request", h.decryptRequest)

		// host-app-facing
		r.Post("/api/session/unlock", h.unlockSession)
		r.Post("/api/session/lock", h.lockSession)
		r.Post("/api/autofill/prepare", h.prepareCredentials)
		r.Get("/api/autofill/settings", h.getSettings)
		r.Patch("/api/autofill/settings", h.updateSettings)
		r.Post("/api/autofill/enable", h.enableAutofill)
		r.Post("/api/autofill/disable", h.disableAutofill)
	})

	return router
}
