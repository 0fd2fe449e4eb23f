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
	router.Use(withGZip)
	router.MethodNotAllowed(h.checkHTTPMethod)

	router.Route("/api/sync", func(r chi.Router) {
		r.Get("/status", h.getSyncStatus)
		r.Get("/report", h.getLastReport)
		r.Post("/", h.syncNow)
	})

	router.Post("/api/app/foreground", h.appForeground)

	router.Put("/api/auth/token", h.setToken)
	router.Delete("/api/auth/token", h.clearToken)

	router.Get("/api/version", h.getVersion)

	return router
}
