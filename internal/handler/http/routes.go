package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(withCORS)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Post("/upload_pdf", h.uploadPDF)
	router.Get("/version", h.getServerVersion)
	if h.metrics != nil {
		router.Method("GET", "/metrics", h.metrics)
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
