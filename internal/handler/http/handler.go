package http

import (
	"net/http"

	"github.com/MKhiriev/go-pdf-decrypter/internal/config"
	"github.com/MKhiriev/go-pdf-decrypter/internal/logger"
	"github.com/MKhiriev/go-pdf-decrypter/internal/service"
	"github.com/MKhiriev/go-pdf-decrypter/internal/utils"
)

type Handler struct {
	services *service.Services
	metrics  http.Handler

	maxUploadSize int64
	uploadNames   utils.Generator
	traceIDs      utils.Generator

	logger *logger.Logger
}

// NewHandler creates the HTTP handler. metrics serves GET /metrics; when nil
// the route is not registered.
func NewHandler(services *service.Services, metrics http.Handler, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:      services,
		metrics:       metrics,
		maxUploadSize: cfg.MaxUploadSize,
		uploadNames:   utils.NewUUIDGenerator("upload_"),
		traceIDs:      utils.NewUUIDGenerator(""),
		logger:        logger,
	}
}
