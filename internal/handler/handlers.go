package handler

import (
	stdhttp "net/http"

	"github.com/MKhiriev/go-pdf-decrypter/internal/config"
	"github.com/MKhiriev/go-pdf-decrypter/internal/handler/http"
	"github.com/MKhiriev/go-pdf-decrypter/internal/logger"
	"github.com/MKhiriev/go-pdf-decrypter/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the transport handlers enabled by cfg. metrics is served
// on GET /metrics when not nil.
func NewHandlers(services *service.Services, metrics stdhttp.Handler, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, metrics, cfg, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
