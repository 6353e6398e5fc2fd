package service

import (
	"github.com/MKhiriev/go-pdf-decrypter/internal/config"
	"github.com/MKhiriev/go-pdf-decrypter/internal/logger"
	"github.com/MKhiriev/go-pdf-decrypter/internal/metrics"
	"github.com/MKhiriev/go-pdf-decrypter/internal/store"
	"github.com/MKhiriev/go-pdf-decrypter/models"
)

type Services struct {
	PDFDecryptService PDFDecryptService
	AppInfoService    AppInfoService
}

// NewServices assembles the decryption service. Validation runs first and
// metrics observe every call, rejected ones included.
func NewServices(storages *store.Storages, cfg *config.ServerConfig, recorder metrics.Recorder, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	decrypt := NewPDFDecryptService(storages.Archive, logger)
	decrypt = NewPDFDecryptValidationService(cfg.Server.MaxUploadSize).Wrap(decrypt)
	decrypt = NewPDFDecryptMetricsService(recorder).Wrap(decrypt)

	return &Services{
		PDFDecryptService: decrypt,
		AppInfoService:    NewAppInfoService(buildInfo, logger),
	}
}
