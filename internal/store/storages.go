package store

import (
	"github.com/MKhiriev/go-pdf-decrypter/internal/config"
	"github.com/MKhiriev/go-pdf-decrypter/internal/logger"
)

// Storages groups the storage backends used by the decryption service.
// Archive is nil when no upload directory is configured.
type Storages struct {
	Archive ArchiveStorage
}

func NewStorages(cfg *config.ServerConfig, logger *logger.Logger) *Storages {
	logger.Info().Msg("creating new storages...")

	storages := &Storages{}
	if cfg.UploadDir != "" {
		storages.Archive = NewFileArchiveStorage(cfg.UploadDir, logger)
	}

	return storages
}
