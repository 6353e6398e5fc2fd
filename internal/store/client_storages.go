package store

import (
	"github.com/MKhiriev/go-pdf-decrypter/internal/logger"
)

// ClientStorages groups all client-side storage into a single value that can
// be passed around the service layer. Decryption results only ever live in
// memory; they reach the disk through [BlobStore.SaveAs].
type ClientStorages struct {
	Blobs BlobStore
}

func NewClientStorages(logger *logger.Logger) *ClientStorages {
	logger.Info().Msg("creating new client storages...")

	return &ClientStorages{
		Blobs: NewMemoryBlobStore(logger),
	}
}
