package service

import (
	"github.com/MKhiriev/go-pdf-decrypter/internal/adapter"
	"github.com/MKhiriev/go-pdf-decrypter/internal/logger"
	"github.com/MKhiriev/go-pdf-decrypter/internal/store"
	"github.com/MKhiriev/go-pdf-decrypter/models"
)

type ClientServices struct {
	PDFUnlockService PDFUnlockService
	AppInfoService   AppInfoService
}

func NewClientServices(storages *store.ClientStorages, decryptionAdapter adapter.DecryptionAdapter, buildInfo models.AppBuildInfo, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		PDFUnlockService: NewPDFUnlockService(decryptionAdapter, storages.Blobs, logger),
		AppInfoService:   NewAppInfoService(buildInfo, logger),
	}
}
