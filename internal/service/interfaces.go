package service

import (
	"context"

	"github.com/MKhiriev/go-pdf-decrypter/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// PDFDecryptService removes the encryption from uploaded documents.
type PDFDecryptService interface {
	// Decrypt unlocks req.Content with req.Password, which is tried as both
	// the user and the owner password. Documents without encryption are
	// returned unchanged with WasEncrypted set to false.
	//
	// Errors: ErrPasswordRequired, ErrWrongPassword, ErrInvalidDataProvided,
	// or ErrProcessing wrapping the underlying cause.
	Decrypt(ctx context.Context, req models.DecryptRequest) (models.DecryptResult, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
