package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pdf-decrypter/internal/validators"
	"github.com/MKhiriev/go-pdf-decrypter/models"
)

type PDFDecryptValidationService struct {
	inner     PDFDecryptService
	validator validators.Validator
}

// NewPDFDecryptValidationService rejects uploads without a name, without
// content, or larger than maxSize (0 disables the size check) before they
// reach the wrapped service.
func NewPDFDecryptValidationService(maxSize int64) PDFDecryptServiceWrapper {
	return &PDFDecryptValidationService{
		validator: validators.NewDecryptRequestValidator(maxSize),
	}
}

func (v *PDFDecryptValidationService) Wrap(inner PDFDecryptService) PDFDecryptService {
	v.inner = inner
	return v
}

func (v *PDFDecryptValidationService) Decrypt(ctx context.Context, req models.DecryptRequest) (models.DecryptResult, error) {
	err := v.validator.Validate(ctx, req, validators.FieldFileName, validators.FieldContent, validators.FieldMaxSize)
	if err != nil {
		return models.DecryptResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Decrypt(ctx, req)
}
