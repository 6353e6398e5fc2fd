package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-pdf-decrypter/internal/logger"
	"github.com/MKhiriev/go-pdf-decrypter/internal/store"
	"github.com/MKhiriev/go-pdf-decrypter/models"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// decryptFunc matches [api.Decrypt].
type decryptFunc func(rs io.ReadSeeker, w io.Writer, conf *model.Configuration) error

type pdfDecryptService struct {
	decrypt decryptFunc
	archive store.ArchiveStorage

	logger *logger.Logger
}

// NewPDFDecryptService returns a [PDFDecryptService] backed by pdfcpu. When
// archive is not nil, the upload and its unlocked copy are stored there after
// every successful call.
func NewPDFDecryptService(archive store.ArchiveStorage, logger *logger.Logger) PDFDecryptService {
	return &pdfDecryptService{
		decrypt: api.Decrypt,
		archive: archive,
		logger:  logger,
	}
}

func (s *pdfDecryptService) Decrypt(ctx context.Context, req models.DecryptRequest) (models.DecryptResult, error) {
	if err := ctx.Err(); err != nil {
		return models.DecryptResult{}, err
	}

	log := s.logger.With().Str("file", req.FileName).Logger()

	conf := model.NewDefaultConfiguration()
	conf.UserPW = req.Password
	conf.OwnerPW = req.Password

	var out bytes.Buffer
	result := models.DecryptResult{WasEncrypted: true}

	err := s.decrypt(bytes.NewReader(req.Content), &out, conf)
	switch {
	case err == nil:
		result.Content = out.Bytes()
	case isNotEncrypted(err):
		result.Content = req.Content
		result.WasEncrypted = false
	case isPasswordError(err) && req.Password == "":
		return models.DecryptResult{}, fmt.Errorf("%w: %w", ErrPasswordRequired, err)
	case isPasswordError(err):
		return models.DecryptResult{}, fmt.Errorf("%w: %w", ErrWrongPassword, err)
	default:
		return models.DecryptResult{}, fmt.Errorf("%w: %w", ErrProcessing, err)
	}

	if s.archive != nil {
		originalPath, unlockedPath, err := s.archive.Save(ctx, req.FileName, req.Content, result.Content)
		if err != nil {
			return models.DecryptResult{}, fmt.Errorf("%w: %w", ErrProcessing, err)
		}
		result.OriginalPath, result.UnlockedPath = originalPath, unlockedPath
	}

	log.Info().
		Bool("was_encrypted", result.WasEncrypted).
		Int("size", len(result.Content)).
		Msg("document processed")

	return result, nil
}

// pdfcpu reports both conditions as plain errors, so they are recognised by
// message: "this file is not encrypted", "please provide the correct
// password", "please provide the owner password with -opw".
func isNotEncrypted(err error) bool {
	return strings.Contains(err.Error(), "not encrypted")
}

func isPasswordError(err error) bool {
	return strings.Contains(strings.ToLower(err.Error()), "password")
}
