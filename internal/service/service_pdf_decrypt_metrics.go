package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-pdf-decrypter/internal/metrics"
	"github.com/MKhiriev/go-pdf-decrypter/models"
)

const decryptOperation = "decrypt"

type PDFDecryptMetricsService struct {
	inner    PDFDecryptService
	recorder metrics.Recorder
}

// NewPDFDecryptMetricsService records one outcome, the duration and the upload
// size for every call.
func NewPDFDecryptMetricsService(recorder metrics.Recorder) PDFDecryptServiceWrapper {
	return &PDFDecryptMetricsService{recorder: recorder}
}

func (m *PDFDecryptMetricsService) Wrap(inner PDFDecryptService) PDFDecryptService {
	m.inner = inner
	return m
}

func (m *PDFDecryptMetricsService) Decrypt(ctx context.Context, req models.DecryptRequest) (models.DecryptResult, error) {
	m.recorder.StartOperation(decryptOperation)
	defer m.recorder.EndOperation(decryptOperation)

	start := time.Now()
	result, err := m.inner.Decrypt(ctx, req)
	m.recorder.RecordDuration(decryptOperation, time.Since(start).Seconds())
	m.recorder.RecordFileSize(int64(len(req.Content)))
	m.recorder.RecordOutcome(outcomeOf(result, err))

	return result, err
}

func outcomeOf(result models.DecryptResult, err error) string {
	switch {
	case err == nil && result.WasEncrypted:
		return metrics.OutcomeUnlocked
	case err == nil:
		return metrics.OutcomePassthrough
	case errors.Is(err, ErrPasswordRequired):
		return metrics.OutcomePasswordRequired
	case errors.Is(err, ErrWrongPassword):
		return metrics.OutcomeWrongPassword
	case errors.Is(err, ErrInvalidDataProvided):
		return metrics.OutcomeInvalidRequest
	default:
		return metrics.OutcomeFailed
	}
}
