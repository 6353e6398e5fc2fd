// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-pdf-decrypter/internal/adapter"
	"github.com/MKhiriev/go-pdf-decrypter/internal/logger"
	"github.com/MKhiriev/go-pdf-decrypter/internal/store"
	"github.com/MKhiriev/go-pdf-decrypter/internal/validators"
	"github.com/MKhiriev/go-pdf-decrypter/models"
)

type pdfUnlockService struct {
	adapter   adapter.DecryptionAdapter
	blobs     store.BlobStore
	validator validators.Validator
	logger    *logger.Logger

	mu       sync.Mutex
	file     models.SelectedFile
	password string
	state    models.RequestState
	result   *models.ResultHandle
	errMsg   string

	// seq identifies the newest request; completions carrying an older
	// value are discarded.
	seq    uint64
	cancel context.CancelFunc
}

// NewPDFUnlockService creates the client decryption workflow in the idle state.
func NewPDFUnlockService(decryptionAdapter adapter.DecryptionAdapter, blobs store.BlobStore, logger *logger.Logger) PDFUnlockService {
	return &pdfUnlockService{
		adapter:   decryptionAdapter,
		blobs:     blobs,
		validator: validators.NewDecryptRequestValidator(0),
		logger:    logger,
		state:     models.RequestIdle,
	}
}

func (s *pdfUnlockService) SelectFile(file models.SelectedFile) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.file = file
	s.logger.Debug().Str("file", file.Name).Int64("size", file.Size()).Msg("file selected")
}

func (s *pdfUnlockService) SetPassword(password string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.password = password
}

// Submit implements [PDFUnlockService].
func (s *pdfUnlockService) Submit(ctx context.Context) (<-chan models.DecryptionSnapshot, bool) {
	s.mu.Lock()

	req := models.DecryptRequest{FileName: s.file.Name, Content: s.file.Content, Password: s.password}
	if err := s.validator.Validate(ctx, req, validators.FieldSelected, validators.FieldPassword); err != nil {
		s.mu.Unlock()
		s.logger.Debug().Err(err).Msg("submit ignored")
		return nil, false
	}

	if s.cancel != nil {
		s.cancel()
		s.logger.Debug().Uint64("seq", s.seq).Msg("superseded request cancelled")
	}

	s.seq++
	seq := s.seq
	reqCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	s.state = models.RequestInFlight
	s.revokeResultLocked()
	s.errMsg = ""
	s.mu.Unlock()

	s.logger.Info().Uint64("seq", seq).Str("file", req.FileName).Msg("decryption request started")

	done := make(chan models.DecryptionSnapshot, 1)
	go func() {
		defer close(done)
		defer cancel()

		handle, err := s.decrypt(reqCtx, seq, models.SelectedFile{Name: req.FileName, Content: req.Content}, req.Password)
		done <- s.complete(seq, handle, err)
	}()

	return done, true
}

func (s *pdfUnlockService) decrypt(ctx context.Context, seq uint64, file models.SelectedFile, password string) (models.ResultHandle, error) {
	payload, err := s.adapter.Decrypt(ctx, file, password)
	if err != nil {
		return models.ResultHandle{}, err
	}

	// a superseded response must not leave a blob behind
	if !s.isCurrent(seq) {
		return models.ResultHandle{}, context.Canceled
	}

	handle, err := s.blobs.Materialize(ctx, payload)
	if err != nil {
		return models.ResultHandle{}, fmt.Errorf("materialize result: %w", err)
	}

	return handle, nil
}

// complete applies the outcome of request seq and returns the resulting
// snapshot. Outcomes of superseded requests leave the state untouched.
func (s *pdfUnlockService) complete(seq uint64, handle models.ResultHandle, err error) models.DecryptionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.seq {
		if err == nil {
			s.blobs.Revoke(handle.URL)
		}
		s.logger.Debug().Uint64("seq", seq).Uint64("current", s.seq).Msg("stale response dropped")
		return s.snapshotLocked()
	}

	s.cancel = nil

	if err != nil {
		s.state = models.RequestFailed
		s.errMsg = models.DecryptFailedMessage
		s.logger.Error().Err(err).Uint64("seq", seq).Msg("decryption request failed")
		return s.snapshotLocked()
	}

	s.state = models.RequestSucceeded
	s.result = &handle
	s.logger.Info().Uint64("seq", seq).Str("url", handle.URL).Int64("size", handle.Size).Msg("decryption request succeeded")

	return s.snapshotLocked()
}

func (s *pdfUnlockService) isCurrent(seq uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return seq == s.seq
}

func (s *pdfUnlockService) Snapshot() models.DecryptionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshotLocked()
}

func (s *pdfUnlockService) snapshotLocked() models.DecryptionSnapshot {
	snap := models.DecryptionSnapshot{
		State:        s.state,
		FileName:     s.file.Name,
		HasPassword:  s.password != "",
		ErrorMessage: s.errMsg,
	}
	if s.result != nil {
		result := *s.result
		snap.Result = &result
	}

	return snap
}

func (s *pdfUnlockService) SaveResult(dir string) (string, error) {
	s.mu.Lock()
	result := s.result
	s.mu.Unlock()

	if result == nil {
		return "", ErrNoResult
	}

	path, err := s.blobs.SaveAs(result.URL, dir)
	if err != nil {
		return "", fmt.Errorf("save result: %w", err)
	}

	return path, nil
}

func (s *pdfUnlockService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	// outstanding completions become stale
	s.seq++

	s.revokeResultLocked()
	s.state = models.RequestIdle
	s.errMsg = ""
	s.file = models.SelectedFile{}
	s.password = ""

	s.logger.Debug().Msg("decryption workflow closed")
}

func (s *pdfUnlockService) revokeResultLocked() {
	if s.result == nil {
		return
	}

	s.blobs.Revoke(s.result.URL)
	s.result = nil
}
