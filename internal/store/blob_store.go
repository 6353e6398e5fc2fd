// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/MKhiriev/go-pdf-decrypter/internal/logger"
	"github.com/MKhiriev/go-pdf-decrypter/internal/utils"
	"github.com/MKhiriev/go-pdf-decrypter/models"
)

const blobURLPrefix = "blob:"

type blob struct {
	handle  models.ResultHandle
	content []byte
}

// memoryBlobStore is the in-memory implementation of [BlobStore].
type memoryBlobStore struct {
	mu    sync.RWMutex
	blobs map[string]blob

	ids    utils.Generator
	now    func() time.Time
	logger *logger.Logger
}

// NewMemoryBlobStore constructs an empty [BlobStore]. Every call to
// Materialize produces a fresh handle, even for identical payloads.
func NewMemoryBlobStore(logger *logger.Logger) BlobStore {
	return &memoryBlobStore{
		blobs:  make(map[string]blob),
		ids:    utils.NewUUIDGenerator(blobURLPrefix),
		now:    time.Now,
		logger: logger,
	}
}

// Materialize copies payload into the store as an application/pdf blob named
// [models.UnlockedFileName] and returns its handle. An empty payload yields a
// zero-size blob.
func (s *memoryBlobStore) Materialize(ctx context.Context, payload []byte) (models.ResultHandle, error) {
	if err := ctx.Err(); err != nil {
		return models.ResultHandle{}, err
	}

	content := make([]byte, len(payload))
	copy(content, payload)

	handle := models.ResultHandle{
		URL:         s.ids.Generate(),
		FileName:    models.UnlockedFileName,
		ContentType: models.PDFContentType,
		Size:        int64(len(content)),
		CreatedAt:   s.now(),
	}

	s.mu.Lock()
	s.blobs[handle.URL] = blob{handle: handle, content: content}
	s.mu.Unlock()

	s.logger.Debug().Str("url", handle.URL).Int64("size", handle.Size).Msg("blob materialized")

	return handle, nil
}

func (s *memoryBlobStore) Open(url string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.blobs[url]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrHandleNotFound, url)
	}

	return b.content, nil
}

// Revoke releases the blob behind url. Revoking an unknown or already revoked
// handle is a no-op.
func (s *memoryBlobStore) Revoke(url string) {
	s.mu.Lock()
	_, ok := s.blobs[url]
	delete(s.blobs, url)
	s.mu.Unlock()

	if ok {
		s.logger.Debug().Str("url", url).Msg("blob revoked")
	}
}

func (s *memoryBlobStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.blobs)
}

// SaveAs writes the blob behind url into dir under its suggested file name,
// creating dir when it does not exist. The absolute path of the written file
// is returned. An existing file with the same name is overwritten.
func (s *memoryBlobStore) SaveAs(url, dir string) (string, error) {
	s.mu.RLock()
	b, ok := s.blobs[url]
	s.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrHandleNotFound, url)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: %w", ErrCreatingDir, err)
	}

	path, err := filepath.Abs(filepath.Join(dir, b.handle.FileName))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSavingFile, err)
	}
	if err = os.WriteFile(path, b.content, 0o644); err != nil {
		return "", fmt.Errorf("%w: %w", ErrSavingFile, err)
	}

	s.logger.Info().Str("url", url).Str("path", path).Msg("blob saved to disk")

	return path, nil
}
