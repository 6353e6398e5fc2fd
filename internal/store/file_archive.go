package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-pdf-decrypter/internal/logger"
)

const unlockedPrefix = "unlocked_"

// fileArchiveStorage keeps every processed upload on the local filesystem:
// the original document under its sanitised name and the unlocked copy under
// "unlocked_<name>". Files with the same name are overwritten.
type fileArchiveStorage struct {
	dir    string
	logger *logger.Logger
}

// NewFileArchiveStorage constructs an [ArchiveStorage] rooted at dir. The
// directory is created on first use.
func NewFileArchiveStorage(dir string, logger *logger.Logger) ArchiveStorage {
	return &fileArchiveStorage{dir: dir, logger: logger}
}

// Save writes both copies and returns their paths. name must already be
// sanitised by the caller.
func (f *fileArchiveStorage) Save(ctx context.Context, name string, original, unlocked []byte) (string, string, error) {
	if f.dir == "" {
		return "", "", ErrEmptyArchiveDir
	}
	if err := ctx.Err(); err != nil {
		return "", "", err
	}

	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrCreatingDir, err)
	}

	originalPath := filepath.Join(f.dir, filepath.Base(name))
	unlockedPath := filepath.Join(f.dir, unlockedPrefix+filepath.Base(name))

	if err := os.WriteFile(unlockedPath, unlocked, 0o644); err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrSavingFile, err)
	}
	if err := os.WriteFile(originalPath, original, 0o644); err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrSavingFile, err)
	}

	f.logger.Debug().
		Str("original", originalPath).
		Str("unlocked", unlockedPath).
		Msg("upload archived")

	return originalPath, unlockedPath, nil
}
