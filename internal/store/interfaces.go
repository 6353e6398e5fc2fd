package store

import (
	"context"

	"github.com/MKhiriev/go-pdf-decrypter/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// BlobStore keeps successful decryption results in memory and hands out
// object-URL style handles ("blob:<uuid>") for them. A handle stays valid
// until it is revoked.
type BlobStore interface {
	Materialize(ctx context.Context, payload []byte) (models.ResultHandle, error)
	Open(url string) ([]byte, error)
	Revoke(url string)
	Len() int
	SaveAs(url, dir string) (string, error)
}

// ArchiveStorage persists the uploaded document and its unlocked copy on the
// service side.
type ArchiveStorage interface {
	Save(ctx context.Context, name string, original, unlocked []byte) (originalPath, unlockedPath string, err error)
}
