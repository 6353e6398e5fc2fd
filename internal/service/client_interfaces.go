package service

import (
	"context"

	"github.com/MKhiriev/go-pdf-decrypter/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// PDFUnlockService is the client-side decryption workflow: it collects the
// selected file and password, runs one request at a time against the
// decryption service and exposes the outcome as [models.DecryptionSnapshot]
// values. All methods are safe for concurrent use.
type PDFUnlockService interface {
	// SelectFile replaces the selected file. Any content is accepted.
	SelectFile(file models.SelectedFile)

	// SetPassword replaces the password.
	SetPassword(password string)

	// Submit starts a decryption request. It returns false and changes
	// nothing when either the file or the password is missing.
	//
	// Otherwise the state becomes in-flight, the previous result handle is
	// revoked, the previous error is cleared and any request still in
	// flight is cancelled. The returned channel receives exactly one
	// snapshot once the request completes and is then closed. If the
	// request was superseded in the meantime, that snapshot describes the
	// newer request instead.
	Submit(ctx context.Context) (<-chan models.DecryptionSnapshot, bool)

	// Snapshot returns the current state.
	Snapshot() models.DecryptionSnapshot

	// SaveResult writes the current result to dir and returns its path.
	SaveResult(dir string) (string, error)

	// Close cancels the in-flight request, revokes the current handle and
	// returns the workflow to its initial state.
	Close()
}
