// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport used to reach the remote PDF
// decryption service.
//
// The primary abstraction is [DecryptionAdapter], which decouples the request
// orchestration in the service layer from the underlying protocol. The
// package ships an HTTP implementation ([NewHTTPDecryptionAdapter]) that
// sends one multipart upload per call.
//
// Non-2xx responses are mapped to the sentinel errors defined in errors.go so
// that callers can use [errors.Is] (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-pdf-decrypter/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/decryption_adapter_mock.go -package=mock

// DecryptionAdapter sends an encrypted document and its password to the
// decryption service and returns the unlocked document.
type DecryptionAdapter interface {
	// Decrypt uploads file under the multipart field "file" and password
	// under "password". The response body is returned as opaque bytes; it
	// is never decoded. Returns an error for transport failures, context
	// cancellation, and any non-2xx status.
	Decrypt(ctx context.Context, file models.SelectedFile, password string) ([]byte, error)
}
