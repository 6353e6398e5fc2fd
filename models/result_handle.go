// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

const (
	// UnlockedFileName is the suggested name for every decrypted document.
	UnlockedFileName = "Unlocked_PDF.pdf"

	// PDFContentType is the type declared for materialized results.
	PDFContentType = "application/pdf"

	// DecryptFailedMessage is shown for every failed submission, whatever
	// the underlying cause.
	DecryptFailedMessage = "Failed to decrypt PDF. Please check the password."
)

// ResultHandle references a decrypted document held in memory. It stays valid
// until it is revoked in the blob store that issued it.
type ResultHandle struct {
	// URL is the locally dereferenceable address, e.g. "blob:<uuid>".
	URL string

	// FileName is the suggested download name.
	FileName string

	// ContentType is the MIME type declared for the blob.
	ContentType string

	// Size is the blob length in bytes.
	Size int64

	// CreatedAt is when the blob was materialized.
	CreatedAt time.Time
}
