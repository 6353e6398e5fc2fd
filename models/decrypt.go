// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DecryptRequest is an uploaded document received by the decryption service.
type DecryptRequest struct {
	// FileName is the sanitized name of the upload.
	FileName string

	// Content holds the uploaded bytes.
	Content []byte

	// Password may be empty; it is tried as both user and owner password.
	Password string
}

// DecryptResult is the outcome of a successful server-side decryption.
type DecryptResult struct {
	// Content holds the unlocked document.
	Content []byte

	// WasEncrypted is false when the upload had no encryption and Content
	// is the upload itself.
	WasEncrypted bool

	// OriginalPath and UnlockedPath are set when copies were archived.
	OriginalPath string
	UnlockedPath string
}
