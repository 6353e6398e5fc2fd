// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced while reading the multipart upload. Callers can
// match against them with [errors.Is].
var (
	// ErrNoFilePart is returned when the request has no "file" part, or is
	// not a multipart form at all.
	ErrNoFilePart = errors.New("no file part")

	// ErrNoSelectedFile is returned when the "file" part carries an empty
	// file name, which is what browsers send for an empty file input.
	ErrNoSelectedFile = errors.New("no selected file")

	// ErrUploadTooLarge is returned when the request body exceeds the
	// configured upload limit.
	ErrUploadTooLarge = errors.New("upload exceeds the size limit")
)
