// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// decryption service handlers.
//
// All Msg* constants are human-readable message strings written into the
// "message" field of error responses. Browser and terminal clients match some
// of them verbatim, so the wording must not change.
package app

const (
	// MsgNoFilePart is returned when the multipart form has no "file" part.
	MsgNoFilePart = "No file part"

	// MsgNoSelectedFile is returned when the "file" part carries an empty
	// file name.
	MsgNoSelectedFile = "No selected file"

	// MsgPasswordRequired is returned when the document is encrypted and no
	// password was sent.
	MsgPasswordRequired = "PDF is encrypted. A password is required to decrypt it."

	// MsgWrongPassword is returned when the document cannot be opened with
	// the supplied password.
	MsgWrongPassword = "Failed to decrypt PDF with the provided password."

	// MsgProcessFailedPrefix precedes the cause of every other failure.
	MsgProcessFailedPrefix = "Failed to process PDF: "
)
