// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DecryptionSnapshot is a copy of the decryption workflow state taken at one
// moment. The UI renders exclusively from snapshots.
type DecryptionSnapshot struct {
	State RequestState

	// FileName is the name of the selected file, empty if none.
	FileName string

	// HasPassword reports whether a non-empty password is held.
	HasPassword bool

	// Result is set only in [RequestSucceeded].
	Result *ResultHandle

	// ErrorMessage is set only in [RequestFailed].
	ErrorMessage string
}

// Loading reports whether a request is outstanding.
func (s DecryptionSnapshot) Loading() bool {
	return s.State == RequestInFlight
}

// ActionLabel is the label of the submit control for the current state.
func (s DecryptionSnapshot) ActionLabel() string {
	if s.Loading() {
		return "Decrypting..."
	}
	return "Decrypt PDF"
}
