// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RequestState is the lifecycle stage of a decryption request.
//
//	Idle -> InFlight -> {Succeeded, Failed} -> InFlight -> ...
type RequestState int

const (
	RequestIdle RequestState = iota
	RequestInFlight
	RequestSucceeded
	RequestFailed
)

func (s RequestState) String() string {
	switch s {
	case RequestIdle:
		return "idle"
	case RequestInFlight:
		return "in_flight"
	case RequestSucceeded:
		return "succeeded"
	case RequestFailed:
		return "failed"
	default:
		return "unknown"
	}
}
