// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"os"

	"github.com/MKhiriev/go-pdf-decrypter/internal/service"
	"github.com/MKhiriev/go-pdf-decrypter/internal/store"
)

var errNoServices = errors.New("client services are not initialized")

func humanizeSaveError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrNoResult), errors.Is(err, store.ErrHandleNotFound):
		return "Nothing to download yet"
	case errors.Is(err, os.ErrPermission):
		return "Cannot write to the download directory: permission denied"
	}

	return err.Error()
}
