package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-pdf-decrypter/internal/app"
	"github.com/MKhiriev/go-pdf-decrypter/internal/service"
	"github.com/MKhiriev/go-pdf-decrypter/models"
)

var errorStatusMap = map[error]int{
	ErrNoFilePart:     http.StatusBadRequest,
	ErrNoSelectedFile: http.StatusBadRequest,
	ErrUploadTooLarge: http.StatusRequestEntityTooLarge,

	service.ErrPasswordRequired:    http.StatusBadRequest,
	service.ErrWrongPassword:       http.StatusBadRequest,
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrProcessing:          http.StatusBadRequest,
}

// errorMessageMap holds the fixed messages; every other error is reported as
// "Failed to process PDF: <cause>".
var errorMessageMap = map[error]string{
	ErrNoFilePart:               app.MsgNoFilePart,
	ErrNoSelectedFile:           app.MsgNoSelectedFile,
	service.ErrPasswordRequired: app.MsgPasswordRequired,
	service.ErrWrongPassword:    app.MsgWrongPassword,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	// the service answers every unclassified failure with 400
	return http.StatusBadRequest
}

func responseFromError(err error) models.ProcessResponse {
	resp := models.ProcessResponse{Status: models.StatusError}

	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			resp.Message = message
			break
		}
	}
	if resp.Message == "" {
		resp.Message = app.MsgProcessFailedPrefix + causeOf(err)
	}

	if errors.Is(err, service.ErrPasswordRequired) || errors.Is(err, service.ErrWrongPassword) {
		unlocked := false
		resp.IsUnlocked = &unlocked
	}

	return resp
}

// causeOf strips the service sentinel from the error text, keeping the
// underlying reason.
func causeOf(err error) string {
	msg := err.Error()
	for _, sentinel := range []error{service.ErrProcessing, service.ErrInvalidDataProvided} {
		if errors.Is(err, sentinel) {
			msg = strings.TrimPrefix(msg, sentinel.Error()+": ")
		}
	}
	return msg
}
