package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-pdf-decrypter/internal/service"
	"github.com/MKhiriev/go-pdf-decrypter/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{ErrNoFilePart, http.StatusBadRequest},
		{fmt.Errorf("%w: multipart: NextPart: EOF", ErrNoFilePart), http.StatusBadRequest},
		{ErrNoSelectedFile, http.StatusBadRequest},
		{fmt.Errorf("%w: 256 bytes", ErrUploadTooLarge), http.StatusRequestEntityTooLarge},
		{service.ErrPasswordRequired, http.StatusBadRequest},
		{service.ErrWrongPassword, http.StatusBadRequest},
		{service.ErrProcessing, http.StatusBadRequest},
		{errors.New("anything else"), http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestResponseFromError(t *testing.T) {
	resp := responseFromError(fmt.Errorf("%w: 256 bytes", ErrUploadTooLarge))
	assert.Equal(t, models.StatusError, resp.Status)
	assert.Equal(t, "Failed to process PDF: upload exceeds the size limit: 256 bytes", resp.Message)
	assert.Nil(t, resp.IsUnlocked)

	resp = responseFromError(fmt.Errorf("%w: x", service.ErrWrongPassword))
	require.NotNil(t, resp.IsUnlocked)
	assert.False(t, *resp.IsUnlocked)
}
