package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-pdf-decrypter/internal/logger"
	"github.com/MKhiriev/go-pdf-decrypter/internal/utils"
	"github.com/MKhiriev/go-pdf-decrypter/models"
)

const (
	uploadFieldFile     = "file"
	uploadFieldPassword = "password"

	// downloadName is the attachment name of every unlocked document.
	downloadName = "Unlocked_PDF"

	multipartMemory = 32 << 20
)

func (h *Handler) uploadPDF(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	req, err := h.readUpload(w, r)
	if err != nil {
		log.Warn().Err(err).Msg("invalid upload")
		h.writeError(w, r, err)
		return
	}

	result, err := h.services.PDFDecryptService.Decrypt(r.Context(), req)
	if err != nil {
		log.Error().Err(err).Str("file", req.FileName).Msg("error processing document")
		h.writeError(w, r, err)
		return
	}

	log.Info().
		Str("file", req.FileName).
		Bool("was_encrypted", result.WasEncrypted).
		Str("unlocked_path", result.UnlockedPath).
		Msg("document unlocked")

	if _, err = utils.WriteAttachment(w, result.Content, models.PDFContentType, downloadName); err != nil {
		log.Error().Err(err).Msg("error writing unlocked document")
	}
}

// readUpload extracts the sanitised file name, the content and the password
// from a multipart request.
func (h *Handler) readUpload(w http.ResponseWriter, r *http.Request) (models.DecryptRequest, error) {
	if h.maxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	}

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return models.DecryptRequest{}, fmt.Errorf("%w: %d bytes", ErrUploadTooLarge, tooLarge.Limit)
		}
		return models.DecryptRequest{}, fmt.Errorf("%w: %w", ErrNoFilePart, err)
	}

	file, header, err := r.FormFile(uploadFieldFile)
	if err != nil {
		// a file input left empty arrives as a plain form value
		if _, isValue := r.MultipartForm.Value[uploadFieldFile]; isValue {
			return models.DecryptRequest{}, ErrNoSelectedFile
		}
		return models.DecryptRequest{}, ErrNoFilePart
	}
	defer file.Close()

	if header.Filename == "" {
		return models.DecryptRequest{}, ErrNoSelectedFile
	}

	content, err := io.ReadAll(file)
	if err != nil {
		return models.DecryptRequest{}, fmt.Errorf("read upload: %w", err)
	}

	name := utils.SecureFilename(header.Filename)
	if name == "" {
		name = h.uploadNames.Generate() + ".pdf"
	}

	return models.DecryptRequest{
		FileName: name,
		Content:  content,
		Password: r.FormValue(uploadFieldPassword),
	}, nil
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if _, writeErr := utils.WriteJSON(w, responseFromError(err), statusFromError(err)); writeErr != nil {
		logger.FromRequest(r).Error().Err(writeErr).Msg("error writing error response")
	}
}
