package adapter

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-pdf-decrypter/internal/config"
	"github.com/MKhiriev/go-pdf-decrypter/internal/logger"
	"github.com/MKhiriev/go-pdf-decrypter/internal/utils"
	"github.com/MKhiriev/go-pdf-decrypter/models"
)

type httpDecryptionAdapter struct {
	client     *utils.HTTPClient
	uploadPath string

	logger *logger.Logger
}

// NewHTTPDecryptionAdapter constructs the HTTP implementation of
// [DecryptionAdapter]. It normalises and validates the base URL from
// cfg.HTTPAddress and configures the request timeout; a zero timeout leaves
// calls unbounded.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPDecryptionAdapter(cfg config.ClientAdapter, logger *logger.Logger) (DecryptionAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	uploadPath := cfg.UploadPath
	if uploadPath == "" {
		uploadPath = config.DefaultUploadPath
	}

	return &httpDecryptionAdapter{
		client:     utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		uploadPath: uploadPath,
		logger:     logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Decrypt implements [DecryptionAdapter]. It POSTs a multipart form to the
// configured upload path and returns the raw response body on 2xx. The body
// is not parsed, so any payload the service sends back is passed through,
// including an empty one.
func (h *httpDecryptionAdapter) Decrypt(ctx context.Context, file models.SelectedFile, password string) ([]byte, error) {
	log := h.logger.With().
		Str("file", file.Name).
		Int64("size", file.Size()).
		Logger()

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", models.PDFContentType).
		SetFileReader("file", file.Name, bytes.NewReader(file.Content)).
		SetFormData(map[string]string{"password": password}).
		Post(h.uploadPath)
	if err != nil {
		log.Warn().Err(err).Msg("decrypt request failed")
		return nil, fmt.Errorf("decrypt request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Warn().Err(err).Int("status", resp.StatusCode()).Msg("decrypt request rejected")
		return nil, err
	}

	// an empty 2xx body is still a result
	body := resp.Body()

	log.Debug().
		Int("status", resp.StatusCode()).
		Int("received", len(body)).
		Dur("duration", resp.Time()).
		Msg("document decrypted")

	return body, nil
}
