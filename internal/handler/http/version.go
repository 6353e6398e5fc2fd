package http

import (
	"net/http"

	"github.com/MKhiriev/go-pdf-decrypter/internal/logger"
)

const (
	buildDateHeader   = "X-Build-Date"
	buildCommitHeader = "X-Build-Commit"
)

// getServerVersion answers GET /version with the build version as plain text.
// Build date and commit go to headers so the body stays a bare version string.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	info := h.services.AppInfoService.GetBuildInfo(r.Context())

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set(buildDateHeader, info.Date())
	w.Header().Set(buildCommitHeader, info.Commit())

	if _, err := w.Write([]byte(info.Version())); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing version")
	}
}
