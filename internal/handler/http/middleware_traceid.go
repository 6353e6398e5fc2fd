package http

import (
	"net/http"

	"github.com/rs/zerolog"
)

const (
	traceIDHeader = "X-Trace-ID"

	// longer incoming ids are replaced with a generated one
	maxTraceIDLength = 128
)

// withTraceID reuses the caller's X-Trace-ID or generates a UUIDv7, echoes it
// in the response and attaches a child logger carrying it to the request
// context.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" || len(traceID) > maxTraceIDLength {
			traceID = h.traceIDs.Generate()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		r = r.WithContext(l.WithContext(r.Context()))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}
