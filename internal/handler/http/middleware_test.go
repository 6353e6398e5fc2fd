package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/MKhiriev/go-pdf-decrypter/internal/logger"
	"github.com/MKhiriev/go-pdf-decrypter/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestHandler создаёт Handler с логгером, пишущим в buf
func newTestHandler(buf *bytes.Buffer) *Handler {
	return &Handler{
		logger:   &logger.Logger{Logger: zerolog.New(buf)},
		traceIDs: utils.NewUUIDGenerator(""),
	}
}

// ---- withTraceID ----

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name           string
		requestTraceID string
		wantSame       bool
	}{
		{"trace ID from request header is reused", "my-custom-trace-id", true},
		{"no trace ID in request — UUID generated", "", false},
		{"oversized trace ID is replaced", strings.Repeat("x", maxTraceIDLength+1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(&bytes.Buffer{})
			var seenInContext string

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				var buf bytes.Buffer
				l := logger.FromRequest(r).Output(&buf)
				l.Info().Send()
				seenInContext = buf.String()
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.requestTraceID != "" {
				req.Header.Set(traceIDHeader, tt.requestTraceID)
			}
			rr := httptest.NewRecorder()
			h.withTraceID(next).ServeHTTP(rr, req)

			got := rr.Header().Get(traceIDHeader)
			require.NotEmpty(t, got)
			if tt.wantSame {
				assert.Equal(t, tt.requestTraceID, got)
			} else {
				parsed, err := uuid.Parse(got)
				require.NoError(t, err)
				assert.Equal(t, uuid.Version(7), parsed.Version())
			}
			assert.Contains(t, seenInContext, `"trace_id":"`+got+`"`)
		})
	}
}

func TestWithTraceID_ConcurrentRequestsGetUniqueIDs(t *testing.T) {
	h := newTestHandler(&bytes.Buffer{})
	handler := h.withTraceID(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	var (
		mu   sync.Mutex
		seen = make(map[string]struct{})
		wg   sync.WaitGroup
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
			mu.Lock()
			seen[rr.Header().Get(traceIDHeader)] = struct{}{}
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, seen, 50)
}

// ---- withLogging ----

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantLevel string
	}{
		{"ok", http.StatusOK, "%PDF", `"level":"info"`},
		{"client error", http.StatusBadRequest, `{"status":"error"}`, `"level":"warn"`},
		{"server error", http.StatusInternalServerError, "boom", `"level":"error"`},
		{"no explicit status", 0, "", `"status":200`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := newTestHandler(&buf)

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.status != 0 {
					w.WriteHeader(tt.status)
				}
				_, _ = w.Write([]byte(tt.body))
			})

			req := httptest.NewRequest(http.MethodPost, "/upload_pdf", nil)
			h.withTraceID(h.withLogging(next)).ServeHTTP(httptest.NewRecorder(), req)

			out := buf.String()
			assert.Contains(t, out, tt.wantLevel)
			assert.Contains(t, out, `"method":"POST"`)
			assert.Contains(t, out, `"uri":"/upload_pdf"`)
			assert.Contains(t, out, `"duration":`)
			assert.Contains(t, out, `"trace_id":`)
		})
	}
}

// ---- responseWriter ----

func TestResponseWriter(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	assert.Zero(t, w.status)

	n, err := w.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, http.StatusOK, w.status)

	// второй WriteHeader игнорируется
	w.WriteHeader(http.StatusTeapot)
	assert.Equal(t, http.StatusOK, w.status)
	assert.Equal(t, http.StatusOK, rr.Code)

	_, _ = w.Write([]byte(" world"))
	assert.Equal(t, 11, w.size)
	assert.Equal(t, "hello world", rr.Body.String())
	assert.Equal(t, rr, w.Unwrap())
}

// ---- CheckHTTPMethod ----

func TestCheckHTTPMethod(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/only-get", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	tests := []struct {
		method string
		want   int
	}{
		{http.MethodGet, http.StatusOK},
		{http.MethodPost, http.StatusNotFound},
		{http.MethodPut, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, "/only-get", nil))
			assert.Equal(t, tt.want, rr.Code)
		})
	}
}
