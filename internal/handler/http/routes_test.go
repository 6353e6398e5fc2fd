package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-pdf-decrypter/internal/config"
	"github.com/MKhiriev/go-pdf-decrypter/internal/logger"
	"github.com/MKhiriev/go-pdf-decrypter/internal/metrics"
	"github.com/MKhiriev/go-pdf-decrypter/internal/mock"
	"github.com/MKhiriev/go-pdf-decrypter/internal/service"
	"github.com/MKhiriev/go-pdf-decrypter/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svc, nil, config.Server{MaxUploadSize: 10}, log)

	require.NotNil(t, h)
	assert.Equal(t, svc, h.services)
	assert.Equal(t, log, h.logger)
	assert.Equal(t, int64(10), h.maxUploadSize)
	assert.NotSame(t, h, NewHandler(svc, nil, config.Server{}, log))
}

// ─────────────────────────────────────────────
// Init — route registration
// ─────────────────────────────────────────────

func newRoutedHandler(t *testing.T, ctrl *gomock.Controller) *Handler {
	t.Helper()
	appInfo := mock.NewMockAppInfoService(ctrl)
	appInfo.EXPECT().GetBuildInfo(gomock.Any()).Return(models.NewAppBuildInfo("1.2.3", "2026-01-01", "abc123")).AnyTimes()

	return NewHandler(
		&service.Services{PDFDecryptService: mock.NewMockPDFDecryptService(ctrl), AppInfoService: appInfo},
		metrics.New("test").Handler(),
		config.Server{MaxUploadSize: 1 << 20},
		logger.Nop(),
	)
}

func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}

func TestInit_Routes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := newRoutedHandler(t, ctrl)

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{"version", http.MethodGet, "/version", http.StatusOK},
		{"metrics", http.MethodGet, "/metrics", http.StatusOK},
		{"upload without body", http.MethodPost, "/upload_pdf", http.StatusBadRequest},
		{"unknown route", http.MethodGet, "/nope", http.StatusNotFound},
		{"GET on upload route", http.MethodGet, "/upload_pdf", http.StatusNotFound},
		{"DELETE on upload route", http.MethodDelete, "/upload_pdf", http.StatusNotFound},
		{"POST on version route", http.MethodPost, "/version", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := serve(h, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestInit_VersionBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rr := serve(newRoutedHandler(t, ctrl), httptest.NewRequest(http.MethodGet, "/version", nil))

	assert.Equal(t, "1.2.3", rr.Body.String())
	assert.Equal(t, "text/plain; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Equal(t, "2026-01-01", rr.Header().Get(buildDateHeader))
	assert.Equal(t, "abc123", rr.Header().Get(buildCommitHeader))
}

func TestInit_MetricsRouteIsOptional(t *testing.T) {
	h := NewHandler(&service.Services{}, nil, config.Server{}, logger.Nop())

	rr := serve(h, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestInit_TraceIDHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := newRoutedHandler(t, ctrl)

	rr := serve(h, httptest.NewRequest(http.MethodGet, "/version", nil))
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/version", nil)
	req.Header.Set(traceIDHeader, "trace-123")
	rr = serve(h, req)
	assert.Equal(t, "trace-123", rr.Header().Get(traceIDHeader))
}

// ─────────────────────────────────────────────
// CORS
// ─────────────────────────────────────────────

func TestInit_CORS(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := newRoutedHandler(t, ctrl)
	origin := "http://localhost:3000"

	t.Run("simple request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/version", nil)
		req.Header.Set("Origin", origin)

		rr := serve(h, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, []string{"*", origin}, rr.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/upload_pdf", nil)
		req.Header.Set("Origin", origin)
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)

		rr := serve(h, req)

		assert.Less(t, rr.Code, http.StatusMultipleChoices)
		assert.Contains(t, []string{"*", origin}, rr.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, rr.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
	})
}
