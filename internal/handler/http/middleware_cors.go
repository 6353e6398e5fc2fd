package http

import (
	"net/http"

	"github.com/go-chi/cors"
)

// withCORS allows every origin, so the service can be called from a browser
// page served elsewhere. Content-Disposition is exposed so scripts can read
// the attachment name.
var withCORS = cors.Handler(cors.Options{
	AllowedOrigins: []string{"*"},
	AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
	AllowedHeaders: []string{"Accept", "Content-Type", traceIDHeader},
	ExposedHeaders: []string{"Content-Disposition", traceIDHeader},
	MaxAge:         300,
})
