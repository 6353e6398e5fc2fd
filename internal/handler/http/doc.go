// Package http implements the HTTP transport layer of the decryption service.
//
// It exposes route wiring, the upload handler, and middleware. Cross-cutting
// concerns such as CORS, request tracing, access logging and panic recovery
// are handled in this package before requests are delegated to the service
// layer.
package http
