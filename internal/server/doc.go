// Package server wires and runs the decryption service's HTTP server.
//
// It provides startup, signal handling, and graceful shutdown.
package server
