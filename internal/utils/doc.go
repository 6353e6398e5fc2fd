// Package utils provides general-purpose helpers shared by the decryption
// client and service: HTTP client construction, HTTP response writing, file
// name sanitizing, and identifier generation.
package utils
