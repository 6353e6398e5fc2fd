// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// client and the decryption service.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-wide settings such as logging.
	App App `envPrefix:"APP_"`

	// Storage holds file-system locations for uploads and downloads.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listen address and limits of the decryption service.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the address of the decryption service as seen by the
	// client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-wide settings.
type App struct {
	// LogFile is where the terminal client writes its logs, so that the
	// terminal itself stays free for the UI.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups file-system settings.
type Storage struct {
	// Files holds directory locations.
	Files Files `envPrefix:"FILES_"`
}

// Files holds directory locations used by both binaries.
type Files struct {
	// UploadDir is where the service archives original and unlocked copies.
	// An empty value after defaults disables archiving.
	// Env: STORAGE_FILES_UPLOAD_DIR
	UploadDir string `env:"UPLOAD_DIR"`

	// DownloadDir is where the client saves decrypted documents.
	// Env: STORAGE_FILES_DOWNLOAD_DIR
	DownloadDir string `env:"DOWNLOAD_DIR"`
}

// Server holds network and limit settings of the decryption service.
type Server struct {
	// HTTPAddress is the listen address in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the handling of one inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// MaxUploadSize is the largest accepted multipart body in bytes.
	// Env: SERVER_MAX_UPLOAD_SIZE
	MaxUploadSize int64 `env:"MAX_UPLOAD_SIZE"`
}

// Adapter holds client-side transport settings.
type Adapter struct {
	// HTTPAddress is the base URL of the decryption service
	// (e.g. "http://localhost:5000"). A missing scheme defaults to http.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// UploadPath is the endpoint path that accepts the multipart upload.
	// Env: ADAPTER_UPLOAD_PATH
	UploadPath string `env:"UPLOAD_PATH"`

	// RequestTimeout limits one decryption call. Zero means no timeout.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads and merges the configuration from all sources.
// args are the command-line arguments without the program name.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
}
