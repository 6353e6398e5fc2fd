package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side process settings.
type ClientApp struct {
	// LogFile is the path of the client log file.
	LogFile string
	// LogLevel is the zerolog level name.
	LogLevel string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the decryption service.
	HTTPAddress string
	// UploadPath is the path of the upload endpoint.
	UploadPath string
	// RequestTimeout limits outbound calls; zero disables the limit.
	RequestTimeout time.Duration
}

// ClientStorage holds client file-system settings.
type ClientStorage struct {
	// DownloadDir is where decrypted documents are saved.
	DownloadDir string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		App: ClientApp{
			LogFile:  cfg.App.LogFile,
			LogLevel: cfg.App.LogLevel,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			UploadPath:     cfg.Adapter.UploadPath,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DownloadDir: cfg.Storage.Files.DownloadDir,
		},
	}

	return clientCfg, clientCfg.validate()
}

// ServerConfig is the decryption service view of [StructuredConfig].
type ServerConfig struct {
	// LogLevel is the zerolog level name.
	LogLevel string
	Server   Server
	// UploadDir is the archive directory; empty disables archiving.
	UploadDir string
}

// GetServerConfig builds and validates the decryption service config view.
func GetServerConfig(args []string) (*ServerConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newServerConfig(cfg)
}

func newServerConfig(cfg *StructuredConfig) (*ServerConfig, error) {
	serverCfg := &ServerConfig{
		LogLevel:  cfg.App.LogLevel,
		Server:    cfg.Server,
		UploadDir: cfg.Storage.Files.UploadDir,
	}

	return serverCfg, serverCfg.validate()
}
