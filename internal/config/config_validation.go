// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks invariants shared by every view of the merged config.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidAdapterConfigs)
	}
	if cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidServerConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if strings.TrimSpace(cfg.Adapter.HTTPAddress) == "" {
		return fmt.Errorf("%w: empty service address", ErrInvalidAdapterConfigs)
	}

	if !strings.HasPrefix(cfg.Adapter.UploadPath, "/") {
		return fmt.Errorf("%w: upload path must start with '/'", ErrInvalidAdapterConfigs)
	}

	if cfg.Storage.DownloadDir == "" {
		return fmt.Errorf("%w: empty download directory", ErrInvalidStorageConfigs)
	}

	if cfg.App.LogFile == "" {
		return fmt.Errorf("%w: empty log file", ErrInvalidAppConfigs)
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty listen address", ErrInvalidServerConfigs)
	}

	if cfg.Server.MaxUploadSize <= 0 {
		return fmt.Errorf("%w: max upload size must be positive", ErrInvalidServerConfigs)
	}

	return nil
}
