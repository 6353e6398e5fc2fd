package config

import "time"

const (
	DefaultAdapterAddress = "http://localhost:5000"
	DefaultUploadPath     = "/upload_pdf"
	DefaultServerAddress  = "localhost:5000"
	DefaultServerTimeout  = 60 * time.Second
	DefaultMaxUploadSize  = 32 << 20
	DefaultUploadDir      = "uploads"
	DefaultDownloadDir    = "."
	DefaultLogFile        = "pdf-decrypter.log"
	DefaultLogLevel       = "debug"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogFile:  DefaultLogFile,
			LogLevel: DefaultLogLevel,
		},
		Storage: Storage{
			Files: Files{
				UploadDir:   DefaultUploadDir,
				DownloadDir: DefaultDownloadDir,
			},
		},
		Server: Server{
			HTTPAddress:    DefaultServerAddress,
			RequestTimeout: DefaultServerTimeout,
			MaxUploadSize:  DefaultMaxUploadSize,
		},
		Adapter: Adapter{
			HTTPAddress: DefaultAdapterAddress,
			UploadPath:  DefaultUploadPath,
		},
	}
}
