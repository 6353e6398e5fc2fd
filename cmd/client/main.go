package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-pdf-decrypter/internal/adapter"
	"github.com/MKhiriev/go-pdf-decrypter/internal/client"
	"github.com/MKhiriev/go-pdf-decrypter/internal/config"
	"github.com/MKhiriev/go-pdf-decrypter/internal/logger"
	"github.com/MKhiriev/go-pdf-decrypter/internal/service"
	"github.com/MKhiriev/go-pdf-decrypter/internal/store"
	"github.com/MKhiriev/go-pdf-decrypter/internal/tui"
	"github.com/MKhiriev/go-pdf-decrypter/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewClientLogger("pdf-decrypter-client", cfg.App.LogFile)
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Warn().Err(err).Msg("unknown log level, keeping default")
	}

	decryptionAdapter, err := adapter.NewHTTPDecryptionAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create decryption adapter")
	}

	storages := store.NewClientStorages(log)
	services := service.NewClientServices(storages, decryptionAdapter, buildInfo, log)

	ui, err := tui.New(services, cfg.Storage.DownloadDir, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.Version())
	fmt.Printf("Build date: %s\n", info.Date())
	fmt.Printf("Build commit: %s\n", info.Commit())
}
