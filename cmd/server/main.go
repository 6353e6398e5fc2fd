package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-pdf-decrypter/internal/config"
	"github.com/MKhiriev/go-pdf-decrypter/internal/handler"
	"github.com/MKhiriev/go-pdf-decrypter/internal/logger"
	"github.com/MKhiriev/go-pdf-decrypter/internal/metrics"
	"github.com/MKhiriev/go-pdf-decrypter/internal/server"
	"github.com/MKhiriev/go-pdf-decrypter/internal/service"
	"github.com/MKhiriev/go-pdf-decrypter/internal/store"
	"github.com/MKhiriev/go-pdf-decrypter/models"
	"github.com/pdfcpu/pdfcpu/pkg/api"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("pdf-decrypter-server")
	cfg, err := config.GetServerConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.LogLevel); err != nil {
		log.Warn().Err(err).Msg("unknown log level, keeping default")
	}
	log.Debug().Any("config", cfg).Msg("received configs")

	// pdfcpu must not create its configuration directory in the user's home
	api.DisableConfigDir()

	recorder := metrics.New("pdf_decrypter")

	storages := store.NewStorages(cfg, log)
	services := service.NewServices(storages, cfg, recorder, buildInfo, log)

	handlers, err := handler.NewHandlers(services, recorder.Handler(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.Version())
	fmt.Printf("Build date: %s\n", info.Date())
	fmt.Printf("Build commit: %s\n", info.Commit())
}
