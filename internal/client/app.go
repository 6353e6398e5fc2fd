package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-pdf-decrypter/internal/logger"
	"github.com/MKhiriev/go-pdf-decrypter/internal/service"
	"github.com/MKhiriev/go-pdf-decrypter/internal/tui"
)

var errNilDependency = errors.New("client dependency is nil")

type App struct {
	services *service.ClientServices
	ui       UI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, logger *logger.Logger) (*App, error) {
	if services == nil || services.PDFUnlockService == nil || ui == nil {
		return nil, errNilDependency
	}

	return &App{services: services, ui: ui, logger: logger}, nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	// отменяет незавершённый запрос и освобождает расшифрованный документ
	defer a.services.PDFUnlockService.Close()

	a.logger.Info().Msg("client started")
	err := a.ui.Run(ctx)
	switch {
	case err == nil, errors.Is(err, tui.ErrUserQuit), errors.Is(err, context.Canceled):
		a.logger.Info().Msg("client stopped")
		return nil
	default:
		return fmt.Errorf("run ui: %w", err)
	}
}
