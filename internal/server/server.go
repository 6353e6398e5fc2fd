package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-pdf-decrypter/internal/config"
	"github.com/MKhiriev/go-pdf-decrypter/internal/handler"
	"github.com/MKhiriev/go-pdf-decrypter/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := new(server)

	if handlers != nil && handlers.HTTP != nil && cfg.HTTPAddress != "" {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}

	if servers.httpServer == nil {
		return nil, errNoServersAreCreated
	}

	servers.logger = logger

	return servers, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Error().Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}
}

// run serves until ctx is done, then shuts the servers down gracefully.
func (s *server) run(ctx context.Context) error {
	if s.httpServer == nil {
		return errNoServersAreCreated
	}

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		s.logger.Info().Msg("Launching HTTP server")
		s.httpServer.RunServer()
	}()

	select {
	case <-ctx.Done():
		s.Shutdown()
		<-stopped
		s.logger.Info().Msg("server Shutdown gracefully")
	case <-stopped:
		// listener failed, e.g. the address is taken
		return errServerStopped
	}

	return nil
}
