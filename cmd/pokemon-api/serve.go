package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/deppfellow/pokemon-api/internal/config"
	"github.com/deppfellow/pokemon-api/internal/database"
	"github.com/deppfellow/pokemon-api/internal/handler"
	"github.com/deppfellow/pokemon-api/internal/logger"
	"github.com/deppfellow/pokemon-api/internal/repository"
	"github.com/deppfellow/pokemon-api/internal/router"
	"github.com/deppfellow/pokemon-api/internal/server"
	"github.com/deppfellow/pokemon-api/internal/service"
	"github.com/spf13/cobra"
)

// DefaultShutdownTimeout bounds graceful shutdown after SIGINT/SIGTERM.
const DefaultShutdownTimeout = 30 * time.Second

func newServeCommand() *cobra.Command {
	var shutdownTimeout time.Duration
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the background job worker",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), migrate, shutdownTimeout)
		},
	}

	cmd.Flags().DurationVar(&shutdownTimeout, "shutdown-timeout", DefaultShutdownTimeout, "graceful shutdown timeout")
	cmd.Flags().BoolVar(&migrate, "migrate", false, "apply database migrations before serving (always on outside local)")

	return cmd
}

func serve(ctx context.Context, migrate bool, shutdownTimeout time.Duration) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	loggerService := logger.NewLoggerService(cfg.Observability)
	defer loggerService.Shutdown()

	log := logger.NewLoggerWithService(cfg.Observability, loggerService)

	if migrate || cfg.Primary.Env != "local" {
		if err := database.Migrate(ctx, &log, cfg); err != nil {
			log.Error().Err(err).Msg("failed to migrate database")
			return err
		}
	}

	srv, err := server.New(cfg, &log, loggerService)
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize server")
		return err
	}

	repos := repository.NewRepositories(srv)
	services, err := service.NewService(srv, repos)
	if err != nil {
		log.Error().Err(err).Msg("could not create services")
		return err
	}

	handlers := handler.NewHandlers(srv, services)
	r := router.NewRouter(srv, handlers)

	srv.SetupHTTPServer(r)

	if err := srv.Job.Start(); err != nil {
		log.Error().Err(err).Msg("failed to start background job server")
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			log.Error().Err(err).Msg("server stopped unexpectedly")
			return err
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		return err
	}

	log.Info().Msg("server exited properly")
	return nil
}
