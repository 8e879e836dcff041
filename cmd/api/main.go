package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/PratikDhanave/satisfaction-survey-service/internal/catalog"
	"github.com/PratikDhanave/satisfaction-survey-service/internal/config"
	"github.com/PratikDhanave/satisfaction-survey-service/internal/httpserver"
	"github.com/PratikDhanave/satisfaction-survey-service/internal/logging"
	"github.com/PratikDhanave/satisfaction-survey-service/internal/store"
	"github.com/PratikDhanave/satisfaction-survey-service/internal/survey"
)

// responseStore is what main needs from either storage backend.
type responseStore interface {
	survey.Store
	httpserver.Pinger
	Close()
}

// main boots the service: config → logger → store → schema → HTTP server.
func main() {
	if err := run(); err != nil {
		slog.Error("service stopped", slog.Any("error", err))
		os.Exit(1)
	}
}

func run() error {
	// Load runtime config from environment (and CONFIG_PATH if set).
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := logging.New(cfg.Log)

	st, err := openStore(cfg, logger)
	if err != nil {
		return err
	}
	defer st.Close()

	svc := survey.NewService(st, catalog.Default(), survey.ExportOptions{
		FileName: cfg.Export.FileName,
		Sheet:    cfg.Export.Sheet,
	}, logger)

	router := httpserver.NewRouter(cfg, svc, st, logger)
	for _, ri := range router.Routes() {
		logger.Debug("route", slog.String("method", ri.Method), slog.String("path", ri.Path))
	}

	server := httpserver.NewServer(cfg.Server, router)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server started", slog.String("addr", server.Addr), slog.String("storage", cfg.Storage.Driver))
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func openStore(cfg config.Config, logger *slog.Logger) (responseStore, error) {
	if cfg.Storage.Driver == config.DriverMemory {
		logger.Warn("using in-memory storage; responses are lost on restart")
		return store.NewMemoryStore(), nil
	}

	// Connect to durable storage (Postgres) using a connection pool.
	db, err := store.NewPostgresStore(cfg.Database.URL, cfg.Database.MaxConns)
	if err != nil {
		return nil, err
	}

	// Ensure required tables/indexes exist so a fresh database is enough.
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Database.SchemaTimeout)
	defer cancel()
	if err := db.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}
	logger.Info("database schema ready")
	return db, nil
}
