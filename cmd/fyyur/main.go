package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"fyyur/internal/config"
	"fyyur/internal/logging"
	"fyyur/internal/store"
	"fyyur/internal/store/memstore"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger := logging.New(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	logging.SetGlobalLogger(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		logger.Fatal(err, "Server stopped with error")
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	dataStore, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	if cfg.BootstrapDemoData {
		if err := bootstrapDemoData(ctx, dataStore); err != nil {
			return err
		}
		log.Info().Msg("Demo data bootstrapped")
	}

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           newHTTPHandler(cfg, dataStore),
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", server.Addr).Str("store", cfg.Database.Driver).Msg("Fyyur API listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err, ok := <-serveErr:
		if ok {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	log.Info().Msg("Server exited")
	return nil
}

// openStore builds the configured store. The returned func releases it.
func openStore(ctx context.Context, cfg *config.Config) (dataStore, func(), error) {
	if cfg.Database.Driver == config.DriverMemory {
		return memstore.New(), func() {}, nil
	}

	db, err := openDatabase(ctx, cfg.Database.URL)
	if err != nil {
		return nil, nil, err
	}
	return store.New(db), func() { _ = db.Close() }, nil
}
