// Package main is the entry point for Field Quest.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/samdwyer/fieldquest/internal/config"
	"github.com/samdwyer/fieldquest/internal/game"
	"github.com/samdwyer/fieldquest/internal/logger"
	"github.com/samdwyer/fieldquest/internal/metrics"
	"github.com/samdwyer/fieldquest/internal/rng"
	"github.com/samdwyer/fieldquest/internal/storage"
	boltstore "github.com/samdwyer/fieldquest/internal/storage/bbolt"
	"github.com/samdwyer/fieldquest/internal/storage/memory"
	"github.com/samdwyer/fieldquest/internal/storage/sqlite"
	"github.com/samdwyer/fieldquest/internal/telemetry"
	"github.com/samdwyer/fieldquest/internal/ui"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if err := run(cfg); err != nil {
		log.Fatalf("Game error: %v", err)
	}
}

func run(cfg config.Config) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The terminal owns stdout, so logs go to a file.
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()
	logger.New(logFile, cfg.Logger(version))

	shutdown, err := telemetry.Setup(ctx, telemetry.Config{
		Enabled: cfg.Telemetry,
		Version: version,
		APIKey:  cfg.HoneycombAPIKey,
		Dataset: cfg.HoneycombDataset,
	})
	if err != nil {
		// Continue without telemetry - game still works
		slog.Warn("telemetry setup failed, running without tracing", "error", err)
	} else {
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				slog.Error("telemetry shutdown failed", "error", err)
			}
		}()
	}

	if cfg.MetricsAddr != "" {
		go func() {
			if err := metrics.Serve(ctx, cfg.MetricsAddr); err != nil {
				slog.Error("metrics server stopped", "addr", cfg.MetricsAddr, "error", err)
			}
		}()
	}

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			slog.Error("close store failed", "error", err)
		}
	}()

	messages := ui.NewMessageLog(ui.DefaultMessageLines)
	session, err := game.NewSession(game.Config{
		Store:  store,
		Source: rng.NewSeeded(cfg.Seed),
		Sink:   messages,
	})
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	defer screen.Close()

	slog.Info("session started",
		"session_id", session.ID(),
		"store", cfg.StoreDriver,
		"seed", cfg.Seed,
	)
	return ui.NewApp(screen, session, messages, cfg.PlayerName).Run(ctx)
}

// openStore opens the save store selected by the configuration.
func openStore(cfg config.Config) (storage.Store, error) {
	switch cfg.StoreDriver {
	case config.DriverBbolt:
		s, err := boltstore.Open(cfg.StorePath)
		if err != nil {
			return nil, fmt.Errorf("open bbolt store: %w", err)
		}
		return s, nil
	case config.DriverSqlite:
		s, err := sqlite.Open(cfg.StorePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return s, nil
	case config.DriverMemory:
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
