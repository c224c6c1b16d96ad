// Command migrate applies or inspects the embedded database migrations.
//
// Usage:
//
//	migrate [up|down|status]
//
// The default command is up. Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/echoplay-backend/internal/adapter/postgres"
	"github.com/heartmarshall/echoplay-backend/internal/app"
	"github.com/heartmarshall/echoplay-backend/internal/config"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: migrate [up|down|status]")
	}
	flag.Parse()

	command := "up"
	if flag.NArg() > 0 {
		command = flag.Arg(0)
	}

	cfg, err := config.LoadTool()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	m, err := postgres.NewMigrator(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Error("open migrator", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer m.Close()

	switch command {
	case "up":
		applied, err := m.Up(ctx)
		if err != nil {
			logger.Error("migrate up failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("migrate up completed", slog.Int("applied", applied))
	case "down":
		if err := m.Down(ctx); err != nil {
			logger.Error("migrate down failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("migrate down completed")
	case "status":
		if err := m.Status(ctx, logger); err != nil {
			logger.Error("migrate status failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
	default:
		flag.Usage()
		os.Exit(1)
	}
}
