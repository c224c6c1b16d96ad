// Command promote grants or revokes the admin role for a user by email. The
// first administrator has to be created this way; admins can then read any
// user's search history through the API.
//
// Usage:
//
//	promote -email=user@example.com [-revoke]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/heartmarshall/echoplay-backend/internal/adapter/postgres"
	"github.com/heartmarshall/echoplay-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/echoplay-backend/internal/app"
	"github.com/heartmarshall/echoplay-backend/internal/config"
	"github.com/heartmarshall/echoplay-backend/internal/domain"
)

func main() {
	email := flag.String("email", "", "email of the user to update")
	revoke := flag.Bool("revoke", false, "demote the user back to a regular account")
	flag.Parse()

	address := strings.TrimSpace(*email)
	if address == "" {
		fmt.Fprintln(os.Stderr, "Usage: promote -email=user@example.com [-revoke]")
		os.Exit(2)
	}

	role := domain.UserRoleAdmin
	if *revoke {
		role = domain.UserRoleUser
	}

	cfg, err := config.LoadTool()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	u, err := user.New(pool).SetRoleByEmail(ctx, address, role)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		logger.Error("no user with this email; they must sign in once first", slog.String("email", address))
		os.Exit(1)
	case err != nil:
		logger.Error("update role", slog.String("email", address), slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("role updated",
		slog.String("user_id", u.ID.String()),
		slog.String("email", u.Email),
		slog.String("role", string(u.Role)),
	)
}
