// Command initdb creates the database tables and seeds the first
// superuser. There is no public registration endpoint; accounts are
// provisioned through this bootstrap.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/ahmetcoskunkizilkaya/research-api/internal/auth"
	"github.com/ahmetcoskunkizilkaya/research-api/internal/config"
	"github.com/ahmetcoskunkizilkaya/research-api/internal/database"
	"github.com/ahmetcoskunkizilkaya/research-api/internal/logging"
	"github.com/ahmetcoskunkizilkaya/research-api/internal/services"
)

func main() {
	logging.Setup()

	cfg := config.Load()

	if cfg.FirstSuperuserPassword == "" {
		slog.Error("FIRST_SUPERUSER_PASSWORD environment variable is required")
		os.Exit(1)
	}

	if err := database.Connect(cfg); err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	if err := database.Migrate(); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	tokenService := auth.NewTokenService(cfg.SecretKey, cfg.AccessTokenTTL)
	authService := services.NewAuthService(database.DB, tokenService)

	user, err := authService.CreateUser(context.Background(), cfg.FirstSuperuserEmail, cfg.FirstSuperuserPassword, "Admin")
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			slog.Info("superuser already exists", "email", cfg.FirstSuperuserEmail)
			return
		}
		slog.Error("failed to create superuser", "error", err)
		os.Exit(1)
	}

	slog.Info("superuser created", "email", user.Email, "id", user.ID)
}
