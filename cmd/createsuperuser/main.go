// Command createsuperuser bootstraps a staff superuser account, for use
// before the first deploy or in development.
//
//	SUPERUSER_EMAIL=admin@example.com SUPERUSER_PASSWORD=... go run ./cmd/createsuperuser
package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/inventolabs/recipe-catalog/config"
	"github.com/inventolabs/recipe-catalog/internal/application"
	pginfra "github.com/inventolabs/recipe-catalog/internal/infrastructure/postgres"
	"github.com/inventolabs/recipe-catalog/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)

	email := os.Getenv("SUPERUSER_EMAIL")
	password := os.Getenv("SUPERUSER_PASSWORD")
	name := os.Getenv("SUPERUSER_NAME")
	if email == "" || password == "" {
		log.Fatal("SUPERUSER_EMAIL and SUPERUSER_PASSWORD are required")
	}

	ctx := context.Background()
	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	svc := application.NewUserService(pginfra.NewUserRepository(pool), nil, nil, logger)
	u, err := svc.RegisterSuperuser(ctx, email, password, name)
	if err != nil {
		log.Fatalf("failed to create superuser: %v", err)
	}
	logger.WithField("user_id", u.ID).Info("superuser created")
}
