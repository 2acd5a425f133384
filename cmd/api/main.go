package main

import (
	"context"
	"log"

	"github.com/devfolio/portfolio-backend/config"
	"github.com/devfolio/portfolio-backend/internal/auth"
	"github.com/devfolio/portfolio-backend/internal/bootstrap"
	"github.com/devfolio/portfolio-backend/internal/contact/mailer"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	db, err := bootstrap.OpenDB(ctx, &cfg.Database)
	if err != nil {
		log.Fatalf("postgres: %v", err)
	}
	defer db.Close()

	rdb, err := bootstrap.OpenRedis(ctx, &cfg.Redis)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	defer rdb.Close()

	authClient, err := auth.InitializeFirebase(&cfg.Firebase)
	if err != nil {
		log.Fatalf("firebase: %v", err)
	}

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: "portfolio-backend",
		Version:     cfg.App.Version,
		CORSOrigins: cfg.Server.CORSOrigins,
		DB:          db,
		Redis:       rdb,
		AuthClient:  authClient,
		Mailer:      mailer.NewClient(&cfg.Mailer),
	})

	log.Printf("listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
