package main

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/finbyte/transactions-api/internal/config"
	"github.com/finbyte/transactions-api/internal/router"
	"github.com/finbyte/transactions-api/internal/transactions"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("error creating pgx pool: %v", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		log.Fatalf("error pinging database: %v", err)
	}

	app := router.NewApp()
	app.Use(router.CorsMiddleware(cfg.CorsOrigin))
	app.Use(router.RequestLogger(log))

	r := &router.Router{
		Transactions:  transactions.NewHandler(transactions.NewRepo(pool)),
		CreateLimiter: router.RateLimitCreate(cfg.CreateRateMax, cfg.CreateRateWindow),
	}
	r.RegisterRoutes(app)

	log.Infoln("listening on port", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
