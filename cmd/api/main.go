package main

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/msdharani1/portfolio-api/config"
	"github.com/msdharani1/portfolio-api/internal/bootstrap"
	"github.com/msdharani1/portfolio-api/internal/jobs"
	projectsvc "github.com/msdharani1/portfolio-api/internal/projects/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fb, err := bootstrap.InitFirebase(ctx, &cfg.Firebase)
	if err != nil {
		log.Fatalf("firebase: %v", err)
	}

	rdb, err := bootstrap.OpenRedis(ctx, &cfg.Redis)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	defer rdb.Close()

	// The contact archive is optional; the relay works without it.
	var pool *pgxpool.Pool
	if cfg.Database.DSN != "" {
		pool, err = bootstrap.OpenDB(ctx, bootstrap.DBOptions{DSN: cfg.Database.DSN})
		if err != nil {
			log.Fatalf("db: %v", err)
		}
		defer pool.Close()
	} else {
		log.Println("DB_DSN not set, contact archive disabled")
	}

	router, services := bootstrap.BuildRouter(bootstrap.RouterDeps{
		Cfg:      cfg,
		Firebase: fb,
		DB:       pool,
		Redis:    rdb,
	})

	watcher := projectsvc.NewWatcher(services.Projects, cfg.App.PollInterval)
	go watcher.Run(ctx)

	scheduler := jobs.NewScheduler(services.Projects, services.CV)
	scheduler.Start()

	log.Printf("listening on :%s", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
