package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"dsastreak/internal/cache"
	"dsastreak/internal/config"
	"dsastreak/internal/dashboard"
	"dsastreak/internal/db"
	"dsastreak/internal/jobs"
	"dsastreak/internal/metrics"
	"dsastreak/internal/server"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.Load()

	if cfg.IsDev() {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})))
	} else {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	}

	loc, err := cfg.Location()
	if err != nil {
		fatal("invalid configuration", err)
	}

	// Initialize database
	database, err := db.New(ctx, cfg.DatabaseURL, loc.String())
	if err != nil {
		fatal("failed to connect to database", err)
	}
	defer database.Close()

	if cfg.RunMigrations {
		if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
			fatal("failed to run migrations", err)
		}
		slog.Info("migrations completed successfully")
	}

	if cfg.SeedDevData {
		yamlCfg, err := config.LoadYAMLConfig()
		if err != nil {
			fatal("failed to load YAML config", err)
		}
		if seed := yamlCfg.SeedQuestions(); len(seed) > 0 {
			n, err := database.SeedQuestions(ctx, seed)
			if err != nil {
				fatal("failed to seed question bank", err)
			}
			slog.Info("seeded question bank", "inserted", n, "configured", len(seed))
		}
	}

	metrics.Init(database)

	// Shared catalogue, cached in Redis when configured
	var store cache.Storage
	if cfg.CacheEnabled() {
		redisStore := cache.NewRedisStorage(cfg.RedisURL)
		defer redisStore.Close()
		store = redisStore
		slog.Info("catalogue cache enabled", "ttl", cfg.CatalogueCacheTTL)
	}
	catalogue := cache.NewCatalogue(database, store, cfg.CatalogueCacheTTL)
	if cfg.SeedDevData {
		if err := catalogue.Invalidate(); err != nil {
			slog.Warn("failed to invalidate catalogue cache after seeding", "error", err)
		}
	}

	if store != nil && cfg.CatalogueWarmInterval > 0 {
		warmer := jobs.NewCatalogueWarmer(catalogue, cfg.CatalogueWarmInterval)
		go warmer.Start(ctx)
	}

	dashboardService := dashboard.NewService(database, dashboard.WithLocation(loc))

	srv := server.New(cfg)
	srv.RegisterRoutes(server.Deps{
		Health:    database,
		Dashboard: dashboardService,
		Shared:    catalogue,
		Questions: database,
		Solves:    database,
		Notes:     database,
	})

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			slog.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	cancel()
	if err := srv.Shutdown(); err != nil {
		slog.Error("server forced to shutdown", "error", err)
	}
	slog.Info("server exited")
}

func fatal(msg string, err error) {
	slog.Error(msg, "error", err)
	os.Exit(1)
}
