package main

import (
	"context"
	"fmt"

	"github.com/thsampaio/customer-gateway/internal/config"
	handlerhttp "github.com/thsampaio/customer-gateway/internal/handler/http"
	"github.com/thsampaio/customer-gateway/internal/logger"
	"github.com/thsampaio/customer-gateway/internal/server"
	"github.com/thsampaio/customer-gateway/internal/service"
	"github.com/thsampaio/customer-gateway/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("customer-gateway")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	// An unreachable redis degrades the gateway instead of stopping it:
	// the cache serves misses and the rate limiter fails open.
	redisClient, err := store.NewRedisClient(ctx, cfg.Storage.Redis, log)
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, running without cache and rate limiting")
	}

	cache := store.NewRedisCache(redisClient, cfg.Storage.Redis.CacheTTL, log)
	repos := store.NewRepositories(db, cache, log)
	rateLimits := store.NewRedisRateLimitStore(redisClient, log)

	services := service.NewServices(repos, cfg.App, log)
	handlers := handlerhttp.NewHandler(services, rateLimits, cfg.RateLimit, log)

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
