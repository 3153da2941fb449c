package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"explore-options/config"
	"explore-options/domain"
	httpLayer "explore-options/http"
	"explore-options/repository"
	"explore-options/service"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	cache, closeCache := newCache(cfg)
	defer closeCache()

	history := repository.NewScenarioRepositoryMemory(cfg.History.Capacity)

	coordinator := service.NewCoordinator(func(res domain.ScenarioResult) {
		if err := history.Save(res); err != nil {
			log.Printf("Warning: failed to record %s result: %v", res.Scenario, err)
		}
		log.Printf("Scenario %s updated for principal %s", res.Scenario, service.FormatCurrency(res.Loan.Principal))
	})
	if err := coordinator.Initialize(*cfg.Loan); err != nil {
		log.Fatalf("Invalid loan in config: %v", err)
	}

	mode, err := domain.ParseComparisonMode(cfg.Explore.ComparisonMode)
	if err != nil {
		log.Fatalf("Invalid config: %v", err)
	}
	if _, err := coordinator.SetComparisonMode(mode); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}
	scenario, err := domain.ParseScenarioID(cfg.Explore.Scenario)
	if err != nil {
		log.Fatalf("Invalid config: %v", err)
	}
	if _, err := coordinator.SelectScenario(scenario); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	scenarioService := service.NewScenarioService(history, cache)

	exploreHandler := httpLayer.NewExploreHandler(coordinator, history)
	evaluateHandler := httpLayer.NewEvaluateHandler(scenarioService)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit.Capacity, cfg.RateLimit.Refill)
	defer rateLimiter.Stop()

	mux := http.NewServeMux()
	httpLayer.Register(mux, rateLimiter, exploreHandler, evaluateHandler)

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      mux,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("Explore options API listening on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Printf("Error starting server: %v", err)
		return
	case <-quit:
		log.Println("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Server exited")
}

// newCache returns the Redis cache when configured and reachable, and the
// in-memory cache otherwise.
func newCache(cfg *config.Config) (repository.CacheRepository, func()) {
	if cfg.Cache.Backend != "redis" {
		return repository.NewMemoryCache(), func() {}
	}

	redisCache := repository.NewRedisCache(cfg.Cache.RedisAddr, cfg.Cache.KeyPrefix, cfg.Cache.TTL)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := redisCache.Ping(ctx); err != nil {
		log.Printf("Warning: redis at %s unavailable, using memory cache: %v", cfg.Cache.RedisAddr, err)
		redisCache.Close()
		return repository.NewMemoryCache(), func() {}
	}

	return redisCache, func() {
		if err := redisCache.Close(); err != nil {
			log.Printf("Error closing redis: %v", err)
		}
	}
}
