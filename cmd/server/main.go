package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ignite/campaign-orchestrator/internal/api"
	"github.com/ignite/campaign-orchestrator/internal/config"
	"github.com/ignite/campaign-orchestrator/internal/content"
	"github.com/ignite/campaign-orchestrator/internal/distribution"
	"github.com/ignite/campaign-orchestrator/internal/outreach"
	"github.com/ignite/campaign-orchestrator/internal/planner"
	"github.com/ignite/campaign-orchestrator/internal/pkg/cache"
	"github.com/ignite/campaign-orchestrator/internal/pkg/logger"
	"github.com/ignite/campaign-orchestrator/internal/repository/postgres"
	"github.com/ignite/campaign-orchestrator/internal/timeline"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to configuration file")
	flag.Parse()

	cfg, err := config.LoadFromEnv(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	// Planner response cache: Redis when configured, in-process otherwise.
	var responseCache cache.Cache
	if cfg.Cache.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.RedisAddr,
			Password: cfg.Cache.RedisPassword,
			DB:       cfg.Cache.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			logger.Warn("redis unreachable, using in-memory cache", "error", err.Error())
			responseCache = cache.NewMemoryCache()
		} else {
			responseCache = cache.NewRedisCache(client, "orchestrator")
			logger.Info("planner cache backed by redis", "addr", cfg.Cache.RedisAddr)
		}
	} else {
		responseCache = cache.NewMemoryCache()
	}

	// The planner is optional: without it every run takes the deterministic
	// fallback path and still succeeds.
	var plannerSvc *planner.Service
	if cfg.Planner.Enabled {
		bedrock, err := planner.NewBedrockClient(ctx, cfg.Planner)
		if err != nil {
			logger.Warn("bedrock unavailable, running without planner", "error", err.Error())
		} else {
			plannerSvc = planner.NewService(
				bedrock,
				responseCache,
				time.Duration(cfg.Planner.CacheTTLSeconds)*time.Second,
				time.Duration(cfg.Planner.TimeoutSeconds)*time.Second,
			)
		}
	}

	seed := cfg.Scheduling.RandomSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	policy := timeline.Policy{
		ConservativePostsPerWeek:  cfg.Scheduling.ConservativePostsPerWeek,
		ExplicitDailyPostsPerWeek: cfg.Scheduling.ExplicitDailyPostsPerWeek,
		MaxSlots:                  cfg.Scheduling.MaxTimelineSlots,
	}

	var timelinePlanner timeline.Planner
	var distributionPlanner distribution.Planner
	var outreachPlanner outreach.Planner
	if plannerSvc != nil {
		timelinePlanner = plannerSvc
		distributionPlanner = plannerSvc
		outreachPlanner = plannerSvc
	}

	timelineSvc := timeline.NewService(timelinePlanner, timeline.NewBuilder(policy))
	distributionSvc := distribution.NewService(distributionPlanner, distribution.NewMatcher(rng))
	outreachSvc := outreach.NewService(outreachPlanner, outreach.NewScheduler())
	importer := content.NewFeedImporter(
		time.Duration(cfg.ContentFeeds.TimeoutSeconds)*time.Second,
		cfg.ContentFeeds.MaxItems,
	)

	// Audit store is optional; the server runs fully without it.
	var runStore api.RunStore
	if cfg.Database.Enabled {
		db, err := postgres.Open(cfg.Database.URL)
		if err != nil {
			logger.Warn("database unreachable, run history disabled", "error", err.Error())
		} else {
			defer db.Close()
			runStore = postgres.NewRunRepo(db)
			logger.Info("run history enabled")
		}
	}

	handlers := api.NewHandlers(timelineSvc, distributionSvc, outreachSvc, importer, runStore)
	server := api.NewServer(cfg.Server, handlers)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", addr, "planner_enabled", plannerSvc != nil)
		errCh <- server.ListenAndServe(addr)
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		logger.Error("server failed", "error", err.Error())
		os.Exit(1)
	case sig := <-done:
		logger.Info("shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err.Error())
	}
}
