package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/alexpan006/blockdash-api/internal/adapter"
	"github.com/alexpan006/blockdash-api/internal/cache"
	"github.com/alexpan006/blockdash-api/internal/community"
	"github.com/alexpan006/blockdash-api/internal/config"
	"github.com/alexpan006/blockdash-api/internal/logger"
	"github.com/alexpan006/blockdash-api/internal/messaging"
	"github.com/alexpan006/blockdash-api/internal/projection"
	"github.com/alexpan006/blockdash-api/internal/providers/jetstream"
	"github.com/alexpan006/blockdash-api/internal/providers/opensea"
	"github.com/alexpan006/blockdash-api/internal/ratelimit"
	"github.com/alexpan006/blockdash-api/internal/registry"
	"github.com/alexpan006/blockdash-api/internal/store"
	"github.com/alexpan006/blockdash-api/internal/store/schema"
	syncpkg "github.com/alexpan006/blockdash-api/internal/sync"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
	collection = flag.String("collection", "all", "Collection slug to sync, or 'all' for every tracked collection")
	detect     = flag.Bool("detect", false, "Run community detection for the configured detection targets after syncing")
	topK       = flag.Int("top-k", 0, "Override the configured community summary bound; 0 keeps the configured value")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadSyncConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Cancel the run on interrupt, the walk stops at the next token
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "sync-runner",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)

	// Connect to the graph store
	driver, err := store.Connect(ctx, cfg.Neo4j.URI, cfg.Neo4j.Username, cfg.Neo4j.Password)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to Neo4j", zap.Error(err), zap.String("uri", cfg.Neo4j.URI))
	}
	graphStore := store.NewNeo4jStore(driver, cfg.Neo4j.Database)
	defer func() {
		if err := graphStore.Close(context.Background()); err != nil {
			logger.Error(err, zap.String("component", "neo4j"))
		}
	}()

	// Connect to the run journal database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	journal := store.NewPGJournal(db)

	// Initialize adapters
	jsonAdapter := adapter.NewJSON()
	jcsAdapter := adapter.NewJCS()
	clock := adapter.NewClock()

	// Connect to Redis
	redisClient := adapter.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.FatalCtx(ctx, "Failed to connect to Redis", zap.Error(err), zap.String("addr", cfg.Redis.Addr))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Error(err, zap.String("component", "redis"))
		}
	}()
	responseCache := cache.New(redisClient, jsonAdapter, jcsAdapter, 0)

	// Connect to NATS. An empty URL disables publishing.
	var publisher messaging.Publisher
	if cfg.NATS.URL != "" {
		publisher, err = jetstream.NewPublisher(jetstream.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
		}, adapter.NewNatsJetStream(), jsonAdapter)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err), zap.String("url", cfg.NATS.URL))
		}
		defer publisher.Close()
	}

	// Load the tracked collection registry
	collections, err := registry.LoadCollections(cfg.CollectionsPath)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to load collection registry",
			zap.Error(err),
			zap.String("path", cfg.CollectionsPath))
	}

	// Build the OpenSea feed behind the rate limit proxy
	rateLimitProxy, err := ratelimit.NewProxy(cfg.RateLimiter, redisClient, clock)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create rate limit proxy", zap.Error(err))
	}
	httpClient := adapter.NewHTTPClient(cfg.OpenSea.HTTPTimeout)
	feed := opensea.NewClient(httpClient, rateLimitProxy, cfg.OpenSea.APIURL, cfg.OpenSea.APIKey, cfg.OpenSea.PageLimit, jsonAdapter)

	synchronizer := syncpkg.NewSynchronizer(collections, graphStore, feed, journal, responseCache, publisher, clock, syncpkg.StalenessGate{
		Threshold: cfg.Update.StalenessThreshold,
	})

	// Resolve the target collections
	var targets []string
	if *collection == "all" {
		for _, c := range collections.All() {
			targets = append(targets, c.Slug)
		}
	} else {
		if _, err := collections.Get(*collection); err != nil {
			logger.FatalCtx(ctx, "Unknown collection", zap.String("collection", *collection))
		}
		targets = []string{*collection}
	}

	// Sync each target in turn
	failed := false
	for _, slug := range targets {
		summary, err := synchronizer.RunUpdate(ctx, slug, schema.SyncRunTriggerManual)
		if err != nil {
			if errors.Is(err, syncpkg.ErrSyncInProgress) {
				logger.WarnCtx(ctx, "Sync already in progress, skipping", zap.String("collection", slug))
				continue
			}
			logger.ErrorCtx(ctx, err, zap.String("collection", slug))
			failed = true
			continue
		}
		logger.InfoCtx(ctx, "Sync completed",
			zap.String("collection", slug),
			zap.Int("tokens_checked", summary.TokensChecked),
			zap.Int("tokens_synced", summary.TokensSynced),
			zap.Int("events_applied", summary.EventsApplied),
		)
	}

	// Optionally refresh communities for the configured detection targets
	if *detect {
		bound := cfg.Update.TopK
		if *topK > 0 {
			bound = *topK
		}

		projections := projection.NewManager(graphStore)
		detector := community.NewWriter(graphStore, projections, responseCache, publisher, clock)
		for _, target := range cfg.Update.DetectionTargets {
			if err := detector.RunDetection(ctx, target, bound); err != nil {
				logger.ErrorCtx(ctx, err, zap.String("collection", target))
				failed = true
				continue
			}
			logger.InfoCtx(ctx, "Community detection completed", zap.String("collection", target))
		}
	}

	if failed {
		logger.Flush(2 * time.Second)
		os.Exit(1)
	}
}
