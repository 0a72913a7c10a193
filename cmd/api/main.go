package main

import (
	"context"
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
	"github.com/alexpan006/blockdash-api/internal/analytics"
	"github.com/alexpan006/blockdash-api/internal/api/middleware"
	"github.com/alexpan006/blockdash-api/internal/api/server"
	"github.com/alexpan006/blockdash-api/internal/api/shared/executor"
	"github.com/alexpan006/blockdash-api/internal/cache"
	"github.com/alexpan006/blockdash-api/internal/centrality"
	"github.com/alexpan006/blockdash-api/internal/community"
	"github.com/alexpan006/blockdash-api/internal/config"
	"github.com/alexpan006/blockdash-api/internal/logger"
	"github.com/alexpan006/blockdash-api/internal/messaging"
	"github.com/alexpan006/blockdash-api/internal/projection"
	"github.com/alexpan006/blockdash-api/internal/providers/jetstream"
	"github.com/alexpan006/blockdash-api/internal/providers/opensea"
	"github.com/alexpan006/blockdash-api/internal/ratelimit"
	"github.com/alexpan006/blockdash-api/internal/registry"
	"github.com/alexpan006/blockdash-api/internal/scheduler"
	"github.com/alexpan006/blockdash-api/internal/store"
	syncpkg "github.com/alexpan006/blockdash-api/internal/sync"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "api-server",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Blockdash API")

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
	logger.InfoCtx(ctx, "Connected to Neo4j", zap.String("uri", cfg.Neo4j.URI))

	// Connect to the run journal database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	journal := store.NewPGJournal(db)
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

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
	responseCache := cache.New(redisClient, jsonAdapter, jcsAdapter, cfg.Cache.TTL)

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
		logger.InfoCtx(ctx, "Connected to NATS", zap.String("url", cfg.NATS.URL))
	} else {
		logger.WarnCtx(ctx, "NATS URL not configured, graph events will not be published")
	}

	// Load the tracked collection registry
	collections, err := registry.LoadCollections(cfg.CollectionsPath)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to load collection registry",
			zap.Error(err),
			zap.String("path", cfg.CollectionsPath))
	}
	logger.InfoCtx(ctx, "Loaded collection registry",
		zap.String("path", cfg.CollectionsPath),
		zap.Int("collections", len(collections.All())))

	// Build the OpenSea feed behind the rate limit proxy
	rateLimitProxy, err := ratelimit.NewProxy(cfg.RateLimiter, redisClient, clock)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create rate limit proxy", zap.Error(err))
	}
	httpClient := adapter.NewHTTPClient(cfg.OpenSea.HTTPTimeout)
	feed := opensea.NewClient(httpClient, rateLimitProxy, cfg.OpenSea.APIURL, cfg.OpenSea.APIKey, cfg.OpenSea.PageLimit, jsonAdapter)

	// Build the services
	projections := projection.NewManager(graphStore)
	synchronizer := syncpkg.NewSynchronizer(collections, graphStore, feed, journal, responseCache, publisher, clock, syncpkg.StalenessGate{
		Threshold: cfg.Update.StalenessThreshold,
	})
	detector := community.NewWriter(graphStore, projections, responseCache, publisher, clock)
	communityReader := community.NewReader(graphStore, collections)
	centralityService := centrality.NewService(graphStore, projections, collections)
	analyticsService := analytics.NewService(graphStore, collections)

	// Arm the trigger registry
	triggers := scheduler.NewRegistry(scheduler.Config{
		DefaultFrequency: cfg.Update.DefaultFrequency,
		TopK:             cfg.Update.TopK,
		DetectionTargets: cfg.Update.DetectionTargets,
		WorkerPoolSize:   cfg.Worker.WorkerPoolSize,
		WorkerQueueSize:  cfg.Worker.WorkerQueueSize,
	}, collections, graphStore, synchronizer, detector, clock)
	if err := triggers.ArmFromConfig(ctx); err != nil {
		logger.FatalCtx(ctx, "Failed to arm triggers", zap.Error(err))
	}

	// Run the trigger loops
	schedulerErrCh := make(chan error, 1)
	go func() {
		if err := triggers.Start(ctx); err != nil {
			schedulerErrCh <- err
		}
	}()

	// Create and start the server
	exec := executor.NewExecutor(
		collections,
		graphStore,
		journal,
		triggers,
		communityReader,
		centralityService,
		analyticsService,
		responseCache,
		jsonAdapter,
		cfg.Update.DefaultFrequency,
	)
	srv := server.New(server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}, exec, middleware.AuthConfig{
		JWTPublicKey: cfg.Auth.JWTPublicKey,
		APIKeys:      cfg.Auth.APIKeys,
	})

	serverErrCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			serverErrCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-serverErrCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
	case err := <-schedulerErrCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "scheduler"))
	}
	cancel()

	// Shutdown with a fresh context, the run context is already canceled
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error(err, zap.String("component", "server"))
	}
	if err := triggers.Stop(shutdownCtx); err != nil {
		logger.Error(err, zap.String("component", "scheduler"))
	}

	// Use non-context logger for the final message, the run context is canceled
	logger.Info("Blockdash API stopped")
}
