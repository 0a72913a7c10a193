package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAPIConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *APIConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
sentry_dsn: "https://sentry.example.com"
server:
  host: 127.0.0.1
  port: 9090
  read_timeout: 15
auth:
  jwt_public_key: "test-key"
  api_keys:
    - "key-one"
    - "key-two"
neo4j:
  uri: "bolt://graph:7687"
  username: neo4j
  password: secret
  database: nft
redis:
  addr: "redis:6379"
  password: redispass
  db: 2
database:
  host: localhost
  port: 5432
  user: testuser
  password: testpass
  dbname: testdb
  sslmode: require
nats:
  url: "nats://localhost:4222"
  stream_name: "TEST_STREAM"
  max_reconnects: 5
  reconnect_wait: "5s"
  connection_name: "test-connection"
opensea:
  api_url: "https://api.opensea.example"
  api_key: "os-key"
  http_timeout: "10s"
  page_limit: 25
ratelimiter:
  redis_key_prefix: "test:limiter:"
  max_workers: 4
  providers:
    opensea:
      requests_per_second: 2
      burst: 3
      max_queue_time: "1m"
update:
  staleness_threshold: "24h"
  default_frequency: 3600
  top_k: 10
  detection_targets:
    - "boredapeyachtclub"
cache:
  ttl: "1h"
collections_path: "config/collections.json"
`,
			expectError: false,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "https://sentry.example.com", cfg.SentryDSN)
				assert.Equal(t, "127.0.0.1", cfg.Server.Host)
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, 15, cfg.Server.ReadTimeout)
				assert.Equal(t, "test-key", cfg.Auth.JWTPublicKey)
				assert.Equal(t, []string{"key-one", "key-two"}, cfg.Auth.APIKeys)
				assert.Equal(t, "bolt://graph:7687", cfg.Neo4j.URI)
				assert.Equal(t, "nft", cfg.Neo4j.Database)
				assert.Equal(t, "redis:6379", cfg.Redis.Addr)
				assert.Equal(t, 2, cfg.Redis.DB)
				assert.Equal(t, "localhost", cfg.Database.Host)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "testuser", cfg.Database.User)
				assert.Equal(t, "require", cfg.Database.SSLMode)
				assert.Equal(t, "nats://localhost:4222", cfg.NATS.URL)
				assert.Equal(t, "TEST_STREAM", cfg.NATS.StreamName)
				assert.Equal(t, "https://api.opensea.example", cfg.OpenSea.APIURL)
				assert.Equal(t, "os-key", cfg.OpenSea.APIKey)
				assert.Equal(t, 10*time.Second, cfg.OpenSea.HTTPTimeout)
				assert.Equal(t, 25, cfg.OpenSea.PageLimit)
				assert.Equal(t, "test:limiter:", cfg.RateLimiter.RedisKeyPrefix)
				assert.Equal(t, 4, cfg.RateLimiter.MaxWorkers)
				assert.Equal(t, 2, cfg.RateLimiter.Providers["opensea"].RequestsPerSecond)
				assert.Equal(t, 3, cfg.RateLimiter.Providers["opensea"].Burst)
				assert.Equal(t, time.Minute, cfg.RateLimiter.Providers["opensea"].MaxQueueTime)
				assert.Equal(t, 24*time.Hour, cfg.Update.StalenessThreshold)
				assert.Equal(t, int64(3600), cfg.Update.DefaultFrequency)
				assert.Equal(t, 10, cfg.Update.TopK)
				assert.Equal(t, []string{"boredapeyachtclub"}, cfg.Update.DetectionTargets)
				assert.Equal(t, time.Hour, cfg.Cache.TTL)
				assert.Equal(t, "config/collections.json", cfg.CollectionsPath)
			},
		},
		{
			name: "config with defaults",
			configFile: `
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
`,
			expectError: false,
			validate: func(t *testing.T, cfg *APIConfig) {
				// Check defaults
				assert.False(t, cfg.Debug)
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, "bolt://localhost:7687", cfg.Neo4j.URI)
				assert.Equal(t, "neo4j", cfg.Neo4j.Username)
				assert.Equal(t, "neo4j", cfg.Neo4j.Database)
				assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, "GRAPH_EVENTS", cfg.NATS.StreamName)
				assert.Equal(t, 10, cfg.NATS.MaxReconnects)
				assert.Equal(t, "2s", cfg.NATS.ReconnectWait.String())
				assert.Equal(t, "https://api.opensea.io/api/v2", cfg.OpenSea.APIURL)
				assert.Equal(t, 50, cfg.OpenSea.PageLimit)
				assert.Equal(t, 30*time.Second, cfg.OpenSea.HTTPTimeout)
				assert.Equal(t, "blockdash:limiter:", cfg.RateLimiter.RedisKeyPrefix)
				assert.True(t, cfg.RateLimiter.EnableLocalFallback)
				assert.Equal(t, 4, cfg.RateLimiter.Providers["opensea"].RequestsPerSecond)
				assert.Equal(t, 5*time.Minute, cfg.RateLimiter.Providers["opensea"].MaxQueueTime)
				assert.Equal(t, 48*time.Hour, cfg.Update.StalenessThreshold)
				assert.Equal(t, int64(86000), cfg.Update.DefaultFrequency)
				assert.Equal(t, 100, cfg.Update.TopK)
				assert.Equal(t, []string{"degods-eth", "complete"}, cfg.Update.DetectionTargets)
				assert.Equal(t, 24*time.Hour, cfg.Cache.TTL)
				assert.Equal(t, "config/collections.json", cfg.CollectionsPath)
			},
		},
		{
			name: "missing database host",
			configFile: `
database:
  user: testuser
  dbname: testdb
`,
			expectError: true,
			validate:    nil,
		},
		{
			name:        "missing config file",
			configFile:  "",
			expectError: true, // Explicit path that does not exist
			validate:    nil,
		},
		{
			name: "invalid yaml",
			configFile: `
				database:
				  host: localhost
				  port: invalid
			`,
			expectError: true,
			validate:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			var configFile string

			if tt.configFile != "" {
				configFile = filepath.Join(tmpDir, "config.yaml")
				err := os.WriteFile(configFile, []byte(tt.configFile), 0600)
				require.NoError(t, err)
			} else {
				configFile = filepath.Join(tmpDir, "nonexistent.yaml")
			}

			cfg, err := LoadAPIConfig(configFile, tmpDir)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				require.NotNil(t, cfg)
				if tt.validate != nil {
					tt.validate(t, cfg)
				}
			}
		})
	}
}

func TestLoadSyncConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *SyncConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
neo4j:
  uri: "bolt://graph:7687"
  password: secret
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
opensea:
  api_key: "os-key"
worker:
  pool_size: 8
  queue_size: 256
update:
  staleness_threshold: "12h"
`,
			expectError: false,
			validate: func(t *testing.T, cfg *SyncConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "bolt://graph:7687", cfg.Neo4j.URI)
				assert.Equal(t, "secret", cfg.Neo4j.Password)
				assert.Equal(t, "os-key", cfg.OpenSea.APIKey)
				assert.Equal(t, 8, cfg.Worker.WorkerPoolSize)
				assert.Equal(t, 256, cfg.Worker.WorkerQueueSize)
				assert.Equal(t, 12*time.Hour, cfg.Update.StalenessThreshold)
				// Defaults still apply to omitted sections
				assert.Equal(t, int64(86000), cfg.Update.DefaultFrequency)
				assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
			},
		},
		{
			name: "missing required database",
			configFile: `
neo4j:
  uri: "bolt://graph:7687"
`,
			expectError: true,
			validate:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			configFile := filepath.Join(tmpDir, "config.yaml")
			err := os.WriteFile(configFile, []byte(tt.configFile), 0600)
			require.NoError(t, err)

			cfg, err := LoadSyncConfig(configFile, tmpDir)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				require.NotNil(t, cfg)
				if tt.validate != nil {
					tt.validate(t, cfg)
				}
			}
		})
	}
}

func TestDatabaseConfigDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "user",
		Password: "pass",
		DBName:   "graphsync",
		SSLMode:  "disable",
	}

	dsn := cfg.DSN()
	assert.Equal(t, "host=localhost port=5432 user=user password=pass dbname=graphsync sslmode=disable", dsn)
}
