package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// Neo4jConfig holds graph store configuration
type Neo4jConfig struct {
	URI      string `mapstructure:"uri"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Database string `mapstructure:"database"`
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// DatabaseConfig holds the sync-run journal database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
}

// NATSConfig holds NATS JetStream configuration. An empty URL disables publishing.
type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	StreamName     string        `mapstructure:"stream_name"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
}

// OpenSeaConfig holds the event feed configuration
type OpenSeaConfig struct {
	APIURL      string        `mapstructure:"api_url"`
	APIKey      string        `mapstructure:"api_key"`
	HTTPTimeout time.Duration `mapstructure:"http_timeout"`
	PageLimit   int           `mapstructure:"page_limit"`
}

// RateLimitConfig holds per-provider rate limit configuration
type RateLimitConfig struct {
	RequestsPerSecond int           `mapstructure:"requests_per_second"`
	Burst             int           `mapstructure:"burst"`
	MaxQueueTime      time.Duration `mapstructure:"max_queue_time"`
}

// RateLimiterConfig holds the outbound request throttle configuration
type RateLimiterConfig struct {
	RedisKeyPrefix          string                     `mapstructure:"redis_key_prefix"`
	MaxWorkers              int                        `mapstructure:"max_workers"`
	MaxQueueSize            int                        `mapstructure:"max_queue_size"`
	EnableLocalFallback     bool                       `mapstructure:"enable_local_fallback"`
	LocalFallbackMultiplier float64                    `mapstructure:"local_fallback_multiplier"`
	Providers               map[string]RateLimitConfig `mapstructure:"providers"`
}

// UpdateConfig holds synchronization and detection policy configuration
type UpdateConfig struct {
	// StalenessThreshold is the minimum elapsed time since a token's last
	// sync before it is eligible for refresh
	StalenessThreshold time.Duration `mapstructure:"staleness_threshold"`
	// DefaultFrequency is the trigger interval in seconds used when a
	// collection has no persisted frequency
	DefaultFrequency int64 `mapstructure:"default_frequency"`
	// TopK bounds the community summary lists; 0 keeps all communities
	TopK int `mapstructure:"top_k"`
	// DetectionTargets lists the collection slugs community detection is
	// armed for; "complete" is the unfiltered variant
	DetectionTargets []string `mapstructure:"detection_targets"`
}

// CacheConfig holds response cache configuration
type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string   `mapstructure:"jwt_public_key"`
	APIKeys      []string `mapstructure:"api_keys"`
}

// WorkerConfig holds worker pool configuration
type WorkerConfig struct {
	WorkerPoolSize  int `mapstructure:"pool_size"`
	WorkerQueueSize int `mapstructure:"queue_size"`
}

// APIConfig holds configuration for the API server
type APIConfig struct {
	BaseConfig      `mapstructure:",squash"`
	Server          ServerConfig      `mapstructure:"server"`
	Auth            AuthConfig        `mapstructure:"auth"`
	Neo4j           Neo4jConfig       `mapstructure:"neo4j"`
	Redis           RedisConfig       `mapstructure:"redis"`
	Database        DatabaseConfig    `mapstructure:"database"`
	NATS            NATSConfig        `mapstructure:"nats"`
	OpenSea         OpenSeaConfig     `mapstructure:"opensea"`
	RateLimiter     RateLimiterConfig `mapstructure:"ratelimiter"`
	Update          UpdateConfig      `mapstructure:"update"`
	Cache           CacheConfig       `mapstructure:"cache"`
	Worker          WorkerConfig      `mapstructure:"worker"`
	CollectionsPath string            `mapstructure:"collections_path"`
}

// SyncConfig holds configuration for the one-shot sync runner
type SyncConfig struct {
	BaseConfig      `mapstructure:",squash"`
	Neo4j           Neo4jConfig       `mapstructure:"neo4j"`
	Redis           RedisConfig       `mapstructure:"redis"`
	Database        DatabaseConfig    `mapstructure:"database"`
	NATS            NATSConfig        `mapstructure:"nats"`
	OpenSea         OpenSeaConfig     `mapstructure:"opensea"`
	RateLimiter     RateLimiterConfig `mapstructure:"ratelimiter"`
	Update          UpdateConfig      `mapstructure:"update"`
	Worker          WorkerConfig      `mapstructure:"worker"`
	CollectionsPath string            `mapstructure:"collections_path"`
}

// LoadAPIConfig loads configuration for the API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 30)
	v.SetDefault("server.idle_timeout", 120)
	setSharedDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// Config file not found, use environment variables
		} else {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config APIConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateSharedConfig(config.Database, config.CollectionsPath); err != nil {
		return nil, err
	}

	return &config, nil
}

// LoadSyncConfig loads configuration for the one-shot sync runner
func LoadSyncConfig(configFile string, envPath string) (*SyncConfig, error) {
	v := configureViper("sync", configFile, envPath)

	v.SetDefault("debug", false)
	setSharedDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// Config file not found, use environment variables
		} else {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config SyncConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateSharedConfig(config.Database, config.CollectionsPath); err != nil {
		return nil, err
	}

	return &config, nil
}

// setSharedDefaults sets the defaults common to every binary
func setSharedDefaults(v *viper.Viper) {
	v.SetDefault("neo4j.uri", "bolt://localhost:7687")
	v.SetDefault("neo4j.username", "neo4j")
	v.SetDefault("neo4j.database", "neo4j")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "1h")
	v.SetDefault("database.conn_max_idle_time", "10m")
	v.SetDefault("nats.stream_name", "GRAPH_EVENTS")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("opensea.api_url", "https://api.opensea.io/api/v2")
	v.SetDefault("opensea.http_timeout", "30s")
	v.SetDefault("opensea.page_limit", 50)
	v.SetDefault("ratelimiter.redis_key_prefix", "blockdash:limiter:")
	v.SetDefault("ratelimiter.enable_local_fallback", true)
	v.SetDefault("ratelimiter.local_fallback_multiplier", 0.5)
	v.SetDefault("ratelimiter.providers.opensea.requests_per_second", 4)
	v.SetDefault("ratelimiter.providers.opensea.burst", 4)
	v.SetDefault("ratelimiter.providers.opensea.max_queue_time", "5m")
	v.SetDefault("update.staleness_threshold", "48h")
	v.SetDefault("update.default_frequency", 86000)
	v.SetDefault("update.top_k", 100)
	v.SetDefault("update.detection_targets", []string{"degods-eth", "complete"})
	v.SetDefault("cache.ttl", "24h")
	v.SetDefault("worker.pool_size", 4)
	v.SetDefault("worker.queue_size", 64)
	v.SetDefault("collections_path", "config/collections.json")
}

// validateSharedConfig validates the fields every binary requires
func validateSharedConfig(db DatabaseConfig, collectionsPath string) error {
	if db.Host == "" {
		return errors.New("database.host is required")
	}
	if db.DBName == "" {
		return errors.New("database.dbname is required")
	}
	if collectionsPath == "" {
		return errors.New("collections_path is required")
	}
	return nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	// Set config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// Search for config.yaml in multiple locations:
		// 1. Current directory
		v.AddConfigPath(".")
		// 2. Service-specific directory (e.g., cmd/api/, cmd/sync/)
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		// 3. Config directory
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix("BLOCKDASH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind all environment variables
	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	commonKeys := []string{
		"debug",
		"sentry_dsn",
		// Neo4j
		"neo4j.uri",
		"neo4j.username",
		"neo4j.password",
		"neo4j.database",
		// Redis
		"redis.addr",
		"redis.password",
		"redis.db",
		// Database
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// NATS
		"nats.url",
		"nats.stream_name",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		// OpenSea
		"opensea.api_url",
		"opensea.api_key",
		"opensea.http_timeout",
		"opensea.page_limit",
		// Rate limiter
		"ratelimiter.redis_key_prefix",
		"ratelimiter.max_workers",
		"ratelimiter.max_queue_size",
		"ratelimiter.enable_local_fallback",
		"ratelimiter.local_fallback_multiplier",
		"ratelimiter.providers.opensea.requests_per_second",
		"ratelimiter.providers.opensea.burst",
		"ratelimiter.providers.opensea.max_queue_time",
		// Update policy
		"update.staleness_threshold",
		"update.default_frequency",
		"update.top_k",
		"update.detection_targets",
		// Cache
		"cache.ttl",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		// Auth
		"auth.jwt_public_key",
		"auth.api_keys",
		// Worker
		"worker.pool_size",
		"worker.queue_size",
		// Registry
		"collections_path",
	}

	for _, key := range commonKeys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	// Always try shared base first, then local, then optional per-service local.
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	// Default to config directory
	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}
