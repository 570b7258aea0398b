package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration.
type Config struct {
	Environment string        `toml:"environment"`
	Server      ServerConfig  `toml:"server"`
	Storage     StorageConfig `toml:"storage"`
	Session     SessionConfig `toml:"session"`
	Listing     ListingConfig `toml:"listing"`
	Seed        SeedConfig    `toml:"seed"`
	Logging     LoggingConfig `toml:"logging"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port int    `toml:"port"`
	Host string `toml:"host"`
}

// StorageConfig selects the key-value backend holding session snapshots.
type StorageConfig struct {
	Backend string       `toml:"backend"` // "badger", "redis" or "memory"
	Badger  BadgerConfig `toml:"badger"`
	Redis   RedisConfig  `toml:"redis"`
}

// BadgerConfig contains BadgerDB-specific settings.
type BadgerConfig struct {
	Path string `toml:"path"`
}

// RedisConfig contains Redis connection settings.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	Prefix   string `toml:"prefix"`
}

// SessionConfig controls the visitor cookie.
type SessionConfig struct {
	Secret     string `toml:"secret"`
	TTL        string `toml:"ttl"`
	CookieName string `toml:"cookie_name"`
}

// ListingConfig tunes the listing boards.
type ListingConfig struct {
	Timezone        string `toml:"timezone"`
	CacheTTL        string `toml:"cache_ttl"`
	CacheMaxEntries int    `toml:"cache_max_entries"`
}

// SeedConfig points at an optional JSON file replacing the built-in mock data.
type SeedConfig struct {
	Path string `toml:"path"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level      string   `toml:"level"`
	Outputs    []string `toml:"outputs"`
	FilePath   string   `toml:"file_path"`
	MaxSizeMB  int      `toml:"max_size_mb"`
	MaxBackups int      `toml:"max_backups"`
}

// IsDevMode reports whether the portal runs with development conveniences.
func (c *Config) IsDevMode() bool {
	env := strings.ToLower(strings.TrimSpace(c.Environment))
	return env == "dev" || env == "development"
}

// SessionTTL parses the session lifetime, falling back to 30 days.
func (c *Config) SessionTTL() time.Duration {
	d, err := time.ParseDuration(c.Session.TTL)
	if err != nil || d <= 0 {
		return 30 * 24 * time.Hour
	}
	return d
}

// CacheTTL parses the listing cache lifetime, falling back to 30 seconds.
func (c *Config) CacheTTL() time.Duration {
	d, err := time.ParseDuration(c.Listing.CacheTTL)
	if err != nil || d <= 0 {
		return 30 * time.Second
	}
	return d
}

// Location resolves the listing timezone. Unknown names fall back to UTC;
// Validate reports them.
func (c *Config) Location() *time.Location {
	if c.Listing.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(c.Listing.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// BaseURL returns the externally visible address of the portal.
func (c *Config) BaseURL() string {
	return fmt.Sprintf("http://%s:%d", c.Server.Host, c.Server.Port)
}

// Validate returns every problem that prevents the portal from starting.
func (c *Config) Validate() []string {
	var issues []string

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		issues = append(issues, fmt.Sprintf("server.port must be between 1 and 65535 (got %d)", c.Server.Port))
	}

	switch c.Storage.Backend {
	case "badger":
		if c.Storage.Badger.Path == "" {
			issues = append(issues, "storage.badger.path is required when storage.backend is \"badger\"")
		}
	case "redis":
		if c.Storage.Redis.Addr == "" {
			issues = append(issues, "storage.redis.addr is required when storage.backend is \"redis\"")
		}
	case "memory":
	default:
		issues = append(issues, fmt.Sprintf("storage.backend must be badger, redis or memory (got %q)", c.Storage.Backend))
	}

	if c.Session.Secret == "" && !c.IsDevMode() {
		issues = append(issues, "session.secret is required outside dev mode (VIBEX_SESSION_SECRET)")
	}
	if c.Session.TTL != "" {
		if _, err := time.ParseDuration(c.Session.TTL); err != nil {
			issues = append(issues, fmt.Sprintf("session.ttl is not a duration: %q", c.Session.TTL))
		}
	}

	if c.Listing.Timezone != "" {
		if _, err := time.LoadLocation(c.Listing.Timezone); err != nil {
			issues = append(issues, fmt.Sprintf("listing.timezone is unknown: %q", c.Listing.Timezone))
		}
	}

	return issues
}

// LoadFromFile loads configuration with priority: defaults -> file -> env.
func LoadFromFile(path string) (*Config, error) {
	if path == "" {
		return LoadFromFiles()
	}
	return LoadFromFiles(path)
}

// LoadFromFiles loads configuration from multiple files with priority:
// defaults -> file1 -> file2 -> ... -> env.
// Later files override earlier files.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// LoadDotEnv loads the first existing .env file into the process environment.
// Variables already set in the environment win. Returns the file used, if any.
func LoadDotEnv(paths ...string) string {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := godotenv.Load(p); err == nil {
			return p
		}
	}
	return ""
}

// applyEnvOverrides applies VIBEX_* environment variable overrides to config.
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("VIBEX_ENV"); env != "" {
		config.Environment = env
	}
	if port := os.Getenv("VIBEX_SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if host := os.Getenv("VIBEX_SERVER_HOST"); host != "" {
		config.Server.Host = host
	}
	if backend := os.Getenv("VIBEX_STORAGE_BACKEND"); backend != "" {
		config.Storage.Backend = backend
	}
	if badgerPath := os.Getenv("VIBEX_BADGER_PATH"); badgerPath != "" {
		config.Storage.Badger.Path = badgerPath
	}
	if addr := os.Getenv("VIBEX_REDIS_ADDR"); addr != "" {
		config.Storage.Redis.Addr = addr
	}
	if pw := os.Getenv("VIBEX_REDIS_PASSWORD"); pw != "" {
		config.Storage.Redis.Password = pw
	}
	if secret := os.Getenv("VIBEX_SESSION_SECRET"); secret != "" {
		config.Session.Secret = secret
	}
	if tz := os.Getenv("VIBEX_TIMEZONE"); tz != "" {
		config.Listing.Timezone = tz
	}
	if seed := os.Getenv("VIBEX_SEED_PATH"); seed != "" {
		config.Seed.Path = seed
	}
	if level := os.Getenv("VIBEX_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
}

// ApplyFlagOverrides applies command-line flag overrides to config.
func ApplyFlagOverrides(config *Config, port int, host string) {
	if port > 0 {
		config.Server.Port = port
	}
	if host != "" {
		config.Server.Host = host
	}
}
