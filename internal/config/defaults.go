package config

// NewDefaultConfig creates a configuration with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "prod",
		Server: ServerConfig{
			Port: 4250,
			Host: "localhost",
		},
		Storage: StorageConfig{
			Backend: "badger",
			Badger: BadgerConfig{
				Path: "./data/vibex",
			},
			Redis: RedisConfig{
				Addr:   "localhost:6379",
				Prefix: "vibex:",
			},
		},
		Session: SessionConfig{
			TTL:        "720h",
			CookieName: "vibex_session",
		},
		Listing: ListingConfig{
			Timezone:        "UTC",
			CacheTTL:        "30s",
			CacheMaxEntries: 256,
		},
		Logging: LoggingConfig{
			Level:   "info",
			Outputs: []string{"console", "file"},
		},
	}
}
