package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/bobmcallan/vibex/internal/common"
	"github.com/bobmcallan/vibex/internal/config"
	"github.com/bobmcallan/vibex/internal/interfaces"
	goredis "github.com/redis/go-redis/v9"
)

const pingTimeout = 5 * time.Second

// Manager implements the StorageManager interface for Redis.
type Manager struct {
	client *goredis.Client
	kv     *KVStorage
	logger *common.Logger
}

// NewManager connects to Redis and verifies the connection with a PING.
func NewManager(logger *common.Logger, cfg *config.RedisConfig) (*Manager, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Addr, err)
	}

	logger.Debug().Str("addr", cfg.Addr).Int("db", cfg.DB).Str("prefix", cfg.Prefix).Msg("Redis storage manager initialized")

	return &Manager{
		client: client,
		kv:     NewKVStorage(client, cfg.Prefix, logger),
		logger: logger,
	}, nil
}

// KeyValueStorage returns the KeyValue storage interface.
func (m *Manager) KeyValueStorage() interfaces.KeyValueStorage {
	return m.kv
}

// Close closes the client connection pool.
func (m *Manager) Close() error {
	return m.client.Close()
}
