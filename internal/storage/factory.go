package storage

import (
	"fmt"

	"github.com/bobmcallan/vibex/internal/common"
	"github.com/bobmcallan/vibex/internal/config"
	"github.com/bobmcallan/vibex/internal/interfaces"
	"github.com/bobmcallan/vibex/internal/storage/badger"
	"github.com/bobmcallan/vibex/internal/storage/memory"
	"github.com/bobmcallan/vibex/internal/storage/redis"
)

// NewStorageManager creates a new storage manager based on config.
func NewStorageManager(logger *common.Logger, cfg *config.Config) (interfaces.StorageManager, error) {
	switch cfg.Storage.Backend {
	case "", "badger":
		return badger.NewManager(logger, &cfg.Storage.Badger)
	case "redis":
		return redis.NewManager(logger, &cfg.Storage.Redis)
	case "memory":
		logger.Warn().Msg("Using in-memory storage: sessions are lost on restart")
		return memory.NewManager(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
