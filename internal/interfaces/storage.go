package interfaces

import (
	"context"
	"errors"
)

// ErrNotFound is returned (possibly wrapped) by KeyValueStorage.Get for a
// missing key.
var ErrNotFound = errors.New("key not found")

// StorageManager owns a storage backend and hands out its interfaces.
// Backends are swappable: embedded Badger, Redis, or process memory.
type StorageManager interface {
	KeyValueStorage() KeyValueStorage
	Close() error
}

// KeyValueStorage provides basic key-value operations.
type KeyValueStorage interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	GetAll(ctx context.Context) (map[string]string, error)
}
