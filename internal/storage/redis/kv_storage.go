// Package redis stores key-value pairs in a shared Redis instance so several
// portal processes can serve the same visitors.
package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bobmcallan/vibex/internal/common"
	"github.com/bobmcallan/vibex/internal/interfaces"
	goredis "github.com/redis/go-redis/v9"
)

// KVStorage implements interfaces.KeyValueStorage over a Redis client. Every
// key is namespaced with prefix.
type KVStorage struct {
	client goredis.UniversalClient
	prefix string
	logger *common.Logger
}

// NewKVStorage wraps an existing client.
func NewKVStorage(client goredis.UniversalClient, prefix string, logger *common.Logger) *KVStorage {
	return &KVStorage{client: client, prefix: prefix, logger: logger}
}

func (s *KVStorage) key(k string) string { return s.prefix + k }

// Get retrieves a value by key. A missing key yields interfaces.ErrNotFound.
func (s *KVStorage) Get(ctx context.Context, key string) (string, error) {
	val, err := s.client.Get(ctx, s.key(key)).Result()
	if errors.Is(err, goredis.Nil) {
		return "", fmt.Errorf("%w: %s", interfaces.ErrNotFound, key)
	}
	if err != nil {
		return "", fmt.Errorf("failed to get key %s: %w", key, err)
	}
	return val, nil
}

// Set stores a key-value pair without expiry.
func (s *KVStorage) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set key %s: %w", key, err)
	}
	return nil
}

// Delete removes a key. Deleting a missing key is not an error.
func (s *KVStorage) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}

// GetAll scans the prefix and returns every pair with the prefix stripped.
// Keys that vanish between SCAN and GET are skipped.
func (s *KVStorage) GetAll(ctx context.Context) (map[string]string, error) {
	result := make(map[string]string)

	iter := s.client.Scan(ctx, 0, s.prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		full := iter.Val()
		val, err := s.client.Get(ctx, full).Result()
		if errors.Is(err, goredis.Nil) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to get key %s: %w", full, err)
		}
		result[strings.TrimPrefix(full, s.prefix)] = val
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan keys: %w", err)
	}

	return result, nil
}
