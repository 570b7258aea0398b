package session

import (
	"context"
	"errors"

	"github.com/bobmcallan/vibex/internal/interfaces"
)

// SlotPrefix is the key prefix of every persisted user snapshot.
const SlotPrefix = "teamup_user"

// ErrEmptySlot is returned by Slot.Load when nothing has been saved.
var ErrEmptySlot = errors.New("session slot is empty")

// Slot persists one named record.
type Slot interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
	Clear(ctx context.Context) error
}

// SlotKey returns the storage key of a visitor's snapshot.
func SlotKey(visitorID string) string {
	return SlotPrefix + ":" + visitorID
}

// KVSlot is a Slot over a single key of a KeyValueStorage.
type KVSlot struct {
	kv  interfaces.KeyValueStorage
	key string
}

// NewKVSlot binds key in kv as a Slot.
func NewKVSlot(kv interfaces.KeyValueStorage, key string) *KVSlot {
	return &KVSlot{kv: kv, key: key}
}

func (s *KVSlot) Load(ctx context.Context) ([]byte, error) {
	val, err := s.kv.Get(ctx, s.key)
	if errors.Is(err, interfaces.ErrNotFound) {
		return nil, ErrEmptySlot
	}
	if err != nil {
		return nil, err
	}
	return []byte(val), nil
}

func (s *KVSlot) Save(ctx context.Context, data []byte) error {
	return s.kv.Set(ctx, s.key, string(data))
}

func (s *KVSlot) Clear(ctx context.Context) error {
	return s.kv.Delete(ctx, s.key)
}
