package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/srgjo27/scalable_parking/internal/core/domain"
	"github.com/srgjo27/scalable_parking/internal/core/ports"
)

const SlotsKey = "slots:all"

var _ ports.SlotCache = (*SlotCache)(nil)

// SlotCache keeps the slot listing in Redis until a registry write invalidates it.
type SlotCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSlotCache(rdb *redis.Client, ttl time.Duration) *SlotCache {
	return &SlotCache{rdb: rdb, ttl: ttl}
}

func (c *SlotCache) GetSlots(ctx context.Context) ([]domain.Slot, bool, error) {
	raw, err := c.rdb.Get(ctx, SlotsKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var slots []domain.Slot
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, false, fmt.Errorf("corrupt slot cache entry: %w", err)
	}

	return slots, true, nil
}

func (c *SlotCache) SetSlots(ctx context.Context, slots []domain.Slot) error {
	raw, err := json.Marshal(slots)
	if err != nil {
		return err
	}

	return c.rdb.Set(ctx, SlotsKey, raw, c.ttl).Err()
}

func (c *SlotCache) Invalidate(ctx context.Context) error {
	return c.rdb.Del(ctx, SlotsKey).Err()
}
