package cache_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/srgjo27/scalable_parking/internal/adapter/cache"
	"github.com/srgjo27/scalable_parking/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotCache_Miss(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	c := cache.NewSlotCache(db, time.Minute)

	mockRedis.ExpectGet(cache.SlotsKey).RedisNil()

	slots, ok, err := c.GetSlots(context.Background())

	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, slots)
	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

func TestSlotCache_SetThenHit(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	c := cache.NewSlotCache(db, time.Minute)

	slots := []domain.Slot{
		{ID: "A1", Name: "A1", Level: "G", Category: domain.CategoryRegular},
		{ID: "B2", Name: "B2", Level: "1", Category: domain.CategoryVIP, Occupied: true},
	}
	raw, err := json.Marshal(slots)
	require.NoError(t, err)

	mockRedis.ExpectSet(cache.SlotsKey, raw, time.Minute).SetVal("OK")
	mockRedis.ExpectGet(cache.SlotsKey).SetVal(string(raw))

	require.NoError(t, c.SetSlots(context.Background(), slots))
	got, ok, err := c.GetSlots(context.Background())

	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, slots, got)
	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

func TestSlotCache_CorruptEntry(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	c := cache.NewSlotCache(db, time.Minute)

	mockRedis.ExpectGet(cache.SlotsKey).SetVal("{not json")

	_, ok, err := c.GetSlots(context.Background())

	assert.Error(t, err)
	assert.False(t, ok)
}

func TestSlotCache_Invalidate(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	c := cache.NewSlotCache(db, time.Minute)

	mockRedis.ExpectDel(cache.SlotsKey).SetVal(1)
	assert.NoError(t, c.Invalidate(context.Background()))

	mockRedis.ExpectDel(cache.SlotsKey).SetErr(errors.New("connection refused"))
	assert.Error(t, c.Invalidate(context.Background()))

	assert.NoError(t, mockRedis.ExpectationsWereMet())
}
