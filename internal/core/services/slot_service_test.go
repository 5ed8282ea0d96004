package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/srgjo27/scalable_parking/internal/adapter/repository/memory"
	"github.com/srgjo27/scalable_parking/internal/core/domain"
	"github.com/srgjo27/scalable_parking/internal/core/ports/mocks"
	"github.com/srgjo27/scalable_parking/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func newSlotService(t *testing.T, cache *mocks.SlotCache) (*services.SlotService, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	if cache == nil {
		return services.NewSlotService(store, store.Repositories(), nil, nil), store
	}
	return services.NewSlotService(store, store.Repositories(), cache, nil), store
}

func TestSlotService_CreateAndList(t *testing.T) {
	svc, _ := newSlotService(t, nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, services.CreateSlotRequest{SlotID: " B2 ", Name: "Bay 2", Level: "1", Category: "VIP"})
	require.NoError(t, err)
	assert.Equal(t, "B2", created.ID)
	assert.Equal(t, domain.CategoryVIP, created.Category)

	_, err = svc.Create(ctx, services.CreateSlotRequest{SlotID: "A1", Name: "Bay 1", Level: "0"})
	require.NoError(t, err)

	slots, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, "A1", slots[0].ID)
	assert.Equal(t, domain.CategoryRegular, slots[0].Category)

	_, err = svc.Create(ctx, services.CreateSlotRequest{SlotID: "A1", Name: "again"})
	assert.True(t, errors.Is(err, domain.ErrDuplicateKey))

	_, err = svc.Create(ctx, services.CreateSlotRequest{SlotID: "C1", Name: "C1", Category: "gold"})
	assert.True(t, errors.Is(err, domain.ErrValidation))

	_, err = svc.Create(ctx, services.CreateSlotRequest{SlotID: "TOO-LONG-ID", Name: "x"})
	assert.True(t, errors.Is(err, domain.ErrValidation))
}

func TestSlotService_Update(t *testing.T) {
	svc, _ := newSlotService(t, nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, services.CreateSlotRequest{SlotID: "A1", Name: "Bay 1", Level: "0"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, "A1", services.UpdateSlotRequest{Name: strPtr("North 1"), Category: strPtr("premium")})
	require.NoError(t, err)
	assert.Equal(t, "North 1", updated.Name)
	assert.Equal(t, "0", updated.Level)
	assert.Equal(t, domain.CategoryPremium, updated.Category)

	_, err = svc.Update(ctx, "A1", services.UpdateSlotRequest{Name: strPtr("  ")})
	assert.True(t, errors.Is(err, domain.ErrValidation))

	got, err := svc.Get(ctx, "A1")
	require.NoError(t, err)
	assert.Equal(t, "North 1", got.Name)

	_, err = svc.Update(ctx, "Z9", services.UpdateSlotRequest{Name: strPtr("x")})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestSlotService_OccupancyOverrides(t *testing.T) {
	svc, _ := newSlotService(t, nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, services.CreateSlotRequest{SlotID: "A1", Name: "Bay 1"})
	require.NoError(t, err)

	s, err := svc.Toggle(ctx, "A1")
	require.NoError(t, err)
	assert.True(t, s.Occupied)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.SlotStats{Total: 1, Occupied: 1, Available: 0}, stats)

	s, err = svc.SetOccupied(ctx, "A1", false)
	require.NoError(t, err)
	assert.False(t, s.Occupied)

	s, err = svc.SetOccupied(ctx, "A1", false)
	require.NoError(t, err)
	assert.False(t, s.Occupied)

	_, err = svc.Toggle(ctx, "Z9")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestSlotService_DeleteRefusesSlotsWithHistory(t *testing.T) {
	svc, store := newSlotService(t, nil)
	ctx := context.Background()

	for _, id := range []string{"A1", "B1"} {
		_, err := svc.Create(ctx, services.CreateSlotRequest{SlotID: id, Name: id})
		require.NoError(t, err)
	}

	start := time.Now().Add(time.Hour)
	bookings := services.NewBookingService(store, store.Repositories(), nil, services.BookingConfig{})
	_, err := bookings.Create(ctx, "u1", "A1", start, start.Add(time.Hour))
	require.NoError(t, err)

	err = svc.Delete(ctx, "A1")
	assert.True(t, errors.Is(err, domain.ErrReferentialConflict))

	require.NoError(t, svc.Delete(ctx, "B1"))
	_, err = svc.Get(ctx, "B1")
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	assert.True(t, errors.Is(svc.Delete(ctx, "B1"), domain.ErrNotFound))
}

func TestSlotService_ListUsesCache(t *testing.T) {
	cache := mocks.NewSlotCache(t)
	svc, _ := newSlotService(t, cache)
	ctx := context.Background()

	cached := []domain.Slot{{ID: "C1", Name: "cached", Category: domain.CategoryRegular}}
	cache.EXPECT().GetSlots(mock.Anything).Return(cached, true, nil).Once()

	slots, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, cached, slots)
}

func TestSlotService_ListMissPopulatesCache(t *testing.T) {
	cache := mocks.NewSlotCache(t)
	svc, _ := newSlotService(t, cache)
	ctx := context.Background()

	cache.EXPECT().Invalidate(mock.Anything).Return(nil).Once()
	_, err := svc.Create(ctx, services.CreateSlotRequest{SlotID: "A1", Name: "Bay 1"})
	require.NoError(t, err)

	cache.EXPECT().GetSlots(mock.Anything).Return(nil, false, errors.New("redis: connection refused")).Once()
	cache.EXPECT().
		SetSlots(mock.Anything, mock.MatchedBy(func(s []domain.Slot) bool { return len(s) == 1 && s[0].ID == "A1" })).
		Return(nil).
		Once()

	slots, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, slots, 1)
}

func TestSlotService_WritesInvalidateCache(t *testing.T) {
	cache := mocks.NewSlotCache(t)
	svc, _ := newSlotService(t, cache)
	ctx := context.Background()

	cache.EXPECT().Invalidate(mock.Anything).Return(nil).Times(4)

	_, err := svc.Create(ctx, services.CreateSlotRequest{SlotID: "A1", Name: "Bay 1"})
	require.NoError(t, err)
	_, err = svc.Update(ctx, "A1", services.UpdateSlotRequest{Level: strPtr("2")})
	require.NoError(t, err)
	_, err = svc.Toggle(ctx, "A1")
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, "A1"))

	// Failed writes leave the cache alone.
	_, err = svc.Toggle(ctx, "A1")
	assert.Error(t, err)
}

func TestBookingService_PaidInvalidatesSlotCache(t *testing.T) {
	cache := mocks.NewSlotCache(t)
	f := newFixture(t, services.WithSlotCache(cache))
	ctx := context.Background()
	now := f.clock.Now()

	b, err := f.svc.Create(ctx, "u1", "A1", now, now.Add(time.Hour))
	require.NoError(t, err)

	cache.EXPECT().Invalidate(mock.Anything).Return(errors.New("redis down")).Once()
	_, _, err = f.svc.MarkPaid(ctx, b.ID, "R1")
	assert.NoError(t, err, "cache errors never fail the transition")
}
