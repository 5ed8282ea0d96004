package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/srgjo27/scalable_parking/internal/adapter/repository/memory"
	"github.com/srgjo27/scalable_parking/internal/core/domain"
	"github.com/srgjo27/scalable_parking/internal/core/ports"
	"github.com/srgjo27/scalable_parking/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedGuard(t *testing.T, bookings ...domain.Booking) ports.Repositories {
	t.Helper()
	ctx := context.Background()
	repos := memory.NewStore().Repositories()

	for _, id := range []string{"A1", "B1"} {
		require.NoError(t, repos.Slots.Create(ctx, &domain.Slot{ID: id, Name: id, Category: domain.CategoryRegular}))
	}
	for i := range bookings {
		if bookings[i].ID == uuid.Nil {
			bookings[i].ID = uuid.New()
		}
		require.NoError(t, repos.Bookings.Create(ctx, &bookings[i]))
	}
	return repos
}

func at(base time.Time, d time.Duration) *time.Time {
	t := base.Add(d)
	return &t
}

func TestConflictGuard_Overlap(t *testing.T) {
	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	guard := services.NewConflictGuard(0)

	repos := seedGuard(t,
		domain.Booking{UserID: "u1", SlotID: "A1", Start: base, End: at(base, 2*time.Hour), Status: domain.PaymentPaid, CreatedAt: base},
		domain.Booking{UserID: "u2", SlotID: "A1", Start: base.Add(5 * time.Hour), End: at(base, 6*time.Hour), Status: domain.PaymentFailed, CreatedAt: base},
	)

	tests := []struct {
		name    string
		start   time.Time
		end     *time.Time
		wantErr bool
	}{
		{name: "adjacent before", start: base.Add(-time.Hour), end: at(base, 0)},
		{name: "adjacent after", start: base.Add(2 * time.Hour), end: at(base, 3*time.Hour)},
		{name: "straddles start", start: base.Add(-time.Hour), end: at(base, time.Minute), wantErr: true},
		{name: "contained", start: base.Add(30 * time.Minute), end: at(base, time.Hour), wantErr: true},
		{name: "open ended candidate", start: base.Add(time.Hour), end: nil, wantErr: true},
		{name: "over failed booking", start: base.Add(5 * time.Hour), end: at(base, 6*time.Hour)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := guard.CheckOverlap(context.Background(), repos, services.Candidate{SlotID: "A1", Start: tt.start, End: tt.end})
			if tt.wantErr {
				assert.True(t, errors.Is(err, domain.ErrSlotUnavailable), "got %v", err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestConflictGuard_OpenEndedExistingBlocksLaterStarts(t *testing.T) {
	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	guard := services.NewConflictGuard(0)
	repos := seedGuard(t, domain.Booking{UserID: "u1", SlotID: "A1", Start: base, Status: domain.PaymentPaid, CreatedAt: base})

	err := guard.CheckOverlap(context.Background(), repos, services.Candidate{SlotID: "A1", Start: base.Add(48 * time.Hour), End: at(base, 49*time.Hour)})
	assert.True(t, errors.Is(err, domain.ErrSlotUnavailable))

	err = guard.CheckOverlap(context.Background(), repos, services.Candidate{SlotID: "A1", Start: base.Add(-2 * time.Hour), End: at(base, -time.Hour)})
	assert.NoError(t, err)
}

func TestConflictGuard_ExcludeSkipsOwnBooking(t *testing.T) {
	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	own := domain.Booking{ID: uuid.New(), UserID: "u1", SlotID: "A1", Start: base, End: at(base, time.Hour), Status: domain.PaymentPaid, CreatedAt: base}
	repos := seedGuard(t, own)

	err := services.NewConflictGuard(0).CheckOverlap(context.Background(), repos, services.Candidate{
		SlotID: "A1", Start: base, End: at(base, 2*time.Hour), Exclude: own.ID,
	})
	assert.NoError(t, err)
}

func TestConflictGuard_UserBlocking(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	guard := services.NewConflictGuard(10 * time.Minute)
	ctx := context.Background()

	t.Run("recent pending blocks", func(t *testing.T) {
		repos := seedGuard(t, domain.Booking{UserID: "u1", SlotID: "A1", Start: now.Add(time.Hour), End: at(now, 2*time.Hour), Status: domain.PaymentPending, CreatedAt: now.Add(-9 * time.Minute)})
		assert.True(t, errors.Is(guard.CheckUserBlocking(ctx, repos, "u1", uuid.Nil, now), domain.ErrUserAlreadyBooked))
		assert.NoError(t, guard.CheckUserBlocking(ctx, repos, "u2", uuid.Nil, now))
	})

	t.Run("old pending does not block", func(t *testing.T) {
		repos := seedGuard(t, domain.Booking{UserID: "u1", SlotID: "A1", Start: now.Add(time.Hour), End: at(now, 2*time.Hour), Status: domain.PaymentPending, CreatedAt: now.Add(-11 * time.Minute)})
		assert.NoError(t, guard.CheckUserBlocking(ctx, repos, "u1", uuid.Nil, now))
	})

	t.Run("paid in effect on occupied slot blocks", func(t *testing.T) {
		repos := seedGuard(t, domain.Booking{UserID: "u1", SlotID: "A1", Start: now.Add(-time.Hour), End: at(now, time.Hour), Status: domain.PaymentPaid, CreatedAt: now.Add(-time.Hour)})
		assert.NoError(t, guard.CheckUserBlocking(ctx, repos, "u1", uuid.Nil, now), "slot not flagged occupied yet")

		require.NoError(t, repos.Slots.SetOccupied(ctx, "A1", true))
		assert.True(t, errors.Is(guard.CheckUserBlocking(ctx, repos, "u1", uuid.Nil, now), domain.ErrUserAlreadyBooked))
	})

	t.Run("future paid booking does not block", func(t *testing.T) {
		repos := seedGuard(t, domain.Booking{UserID: "u1", SlotID: "A1", Start: now.Add(3 * time.Hour), End: at(now, 4*time.Hour), Status: domain.PaymentPaid, CreatedAt: now.Add(-time.Hour)})
		require.NoError(t, repos.Slots.SetOccupied(ctx, "A1", true))
		assert.NoError(t, guard.CheckUserBlocking(ctx, repos, "u1", uuid.Nil, now))
	})
}
