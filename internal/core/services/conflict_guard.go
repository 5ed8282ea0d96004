package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/srgjo27/scalable_parking/internal/core/domain"
	"github.com/srgjo27/scalable_parking/internal/core/ports"
)

const DefaultPendingWindow = 15 * time.Minute

type Candidate struct {
	UserID  string
	SlotID  string
	Start   time.Time
	End     *time.Time
	Exclude uuid.UUID
}

// ConflictGuard must be called inside a transaction holding the slot and user locks.
type ConflictGuard struct {
	PendingWindow time.Duration
}

func NewConflictGuard(pendingWindow time.Duration) *ConflictGuard {
	if pendingWindow <= 0 {
		pendingWindow = DefaultPendingWindow
	}
	return &ConflictGuard{PendingWindow: pendingWindow}
}

func (g *ConflictGuard) Check(ctx context.Context, r ports.Repositories, c Candidate, now time.Time) error {
	if err := g.CheckOverlap(ctx, r, c); err != nil {
		return err
	}
	return g.CheckUserBlocking(ctx, r, c.UserID, c.Exclude, now)
}

func (g *ConflictGuard) CheckOverlap(ctx context.Context, r ports.Repositories, c Candidate) error {
	existing, err := r.Bookings.ListOpenBySlot(ctx, c.SlotID, c.Start)
	if err != nil {
		return fmt.Errorf("list bookings for slot %s: %w", c.SlotID, err)
	}

	for i := range existing {
		b := &existing[i]
		if b.ID == c.Exclude || !b.HoldsSlot() {
			continue
		}
		if b.Overlaps(c.Start, c.End) {
			return fmt.Errorf("%w: slot %s is booked from %s", domain.ErrSlotUnavailable, c.SlotID, b.Start.Format(time.RFC3339))
		}
	}

	return nil
}

// CheckUserBlocking rejects users holding a recent PENDING booking or a PAID booking
// in effect on a slot that is still flagged occupied.
func (g *ConflictGuard) CheckUserBlocking(ctx context.Context, r ports.Repositories, userID string, exclude uuid.UUID, now time.Time) error {
	open, err := r.Bookings.ListOpenByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("list bookings for user %s: %w", userID, err)
	}

	for i := range open {
		b := &open[i]
		if b.ID == exclude {
			continue
		}

		if b.PendingSince(now, g.PendingWindow) {
			return fmt.Errorf("%w: booking %s awaits payment", domain.ErrUserAlreadyBooked, b.ID)
		}

		if b.Status != domain.PaymentPaid || !b.InEffect(now) {
			continue
		}

		slot, err := r.Slots.GetByID(ctx, b.SlotID)
		if err != nil {
			return fmt.Errorf("load slot %s: %w", b.SlotID, err)
		}
		if slot.Occupied {
			return fmt.Errorf("%w: booking %s occupies slot %s", domain.ErrUserAlreadyBooked, b.ID, b.SlotID)
		}
	}

	return nil
}
