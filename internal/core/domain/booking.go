package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentPaid    PaymentStatus = "PAID"
	PaymentFailed  PaymentStatus = "FAILED"
)

type Booking struct {
	ID            uuid.UUID       `json:"booking_id"`
	UserID        string          `json:"user_id"`
	SlotID        string          `json:"slot_id"`
	Start         time.Time       `json:"start_time"`
	End           *time.Time      `json:"end_time"`
	Fee           decimal.Decimal `json:"fee"`
	Status        PaymentStatus   `json:"payment_status"`
	CorrelationID *string         `json:"correlation_id"`
	ReceiptID     *string         `json:"receipt_id"`
	LeftAt        *time.Time      `json:"left_at"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// HoldsSlot reports whether the booking takes part in slot overlap checks.
func (b *Booking) HoldsSlot() bool {
	return b.Status == PaymentPending || b.Status == PaymentPaid
}

// Overlaps compares [Start, End) with [start, end); a nil end is +infinity.
func (b *Booking) Overlaps(start time.Time, end *time.Time) bool {
	if end != nil && !b.Start.Before(*end) {
		return false
	}
	if b.End != nil && !b.End.After(start) {
		return false
	}
	return true
}

func (b *Booking) InEffect(now time.Time) bool {
	if b.Start.After(now) {
		return false
	}
	return b.End == nil || b.End.After(now)
}

func (b *Booking) PendingSince(now time.Time, window time.Duration) bool {
	return b.Status == PaymentPending && !b.CreatedAt.Before(now.Add(-window))
}

func (b *Booking) Ended() bool {
	return b.LeftAt != nil
}

// PollView is the read-only projection returned to polling clients.
type PollView struct {
	BookingID uuid.UUID     `json:"booking_id"`
	Status    PaymentStatus `json:"payment_status"`
	ReceiptID *string       `json:"receipt_id"`
	EndTime   *time.Time    `json:"end_time"`
}

func (b *Booking) Poll() PollView {
	return PollView{BookingID: b.ID, Status: b.Status, ReceiptID: b.ReceiptID, EndTime: b.End}
}

// LeaveToken captures the state needed to reverse a single "leave".
type LeaveToken struct {
	ID           uuid.UUID  `json:"token"`
	UserID       string     `json:"user_id"`
	BookingID    uuid.UUID  `json:"booking_id"`
	SlotID       string     `json:"slot_id"`
	PreviousEnd  *time.Time `json:"previous_end_time"`
	IssuedAt     time.Time  `json:"issued_at"`
	ExpiresAt    time.Time  `json:"expires_at"`
	ConsumedAt   *time.Time `json:"consumed_at,omitempty"`
	SupersededAt *time.Time `json:"superseded_at,omitempty"`
}

func (t *LeaveToken) Active(now time.Time) bool {
	return t.ConsumedAt == nil && t.SupersededAt == nil && now.Before(t.ExpiresAt)
}

type Caller struct {
	UserID string
	Staff  bool
	Phone  string
}

func (c Caller) CanView(b *Booking) bool {
	return c.Staff || c.UserID == b.UserID
}
