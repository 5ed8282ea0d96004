package domain

import (
	"time"

	"github.com/google/uuid"
)

type Outcome string

const (
	OutcomeSuccess Outcome = "SUCCESS"
	OutcomeFailure Outcome = "FAILURE"
)

// CallbackResult is a provider callback reduced to the fields reconciliation needs.
type CallbackResult struct {
	BookingID     string  `json:"booking_id"`
	CorrelationID string  `json:"correlation_id"`
	Outcome       Outcome `json:"outcome"`
	ReceiptID     string  `json:"receipt_id"`
}

type EventType string

const (
	EventBookingCreated  EventType = "booking.created"
	EventBookingPaid     EventType = "booking.paid"
	EventBookingFailed   EventType = "booking.failed"
	EventBookingEnded    EventType = "booking.ended"
	EventBookingRestored EventType = "booking.restored"
)

type Event struct {
	Type       EventType `json:"event"`
	BookingID  uuid.UUID `json:"booking_id"`
	UserID     string    `json:"user_id"`
	SlotID     string    `json:"slot_id"`
	Fee        string    `json:"fee"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewEvent(t EventType, b *Booking, at time.Time) Event {
	return Event{
		Type:       t,
		BookingID:  b.ID,
		UserID:     b.UserID,
		SlotID:     b.SlotID,
		Fee:        b.Fee.StringFixed(2),
		OccurredAt: at.UTC(),
	}
}
