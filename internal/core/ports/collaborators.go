package ports

import (
	"context"
	"time"

	"github.com/srgjo27/scalable_parking/internal/core/domain"
)

// PaymentGateway starts an asynchronous payment and returns the provider's tracking id.
type PaymentGateway interface {
	Initiate(ctx context.Context, address string, amount int64, bookingID string) (string, error)
}

// OutcomeHandler receives outcomes produced outside the webhook path.
type OutcomeHandler interface {
	Apply(ctx context.Context, result domain.CallbackResult) (*domain.Booking, error)
}

// ConfirmationCanceller drops a scheduled simulated confirmation, if any.
type ConfirmationCanceller interface {
	CancelConfirmation(bookingID string)
}

type SlotCache interface {
	GetSlots(ctx context.Context) ([]domain.Slot, bool, error)
	SetSlots(ctx context.Context, slots []domain.Slot) error
	Invalidate(ctx context.Context) error
}

type Notifier interface {
	Notify(ctx context.Context, event domain.Event) error
}

type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
