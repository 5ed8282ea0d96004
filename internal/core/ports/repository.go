package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/srgjo27/scalable_parking/internal/core/domain"
)

type SlotRepository interface {
	GetByID(ctx context.Context, slotID string) (*domain.Slot, error)
	List(ctx context.Context) ([]domain.Slot, error)
	Create(ctx context.Context, slot *domain.Slot) error
	Update(ctx context.Context, slot *domain.Slot) error
	SetOccupied(ctx context.Context, slotID string, occupied bool) error
	Delete(ctx context.Context, slotID string) error
}

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, bookingID uuid.UUID) (*domain.Booking, error)
	GetByCorrelationID(ctx context.Context, correlationID string) (*domain.Booking, error)
	Update(ctx context.Context, booking *domain.Booking) error
	// ListOpenBySlot returns PENDING/PAID bookings whose end is unknown or after from.
	ListOpenBySlot(ctx context.Context, slotID string, from time.Time) ([]domain.Booking, error)
	// ListOpenByUser returns the user's PENDING/PAID bookings, newest first.
	ListOpenByUser(ctx context.Context, userID string) ([]domain.Booking, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]domain.Booking, error)
	ListRecent(ctx context.Context, limit int) ([]domain.Booking, error)
	CountBySlot(ctx context.Context, slotID string) (int, error)
	ListStalePending(ctx context.Context, createdBefore time.Time, limit int) ([]uuid.UUID, error)
}

type RateRepository interface {
	// Get reports found=false when no rate is stored for the category.
	Get(ctx context.Context, category domain.PricingCategory) (rate decimal.Decimal, found bool, err error)
	Upsert(ctx context.Context, rate domain.PricingRate) error
	List(ctx context.Context) ([]domain.PricingRate, error)
}

type LeaveTokenRepository interface {
	Create(ctx context.Context, token *domain.LeaveToken) error
	GetByID(ctx context.Context, tokenID uuid.UUID) (*domain.LeaveToken, error)
	GetActiveForUser(ctx context.Context, userID string, now time.Time) (*domain.LeaveToken, error)
	SupersedeForUser(ctx context.Context, userID string, at time.Time) error
	MarkConsumed(ctx context.Context, tokenID uuid.UUID, at time.Time) error
}

// Repositories groups the stores that share one transaction.
type Repositories struct {
	Slots    SlotRepository
	Bookings BookingRepository
	Rates    RateRepository
	Tokens   LeaveTokenRepository
}

// Transactor runs fn atomically while holding the named locks (for example
// "slot:A1", "user:42"). Any error returned by fn rolls everything back.
type Transactor interface {
	WithinTx(ctx context.Context, locks []string, fn func(ctx context.Context, r Repositories) error) error
}

func SlotLock(slotID string) string { return "slot:" + slotID }

func UserLock(userID string) string { return "user:" + userID }
