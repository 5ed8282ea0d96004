// Package memory keeps the whole dataset in process. Transactions take one
// mutex and work on a copy that replaces the live state only on success.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/srgjo27/scalable_parking/internal/core/domain"
	"github.com/srgjo27/scalable_parking/internal/core/ports"
)

type state struct {
	slots    map[string]domain.Slot
	bookings map[uuid.UUID]domain.Booking
	rates    map[domain.PricingCategory]decimal.Decimal
	tokens   map[uuid.UUID]domain.LeaveToken
}

func newState() *state {
	return &state{
		slots:    map[string]domain.Slot{},
		bookings: map[uuid.UUID]domain.Booking{},
		rates:    map[domain.PricingCategory]decimal.Decimal{},
		tokens:   map[uuid.UUID]domain.LeaveToken{},
	}
}

func (st *state) clone() *state {
	c := newState()
	for k, v := range st.slots {
		c.slots[k] = v
	}
	for k, v := range st.bookings {
		c.bookings[k] = v
	}
	for k, v := range st.rates {
		c.rates[k] = v
	}
	for k, v := range st.tokens {
		c.tokens[k] = v
	}
	return c
}

type Store struct {
	mu sync.Mutex
	st *state
}

var _ ports.Transactor = (*Store)(nil)

func NewStore() *Store {
	return &Store{st: newState()}
}

// Repositories returns stores that operate directly on the committed state.
func (s *Store) Repositories() ports.Repositories {
	run := func(fn func(*state) error) error {
		s.mu.Lock()
		defer s.mu.Unlock()
		return fn(s.st)
	}
	return repositoriesFor(run)
}

func (s *Store) WithinTx(ctx context.Context, _ []string, fn func(ctx context.Context, r ports.Repositories) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	work := s.st.clone()
	run := func(f func(*state) error) error { return f(work) }
	if err := fn(ctx, repositoriesFor(run)); err != nil {
		return err
	}

	s.st = work
	return nil
}

type runner func(func(*state) error) error

func repositoriesFor(run runner) ports.Repositories {
	return ports.Repositories{
		Slots:    &SlotRepository{run: run},
		Bookings: &BookingRepository{run: run},
		Rates:    &RateRepository{run: run},
		Tokens:   &LeaveTokenRepository{run: run},
	}
}

type SlotRepository struct{ run runner }

func (r *SlotRepository) GetByID(_ context.Context, slotID string) (*domain.Slot, error) {
	var out *domain.Slot
	err := r.run(func(st *state) error {
		s, ok := st.slots[slotID]
		if !ok {
			return fmt.Errorf("%w: slot %s", domain.ErrNotFound, slotID)
		}
		out = &s
		return nil
	})
	return out, err
}

func (r *SlotRepository) List(_ context.Context) ([]domain.Slot, error) {
	var out []domain.Slot
	err := r.run(func(st *state) error {
		out = make([]domain.Slot, 0, len(st.slots))
		for _, s := range st.slots {
			out = append(out, s)
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].Level != out[j].Level {
			return out[i].Level < out[j].Level
		}
		return out[i].ID < out[j].ID
	})
	return out, err
}

func (r *SlotRepository) Create(_ context.Context, slot *domain.Slot) error {
	return r.run(func(st *state) error {
		if _, ok := st.slots[slot.ID]; ok {
			return fmt.Errorf("%w: slot %s", domain.ErrDuplicateKey, slot.ID)
		}
		st.slots[slot.ID] = *slot
		return nil
	})
}

func (r *SlotRepository) Update(_ context.Context, slot *domain.Slot) error {
	return r.run(func(st *state) error {
		cur, ok := st.slots[slot.ID]
		if !ok {
			return fmt.Errorf("%w: slot %s", domain.ErrNotFound, slot.ID)
		}
		cur.Name, cur.Level, cur.Category = slot.Name, slot.Level, slot.Category
		st.slots[slot.ID] = cur
		return nil
	})
}

func (r *SlotRepository) SetOccupied(_ context.Context, slotID string, occupied bool) error {
	return r.run(func(st *state) error {
		cur, ok := st.slots[slotID]
		if !ok {
			return fmt.Errorf("%w: slot %s", domain.ErrNotFound, slotID)
		}
		cur.Occupied = occupied
		st.slots[slotID] = cur
		return nil
	})
}

func (r *SlotRepository) Delete(_ context.Context, slotID string) error {
	return r.run(func(st *state) error {
		if _, ok := st.slots[slotID]; !ok {
			return fmt.Errorf("%w: slot %s", domain.ErrNotFound, slotID)
		}
		delete(st.slots, slotID)
		return nil
	})
}

type BookingRepository struct{ run runner }

func (r *BookingRepository) Create(_ context.Context, b *domain.Booking) error {
	return r.run(func(st *state) error {
		if _, ok := st.slots[b.SlotID]; !ok {
			return fmt.Errorf("%w: slot %s", domain.ErrNotFound, b.SlotID)
		}
		if _, ok := st.bookings[b.ID]; ok {
			return fmt.Errorf("%w: booking %s", domain.ErrDuplicateKey, b.ID)
		}
		st.bookings[b.ID] = copyBooking(*b)
		return nil
	})
}

func (r *BookingRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.Booking, error) {
	var out *domain.Booking
	err := r.run(func(st *state) error {
		b, ok := st.bookings[id]
		if !ok {
			return fmt.Errorf("%w: booking %s", domain.ErrNotFound, id)
		}
		c := copyBooking(b)
		out = &c
		return nil
	})
	return out, err
}

func (r *BookingRepository) GetByCorrelationID(_ context.Context, correlationID string) (*domain.Booking, error) {
	var out *domain.Booking
	err := r.run(func(st *state) error {
		for _, b := range st.bookings {
			if b.CorrelationID != nil && *b.CorrelationID == correlationID {
				c := copyBooking(b)
				out = &c
				return nil
			}
		}
		return fmt.Errorf("%w: booking with correlation id %s", domain.ErrNotFound, correlationID)
	})
	return out, err
}

func (r *BookingRepository) Update(_ context.Context, b *domain.Booking) error {
	return r.run(func(st *state) error {
		if _, ok := st.bookings[b.ID]; !ok {
			return fmt.Errorf("%w: booking %s", domain.ErrNotFound, b.ID)
		}
		st.bookings[b.ID] = copyBooking(*b)
		return nil
	})
}

func (r *BookingRepository) ListOpenBySlot(_ context.Context, slotID string, from time.Time) ([]domain.Booking, error) {
	return r.filter(func(b *domain.Booking) bool {
		return b.SlotID == slotID && b.HoldsSlot() && (b.End == nil || b.End.After(from))
	}, 0)
}

func (r *BookingRepository) ListOpenByUser(_ context.Context, userID string) ([]domain.Booking, error) {
	return r.filter(func(b *domain.Booking) bool {
		return b.UserID == userID && b.HoldsSlot()
	}, 0)
}

func (r *BookingRepository) ListByUser(_ context.Context, userID string, limit int) ([]domain.Booking, error) {
	return r.filter(func(b *domain.Booking) bool { return b.UserID == userID }, limit)
}

func (r *BookingRepository) ListRecent(_ context.Context, limit int) ([]domain.Booking, error) {
	return r.filter(func(*domain.Booking) bool { return true }, limit)
}

func (r *BookingRepository) CountBySlot(_ context.Context, slotID string) (int, error) {
	n := 0
	err := r.run(func(st *state) error {
		for _, b := range st.bookings {
			if b.SlotID == slotID {
				n++
			}
		}
		return nil
	})
	return n, err
}

func (r *BookingRepository) ListStalePending(_ context.Context, createdBefore time.Time, limit int) ([]uuid.UUID, error) {
	stale, err := r.filter(func(b *domain.Booking) bool {
		return b.Status == domain.PaymentPending && b.CreatedAt.Before(createdBefore)
	}, limit)
	if err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, 0, len(stale))
	for _, b := range stale {
		ids = append(ids, b.ID)
	}
	return ids, nil
}

// filter returns matches newest first.
func (r *BookingRepository) filter(keep func(*domain.Booking) bool, limit int) ([]domain.Booking, error) {
	var out []domain.Booking
	err := r.run(func(st *state) error {
		for _, b := range st.bookings {
			if keep(&b) {
				out = append(out, copyBooking(b))
			}
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, err
}

type RateRepository struct{ run runner }

func (r *RateRepository) Get(_ context.Context, c domain.PricingCategory) (decimal.Decimal, bool, error) {
	var rate decimal.Decimal
	var found bool
	err := r.run(func(st *state) error {
		rate, found = st.rates[c]
		return nil
	})
	return rate, found, err
}

func (r *RateRepository) Upsert(_ context.Context, rate domain.PricingRate) error {
	return r.run(func(st *state) error {
		st.rates[rate.Category] = rate.Rate
		return nil
	})
}

func (r *RateRepository) List(_ context.Context) ([]domain.PricingRate, error) {
	var out []domain.PricingRate
	err := r.run(func(st *state) error {
		for c, rate := range st.rates {
			out = append(out, domain.PricingRate{Category: c, Rate: rate})
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out, err
}

type LeaveTokenRepository struct{ run runner }

func (r *LeaveTokenRepository) Create(_ context.Context, t *domain.LeaveToken) error {
	return r.run(func(st *state) error {
		st.tokens[t.ID] = *t
		return nil
	})
}

func (r *LeaveTokenRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.LeaveToken, error) {
	var out *domain.LeaveToken
	err := r.run(func(st *state) error {
		t, ok := st.tokens[id]
		if !ok {
			return fmt.Errorf("%w: undo token %s", domain.ErrNotFound, id)
		}
		out = &t
		return nil
	})
	return out, err
}

func (r *LeaveTokenRepository) GetActiveForUser(_ context.Context, userID string, now time.Time) (*domain.LeaveToken, error) {
	var out *domain.LeaveToken
	err := r.run(func(st *state) error {
		for _, t := range st.tokens {
			if t.UserID == userID && t.Active(now) {
				if out == nil || t.IssuedAt.After(out.IssuedAt) {
					c := t
					out = &c
				}
			}
		}
		if out == nil {
			return fmt.Errorf("%w: no active undo token for user %s", domain.ErrNotFound, userID)
		}
		return nil
	})
	return out, err
}

func (r *LeaveTokenRepository) SupersedeForUser(_ context.Context, userID string, at time.Time) error {
	return r.run(func(st *state) error {
		for id, t := range st.tokens {
			if t.UserID == userID && t.ConsumedAt == nil && t.SupersededAt == nil {
				ts := at
				t.SupersededAt = &ts
				st.tokens[id] = t
			}
		}
		return nil
	})
}

func (r *LeaveTokenRepository) MarkConsumed(_ context.Context, id uuid.UUID, at time.Time) error {
	return r.run(func(st *state) error {
		t, ok := st.tokens[id]
		if !ok {
			return fmt.Errorf("%w: undo token %s", domain.ErrNotFound, id)
		}
		ts := at
		t.ConsumedAt = &ts
		st.tokens[id] = t
		return nil
	})
}

// copyBooking detaches pointer fields so callers cannot mutate stored state.
func copyBooking(b domain.Booking) domain.Booking {
	b.End = copyTime(b.End)
	b.LeftAt = copyTime(b.LeftAt)
	b.CorrelationID = copyString(b.CorrelationID)
	b.ReceiptID = copyString(b.ReceiptID)
	return b
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}
