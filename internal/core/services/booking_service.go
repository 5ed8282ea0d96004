package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/srgjo27/scalable_parking/internal/core/domain"
	"github.com/srgjo27/scalable_parking/internal/core/ports"
	"github.com/srgjo27/scalable_parking/internal/platform/monitoring"
)

const (
	DefaultGraceWindow       = 5 * time.Minute
	DefaultUndoWindow        = 5 * time.Minute
	DefaultStalePendingAfter = time.Hour
	DefaultSweepInterval     = time.Minute

	MinDurationHours = 1
	MaxDurationHours = 24
)

type CreateBookingRequest struct {
	SlotID        string `json:"slot_id"`
	StartTime     string `json:"start_time"`
	DurationHours int    `json:"duration_hours"`
	Phone         string `json:"phone"`
}

type CreateBookingResponse struct {
	BookingID     string `json:"booking_id"`
	CorrelationID string `json:"correlation_id"`
	Status        string `json:"status"`
	Fee           string `json:"fee"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
}

type BookingConfig struct {
	GraceWindow       time.Duration
	UndoWindow        time.Duration
	StalePendingAfter time.Duration
	SweepInterval     time.Duration
}

type BookingOption func(*BookingService)

func WithClock(c ports.Clock) BookingOption {
	return func(s *BookingService) { s.clock = c }
}

func WithNotifier(n ports.Notifier) BookingOption {
	return func(s *BookingService) { s.notifier = n }
}

func WithSlotCache(c ports.SlotCache) BookingOption {
	return func(s *BookingService) { s.cache = c }
}

func WithConflictGuard(g *ConflictGuard) BookingOption {
	return func(s *BookingService) { s.guard = g }
}

func WithConfirmationCanceller(c ports.ConfirmationCanceller) BookingOption {
	return func(s *BookingService) { s.canceller = c }
}

type BookingService struct {
	tx        ports.Transactor
	repos     ports.Repositories
	gateway   ports.PaymentGateway
	guard     *ConflictGuard
	cache     ports.SlotCache
	notifier  ports.Notifier
	canceller ports.ConfirmationCanceller
	clock     ports.Clock
	cfg       BookingConfig
}

func NewBookingService(tx ports.Transactor, repos ports.Repositories, gateway ports.PaymentGateway, cfg BookingConfig, opts ...BookingOption) *BookingService {
	if cfg.GraceWindow <= 0 {
		cfg.GraceWindow = DefaultGraceWindow
	}
	if cfg.UndoWindow <= 0 {
		cfg.UndoWindow = DefaultUndoWindow
	}
	if cfg.StalePendingAfter <= 0 {
		cfg.StalePendingAfter = DefaultStalePendingAfter
	}
	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = DefaultSweepInterval
	}

	s := &BookingService{
		tx:      tx,
		repos:   repos,
		gateway: gateway,
		guard:   NewConflictGuard(DefaultPendingWindow),
		clock:   ports.SystemClock{},
		cfg:     cfg,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Reserve creates a PENDING booking and starts the asynchronous payment for it.
func (s *BookingService) Reserve(ctx context.Context, caller domain.Caller, req CreateBookingRequest) (*CreateBookingResponse, error) {
	now := s.clock.Now()

	start := now
	if strings.TrimSpace(req.StartTime) != "" {
		t, err := time.Parse(time.RFC3339, req.StartTime)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid start_time %q", domain.ErrValidation, req.StartTime)
		}
		start = t
	}

	if req.DurationHours < MinDurationHours || req.DurationHours > MaxDurationHours {
		return nil, fmt.Errorf("%w: duration_hours must be between %d and %d", domain.ErrValidation, MinDurationHours, MaxDurationHours)
	}

	phone := strings.TrimSpace(req.Phone)
	if phone == "" {
		phone = caller.Phone
	}
	if phone == "" {
		return nil, fmt.Errorf("%w: phone number required for payment", domain.ErrValidation)
	}

	end := start.Add(time.Duration(req.DurationHours) * time.Hour)
	booking, err := s.Create(ctx, caller.UserID, req.SlotID, start, end)
	if err != nil {
		return nil, err
	}

	correlationID, err := s.gateway.Initiate(ctx, phone, domain.WireAmount(booking.Fee), booking.ID.String())
	if err != nil {
		log.Printf("payment initiation failed for booking %s: %v", booking.ID, err)
		if _, ferr := s.MarkFailed(context.WithoutCancel(ctx), booking.ID); ferr != nil {
			log.Printf("failed to release booking %s after gateway error: %v", booking.ID, ferr)
		}
		if !errors.Is(err, domain.ErrGateway) && !errors.Is(err, domain.ErrInvalidAddress) {
			err = fmt.Errorf("%w: %v", domain.ErrGateway, err)
		}
		return nil, err
	}

	booking, err = s.attachCorrelation(ctx, booking.ID, correlationID)
	if err != nil {
		return nil, err
	}

	return &CreateBookingResponse{
		BookingID:     booking.ID.String(),
		CorrelationID: correlationID,
		Status:        string(booking.Status),
		Fee:           booking.Fee.StringFixed(2),
		StartTime:     booking.Start.Format(time.RFC3339),
		EndTime:       booking.End.Format(time.RFC3339),
	}, nil
}

// Create records a PENDING booking after the conflict guard accepts it.
func (s *BookingService) Create(ctx context.Context, userID, slotID string, start, end time.Time) (*domain.Booking, error) {
	now := s.clock.Now()

	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("%w: user is required", domain.ErrValidation)
	}
	if strings.TrimSpace(slotID) == "" {
		return nil, fmt.Errorf("%w: slot_id is required", domain.ErrValidation)
	}
	if !end.After(start) {
		monitoring.TrackRejection("validation")
		return nil, fmt.Errorf("%w: end must be after start", domain.ErrValidation)
	}
	if start.Before(now.Add(-s.cfg.GraceWindow)) {
		monitoring.TrackRejection("validation")
		return nil, fmt.Errorf("%w: start %s is in the past", domain.ErrValidation, start.Format(time.RFC3339))
	}

	var booking *domain.Booking
	var category domain.PricingCategory

	locks := []string{ports.SlotLock(slotID), ports.UserLock(userID)}
	err := s.tx.WithinTx(ctx, locks, func(ctx context.Context, r ports.Repositories) error {
		slot, err := r.Slots.GetByID(ctx, slotID)
		if err != nil {
			return err
		}

		endCopy := end
		if err := s.guard.Check(ctx, r, Candidate{UserID: userID, SlotID: slotID, Start: start, End: &endCopy}, now); err != nil {
			return err
		}

		category = slot.Category
		booking = &domain.Booking{
			ID:        uuid.New(),
			UserID:    userID,
			SlotID:    slotID,
			Start:     start,
			End:       &endCopy,
			Fee:       domain.ComputeFee(start, &endCopy, rateFor(ctx, r.Rates, slot.Category)),
			Status:    domain.PaymentPending,
			CreatedAt: now,
			UpdatedAt: now,
		}
		return r.Bookings.Create(ctx, booking)
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSlotUnavailable):
			monitoring.TrackRejection("slot_unavailable")
		case errors.Is(err, domain.ErrUserAlreadyBooked):
			monitoring.TrackRejection("user_already_booked")
		}
		return nil, err
	}

	monitoring.TrackBookingCreated(string(category))
	s.notify(domain.EventBookingCreated, booking)
	return booking, nil
}

// MarkPaid is idempotent: an already PAID booking is returned unchanged.
func (s *BookingService) MarkPaid(ctx context.Context, bookingID uuid.UUID, receiptID string) (*domain.Booking, bool, error) {
	changed := false
	b, err := s.mutate(ctx, bookingID, func(ctx context.Context, r ports.Repositories, b *domain.Booking) error {
		switch b.Status {
		case domain.PaymentPaid:
			return nil
		case domain.PaymentFailed:
			return fmt.Errorf("%w: booking %s already FAILED", domain.ErrInvalidTransition, b.ID)
		}

		receipt := receiptID
		b.Status = domain.PaymentPaid
		b.ReceiptID = &receipt
		b.UpdatedAt = s.clock.Now()
		if err := r.Bookings.Update(ctx, b); err != nil {
			return err
		}
		changed = true
		return r.Slots.SetOccupied(ctx, b.SlotID, true)
	})
	monitoring.TrackTransition("mark_paid", err)
	if err != nil {
		return nil, false, err
	}

	if changed {
		s.afterResolved(ctx, b, domain.EventBookingPaid)
	}
	return b, changed, nil
}

// MarkFailed never touches slot occupancy. Repeating it on a FAILED booking is a no-op.
func (s *BookingService) MarkFailed(ctx context.Context, bookingID uuid.UUID) (*domain.Booking, error) {
	changed := false
	b, err := s.mutate(ctx, bookingID, func(ctx context.Context, r ports.Repositories, b *domain.Booking) error {
		switch b.Status {
		case domain.PaymentFailed:
			return nil
		case domain.PaymentPaid:
			return fmt.Errorf("%w: booking %s already PAID", domain.ErrInvalidTransition, b.ID)
		}

		b.Status = domain.PaymentFailed
		b.UpdatedAt = s.clock.Now()
		changed = true
		return r.Bookings.Update(ctx, b)
	})
	monitoring.TrackTransition("mark_failed", err)
	if err != nil {
		return nil, err
	}

	if changed {
		s.afterResolved(ctx, b, domain.EventBookingFailed)
	}
	return b, nil
}

// Cancel lets the owner (or staff) abandon a booking that is still PENDING.
func (s *BookingService) Cancel(ctx context.Context, caller domain.Caller, bookingID uuid.UUID) (*domain.Booking, error) {
	b, err := s.repos.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !caller.CanView(b) {
		return nil, fmt.Errorf("%w: booking %s belongs to another user", domain.ErrForbidden, bookingID)
	}
	if b.Status == domain.PaymentPaid {
		return nil, fmt.Errorf("%w: only pending bookings can be cancelled", domain.ErrInvalidTransition)
	}
	return s.MarkFailed(ctx, bookingID)
}

// End ("leave") closes a PAID booking at the given instant, frees the slot and
// returns the token that can reverse it once.
func (s *BookingService) End(ctx context.Context, bookingID uuid.UUID, at time.Time) (*domain.LeaveToken, error) {
	var token *domain.LeaveToken
	b, err := s.mutate(ctx, bookingID, func(ctx context.Context, r ports.Repositories, b *domain.Booking) error {
		if b.Status != domain.PaymentPaid {
			return fmt.Errorf("%w: booking %s is %s, not PAID", domain.ErrInvalidTransition, b.ID, b.Status)
		}
		if b.Ended() {
			return fmt.Errorf("%w: booking %s already ended", domain.ErrInvalidTransition, b.ID)
		}

		slot, err := r.Slots.GetByID(ctx, b.SlotID)
		if err != nil {
			return err
		}

		previous := b.End
		ended := at
		b.End = &ended
		b.LeftAt = &ended
		b.Fee = domain.ComputeFee(b.Start, b.End, rateFor(ctx, r.Rates, slot.Category))
		b.UpdatedAt = s.clock.Now()
		if err := r.Bookings.Update(ctx, b); err != nil {
			return err
		}
		if err := r.Slots.SetOccupied(ctx, b.SlotID, false); err != nil {
			return err
		}

		if err := r.Tokens.SupersedeForUser(ctx, b.UserID, at); err != nil {
			return err
		}
		token = &domain.LeaveToken{
			ID:          uuid.New(),
			UserID:      b.UserID,
			BookingID:   b.ID,
			SlotID:      b.SlotID,
			PreviousEnd: previous,
			IssuedAt:    at,
			ExpiresAt:   at.Add(s.cfg.UndoWindow),
		}
		return r.Tokens.Create(ctx, token)
	})
	monitoring.TrackTransition("end", err)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	s.notify(domain.EventBookingEnded, b)
	return token, nil
}

// LeaveActive ends the caller's most recent PAID booking whose slot is still occupied.
func (s *BookingService) LeaveActive(ctx context.Context, userID string) (*domain.LeaveToken, error) {
	open, err := s.repos.Bookings.ListOpenByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	for i := range open {
		b := &open[i]
		if b.Status != domain.PaymentPaid || b.Ended() {
			continue
		}
		slot, err := s.repos.Slots.GetByID(ctx, b.SlotID)
		if err != nil {
			return nil, err
		}
		if slot.Occupied {
			return s.End(ctx, b.ID, s.clock.Now())
		}
	}

	return nil, fmt.Errorf("%w: no active occupied slot to leave", domain.ErrNotFound)
}

// Undo reverses a leave. An empty tokenID resolves the caller's active token.
func (s *BookingService) Undo(ctx context.Context, caller domain.Caller, tokenID string) (*domain.Booking, error) {
	now := s.clock.Now()

	var token *domain.LeaveToken
	var err error
	if strings.TrimSpace(tokenID) == "" {
		token, err = s.repos.Tokens.GetActiveForUser(ctx, caller.UserID, now)
		if err != nil {
			return nil, fmt.Errorf("no recent leave action to undo: %w", err)
		}
	} else {
		id, perr := uuid.Parse(tokenID)
		if perr != nil {
			return nil, fmt.Errorf("%w: invalid undo token", domain.ErrValidation)
		}
		token, err = s.repos.Tokens.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
	}
	if token.UserID != caller.UserID {
		return nil, fmt.Errorf("%w: undo token belongs to another user", domain.ErrForbidden)
	}

	var restored *domain.Booking
	locks := []string{ports.SlotLock(token.SlotID), ports.UserLock(token.UserID)}
	err = s.tx.WithinTx(ctx, locks, func(ctx context.Context, r ports.Repositories) error {
		t, err := r.Tokens.GetByID(ctx, token.ID)
		if err != nil {
			return err
		}
		switch {
		case t.ConsumedAt != nil:
			return domain.ErrAlreadyConsumed
		case t.SupersededAt != nil:
			return fmt.Errorf("%w: a newer leave replaced this token", domain.ErrExpired)
		case !now.Before(t.ExpiresAt):
			return fmt.Errorf("%w: undo window closed at %s", domain.ErrExpired, t.ExpiresAt.Format(time.RFC3339))
		}

		b, err := r.Bookings.GetByID(ctx, t.BookingID)
		if err != nil {
			return err
		}
		if b.Status != domain.PaymentPaid || !b.Ended() {
			return fmt.Errorf("%w: booking %s is not in a left state", domain.ErrInvalidTransition, b.ID)
		}

		if err := s.guard.CheckOverlap(ctx, r, Candidate{SlotID: b.SlotID, Start: b.Start, End: t.PreviousEnd, Exclude: b.ID}); err != nil {
			return err
		}

		slot, err := r.Slots.GetByID(ctx, b.SlotID)
		if err != nil {
			return err
		}

		b.End = t.PreviousEnd
		b.LeftAt = nil
		b.Fee = domain.ComputeFee(b.Start, b.End, rateFor(ctx, r.Rates, slot.Category))
		b.UpdatedAt = now
		if err := r.Bookings.Update(ctx, b); err != nil {
			return err
		}
		if err := r.Slots.SetOccupied(ctx, b.SlotID, true); err != nil {
			return err
		}
		restored = b
		return r.Tokens.MarkConsumed(ctx, t.ID, now)
	})
	monitoring.TrackTransition("undo", err)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	s.notify(domain.EventBookingRestored, restored)
	return restored, nil
}

// Status is a side-effect free read for polling clients.
func (s *BookingService) Status(ctx context.Context, caller domain.Caller, bookingID uuid.UUID) (*domain.PollView, error) {
	b, err := s.repos.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !caller.CanView(b) {
		return nil, fmt.Errorf("%w: booking %s belongs to another user", domain.ErrForbidden, bookingID)
	}
	view := b.Poll()
	return &view, nil
}

func (s *BookingService) Get(ctx context.Context, bookingID uuid.UUID) (*domain.Booking, error) {
	return s.repos.Bookings.GetByID(ctx, bookingID)
}

func (s *BookingService) FindByReference(ctx context.Context, bookingID, correlationID string) (*domain.Booking, error) {
	if strings.TrimSpace(bookingID) != "" {
		if id, err := uuid.Parse(bookingID); err == nil {
			return s.repos.Bookings.GetByID(ctx, id)
		}
		// Providers echo our checkout reference in the booking_id field too.
		if correlationID == "" {
			correlationID = bookingID
		}
	}
	if strings.TrimSpace(correlationID) != "" {
		return s.repos.Bookings.GetByCorrelationID(ctx, correlationID)
	}
	return nil, fmt.Errorf("%w: missing booking_id", domain.ErrValidation)
}

func (s *BookingService) ListByUser(ctx context.Context, userID string, limit int) ([]domain.Booking, error) {
	return s.repos.Bookings.ListByUser(ctx, userID, clampLimit(limit))
}

func (s *BookingService) ListRecent(ctx context.Context, limit int) ([]domain.Booking, error) {
	return s.repos.Bookings.ListRecent(ctx, clampLimit(limit))
}

func (s *BookingService) attachCorrelation(ctx context.Context, bookingID uuid.UUID, correlationID string) (*domain.Booking, error) {
	return s.mutate(ctx, bookingID, func(ctx context.Context, r ports.Repositories, b *domain.Booking) error {
		id := correlationID
		b.CorrelationID = &id
		b.UpdatedAt = s.clock.Now()
		return r.Bookings.Update(ctx, b)
	})
}

// mutate re-reads the booking under its slot and user locks before applying fn.
func (s *BookingService) mutate(ctx context.Context, bookingID uuid.UUID, fn func(ctx context.Context, r ports.Repositories, b *domain.Booking) error) (*domain.Booking, error) {
	current, err := s.repos.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	var out *domain.Booking
	locks := []string{ports.SlotLock(current.SlotID), ports.UserLock(current.UserID)}
	err = s.tx.WithinTx(ctx, locks, func(ctx context.Context, r ports.Repositories) error {
		b, err := r.Bookings.GetByID(ctx, bookingID)
		if err != nil {
			return err
		}
		if err := fn(ctx, r, b); err != nil {
			return err
		}
		out = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *BookingService) afterResolved(ctx context.Context, b *domain.Booking, evt domain.EventType) {
	if s.canceller != nil {
		s.canceller.CancelConfirmation(b.ID.String())
	}
	if evt == domain.EventBookingPaid {
		s.invalidate(ctx)
	}
	s.notify(evt, b)
}

func (s *BookingService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
	defer cancel()
	if err := s.cache.Invalidate(ctx); err != nil {
		log.Printf("slot cache invalidation failed: %v", err)
	}
}

// notify is fire-and-forget; delivery problems are only logged.
func (s *BookingService) notify(t domain.EventType, b *domain.Booking) {
	if s.notifier == nil || b == nil {
		return
	}
	evt := domain.NewEvent(t, b, s.clock.Now())
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.notifier.Notify(ctx, evt); err != nil {
			log.Printf("notify %s for booking %s failed: %v", evt.Type, evt.BookingID, err)
		}
	}()
}

func (s *BookingService) RunBackgroundCleanup(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.SweepInterval)
	defer ticker.Stop()

	log.Printf("Background Worker started: failing PENDING bookings older than %s every %s...", s.cfg.StalePendingAfter, s.cfg.SweepInterval)

	for {
		select {
		case <-ctx.Done():
			log.Println("Background Worker stopped.")
			return
		case <-ticker.C:
			s.SweepStalePending(ctx)
		}
	}
}

// SweepStalePending fails PENDING bookings older than StalePendingAfter and
// reports how many it transitioned.
func (s *BookingService) SweepStalePending(ctx context.Context) int {
	cutoff := s.clock.Now().Add(-s.cfg.StalePendingAfter)
	ids, err := s.repos.Bookings.ListStalePending(ctx, cutoff, 100)
	if err != nil {
		log.Printf("Error fetching stale pending bookings: %v", err)
		return 0
	}

	if len(ids) == 0 {
		return 0
	}

	log.Printf("Found %d stale pending bookings. Failing them...", len(ids))

	failed := 0
	for _, id := range ids {
		if _, err := s.MarkFailed(ctx, id); err != nil {
			log.Printf("Failed to expire booking %s: %v", id, err)
		} else {
			failed++
			log.Printf("Booking %s expired without payment.", id)
		}
	}
	return failed
}

func clampLimit(limit int) int {
	if limit <= 0 || limit > 200 {
		return 200
	}
	return limit
}
