package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/srgjo27/scalable_parking/internal/core/domain"
)

type BookingRepository struct {
	db        querier
	forUpdate bool
}

const bookingColumns = `id, user_id, slot_id, start_time, end_time, total_fee, payment_status,
	correlation_id, receipt_id, left_at, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		b                  domain.Booking
		end, leftAt        sql.NullTime
		correlation, recpt sql.NullString
	)

	err := row.Scan(&b.ID, &b.UserID, &b.SlotID, &b.Start, &end, &b.Fee, &b.Status,
		&correlation, &recpt, &leftAt, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}

	b.End = nullTime(end)
	b.LeftAt = nullTime(leftAt)
	b.CorrelationID = nullString(correlation)
	b.ReceiptID = nullString(recpt)
	return &b, nil
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `
	INSERT INTO bookings (` + bookingColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.ExecContext(ctx, query, b.ID, b.UserID, b.SlotID, b.Start, b.End, b.Fee, b.Status,
		b.CorrelationID, b.ReceiptID, b.LeftAt, b.CreatedAt, b.UpdatedAt)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: booking %s", domain.ErrDuplicateKey, b.ID)
	}
	if isForeignKeyViolation(err) {
		return fmt.Errorf("%w: slot %s", domain.ErrNotFound, b.SlotID)
	}
	if err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}

	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, bookingID uuid.UUID) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	if r.forUpdate {
		query += ` FOR UPDATE`
	}

	b, err := scanBooking(r.db.QueryRowContext(ctx, query, bookingID))
	if err != nil {
		return nil, notFound(err, "booking %s", bookingID)
	}

	return b, nil
}

func (r *BookingRepository) GetByCorrelationID(ctx context.Context, correlationID string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE correlation_id = $1`

	b, err := scanBooking(r.db.QueryRowContext(ctx, query, correlationID))
	if err != nil {
		return nil, notFound(err, "booking with correlation id %s", correlationID)
	}

	return b, nil
}

func (r *BookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	query := `
	UPDATE bookings
	SET end_time = $1, total_fee = $2, payment_status = $3, correlation_id = $4,
		receipt_id = $5, left_at = $6, updated_at = $7
	WHERE id = $8
	`

	res, err := r.db.ExecContext(ctx, query, b.End, b.Fee, b.Status, b.CorrelationID,
		b.ReceiptID, b.LeftAt, b.UpdatedAt, b.ID)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: correlation id already assigned", domain.ErrDuplicateKey)
	}
	if err != nil {
		return err
	}

	return requireRow(res, "booking %s", b.ID)
}

func (r *BookingRepository) ListOpenBySlot(ctx context.Context, slotID string, from time.Time) ([]domain.Booking, error) {
	query := `
	SELECT ` + bookingColumns + ` FROM bookings
	WHERE slot_id = $1 AND payment_status IN ('PENDING', 'PAID')
		AND (end_time IS NULL OR end_time > $2)
	ORDER BY start_time
	`

	return r.list(ctx, query, slotID, from)
}

func (r *BookingRepository) ListOpenByUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	query := `
	SELECT ` + bookingColumns + ` FROM bookings
	WHERE user_id = $1 AND payment_status IN ('PENDING', 'PAID')
	ORDER BY created_at DESC
	`

	return r.list(ctx, query, userID)
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID string, limit int) ([]domain.Booking, error) {
	query := `
	SELECT ` + bookingColumns + ` FROM bookings
	WHERE user_id = $1
	ORDER BY created_at DESC
	LIMIT $2
	`

	return r.list(ctx, query, userID, limit)
}

func (r *BookingRepository) ListRecent(ctx context.Context, limit int) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings ORDER BY created_at DESC LIMIT $1`

	return r.list(ctx, query, limit)
}

func (r *BookingRepository) CountBySlot(ctx context.Context, slotID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM bookings WHERE slot_id = $1`, slotID).Scan(&n)
	return n, err
}

func (r *BookingRepository) ListStalePending(ctx context.Context, createdBefore time.Time, limit int) ([]uuid.UUID, error) {
	query := `
	SELECT id FROM bookings
	WHERE payment_status = 'PENDING' AND created_at < $1
	ORDER BY created_at
	LIMIT $2
	`

	rows, err := r.db.QueryContext(ctx, query, createdBefore, limit)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}

		ids = append(ids, id)
	}

	return ids, rows.Err()
}

func (r *BookingRepository) list(ctx context.Context, query string, args ...any) ([]domain.Booking, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	bookings := []domain.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}

		bookings = append(bookings, *b)
	}

	return bookings, rows.Err()
}

func nullTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

func nullString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}
