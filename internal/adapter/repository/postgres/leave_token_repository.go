package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/srgjo27/scalable_parking/internal/core/domain"
)

type LeaveTokenRepository struct {
	db        querier
	forUpdate bool
}

const tokenColumns = `id, user_id, booking_id, slot_id, previous_end, issued_at, expires_at, consumed_at, superseded_at`

func scanToken(row rowScanner) (*domain.LeaveToken, error) {
	var (
		t                          domain.LeaveToken
		prev, consumed, superseded sql.NullTime
	)

	err := row.Scan(&t.ID, &t.UserID, &t.BookingID, &t.SlotID, &prev, &t.IssuedAt, &t.ExpiresAt, &consumed, &superseded)
	if err != nil {
		return nil, err
	}

	t.PreviousEnd = nullTime(prev)
	t.ConsumedAt = nullTime(consumed)
	t.SupersededAt = nullTime(superseded)
	return &t, nil
}

func (r *LeaveTokenRepository) Create(ctx context.Context, t *domain.LeaveToken) error {
	query := `
	INSERT INTO leave_tokens (` + tokenColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.ExecContext(ctx, query, t.ID, t.UserID, t.BookingID, t.SlotID, t.PreviousEnd,
		t.IssuedAt, t.ExpiresAt, t.ConsumedAt, t.SupersededAt)
	if err != nil {
		return fmt.Errorf("failed to insert leave token: %w", err)
	}

	return nil
}

func (r *LeaveTokenRepository) GetByID(ctx context.Context, tokenID uuid.UUID) (*domain.LeaveToken, error) {
	query := `SELECT ` + tokenColumns + ` FROM leave_tokens WHERE id = $1`
	if r.forUpdate {
		query += ` FOR UPDATE`
	}

	t, err := scanToken(r.db.QueryRowContext(ctx, query, tokenID))
	if err != nil {
		return nil, notFound(err, "leave token %s", tokenID)
	}

	return t, nil
}

func (r *LeaveTokenRepository) GetActiveForUser(ctx context.Context, userID string, now time.Time) (*domain.LeaveToken, error) {
	query := `
	SELECT ` + tokenColumns + ` FROM leave_tokens
	WHERE user_id = $1 AND consumed_at IS NULL AND superseded_at IS NULL AND expires_at > $2
	ORDER BY issued_at DESC
	LIMIT 1
	`

	t, err := scanToken(r.db.QueryRowContext(ctx, query, userID, now))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: no undo token for user %s", domain.ErrNotFound, userID)
	}
	return t, err
}

func (r *LeaveTokenRepository) SupersedeForUser(ctx context.Context, userID string, at time.Time) error {
	query := `
	UPDATE leave_tokens
	SET superseded_at = $1
	WHERE user_id = $2 AND consumed_at IS NULL AND superseded_at IS NULL
	`

	_, err := r.db.ExecContext(ctx, query, at, userID)
	return err
}

func (r *LeaveTokenRepository) MarkConsumed(ctx context.Context, tokenID uuid.UUID, at time.Time) error {
	res, err := r.db.ExecContext(ctx, `UPDATE leave_tokens SET consumed_at = $1 WHERE id = $2`, at, tokenID)
	if err != nil {
		return err
	}

	return requireRow(res, "leave token %s", tokenID)
}
