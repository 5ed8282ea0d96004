package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"github.com/lib/pq"
	"github.com/srgjo27/scalable_parking/internal/core/domain"
	"github.com/srgjo27/scalable_parking/internal/core/ports"
)

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Transactor struct {
	db *sql.DB
}

var _ ports.Transactor = (*Transactor)(nil)

func NewTransactor(db *sql.DB) *Transactor {
	return &Transactor{db: db}
}

// Repositories returns stores bound to the pool, for reads outside a transaction.
func Repositories(db *sql.DB) ports.Repositories {
	return repositoriesFor(db, false)
}

func repositoriesFor(q querier, forUpdate bool) ports.Repositories {
	return ports.Repositories{
		Slots:    &SlotRepository{db: q, forUpdate: forUpdate},
		Bookings: &BookingRepository{db: q, forUpdate: forUpdate},
		Rates:    &RateRepository{db: q},
		Tokens:   &LeaveTokenRepository{db: q, forUpdate: forUpdate},
	}
}

// WithinTx takes a transaction-scoped advisory lock per key, in sorted order so
// two callers locking the same slot and user cannot deadlock.
func (t *Transactor) WithinTx(ctx context.Context, locks []string, fn func(ctx context.Context, r ports.Repositories) error) error {
	tx, err := t.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return err
	}

	defer tx.Rollback()

	keys := append([]string(nil), locks...)
	sort.Strings(keys)
	for i, key := range keys {
		if i > 0 && keys[i-1] == key {
			continue
		}
		if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, key); err != nil {
			return fmt.Errorf("failed to acquire lock %s: %w", key, err)
		}
	}

	if err := fn(ctx, repositoriesFor(tx, true)); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23503"
}

func notFound(err error, format string, args ...any) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %s", domain.ErrNotFound, fmt.Sprintf(format, args...))
	}
	return err
}

type rowsAffected interface {
	RowsAffected() (int64, error)
}

func requireRow(res rowsAffected, format string, args ...any) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", domain.ErrNotFound, fmt.Sprintf(format, args...))
	}
	return nil
}
