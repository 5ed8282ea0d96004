package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

const schema = `
CREATE TABLE IF NOT EXISTS parking_slots (
	slot_id          VARCHAR(10) PRIMARY KEY,
	slot_name        VARCHAR(50) NOT NULL,
	level            VARCHAR(20) NOT NULL DEFAULT '',
	pricing_category VARCHAR(20) NOT NULL DEFAULT 'Regular',
	is_occupied      BOOLEAN NOT NULL DEFAULT FALSE,
	created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS bookings (
	id             UUID PRIMARY KEY,
	user_id        VARCHAR(64) NOT NULL,
	slot_id        VARCHAR(10) NOT NULL REFERENCES parking_slots (slot_id) ON DELETE RESTRICT,
	start_time     TIMESTAMPTZ NOT NULL,
	end_time       TIMESTAMPTZ,
	total_fee      NUMERIC(10, 2) NOT NULL DEFAULT 0,
	payment_status VARCHAR(20) NOT NULL DEFAULT 'PENDING',
	correlation_id VARCHAR(64),
	receipt_id     VARCHAR(64),
	left_at        TIMESTAMPTZ,
	created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS bookings_slot_status_idx ON bookings (slot_id, payment_status);
CREATE INDEX IF NOT EXISTS bookings_user_status_idx ON bookings (user_id, payment_status);
CREATE UNIQUE INDEX IF NOT EXISTS bookings_correlation_idx ON bookings (correlation_id) WHERE correlation_id IS NOT NULL;

CREATE TABLE IF NOT EXISTS pricing_rates (
	category VARCHAR(20) PRIMARY KEY,
	rate     NUMERIC(8, 2) NOT NULL
);

CREATE TABLE IF NOT EXISTS leave_tokens (
	id            UUID PRIMARY KEY,
	user_id       VARCHAR(64) NOT NULL,
	booking_id    UUID NOT NULL REFERENCES bookings (id),
	slot_id       VARCHAR(10) NOT NULL,
	previous_end  TIMESTAMPTZ,
	issued_at     TIMESTAMPTZ NOT NULL,
	expires_at    TIMESTAMPTZ NOT NULL,
	consumed_at   TIMESTAMPTZ,
	superseded_at TIMESTAMPTZ
);

CREATE INDEX IF NOT EXISTS leave_tokens_user_idx ON leave_tokens (user_id);
`

// Migrate creates the tables when they do not exist yet.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
