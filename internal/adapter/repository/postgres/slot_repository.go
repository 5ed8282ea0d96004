package postgres

import (
	"context"
	"fmt"

	"github.com/srgjo27/scalable_parking/internal/core/domain"
)

type SlotRepository struct {
	db        querier
	forUpdate bool
}

const slotColumns = `slot_id, slot_name, level, pricing_category, is_occupied, created_at`

func (r *SlotRepository) GetByID(ctx context.Context, slotID string) (*domain.Slot, error) {
	query := `SELECT ` + slotColumns + ` FROM parking_slots WHERE slot_id = $1`
	if r.forUpdate {
		query += ` FOR UPDATE`
	}

	var s domain.Slot
	err := r.db.QueryRowContext(ctx, query, slotID).Scan(&s.ID, &s.Name, &s.Level, &s.Category, &s.Occupied, &s.CreatedAt)
	if err != nil {
		return nil, notFound(err, "slot %s", slotID)
	}

	return &s, nil
}

func (r *SlotRepository) List(ctx context.Context) ([]domain.Slot, error) {
	query := `SELECT ` + slotColumns + ` FROM parking_slots ORDER BY level, slot_id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	slots := []domain.Slot{}
	for rows.Next() {
		var s domain.Slot
		if err := rows.Scan(&s.ID, &s.Name, &s.Level, &s.Category, &s.Occupied, &s.CreatedAt); err != nil {
			return nil, err
		}

		slots = append(slots, s)
	}

	return slots, rows.Err()
}

func (r *SlotRepository) Create(ctx context.Context, slot *domain.Slot) error {
	query := `
	INSERT INTO parking_slots (slot_id, slot_name, level, pricing_category, is_occupied, created_at)
	VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(ctx, query, slot.ID, slot.Name, slot.Level, slot.Category, slot.Occupied, slot.CreatedAt)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: slot %s already exists", domain.ErrDuplicateKey, slot.ID)
	}
	if err != nil {
		return fmt.Errorf("failed to insert slot %s: %w", slot.ID, err)
	}

	return nil
}

func (r *SlotRepository) Update(ctx context.Context, slot *domain.Slot) error {
	query := `
	UPDATE parking_slots
	SET slot_name = $1, level = $2, pricing_category = $3
	WHERE slot_id = $4
	`

	res, err := r.db.ExecContext(ctx, query, slot.Name, slot.Level, slot.Category, slot.ID)
	if err != nil {
		return err
	}

	return requireRow(res, "slot %s", slot.ID)
}

func (r *SlotRepository) SetOccupied(ctx context.Context, slotID string, occupied bool) error {
	res, err := r.db.ExecContext(ctx, `UPDATE parking_slots SET is_occupied = $1 WHERE slot_id = $2`, occupied, slotID)
	if err != nil {
		return err
	}

	return requireRow(res, "slot %s", slotID)
}

func (r *SlotRepository) Delete(ctx context.Context, slotID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM parking_slots WHERE slot_id = $1`, slotID)
	if isForeignKeyViolation(err) {
		return fmt.Errorf("%w: slot %s is referenced by bookings", domain.ErrReferentialConflict, slotID)
	}
	if err != nil {
		return err
	}

	return requireRow(res, "slot %s", slotID)
}
