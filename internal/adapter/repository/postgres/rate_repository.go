package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/shopspring/decimal"
	"github.com/srgjo27/scalable_parking/internal/core/domain"
)

type RateRepository struct {
	db querier
}

func (r *RateRepository) Get(ctx context.Context, c domain.PricingCategory) (decimal.Decimal, bool, error) {
	var rate decimal.Decimal
	err := r.db.QueryRowContext(ctx, `SELECT rate FROM pricing_rates WHERE category = $1`, c).Scan(&rate)
	if errors.Is(err, sql.ErrNoRows) {
		return decimal.Zero, false, nil
	}
	if err != nil {
		return decimal.Zero, false, err
	}

	return rate, true, nil
}

func (r *RateRepository) Upsert(ctx context.Context, rate domain.PricingRate) error {
	query := `
	INSERT INTO pricing_rates (category, rate)
	VALUES ($1, $2)
	ON CONFLICT (category) DO UPDATE SET rate = EXCLUDED.rate
	`

	_, err := r.db.ExecContext(ctx, query, rate.Category, rate.Rate)
	return err
}

func (r *RateRepository) List(ctx context.Context) ([]domain.PricingRate, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT category, rate FROM pricing_rates ORDER BY category`)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var rates []domain.PricingRate
	for rows.Next() {
		var pr domain.PricingRate
		if err := rows.Scan(&pr.Category, &pr.Rate); err != nil {
			return nil, err
		}

		rates = append(rates, pr)
	}

	return rates, rows.Err()
}
