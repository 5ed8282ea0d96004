package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/srgjo27/scalable_parking/internal/core/domain"
	"github.com/srgjo27/scalable_parking/internal/core/ports"
)

type PricingService struct {
	tx    ports.Transactor
	repos ports.Repositories
}

func NewPricingService(tx ports.Transactor, repos ports.Repositories) *PricingService {
	return &PricingService{tx: tx, repos: repos}
}

// rateFor falls back to the default table when no stored rate exists or the lookup fails.
func rateFor(ctx context.Context, rates ports.RateRepository, c domain.PricingCategory) decimal.Decimal {
	if rates == nil {
		return domain.DefaultRate(c)
	}
	rate, found, err := rates.Get(ctx, c)
	if err != nil || !found {
		return domain.DefaultRate(c)
	}
	return rate
}

func (s *PricingService) List(ctx context.Context) ([]domain.PricingRate, error) {
	stored, err := s.repos.Rates.List(ctx)
	if err != nil {
		return nil, err
	}

	byCategory := make(map[domain.PricingCategory]decimal.Decimal, len(stored))
	for _, r := range stored {
		byCategory[r.Category] = r.Rate
	}

	out := make([]domain.PricingRate, 0, len(domain.Categories))
	for _, c := range domain.Categories {
		rate, ok := byCategory[c]
		if !ok {
			rate = domain.DefaultRate(c)
		}
		out = append(out, domain.PricingRate{Category: c, Rate: rate})
	}
	return out, nil
}

// Set changes the rate used for fees computed from now on; existing fees are kept.
func (s *PricingService) Set(ctx context.Context, category string, rate decimal.Decimal) (*domain.PricingRate, error) {
	c, err := domain.ParseCategory(category)
	if err != nil {
		return nil, err
	}
	if rate.IsNegative() {
		return nil, fmt.Errorf("%w: rate must not be negative", domain.ErrValidation)
	}

	pr := domain.PricingRate{Category: c, Rate: rate.Round(2)}
	err = s.tx.WithinTx(ctx, []string{"rate:" + string(c)}, func(ctx context.Context, r ports.Repositories) error {
		return r.Rates.Upsert(ctx, pr)
	})
	if err != nil {
		return nil, err
	}
	return &pr, nil
}
