package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultRates is used when no rate has been stored for a category.
var DefaultRates = map[PricingCategory]decimal.Decimal{
	CategoryRegular: decimal.NewFromInt(50),
	CategoryPremium: decimal.NewFromInt(100),
	CategoryVIP:     decimal.NewFromInt(150),
}

func DefaultRate(c PricingCategory) decimal.Decimal {
	if r, ok := DefaultRates[c]; ok {
		return r
	}
	return DefaultRates[CategoryRegular]
}

type PricingRate struct {
	Category PricingCategory `json:"category"`
	Rate     decimal.Decimal `json:"rate"`
}

// ComputeFee returns hours(start,end) * rate rounded to 2 decimal places.
// An unknown end yields a zero fee.
func ComputeFee(start time.Time, end *time.Time, rate decimal.Decimal) decimal.Decimal {
	if end == nil || !end.After(start) {
		return decimal.Zero.Round(2)
	}
	hours := decimal.NewFromInt(int64(end.Sub(start))).Div(decimal.NewFromInt(int64(time.Hour)))
	return hours.Mul(rate).Round(2)
}

// WireAmount converts a ledger fee into the integral units sent to a gateway.
func WireAmount(fee decimal.Decimal) int64 {
	return fee.Round(0).IntPart()
}
