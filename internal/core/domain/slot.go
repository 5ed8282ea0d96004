package domain

import (
	"fmt"
	"strings"
	"time"
)

type PricingCategory string

const (
	CategoryRegular PricingCategory = "Regular"
	CategoryPremium PricingCategory = "Premium"
	CategoryVIP     PricingCategory = "VIP"
)

var Categories = []PricingCategory{CategoryRegular, CategoryPremium, CategoryVIP}

// ParseCategory accepts any casing of a known category name.
func ParseCategory(s string) (PricingCategory, error) {
	for _, c := range Categories {
		if strings.EqualFold(strings.TrimSpace(s), string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: unknown pricing category %q", ErrValidation, s)
}

type Slot struct {
	ID        string          `json:"slot_id"`
	Name      string          `json:"name"`
	Level     string          `json:"level"`
	Category  PricingCategory `json:"pricing_category"`
	Occupied  bool            `json:"occupied"`
	CreatedAt time.Time       `json:"created_at"`
}

func (s *Slot) Validate() error {
	if strings.TrimSpace(s.ID) == "" {
		return fmt.Errorf("%w: slot id is required", ErrValidation)
	}
	if len(s.ID) > 10 {
		return fmt.Errorf("%w: slot id %q longer than 10 characters", ErrValidation, s.ID)
	}
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("%w: slot name is required", ErrValidation)
	}
	if s.Category == "" {
		s.Category = CategoryRegular
	}
	if _, err := ParseCategory(string(s.Category)); err != nil {
		return err
	}
	return nil
}

type SlotStats struct {
	Total     int `json:"total"`
	Occupied  int `json:"occupied"`
	Available int `json:"available"`
}

func ComputeStats(slots []Slot) SlotStats {
	st := SlotStats{Total: len(slots)}
	for _, s := range slots {
		if s.Occupied {
			st.Occupied++
		}
	}
	st.Available = st.Total - st.Occupied
	return st
}
