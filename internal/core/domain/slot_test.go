package domain_test

import (
	"errors"
	"testing"

	"github.com/srgjo27/scalable_parking/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	c, err := domain.ParseCategory("vip")
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryVIP, c)

	c, err = domain.ParseCategory(" Premium ")
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryPremium, c)

	_, err = domain.ParseCategory("gold")
	assert.True(t, errors.Is(err, domain.ErrValidation))
}

func TestSlot_Validate(t *testing.T) {
	s := domain.Slot{ID: "A1", Name: "Level G, bay 1"}
	require.NoError(t, s.Validate())
	assert.Equal(t, domain.CategoryRegular, s.Category)

	tests := []domain.Slot{
		{Name: "no id"},
		{ID: "A1"},
		{ID: "ABCDEFGHIJK", Name: "too long"},
		{ID: "A1", Name: "bad", Category: "gold"},
	}
	for _, tt := range tests {
		assert.True(t, errors.Is(tt.Validate(), domain.ErrValidation), "%+v", tt)
	}
}

func TestComputeStats(t *testing.T) {
	stats := domain.ComputeStats([]domain.Slot{
		{ID: "A1", Occupied: true},
		{ID: "A2"},
		{ID: "A3"},
	})

	assert.Equal(t, domain.SlotStats{Total: 3, Occupied: 1, Available: 2}, stats)
	assert.Equal(t, domain.SlotStats{}, domain.ComputeStats(nil))
}
