package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/srgjo27/scalable_parking/internal/core/domain"
	"github.com/srgjo27/scalable_parking/internal/core/ports"
)

type CreateSlotRequest struct {
	SlotID   string `json:"slot_id"`
	Name     string `json:"name"`
	Level    string `json:"level"`
	Category string `json:"pricing_category"`
}

type UpdateSlotRequest struct {
	Name     *string `json:"name"`
	Level    *string `json:"level"`
	Category *string `json:"pricing_category"`
}

type SlotService struct {
	tx    ports.Transactor
	repos ports.Repositories
	cache ports.SlotCache
	clock ports.Clock
}

func NewSlotService(tx ports.Transactor, repos ports.Repositories, cache ports.SlotCache, clock ports.Clock) *SlotService {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	return &SlotService{tx: tx, repos: repos, cache: cache, clock: clock}
}

func (s *SlotService) Get(ctx context.Context, slotID string) (*domain.Slot, error) {
	return s.repos.Slots.GetByID(ctx, slotID)
}

// List is served from the cache when possible; cache errors fall through to the store.
func (s *SlotService) List(ctx context.Context) ([]domain.Slot, error) {
	if s.cache != nil {
		slots, ok, err := s.cache.GetSlots(ctx)
		if err != nil {
			log.Printf("slot cache read failed: %v", err)
		} else if ok {
			return slots, nil
		}
	}

	slots, err := s.repos.Slots.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetSlots(ctx, slots); err != nil {
			log.Printf("slot cache write failed: %v", err)
		}
	}

	return slots, nil
}

func (s *SlotService) Stats(ctx context.Context) (domain.SlotStats, error) {
	slots, err := s.List(ctx)
	if err != nil {
		return domain.SlotStats{}, err
	}
	return domain.ComputeStats(slots), nil
}

func (s *SlotService) Create(ctx context.Context, req CreateSlotRequest) (*domain.Slot, error) {
	slot := &domain.Slot{
		ID:        strings.TrimSpace(req.SlotID),
		Name:      strings.TrimSpace(req.Name),
		Level:     strings.TrimSpace(req.Level),
		Category:  domain.PricingCategory(req.Category),
		CreatedAt: s.clock.Now(),
	}
	if slot.Category != "" {
		c, err := domain.ParseCategory(req.Category)
		if err != nil {
			return nil, err
		}
		slot.Category = c
	}
	if err := slot.Validate(); err != nil {
		return nil, err
	}

	err := s.tx.WithinTx(ctx, []string{ports.SlotLock(slot.ID)}, func(ctx context.Context, r ports.Repositories) error {
		return r.Slots.Create(ctx, slot)
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return slot, nil
}

func (s *SlotService) Update(ctx context.Context, slotID string, req UpdateSlotRequest) (*domain.Slot, error) {
	var updated *domain.Slot
	err := s.tx.WithinTx(ctx, []string{ports.SlotLock(slotID)}, func(ctx context.Context, r ports.Repositories) error {
		slot, err := r.Slots.GetByID(ctx, slotID)
		if err != nil {
			return err
		}
		if req.Name != nil {
			slot.Name = strings.TrimSpace(*req.Name)
		}
		if req.Level != nil {
			slot.Level = strings.TrimSpace(*req.Level)
		}
		if req.Category != nil {
			c, err := domain.ParseCategory(*req.Category)
			if err != nil {
				return err
			}
			slot.Category = c
		}
		if err := slot.Validate(); err != nil {
			return err
		}
		if err := r.Slots.Update(ctx, slot); err != nil {
			return err
		}
		updated = slot
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return updated, nil
}

// SetOccupied is an admin override and never touches the ledger.
func (s *SlotService) SetOccupied(ctx context.Context, slotID string, occupied bool) (*domain.Slot, error) {
	var slot *domain.Slot
	err := s.tx.WithinTx(ctx, []string{ports.SlotLock(slotID)}, func(ctx context.Context, r ports.Repositories) error {
		var err error
		slot, err = r.Slots.GetByID(ctx, slotID)
		if err != nil {
			return err
		}
		slot.Occupied = occupied
		return r.Slots.SetOccupied(ctx, slotID, occupied)
	})
	if err != nil {
		return nil, err
	}

	log.Printf("slot %s occupancy forced to %t", slotID, occupied)
	s.invalidate(ctx)
	return slot, nil
}

func (s *SlotService) Toggle(ctx context.Context, slotID string) (*domain.Slot, error) {
	var slot *domain.Slot
	err := s.tx.WithinTx(ctx, []string{ports.SlotLock(slotID)}, func(ctx context.Context, r ports.Repositories) error {
		var err error
		slot, err = r.Slots.GetByID(ctx, slotID)
		if err != nil {
			return err
		}
		slot.Occupied = !slot.Occupied
		return r.Slots.SetOccupied(ctx, slotID, slot.Occupied)
	})
	if err != nil {
		return nil, err
	}

	log.Printf("slot %s occupancy toggled to %t", slotID, slot.Occupied)
	s.invalidate(ctx)
	return slot, nil
}

// Delete refuses to remove slots with booking history.
func (s *SlotService) Delete(ctx context.Context, slotID string) error {
	err := s.tx.WithinTx(ctx, []string{ports.SlotLock(slotID)}, func(ctx context.Context, r ports.Repositories) error {
		if _, err := r.Slots.GetByID(ctx, slotID); err != nil {
			return err
		}
		n, err := r.Bookings.CountBySlot(ctx, slotID)
		if err != nil {
			return err
		}
		if n > 0 {
			return fmt.Errorf("%w: slot %s has %d bookings", domain.ErrReferentialConflict, slotID, n)
		}
		return r.Slots.Delete(ctx, slotID)
	})
	if err != nil {
		return err
	}

	s.invalidate(ctx)
	return nil
}

func (s *SlotService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
	defer cancel()
	if err := s.cache.Invalidate(ctx); err != nil {
		log.Printf("slot cache invalidation failed: %v", err)
	}
}
