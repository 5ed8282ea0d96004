package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/srgjo27/scalable_parking/internal/core/services"
)

type SlotHandler struct {
	slots   *services.SlotService
	pricing *services.PricingService
}

func NewSlotHandler(slots *services.SlotService, pricing *services.PricingService) *SlotHandler {
	return &SlotHandler{slots: slots, pricing: pricing}
}

// GET /v1/slots
func (h *SlotHandler) List(c *gin.Context) {
	slots, err := h.slots.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

// GET /v1/slots/stats
func (h *SlotHandler) Stats(c *gin.Context) {
	stats, err := h.slots.Stats(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// POST /v1/admin/slots
func (h *SlotHandler) Create(c *gin.Context) {
	var req services.CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json body"})
		return
	}

	slot, err := h.slots.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, slot)
}

// PUT /v1/admin/slots/:id
func (h *SlotHandler) Update(c *gin.Context) {
	var req services.UpdateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json body"})
		return
	}

	slot, err := h.slots.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, slot)
}

// DELETE /v1/admin/slots/:id
func (h *SlotHandler) Delete(c *gin.Context) {
	if err := h.slots.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// PUT /v1/admin/slots/:id/occupancy
func (h *SlotHandler) SetOccupancy(c *gin.Context) {
	var in struct {
		Occupied *bool `json:"occupied" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "occupied is required"})
		return
	}

	slot, err := h.slots.SetOccupied(c.Request.Context(), c.Param("id"), *in.Occupied)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, slot)
}

// POST /v1/admin/slots/:id/toggle
func (h *SlotHandler) Toggle(c *gin.Context) {
	slot, err := h.slots.Toggle(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, slot)
}

// GET /v1/admin/rates
func (h *SlotHandler) ListRates(c *gin.Context) {
	rates, err := h.pricing.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"rates": rates})
}

// PUT /v1/admin/rates/:category
func (h *SlotHandler) SetRate(c *gin.Context) {
	var in struct {
		Rate decimal.Decimal `json:"rate"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "rate must be a number"})
		return
	}

	rate, err := h.pricing.Set(c.Request.Context(), c.Param("category"), in.Rate)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, rate)
}
