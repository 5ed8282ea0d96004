package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/srgjo27/scalable_parking/internal/core/domain"
	"github.com/srgjo27/scalable_parking/internal/core/services"
)

type BookingHandler struct {
	svc *services.BookingService
}

func NewBookingHandler(svc *services.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

// POST /v1/bookings
func (h *BookingHandler) Create(c *gin.Context) {
	var req services.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json body"})
		return
	}

	resp, err := h.svc.Reserve(c.Request.Context(), callerFrom(c), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GET /v1/bookings?limit=50
func (h *BookingHandler) List(c *gin.Context) {
	bookings, err := h.svc.ListByUser(c.Request.Context(), callerFrom(c).UserID, queryLimit(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// GET /v1/admin/bookings
func (h *BookingHandler) ListAll(c *gin.Context) {
	bookings, err := h.svc.ListRecent(c.Request.Context(), queryLimit(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// GET /v1/bookings/:id/status
func (h *BookingHandler) Status(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	view, err := h.svc.Status(c.Request.Context(), callerFrom(c), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// POST /v1/bookings/:id/cancel
func (h *BookingHandler) Cancel(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	b, err := h.svc.Cancel(c.Request.Context(), callerFrom(c), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, b.Poll())
}

// POST /v1/bookings/leave
func (h *BookingHandler) Leave(c *gin.Context) {
	token, err := h.svc.LeaveActive(c.Request.Context(), callerFrom(c).UserID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":         token.ID,
		"booking_id":    token.BookingID,
		"slot_id":       token.SlotID,
		"undo_deadline": token.ExpiresAt,
	})
}

// POST /v1/bookings/undo
func (h *BookingHandler) Undo(c *gin.Context) {
	var in struct {
		Token string `json:"token"`
	}
	// An empty body undoes the caller's most recent leave.
	if err := c.ShouldBindJSON(&in); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json body"})
		return
	}

	b, err := h.svc.Undo(c.Request.Context(), callerFrom(c), in.Token)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, b)
}

func bookingID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeError(c, domain.ErrValidation)
		return uuid.Nil, false
	}
	return id, true
}

func queryLimit(c *gin.Context) int {
	n, _ := strconv.Atoi(c.Query("limit"))
	return n
}
