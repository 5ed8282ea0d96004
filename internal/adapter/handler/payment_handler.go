package handler

import (
	"crypto/subtle"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/srgjo27/scalable_parking/internal/core/domain"
	"github.com/srgjo27/scalable_parking/internal/core/services"
)

type PaymentHandler struct {
	recon  *services.ReconciliationService
	secret string
}

func NewPaymentHandler(recon *services.ReconciliationService, callbackSecret string) *PaymentHandler {
	return &PaymentHandler{recon: recon, secret: callbackSecret}
}

// POST /v1/payments/callback
func (h *PaymentHandler) Callback(c *gin.Context) {
	if h.secret != "" && !h.secretMatches(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, 1<<20))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable body"})
		return
	}

	res, b, err := h.recon.HandleCallback(c.Request.Context(), payload)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"ok": b.Status == domain.PaymentPaid})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
	default:
		log.Printf("payment callback for booking %q (ref %q) rejected: %v", res.BookingID, res.CorrelationID, err)
		writeError(c, err)
	}
}

// POST /v1/admin/bookings/:id/simulate-paid
func (h *PaymentHandler) SimulatePaid(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	b, err := h.recon.SimulatePaid(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, b)
}

func (h *PaymentHandler) secretMatches(c *gin.Context) bool {
	got := c.GetHeader("X-MPESA-CALLBACK-SECRET")
	if got == "" {
		got = c.GetHeader("X-Callback-Secret")
	}
	return got != "" && subtle.ConstantTimeCompare([]byte(got), []byte(h.secret)) == 1
}
