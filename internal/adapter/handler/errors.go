package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/srgjo27/scalable_parking/internal/core/domain"
)

// statusFor maps domain errors to HTTP status codes; unknown errors are 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrInvalidAddress):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrSlotUnavailable),
		errors.Is(err, domain.ErrUserAlreadyBooked),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrReferentialConflict),
		errors.Is(err, domain.ErrDuplicateKey):
		return http.StatusConflict
	case errors.Is(err, domain.ErrAlreadyConsumed), errors.Is(err, domain.ErrExpired):
		return http.StatusGone
	case errors.Is(err, domain.ErrGateway):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func writeError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Printf("%s %s: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
