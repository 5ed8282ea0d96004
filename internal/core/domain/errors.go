package domain

import "errors"

var (
	ErrValidation          = errors.New("validation error")
	ErrNotFound            = errors.New("not found")
	ErrDuplicateKey        = errors.New("duplicate key")
	ErrReferentialConflict = errors.New("referenced by existing bookings")
	ErrForbidden           = errors.New("forbidden")
)

var (
	ErrSlotUnavailable   = errors.New("slot unavailable for the requested window")
	ErrUserAlreadyBooked = errors.New("user already has an active or pending booking")
)

var (
	ErrInvalidTransition = errors.New("invalid booking transition")
	ErrAlreadyConsumed   = errors.New("undo token already consumed")
	ErrExpired           = errors.New("undo token expired")
)

var (
	ErrGateway        = errors.New("payment gateway error")
	ErrInvalidAddress = errors.New("invalid payment address")
)
