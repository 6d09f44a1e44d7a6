package booking

import "errors"

var (
	ErrBookingNotFound   = errors.New("booking not found")
	ErrUnknownWasteType  = errors.New("unknown waste type")
	ErrInvalidTransition = errors.New("booking status transition not allowed")
)
