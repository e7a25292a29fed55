package reservation

import "errors"

var (
	ErrSlotUnavailable   = errors.New("time slot unavailable")
	ErrInvalidSlot       = errors.New("invalid time slot")
	ErrStadiumInactive   = errors.New("stadium not available for reservation")
	ErrInvalidTransition = errors.New("invalid status transition")
)
