package domain

import "errors"

// Error taxonomy surfaced to callers. Persistence failures are wrapped
// store errors and intentionally have no sentinel here.
var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidStatus    = errors.New("invalid room status")
	ErrInvalidDateRange = errors.New("check-out must be after check-in")
	ErrEmptyGuestName   = errors.New("guest name is required")
)
