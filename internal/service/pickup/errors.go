package pickup

import "errors"

var (
	ErrValidation    = errors.New("invalid pickup payload")
	ErrQuotaExceeded = errors.New("active pickup quota exceeded")

	ErrUnauthorized = errors.New("caller is not permitted")
	ErrInvalidState = errors.New("transition not allowed from current state")
	ErrConflict     = errors.New("pickup state changed concurrently")

	ErrPickupNotFound = errors.New("pickup not found")

	ErrUnknownField = errors.New("unknown pickup field")
	ErrUnknownOp    = errors.New("unknown field operation")
)
