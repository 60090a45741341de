package errs

import "errors"

// Domain-specific sentinel errors for the usecase layers
var (
	// Order intake errors
	ErrEmptyCart           = errors.New("cart is empty")
	ErrTableNumberRequired = errors.New("table number is required")
	ErrUnknownMenuItem     = errors.New("cart references an unknown or inactive menu item")

	// Order lookup / lifecycle errors
	ErrOrderNotFound          = errors.New("order not found")
	ErrInvalidTransition      = errors.New("invalid status transition")
	ErrConcurrentModification = errors.New("order was modified concurrently")

	// Infrastructure faults surfaced to callers
	ErrSequenceUnavailable = errors.New("order number sequence unavailable")
	ErrPersistenceFailure  = errors.New("order persistence failed")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Auth errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrHotelInactive      = errors.New("hotel account is inactive")
)
