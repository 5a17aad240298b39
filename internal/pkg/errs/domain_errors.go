package errs

import "errors"

// Shared sentinels; handlers map them to HTTP statuses.
var (
	// Client errors
	ErrInvalidInput      = errors.New("invalid input")
	ErrMissingField      = errors.New("missing required field")
	ErrInvalidIdentifier = errors.New("invalid identifier")

	// Booking errors
	ErrSlotNotAvailable = errors.New("slot not available")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

// IsClientError reports whether err originates from malformed or incomplete input.
func IsClientError(err error) bool {
	return Is(err, ErrInvalidInput) ||
		Is(err, ErrMissingField) ||
		Is(err, ErrInvalidIdentifier)
}
