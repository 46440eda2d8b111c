package services

// ConflictError carries a validation or uniqueness message back to the
// caller. It is an expected outcome, not a failure of the storage layer;
// handlers map it to a 409 with the message verbatim.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// Conflict builds a ConflictError.
func Conflict(message string) *ConflictError {
	return &ConflictError{Message: message}
}
