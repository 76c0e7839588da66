package parking

// ValidationError signals a request rejected before any collaborator call.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

func newValidationError(msg string) error {
	return ValidationError{Message: msg}
}
