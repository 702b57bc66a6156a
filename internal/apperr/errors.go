package apperr

// ValidationError marks an error caused by the caller's input. Message says
// which input was rejected and Err, when set, carries the cause.
type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidation rejects input without an underlying cause, e.g. a missing
// field.
func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

// NewValidationWrap rejects input because of err. errors.As still reaches
// the cause through the returned error.
func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Message: msg, Err: err}
}
