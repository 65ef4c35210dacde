package orchestrators

import "errors"

// ValidationError marks a client-side required-field failure. When a
// command returns one, the request was never sent to the remote
// service; handlers surface it as a blocking alert.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string { return e.Err.Error() }

func (e *ValidationError) Unwrap() error { return e.Err }

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
