// Package apperror defines the typed errors raised at the request boundary.
// Store errors are not wrapped here: handlers pass their message through
// verbatim.
package apperror

import (
	"errors"
	"fmt"
)

// ValidationError reports missing or malformed request fields.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (%d field(s))", e.Message, len(e.Fields))
}

func NewValidation(message string, fields map[string]string) *ValidationError {
	return &ValidationError{Message: message, Fields: fields}
}

// ErrInvalidID is returned when a path identifier is not an integer.
var ErrInvalidID = errors.New("invalid id")

// AsValidation unwraps err into a *ValidationError.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
