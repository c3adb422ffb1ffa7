package trends

import (
	"errors"
	"fmt"
)

// ValidationError reports rejected query parameters before any provider
// call is made.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// EmptyResultError reports a successful provider response that carried
// no usable data for the query. It is a legitimate outcome, kept
// distinct from transport failures so callers can render a "no data"
// state instead of a retry prompt.
type EmptyResultError struct {
	Reason string
}

func (e *EmptyResultError) Error() string {
	return fmt.Sprintf("no data for query: %s", e.Reason)
}

// TransportError reports a failed provider call (network or
// provider-side). It wraps the underlying error unmodified.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("provider %s failed: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsEmptyResult reports whether err is an EmptyResultError.
func IsEmptyResult(err error) bool {
	var ee *EmptyResultError
	return errors.As(err, &ee)
}

// IsTransport reports whether err is a TransportError.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
