package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrRequestFailed is returned for any non-2xx answer from the prediction
	// service. Status and body are not carried.
	ErrRequestFailed = errors.New("failed to get prediction")

	// ErrNoPrediction is returned when a 2xx body has neither
	// "predicted_price" nor "prediction".
	ErrNoPrediction = errors.New("response has no predicted_price or prediction")

	// ErrBusy is returned when a submission is already in flight.
	ErrBusy = errors.New("a prediction is already in progress")
)

// TransportError wraps a failure of the underlying HTTP call (DNS, refused
// connection, reset). Its message is the underlying error's message.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return e.Err.Error() }

func (e *TransportError) Unwrap() error { return e.Err }

// ValidationError reports a form field that could not be parsed.
type ValidationError struct {
	Field FieldKey
	Value string
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("%s: %q: %v", e.Field, e.Value, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }
