package calorielog

import (
	"errors"
	"fmt"
)

const (
	FoodRequiredMessage     = "Please enter a food name"
	CaloriesPositiveMessage = "Please enter calories greater than 0"

	// FailureMessage is what callers show the user when ErrViewUnavailable
	// comes back. The underlying FaultError still carries the detail.
	FailureMessage = "Something went wrong while updating the calorie log. Please try again."
)

// ErrViewUnavailable is wrapped by every FaultError.
var ErrViewUnavailable = errors.New("calorie log view unavailable")

// ValidationError is a rejected AddEntry input. Message is display-ready.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// FaultError records a panic recovered while building an entry or a view.
type FaultError struct {
	Op    string
	Cause any
	Stack []byte
}

func (e *FaultError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrViewUnavailable, e.Op, e.Cause)
}

func (e *FaultError) Unwrap() error {
	return ErrViewUnavailable
}

// IsValidation reports whether err is a *ValidationError and returns it.
func IsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
