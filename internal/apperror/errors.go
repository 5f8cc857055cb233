// Package apperror holds the error kinds shared by the repository, service
// and handler layers. Callers wrap these with fmt.Errorf("%w") and the HTTP
// error handler maps them onto status codes with errors.Is / errors.As.
package apperror

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks malformed or missing client input. Its message is
	// safe to show to the client.
	ErrValidation = errors.New("validation error")

	ErrNotFound = errors.New("not found")

	// ErrPaymentNotCompleted is the expected outcome for abandoned or failed
	// checkouts, not a system failure.
	ErrPaymentNotCompleted = errors.New("payment not completed")

	// ErrDataIntegrity means stored data breaks an invariant this service
	// relies on: an intent without the metadata checkout writes, or a catalog
	// price that cannot be expressed in minor units.
	ErrDataIntegrity = errors.New("data integrity violation")

	ErrUpstream = errors.New("upstream failure")
)

// PaymentNotCompletedError reports the provider status observed for an
// intent that has not succeeded.
type PaymentNotCompletedError struct {
	Status string
}

func (e *PaymentNotCompletedError) Error() string {
	return fmt.Sprintf("payment not completed: status %s", e.Status)
}

func (e *PaymentNotCompletedError) Unwrap() error {
	return ErrPaymentNotCompleted
}

func Validation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func NotFound(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

// Upstream wraps a provider or storage failure, keeping the cause reachable.
func Upstream(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrUpstream, op, err)
}
