package resilience

import (
	"context"
	"errors"
	"fmt"
)

// ErrUnavailable marks a failure of the dependency itself, such as a missing
// binary or a refused connection, as opposed to a failure caused by the input
// of one call.
var ErrUnavailable = errors.New("dependency unavailable")

// Unavailable tags err with ErrUnavailable. A nil err stays nil.
func Unavailable(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrUnavailable, err)
}

// UnavailableOnly counts only ErrUnavailable failures against the breaker and
// never retries. One caller's bad input must not open the circuit for others.
func UnavailableOnly(err error) ErrorClassification {
	return ErrorClassification{
		RecordFailure: errors.Is(err, ErrUnavailable),
	}
}

func isCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// defaultClassifier never retries and does not hold caller cancellation
// against the dependency.
func defaultClassifier(err error) ErrorClassification {
	return ErrorClassification{RecordFailure: !isCancellation(err)}
}
