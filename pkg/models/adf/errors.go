package adf

import (
	"errors"
	"fmt"
)

var (
	ErrLagTooLarge = errors.New("lag too large for sample length")
	ErrNegativeLag = errors.New("lag must not be negative")
)

// ConfigurationError is returned before any numeric work when the lag order
// does not fit the sample length.
type ConfigurationError struct {
	N     int // sample length
	Lag   int // requested lag order
	Bound int // exclusive upper bound for the lag, N/2 - 2
}

func (e *ConfigurationError) Error() string {
	if e.Lag < 0 {
		return fmt.Sprintf("adf: lag %d is negative", e.Lag)
	}
	return fmt.Sprintf("adf: lag %d too large for %d samples, must be below N/2-2 = %d", e.Lag, e.N, e.Bound)
}

func (e *ConfigurationError) Unwrap() error {
	if e.Lag < 0 {
		return ErrNegativeLag
	}
	return ErrLagTooLarge
}
