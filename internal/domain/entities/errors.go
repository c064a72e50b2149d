package entities

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by selection and generation.
var (
	// ErrInvalidArgument marks a malformed request. It is never retried.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNegativeCount is returned when a negative quantity is requested.
	ErrNegativeCount = fmt.Errorf("%w: requested count must be non-negative", ErrInvalidArgument)

	// ErrInvalidGender is returned for a gender outside the configured set.
	ErrInvalidGender = fmt.Errorf("%w: invalid gender", ErrInvalidArgument)

	// ErrInsufficientData marks a valid request the store cannot satisfy.
	ErrInsufficientData = errors.New("no data for generation")
)
