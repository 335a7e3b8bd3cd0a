package domain

import "errors"

// Calculation errors are all caller-correctable input problems. They are
// detected synchronously at the violated precondition; no partial results are
// ever returned alongside one.
var (
	// ErrInvalidRange indicates a date range with the end before the start.
	ErrInvalidRange = errors.New("invalid date range")

	// ErrInvalidInput indicates a negative or zero value where a positive or
	// non-negative value is required.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidConfiguration indicates a rule set that fails validation,
	// such as budget proportions that do not sum to 1.0.
	ErrInvalidConfiguration = errors.New("invalid configuration")
)
