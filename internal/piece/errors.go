package piece

import "errors"

// Sentinel errors returned by Table operations.
var (
	// ErrOutOfBounds indicates a supplied position, length, or line
	// number falls outside the current document.
	ErrOutOfBounds = errors.New("offset out of range")

	// ErrEmptyInput indicates a mutation that requires at least one
	// byte of text was called with none.
	ErrEmptyInput = errors.New("text must not be empty")

	// ErrAllocationFailure indicates a requested allocation could not
	// be satisfied. Returned instead of letting a runtime out-of-memory
	// panic cross the package boundary.
	ErrAllocationFailure = errors.New("allocation failure")
)
