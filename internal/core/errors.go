package core

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when a simulation is requested with no processes.
	ErrEmptyInput = errors.New("no processes supplied")

	// ErrInvalidSpec is the match target for SpecError values.
	ErrInvalidSpec = errors.New("invalid process spec")

	// ErrInvalidPolicy is returned for an unknown policy tag or a
	// non-positive Round-Robin time quantum.
	ErrInvalidPolicy = errors.New("invalid policy config")
)

// SpecError reports which field of which process failed validation.
type SpecError struct {
	ProcessID int
	Field     string
	Reason    string
}

func (e *SpecError) Error() string {
	return fmt.Sprintf("invalid process spec: process %d: %s %s", e.ProcessID, e.Field, e.Reason)
}

func (e *SpecError) Unwrap() error { return ErrInvalidSpec }
