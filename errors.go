package fixedstr

import (
	"errors"

	"github.com/rawbytedev/fixedstr/internal/contract"
)

var (
	ErrOutOfRange   = errors.New("out of range")
	ErrNotScalar    = errors.New("fixedstr: yaml node is not a scalar")
	ErrInvalidUnits = errors.New("fixedstr: units have no text form")
	ErrInvalidText  = errors.New("fixedstr: text is not valid UTF-8")
)

// OutOfRangeError is returned by At for a position outside [0, N).
// Its message is always "fixedstr::Sized::at".
type OutOfRangeError struct {
	Pos int
	Len int
}

func (e *OutOfRangeError) Error() string { return opAt }

func (e *OutOfRangeError) Unwrap() error { return ErrOutOfRange }

// PreconditionError describes a violated precondition of an unchecked
// operation.
type PreconditionError = contract.Violation

// ViolationHandler observes precondition violations.
type ViolationHandler = contract.Handler

// SetViolationHandler installs h for the whole program and returns the
// previous handler. A nil h stops violations from being observed.
func SetViolationHandler(h ViolationHandler) ViolationHandler {
	return contract.SetHandler(h)
}

// PanicOnViolation is a ViolationHandler that panics with the
// *PreconditionError.
func PanicOnViolation(v *PreconditionError) { contract.Panic(v) }
