package coerce

import (
	"errors"
	"fmt"
)

// Sentinel errors distinguishing the two failure channels.
// Use errors.Is() to test which channel an error belongs to.
var (
	// ErrCoercion indicates an ordinary coercion failure: the input value
	// cannot be converted to the requested target under the given options.
	// This is expected, recoverable, and never a programming bug.
	ErrCoercion = errors.New("value cannot be coerced")

	// ErrLogic indicates caller misuse: a contradictory request such as
	// rejecting booleans while coercing to bool. It signals a bug in the
	// caller, not bad data.
	ErrLogic = errors.New("contradictory coercion request")
)

// Error codes categorizing coercion errors.
const (
	// CodeInvalidArgument is carried by ordinary coercion failures raised
	// by the OrFail family.
	CodeInvalidArgument = "INVALID_ARGUMENT"

	// CodeLogicError is carried by caller-misuse errors.
	CodeLogicError = "LOGIC_ERROR"
)

// Error is a structured error for coercion operations. It records the
// operation that failed, an error code, and the underlying sentinel, and
// supports errors.Is and errors.As through Unwrap.
type Error struct {
	// Op is the operation that failed (e.g., "ToIntOrFail").
	Op string

	// Code is one of the Code* constants.
	Code string

	// Err is the underlying sentinel error.
	Err error

	// Context holds additional detail, such as the input value's kind.
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) > 0 {
		return fmt.Sprintf("coerce: %s (%s): %v [context: %+v]", e.Op, e.Code, e.Err, e.Context)
	}
	return fmt.Sprintf("coerce: %s (%s): %v", e.Op, e.Code, e.Err)
}

// Unwrap returns the underlying sentinel, so errors.Is(err, ErrCoercion)
// and errors.Is(err, ErrLogic) work on wrapped errors.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error by Code (and Op, when the target sets one), and
// otherwise delegates to the underlying sentinel.
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}
	if t, ok := target.(*Error); ok {
		if t.Code != "" && e.Code == t.Code {
			if t.Op == "" || e.Op == t.Op {
				return true
			}
		}
	}
	return errors.Is(e.Err, target)
}

// NewInvalidArgumentError creates the ordinary-failure error raised by the
// OrFail family. The rejected input's kind is recorded in Context.
func NewInvalidArgumentError(op string, kind Kind) *Error {
	return &Error{
		Op:      op,
		Code:    CodeInvalidArgument,
		Err:     ErrCoercion,
		Context: map[string]any{"kind": kind.String()},
	}
}

// NewLogicError creates the caller-misuse error. The ToBool family panics
// with it when WithRejectBool is supplied.
func NewLogicError(op string) *Error {
	return &Error{
		Op:   op,
		Code: CodeLogicError,
		Err:  ErrLogic,
	}
}
