package enumlabel

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure conditions.
// These errors can be used with errors.Is() for error checking.
var (
	// ErrNotRegistered indicates the enum type has never been registered.
	ErrNotRegistered = errors.New("enum type not registered")

	// ErrUnknownLabel indicates no member of the enum type carries the
	// requested label.
	ErrUnknownLabel = errors.New("unknown label")

	// ErrUnknownOrdinal indicates the integer does not correspond to any
	// registered member of the enum type.
	ErrUnknownOrdinal = errors.New("undefined ordinal")

	// ErrNoLabel indicates a member exists but has no label attached, in a
	// context where one is required (for example wire-format marshaling).
	ErrNoLabel = errors.New("member has no label")

	// ErrDuplicateMember indicates the same member value appeared more than
	// once in a single registration.
	ErrDuplicateMember = errors.New("duplicate member value")
)

// Error kinds categorize errors by their type.
const (
	// KindInvalidArgument represents errors where the enum type itself is
	// unusable, such as a type that was never registered.
	KindInvalidArgument = "invalid_argument"

	// KindInvalidOperation represents errors where the request cannot be
	// satisfied by the registered members, such as an undefined ordinal.
	KindInvalidOperation = "invalid_operation"

	// KindNotFound represents errors where a label matched no member.
	KindNotFound = "not_found"
)

// Error is a structured error type that wraps underlying errors with
// additional context about the operation that failed and the category of
// error.
//
// Error implements the error interface and supports error unwrapping, making
// it compatible with errors.Is() and errors.As().
type Error struct {
	// Op is the operation that failed (e.g., "Parse", "FromOrdinal").
	Op string

	// Kind categorizes the error (e.g., KindNotFound, KindInvalidArgument).
	Kind string

	// Err is the underlying error that caused this error.
	Err error

	// Context provides additional context about the error (optional).
	// This can include the offending label, ordinal, or type name.
	Context map[string]any
}

// Error implements the error interface, returning a formatted error message
// that includes the operation, kind, and underlying error.
func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("enumlabel: %s: %s", e.Op, e.Kind)
	}

	if len(e.Context) > 0 {
		return fmt.Sprintf("enumlabel: %s (%s): %v [context: %+v]", e.Op, e.Kind, e.Err, e.Context)
	}

	return fmt.Sprintf("enumlabel: %s (%s): %v", e.Op, e.Kind, e.Err)
}

// Unwrap returns the underlying error, allowing errors.Is() and errors.As()
// to work correctly with wrapped errors.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is implements error matching for Error, allowing comparison based on the
// underlying error or the Error itself.
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}

	// A target *Error with a Kind matches any error of that kind; an empty
	// Op in the target acts as a wildcard.
	if t, ok := target.(*Error); ok {
		if t.Kind != "" && e.Kind == t.Kind {
			if t.Op == "" || e.Op == t.Op {
				return true
			}
		}
	}

	// Delegate to underlying error
	return errors.Is(e.Err, target)
}

// WithContext returns a new Error with the provided context added.
// This is useful for attaching the offending value to an error.
func (e *Error) WithContext(ctx map[string]any) *Error {
	newErr := *e
	if newErr.Context == nil {
		newErr.Context = make(map[string]any)
	}
	for k, v := range ctx {
		newErr.Context[k] = v
	}
	return &newErr
}

// NewInvalidArgumentError creates a new Error with KindInvalidArgument.
func NewInvalidArgumentError(op string, err error) *Error {
	return &Error{
		Op:   op,
		Kind: KindInvalidArgument,
		Err:  err,
	}
}

// NewInvalidOperationError creates a new Error with KindInvalidOperation.
func NewInvalidOperationError(op string, err error) *Error {
	return &Error{
		Op:   op,
		Kind: KindInvalidOperation,
		Err:  err,
	}
}

// NewNotFoundError creates a new Error with KindNotFound.
func NewNotFoundError(op string, err error) *Error {
	return &Error{
		Op:   op,
		Kind: KindNotFound,
		Err:  err,
	}
}
