package normalization

import (
	"fmt"
)

// AssertError identifies an error that indicates an internal consistency
// issue, such as a corrupt property table, and should be treated as a
// critical and unrecoverable error.
type AssertError string

// Error returns the assertion error as a human-readable string and satisfies
// the error interface.
func (e AssertError) Error() string {
	return "assertion failed: " + string(e)
}

// ErrorCode identifies a kind of error.
type ErrorCode int

const (
	// ErrRecursionLimit indicates that decomposing a code point nested
	// deeper than the property table can legitimately require.
	ErrRecursionLimit ErrorCode = iota

	// ErrUnknownForm indicates a normalization form that does not exist.
	ErrUnknownForm
)

// Map of ErrorCode values back to their constant names for pretty printing.
var errorCodeStrings = map[ErrorCode]string{
	ErrRecursionLimit: "ErrRecursionLimit",
	ErrUnknownForm:    "ErrUnknownForm",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// Error identifies a failed normalization.  The caller can use type
// assertions or errors.As to access the ErrorCode field to ascertain the
// specific reason for the failure.
type Error struct {
	ErrorCode   ErrorCode // Describes the kind of error
	Description string    // Human readable description of the issue
	Err         error     // Underlying error, if any
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	if e.Err != nil {
		return e.Description + ": " + e.Err.Error()
	}
	return e.Description
}

func (e Error) Unwrap() error {
	return e.Err
}

// normError creates an Error given a set of arguments.
func normError(c ErrorCode, desc string) Error {
	return Error{ErrorCode: c, Description: desc}
}
