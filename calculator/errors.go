package calculator

import (
	"fmt"
	"net/http"

	"github.com/cockroachdb/errors"
)

var (
	// ErrDivisionByZero is the cause carried by DivisionByZero errors.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrUnknownOperation is returned when an Operation has no implementation.
	ErrUnknownOperation = errors.New("unknown operation")
)

// ErrorKind classifies a request failure. The kind alone selects the HTTP
// status; the message may additionally name the offending parameter.
type ErrorKind int

const (
	Unclassified ErrorKind = iota
	InvalidNumericInput
	MissingParameter
	DivisionByZero
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidNumericInput:
		return "invalid_numeric_input"
	case MissingParameter:
		return "missing_parameter"
	case DivisionByZero:
		return "division_by_zero"
	default:
		return "unclassified"
	}
}

// HTTPStatus returns the response status for the kind.
func (k ErrorKind) HTTPStatus() int {
	switch k {
	case InvalidNumericInput, MissingParameter, DivisionByZero:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Error is the single error type produced by request handling.
type Error struct {
	Kind  ErrorKind
	Param string
	cause error
}

func (e *Error) Error() string {
	switch e.Kind {
	case DivisionByZero:
		return "Division by zero is not allowed"
	case InvalidNumericInput:
		return fmt.Sprintf("Invalid input: %s should be a number", e.Param)
	case MissingParameter:
		return fmt.Sprintf("Missing required parameter: %s", e.Param)
	default:
		if e.cause == nil {
			return "unknown"
		}
		return e.cause.Error()
	}
}

func (e *Error) Unwrap() error { return e.cause }

// HTTPStatus returns the response status for the error.
func (e *Error) HTTPStatus() int { return e.Kind.HTTPStatus() }

// DivisionByZeroError creates a DivisionByZero error.
func DivisionByZeroError() *Error {
	return &Error{Kind: DivisionByZero, cause: ErrDivisionByZero}
}

// MissingParameterError creates a MissingParameter error for param.
func MissingParameterError(param string) *Error {
	return &Error{Kind: MissingParameter, Param: param}
}

// InvalidNumericInputError creates an InvalidNumericInput error for param,
// keeping the parse failure as its cause.
func InvalidNumericInputError(param string, cause error) *Error {
	return &Error{Kind: InvalidNumericInput, Param: param, cause: cause}
}

// UnexpectedError wraps cause as an Unclassified error. A nil cause becomes
// an opaque "unknown" error.
func UnexpectedError(cause error, context ...string) *Error {
	if cause == nil {
		cause = errors.New("unknown")
	}
	for _, c := range context {
		cause = errors.Wrap(cause, c)
	}
	return &Error{Kind: Unclassified, cause: cause}
}

// KindOf returns the kind of the first *Error in err's chain, or
// Unclassified when there is none.
func KindOf(err error) ErrorKind {
	var calcErr *Error
	if errors.As(err, &calcErr) {
		return calcErr.Kind
	}
	return Unclassified
}
