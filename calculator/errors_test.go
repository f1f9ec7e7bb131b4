package calculator

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrorMessagesAndStatus(t *testing.T) {
	tests := []struct {
		name    string
		err     *Error
		kind    ErrorKind
		status  int
		message string
	}{
		{"division", DivisionByZeroError(), DivisionByZero, http.StatusBadRequest, "Division by zero is not allowed"},
		{"missing", MissingParameterError("b"), MissingParameter, http.StatusBadRequest, "Missing required parameter: b"},
		{"invalid", InvalidNumericInputError("a", errors.New("bad")), InvalidNumericInput, http.StatusBadRequest, "Invalid input: a should be a number"},
		{"unexpected", UnexpectedError(errors.New("boom")), Unclassified, http.StatusInternalServerError, "boom"},
		{"unexpected nil", UnexpectedError(nil), Unclassified, http.StatusInternalServerError, "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.err.Kind)
			assert.Equal(t, tt.status, tt.err.HTTPStatus())
			assert.Equal(t, tt.message, tt.err.Error())
		})
	}
}

func TestKindOfWrappedError(t *testing.T) {
	wrapped := fmt.Errorf("handling request: %w", MissingParameterError("a"))
	assert.Equal(t, MissingParameter, KindOf(wrapped))

	wrapped = errors.Wrap(InvalidNumericInputError("b", nil), "parse")
	assert.Equal(t, InvalidNumericInput, KindOf(wrapped))

	assert.Equal(t, Unclassified, KindOf(errors.New("plain")))
}

func TestUnexpectedErrorContext(t *testing.T) {
	cause := errors.New("disk on fire")
	err := UnexpectedError(cause, "encode result")

	assert.Equal(t, "encode result: disk on fire", err.Error())
	assert.True(t, errors.Is(err, cause))
}

func TestErrorKindString(t *testing.T) {
	assert.Equal(t, "division_by_zero", DivisionByZero.String())
	assert.Equal(t, "missing_parameter", MissingParameter.String())
	assert.Equal(t, "invalid_numeric_input", InvalidNumericInput.String())
	assert.Equal(t, "unclassified", Unclassified.String())
	assert.Equal(t, "unclassified", ErrorKind(99).String())
}
