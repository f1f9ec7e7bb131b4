package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"calculator-service/calculator"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

func TestTranslateError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{"division by zero", calculator.DivisionByZeroError(), http.StatusBadRequest, "Division by zero is not allowed"},
		{"invalid input", calculator.InvalidNumericInputError("a", errors.New("parse")), http.StatusBadRequest, "Invalid input: a should be a number"},
		{"missing parameter", calculator.MissingParameterError("b"), http.StatusBadRequest, "Missing required parameter: b"},
		{"wrapped kind", fmt.Errorf("ctx: %w", calculator.MissingParameterError("a")), http.StatusBadRequest, "Missing required parameter: a"},
		{"unclassified", calculator.UnexpectedError(errors.New("boom")), http.StatusInternalServerError, "An unexpected error occurred: boom"},
		{"plain error", errors.New("connection reset"), http.StatusInternalServerError, "An unexpected error occurred: connection reset"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := TranslateError(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.body, body)
		})
	}
}

func TestTranslateErrorStatusMatchesKind(t *testing.T) {
	for _, err := range []*calculator.Error{
		calculator.DivisionByZeroError(),
		calculator.MissingParameterError("a"),
		calculator.InvalidNumericInputError("b", nil),
		calculator.UnexpectedError(nil),
	} {
		status, _ := TranslateError(err)
		assert.Equal(t, err.HTTPStatus(), status, err.Kind.String())
	}
}
