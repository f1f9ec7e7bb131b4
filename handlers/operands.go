package handlers

import (
	"strconv"
	"strings"

	"calculator-service/calculator"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
)

// parseOperands extracts a then b from the query string. The first failing
// parameter is reported.
func parseOperands(c *gin.Context) (Operands, error) {
	a, err := parseOperand(c, ParamA)
	if err != nil {
		return Operands{}, err
	}
	b, err := parseOperand(c, ParamB)
	if err != nil {
		return Operands{}, err
	}
	return Operands{A: a, B: b}, nil
}

// parseOperand reads a single query parameter as a float64.
// An absent or blank value is missing. Out-of-range values keep the
// ±Inf or zero that strconv returns for them.
func parseOperand(c *gin.Context, name string) (float64, error) {
	raw, ok := c.GetQuery(name)
	raw = strings.TrimSpace(raw)
	if !ok || raw == "" {
		return 0, calculator.MissingParameterError(name)
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return v, nil
		}
		return 0, calculator.InvalidNumericInputError(name, err)
	}
	return v, nil
}
