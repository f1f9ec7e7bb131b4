package handlers

import (
	"fmt"
	"net/http"

	"calculator-service/calculator"
	"calculator-service/logger"
	"calculator-service/metrics"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TranslateError maps err to the response status and plain-text body.
// Errors outside the calculator taxonomy are reported as unexpected.
func TranslateError(err error) (int, string) {
	var calcErr *calculator.Error
	if !errors.As(err, &calcErr) {
		calcErr = calculator.UnexpectedError(err)
	}

	switch calcErr.Kind {
	case calculator.DivisionByZero:
		return http.StatusBadRequest, "Division by zero is not allowed"
	case calculator.InvalidNumericInput:
		return http.StatusBadRequest, fmt.Sprintf("Invalid input: %s should be a number", calcErr.Param)
	case calculator.MissingParameter:
		return http.StatusBadRequest, fmt.Sprintf("Missing required parameter: %s", calcErr.Param)
	default:
		return http.StatusInternalServerError, fmt.Sprintf("An unexpected error occurred: %s", calcErr.Error())
	}
}

// writeError translates err and writes it as the response.
func writeError(c *gin.Context, err error) int {
	status, body := TranslateError(err)
	_ = c.Error(err)
	c.String(status, "%s", body)
	return status
}

// Recovery is a gin.RecoveryFunc that answers panics as unexpected errors.
func Recovery(c *gin.Context, recovered any) {
	err, ok := recovered.(error)
	if !ok {
		err = errors.Newf("%v", recovered)
	}
	err = calculator.UnexpectedError(err)

	logger.Logger.Error("패닉 복구",
		zap.String(LogFieldPath, c.Request.URL.Path),
		zap.Error(err),
		zap.Stack("stack"),
	)
	metrics.PanicsRecovered.Inc()

	writeError(c, err)
	c.Abort()
}
