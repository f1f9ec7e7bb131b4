package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"calculator-service/calculator"
	"calculator-service/logger"
	"calculator-service/metrics"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// LogFieldKeys for structured logging
	LogFieldOperation  = "operation"
	LogFieldPath       = "path"
	LogFieldOperandA   = "a"
	LogFieldOperandB   = "b"
	LogFieldResult     = "result"
	LogFieldKind       = "error_kind"
	LogFieldStatus     = "status"
	LogFieldDurationMs = "duration_ms"

	// Status values
	StatusSuccess = "success"
	StatusError   = "error"
)

// Calculate returns the handler for op.
// GET {base}/{op}?a=2&b=3
//
// Response:
//
//	200: JSON number, e.g. 5.0
//	400: plain-text message for invalid input, missing parameters or b=0
//	500: plain-text message for anything else
func Calculate(op calculator.Operation) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 요청 시작 시간 기록
		startTime := time.Now()

		operands, err := parseOperands(c)
		if err != nil {
			handleOperationError(c, startTime, op, err)
			return
		}

		result, err := op.Apply(operands.A, operands.B)
		if err != nil {
			handleOperationError(c, startTime, op, err)
			return
		}

		body, err := json.Marshal(calculator.Result(result))
		if err != nil {
			handleOperationError(c, startTime, op, calculator.UnexpectedError(err, "encode result"))
			return
		}

		logger.Logger.Debug("연산 완료",
			zap.String(LogFieldOperation, string(op)),
			zap.Float64(LogFieldOperandA, operands.A),
			zap.Float64(LogFieldOperandB, operands.B),
			zap.Float64(LogFieldResult, result),
		)
		recordSuccessMetrics(op, startTime)

		c.Data(http.StatusOK, "application/json", body)
	}
}

// handleOperationError logs, records metrics and writes the translated error
func handleOperationError(c *gin.Context, startTime time.Time, op calculator.Operation, err error) {
	status := writeError(c, err)
	kind := calculator.KindOf(err)

	fields := []zap.Field{
		zap.String(LogFieldOperation, string(op)),
		zap.String(LogFieldKind, kind.String()),
		zap.Int(LogFieldStatus, status),
		zap.Float64(LogFieldDurationMs, float64(time.Since(startTime).Milliseconds())),
		zap.Error(err),
	}
	if status >= http.StatusInternalServerError {
		logger.Logger.Error("연산 실패", fields...)
	} else {
		logger.Logger.Warn("잘못된 연산 요청", fields...)
	}

	metrics.RequestsTotal.WithLabelValues(string(op), StatusError).Inc()
	metrics.ErrorsTotal.WithLabelValues(string(op), kind.String()).Inc()
	metrics.RequestDuration.WithLabelValues(string(op)).Observe(time.Since(startTime).Seconds())
}

// recordSuccessMetrics records success metrics
func recordSuccessMetrics(op calculator.Operation, startTime time.Time) {
	metrics.RequestsTotal.WithLabelValues(string(op), StatusSuccess).Inc()
	metrics.RequestDuration.WithLabelValues(string(op)).Observe(time.Since(startTime).Seconds())
}
