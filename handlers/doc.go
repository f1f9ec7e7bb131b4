// Package handlers provides HTTP request handlers for the calculator service.
//
// Overview
//
// Handlers are organized by functionality:
//   - health.go: Health check endpoint
//   - arithmetic.go: add, subtract, multiply and divide endpoints
//   - operands.go: query parameter parsing
//   - errors.go: error translation and panic recovery
//
// Request Flow
//
// Each arithmetic handler follows the same pattern:
//   1. Record start time
//   2. Parse operands a then b from the query string
//   3. Apply the operation
//   4. Log and record metrics for the outcome
//   5. Write a JSON number or a translated plain-text error
//
// Error Handling
//
// Every failure goes through TranslateError:
//   - 400: Division by zero, non-numeric input, missing parameter
//   - 500: Anything else, including recovered panics
//
// The underlying error is attached to the gin context so logging and
// tracing middleware can report its kind.
//
// Metrics
//
// All requests are tracked with Prometheus metrics:
//   - calculator_requests_total: Total requests by operation and status
//   - calculator_request_duration_seconds: Request duration by operation
//   - calculator_errors_total: Failed requests by operation and error kind
//   - calculator_panics_recovered_total: Panics answered by Recovery
package handlers
