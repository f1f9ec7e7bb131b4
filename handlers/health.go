// Package handlers provides HTTP request handlers for the calculator service.
//
// This package contains handlers for:
//   - Health checks
//   - The four arithmetic operations
//   - Translating failures into HTTP responses
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthMessage is the body returned by the health endpoint.
const HealthMessage = "Service is healthy"

// HealthCheck returns the health status of the service
// GET {base}/health
//
// Response:
//
//	200: Service is healthy
func HealthCheck(c *gin.Context) {
	c.String(http.StatusOK, HealthMessage)
}
