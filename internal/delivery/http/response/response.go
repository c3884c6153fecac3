// Package response defines the unified API response envelope.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Response unified API response structure.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`    // HTTP status code
	Message string     `json:"message"` // User-friendly message
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo carries the machine-readable reason of a failed request.
type ErrorInfo struct {
	Reason  string `json:"reason"`            // e.g. "ramo_existente"
	Details string `json:"details,omitempty"` // Detailed error description
}

// Success renders a successful response.
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, Response{
		Success: true,
		Code:    statusCode,
		Message: message,
		Data:    data,
	})
}

// Error renders an error response.
func Error(c echo.Context, statusCode int, reason string, message string, details string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Response{
		Success: false,
		Code:    statusCode,
		Message: message,
		Error: &ErrorInfo{
			Reason:  reason,
			Details: details,
		},
	})
}

// BindingError renders a 400 for requests the server could not decode.
func BindingError(c echo.Context, reason string, message string) error {
	return Error(c, http.StatusBadRequest, reason, message, "")
}

// Unauthorized renders a 401 error.
func Unauthorized(c echo.Context, reason string, message string) error {
	return Error(c, http.StatusUnauthorized, reason, message, "")
}

// NotFound renders a 404 error.
func NotFound(c echo.Context, reason string, message string) error {
	return Error(c, http.StatusNotFound, reason, message, "")
}
