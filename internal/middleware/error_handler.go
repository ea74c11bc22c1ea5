package middleware

import (
	"net/http"

	"chestAnalyzer/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ErrorHandler is the echo-level fallback for errors no handler mapped
// itself. Unexpected failures stay a generic 500; nothing in the core
// should ever reach this with a request-scoped fault.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "Internal server error"

	if httpErr, ok := err.(*echo.HTTPError); ok {
		code = httpErr.Code
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
	} else {
		logger.Error("Unhandled request error", err)
	}

	_ = c.JSON(code, errorResponse{Message: message})
}
