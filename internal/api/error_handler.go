package api

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/sonnasweet/ordering-system/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Stack   string `json:"stack,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders the stable envelope {"success":false,"message":"<message>"},
//     attaching a stack trace outside production.
func NewHTTPErrorHandler(log zerolog.Logger, env string) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg, unexpected := resolveError(err, log, c)
		resp := errorResponse{Success: false, Message: msg}
		if unexpected && env != "production" {
			resp.Stack = string(debug.Stack())
		}
		_ = c.JSON(code, resp)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string, bool) {
	// Echo's own errors (bind failures, 404 from router, etc.) and the
	// rejections raised by the auth middleware.
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message), false
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid credentials", false
	case errors.Is(err, domain.ErrInvalidSession):
		return http.StatusUnauthorized, "Not authorized to access this route", false
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "User not found", false
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, "User already exists", false
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Server error", true
}
