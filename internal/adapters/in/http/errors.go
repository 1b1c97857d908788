package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"grubdash/internal/core/domain/model/kernel"
	"grubdash/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// NewErrorHandler renders every error as {"error": message}. Rule violations
// keep their message; NotFound maps to 404 and the rest to 400.
func NewErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	logger = logger.With("component", "http_error_handler")

	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, message := describe(err, c)
		if status >= http.StatusInternalServerError {
			logger.ErrorContext(c.Request().Context(), "Request failed",
				"method", c.Request().Method, "path", c.Request().URL.Path, "error", err)
		}

		if writeErr := c.JSON(status, ErrorBody{Error: message}); writeErr != nil {
			logger.WarnContext(c.Request().Context(), "Failed to write error response", "error", writeErr)
		}
	}
}

func describe(err error, c echo.Context) (int, string) {
	var violation *kernel.RuleViolation
	if errors.As(err, &violation) {
		if violation.Rule == kernel.NotFound {
			return http.StatusNotFound, violation.Error()
		}
		return http.StatusBadRequest, violation.Error()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		switch httpErr.Code {
		case http.StatusNotFound:
			return http.StatusNotFound, "Path not found: " + c.Request().URL.Path
		case http.StatusMethodNotAllowed:
			return http.StatusMethodNotAllowed,
				fmt.Sprintf("%s not allowed for %s", c.Request().Method, c.Request().URL.Path)
		}
		return httpErr.Code, fmt.Sprint(httpErr.Message)
	}

	if errors.Is(err, errs.ErrValueIsRequired) || errors.Is(err, errs.ErrValueIsInvalid) {
		return http.StatusBadRequest, err.Error()
	}

	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}
