package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"tinylink/internal/domain"
)

// HTTPErrorHandler renders errors that escape a handler (unknown routes,
// wrong methods, oversized bodies, recovered panics) in the API error shape.
func HTTPErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		body := errInternal

		var he *echo.HTTPError
		if errors.As(err, &he) && he.Code < http.StatusInternalServerError {
			status = he.Code
			body = domain.ErrorResponse{Error: http.StatusText(he.Code), Code: statusCode(he.Code)}
		}

		if status >= http.StatusInternalServerError {
			logger.Error("unhandled error",
				slog.String("method", c.Request().Method),
				slog.String("path", c.Path()),
				slog.String("error", err.Error()),
			)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, body)
		}
		if err != nil {
			logger.Error("failed to write error response", slog.String("error", err.Error()))
		}
	}
}

func statusCode(status int) string {
	switch status {
	case http.StatusNotFound:
		return CodeNotFound
	case http.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case http.StatusRequestEntityTooLarge:
		return "PAYLOAD_TOO_LARGE"
	default:
		return "BAD_REQUEST"
	}
}
