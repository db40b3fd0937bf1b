package middleware

//go:generate go tool mockery

import (
	"cmp"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"tinylink/internal/metrics"
)

type HTTPRecorder interface {
	RecordHTTP(m metrics.HTTPMetric)
}

// Metrics records one sample per request. The path column holds the route
// template, so short codes never reach it.
func Metrics(recorder HTTPRecorder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			sample := metrics.HTTPMetric{
				Time:       start,
				Method:     c.Request().Method,
				Path:       cmp.Or(c.Path(), "/"),
				StatusCode: responseStatus(c, err),
				DurationMs: float64(time.Since(start).Microseconds()) / 1000.0,
			}
			if err != nil {
				sample.Error = err.Error()
			}
			recorder.RecordHTTP(sample)

			return err
		}
	}
}

// responseStatus predicts what the error handler will write for err,
// since the response is not committed yet when a handler returns one.
func responseStatus(c echo.Context, err error) int {
	if err == nil {
		return c.Response().Status
	}
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}
	return http.StatusInternalServerError
}
