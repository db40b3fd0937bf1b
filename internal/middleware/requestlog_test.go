package middleware_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tinylink/internal/middleware"
)

func newLoggedEcho(buf *bytes.Buffer) *echo.Echo {
	logger := slog.New(slog.NewJSONHandler(buf, nil))

	e := echo.New()
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger(logger))
	return e
}

func lastLogLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.NotEmpty(t, lines)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &entry))
	return entry
}

func TestRequestID_GeneratesUUID(t *testing.T) {
	var buf bytes.Buffer
	e := newLoggedEcho(&buf)
	e.GET("/healthz", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	id := rec.Header().Get(echo.HeaderXRequestID)
	_, err := uuid.Parse(id)
	assert.NoError(t, err)

	entry := lastLogLine(t, &buf)
	assert.Equal(t, id, entry["request_id"])
}

func TestRequestID_KeepsIncomingID(t *testing.T) {
	var buf bytes.Buffer
	e := newLoggedEcho(&buf)
	e.GET("/healthz", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(echo.HeaderXRequestID, "upstream-id")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "upstream-id", rec.Header().Get(echo.HeaderXRequestID))
}

func TestRequestLogger_Success(t *testing.T) {
	var buf bytes.Buffer
	e := newLoggedEcho(&buf)
	e.GET("/:code", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, "https://example.com")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/Abc1234", nil))

	entry := lastLogLine(t, &buf)
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "request", entry["msg"])
	assert.Equal(t, http.MethodGet, entry["method"])
	assert.Equal(t, "/Abc1234", entry["uri"])
	assert.Equal(t, "/:code", entry["route"])
	assert.Equal(t, float64(http.StatusFound), entry["status"])
	assert.NotContains(t, entry, "error")
}

func TestRequestLogger_ErrorIsLoggedWithFinalStatus(t *testing.T) {
	var buf bytes.Buffer
	e := newLoggedEcho(&buf)
	e.GET("/boom", func(c echo.Context) error {
		return errors.New("storage exploded")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	entry := lastLogLine(t, &buf)
	assert.Equal(t, "ERROR", entry["level"])
	assert.Equal(t, float64(http.StatusInternalServerError), entry["status"])
	assert.Equal(t, "storage exploded", entry["error"])
}
