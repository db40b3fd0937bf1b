package middleware

import (
	"crypto/subtle"
	"net/http"
	"net/http/pprof"

	"github.com/labstack/echo/v4"

	"tinylink/internal/domain"
)

const pprofAuthHeader = "X-Pprof-Secret"

var errPprofUnauthorized = domain.ErrorResponse{Error: "Unauthorized", Code: "UNAUTHORIZED"}

// PprofAuth admits a request only when X-Pprof-Secret matches secret.
// An empty secret admits nobody.
func PprofAuth(secret string) echo.MiddlewareFunc {
	secretBytes := []byte(secret)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			provided := c.Request().Header.Get(pprofAuthHeader)
			if secret == "" || subtle.ConstantTimeCompare([]byte(provided), secretBytes) != 1 {
				return c.JSON(http.StatusUnauthorized, errPprofUnauthorized)
			}
			return next(c)
		}
	}
}

// RegisterPprof mounts the runtime profiles under /debug/pprof behind PprofAuth.
func RegisterPprof(e *echo.Echo, secret string) {
	g := e.Group("/debug/pprof", PprofAuth(secret))
	g.GET("/", echo.WrapHandler(http.HandlerFunc(pprof.Index)))
	g.GET("/cmdline", echo.WrapHandler(http.HandlerFunc(pprof.Cmdline)))
	g.GET("/profile", echo.WrapHandler(http.HandlerFunc(pprof.Profile)))
	g.GET("/symbol", echo.WrapHandler(http.HandlerFunc(pprof.Symbol)))
	g.POST("/symbol", echo.WrapHandler(http.HandlerFunc(pprof.Symbol)))
	g.GET("/trace", echo.WrapHandler(http.HandlerFunc(pprof.Trace)))
	for _, profile := range []string{"allocs", "block", "goroutine", "heap", "mutex", "threadcreate"} {
		g.GET("/"+profile, echo.WrapHandler(pprof.Handler(profile)))
	}
}
