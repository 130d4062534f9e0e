// Package diag exposes a local diagnostics endpoint for long-running client
// processes: a liveness probe and the Prometheus metrics defined in
// internal/pkg/metrics. Bound to loopback by default.
package diag

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// NewServer builds the Echo instance with the diagnostics routes registered.
func NewServer() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}

// Start runs the diagnostics server in the background. Failures are logged,
// never fatal: diagnostics must not take the client down.
func Start(addr string, log zerolog.Logger) {
	e := NewServer()
	go func() {
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Warn().Err(err).Str("addr", addr).Msg("diagnostics server stopped")
		}
	}()
	log.Info().Str("addr", addr).Msg("diagnostics server listening")
}
