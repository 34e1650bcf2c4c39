// Package http mounts the operational endpoints shared by every deployment.
package http

import (
	"github.com/labstack/echo/v4"

	"github.com/oficina/workshop/internal/infrastructure/http/handlers"
)

// RegisterHealthRoutes adds /health and /health/ready. Neither requires auth.
func RegisterHealthRoutes(e *echo.Echo, checks map[string]handlers.Check) {
	probes := handlers.NewProbes(checks)
	e.GET("/health", probes.Live)
	e.GET("/health/ready", probes.Ready)
}
