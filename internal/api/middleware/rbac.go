package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/oficina/workshop/internal/api/handler"
	"github.com/oficina/workshop/internal/core/domain"
)

// RequireAccess rejects callers whose role has no scope at all for act on
// res. Record-level checks still happen in the core services.
func RequireAccess(res domain.Resource, act domain.Action) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, ok := c.Get(handler.PrincipalKey).(domain.Principal)
			if !ok || !p.Valid() {
				return domain.ErrNotAuthenticated
			}
			if !domain.Can(p.Role, res, act) {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
