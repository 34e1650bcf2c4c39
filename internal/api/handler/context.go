package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/oficina/workshop/internal/core/domain"
)

// PrincipalKey is the echo.Context key under which the Auth middleware
// stores the authenticated domain.Principal.
const PrincipalKey = "principal"

// principal extracts the identity injected by the Auth middleware and
// fails fast when it is absent, before any service call.
func principal(c echo.Context) (domain.Principal, error) {
	p, ok := c.Get(PrincipalKey).(domain.Principal)
	if !ok || !p.Valid() {
		return domain.Principal{}, domain.ErrNotAuthenticated
	}
	return p, nil
}

// pathID parses a positive numeric path parameter.
func pathID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return uint(id), nil
}

// bind decodes and validates the request body in one step.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload").SetInternal(err)
	}
	return c.Validate(req)
}
