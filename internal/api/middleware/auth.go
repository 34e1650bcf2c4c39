package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/oficina/workshop/internal/api/handler"
	"github.com/oficina/workshop/internal/core/domain"
)

// TokenParser resolves a bearer token into a principal.
type TokenParser interface {
	ParseToken(token string) (domain.Principal, error)
}

// Auth requires "Authorization: Bearer <jwt>" and stores the principal under
// handler.PrincipalKey. A missing header and a bad token are both 401 with
// different messages.
func Auth(tokens TokenParser) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return domain.ErrNotAuthenticated
			}
			token, ok := bearerToken(header)
			if !ok {
				return domain.ErrInvalidToken
			}
			p, err := tokens.ParseToken(token)
			if err != nil {
				return domain.ErrInvalidToken
			}
			c.Set(handler.PrincipalKey, p)
			return next(c)
		}
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	token = strings.TrimSpace(token)
	if !found || !strings.EqualFold(scheme, "bearer") || token == "" {
		return "", false
	}
	return token, true
}
