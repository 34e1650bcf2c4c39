package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/oficina/workshop/internal/core/domain"
)

type errorResponse struct {
	Message string `json:"message"`
}

// kindStatus is checked in order; the first kind err unwraps to wins.
var kindStatus = []struct {
	kind error
	code int
}{
	{domain.ErrValidation, http.StatusBadRequest},
	{domain.ErrUnauthenticated, http.StatusUnauthorized},
	{domain.ErrAccessDenied, http.StatusForbidden},
	{domain.ErrNotFound, http.StatusNotFound},
	{domain.ErrConflict, http.StatusConflict},
}

// NewHTTPErrorHandler renders every error as {"message": ...}. Domain kinds
// keep their own message; anything else is logged and answered with 500.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		code, msg := statusFor(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, errorResponse{Message: msg})
	}
}

func statusFor(err error, log zerolog.Logger, c echo.Context) (int, string) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if he.Internal != nil {
			log.Debug().Err(he.Internal).Str("path", c.Path()).Msg("request rejected")
		}
		return he.Code, fmt.Sprint(he.Message)
	}
	for _, ks := range kindStatus {
		if errors.Is(err, ks.kind) {
			return ks.code, err.Error()
		}
	}

	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("request failed")

	var pe *domain.PersistenceError
	if errors.As(err, &pe) {
		return http.StatusInternalServerError, "storage failure: " + pe.Op
	}
	return http.StatusInternalServerError, "internal server error"
}
