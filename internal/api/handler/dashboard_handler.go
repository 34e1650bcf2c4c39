package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/oficina/workshop/internal/core/ports"
)

type DashboardHandler struct {
	service ports.DashboardService
}

func NewDashboardHandler(service ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Get handles GET /api/dashboard.
//
// @Summary      Role-specific dashboard
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dashboardResponse
// @Failure      401  {object}  messageResponse
// @Router       /dashboard [get]
func (h *DashboardHandler) Get(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	d, err := h.service.Dashboard(c.Request().Context(), p)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDashboardResponse(d))
}
