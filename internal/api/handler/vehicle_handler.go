package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/oficina/workshop/internal/core/ports"
)

// VehicleHandler handles the vehicle registry.
type VehicleHandler struct {
	service ports.VehicleService
}

func NewVehicleHandler(service ports.VehicleService) *VehicleHandler {
	return &VehicleHandler{service: service}
}

// List handles GET /api/veiculos.
//
// @Summary      List visible vehicles
// @Tags         veiculos
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  vehicleListResponse
// @Failure      401  {object}  messageResponse
// @Router       /veiculos [get]
func (h *VehicleHandler) List(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	vehicles, err := h.service.List(c.Request().Context(), p)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, vehicleListResponse{Vehicles: toVehicleResponses(vehicles), Total: len(vehicles)})
}

// Get handles GET /api/veiculos/:id.
//
// @Summary      Get a vehicle with its services
// @Tags         veiculos
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Vehicle ID"
// @Success      200  {object}  vehicleDetailResponse
// @Failure      403  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /veiculos/{id} [get]
func (h *VehicleHandler) Get(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	detail, err := h.service.Get(c.Request().Context(), p, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toVehicleDetailResponse(detail))
}

// Create handles POST /api/veiculos.
//
// @Summary      Register a vehicle
// @Description  usuario_id is honoured for managers only.
// @Tags         veiculos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createVehicleRequest  true  "Vehicle details"
// @Success      201   {object}  vehicleMutationResponse
// @Failure      400   {object}  messageResponse
// @Failure      403   {object}  messageResponse
// @Failure      409   {object}  messageResponse
// @Router       /veiculos [post]
func (h *VehicleHandler) Create(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	var req createVehicleRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	vehicle, err := h.service.Create(c.Request().Context(), p, toCreateVehicleInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, vehicleMutationResponse{Message: "vehicle registered", Vehicle: toVehicleResponse(vehicle)})
}

// Update handles PUT /api/veiculos/:id.
//
// @Summary      Update a vehicle
// @Tags         veiculos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                   true  "Vehicle ID"
// @Param        body  body      updateVehicleRequest  true  "Fields to change"
// @Success      200   {object}  vehicleMutationResponse
// @Failure      400   {object}  messageResponse
// @Failure      403   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Failure      409   {object}  messageResponse
// @Router       /veiculos/{id} [put]
func (h *VehicleHandler) Update(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req updateVehicleRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	vehicle, err := h.service.Update(c.Request().Context(), p, id, toUpdateVehicleInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, vehicleMutationResponse{Message: "vehicle updated", Vehicle: toVehicleResponse(vehicle)})
}

// Delete handles DELETE /api/veiculos/:id.
//
// @Summary      Delete a vehicle without services
// @Tags         veiculos
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Vehicle ID"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Failure      409  {object}  messageResponse
// @Router       /veiculos/{id} [delete]
func (h *VehicleHandler) Delete(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), p, id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "vehicle deleted"})
}
