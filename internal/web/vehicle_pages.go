package web

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/oficina/workshop/internal/core/domain"
	"github.com/oficina/workshop/internal/core/ports"
)

type vehicleFormPage struct {
	Vehicle *domain.Vehicle
	Owners  []*domain.User // manager only
	Action  string
}

func (h *Handler) Vehicles(c echo.Context) error {
	vehicles, err := h.svc.Vehicles.List(c.Request().Context(), currentPrincipal(c))
	if err != nil {
		return h.fail(c, err, "/dashboard")
	}
	return h.render(c, "vehicles", "Veículos", vehicles)
}

func (h *Handler) VehicleDetail(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return h.fail(c, domain.ErrVehicleNotFound, "/veiculos")
	}
	detail, err := h.svc.Vehicles.Get(c.Request().Context(), currentPrincipal(c), id)
	if err != nil {
		return h.fail(c, err, "/veiculos")
	}
	return h.render(c, "vehicle_detail", "Veículo "+detail.Vehicle.Plate, detail)
}

func (h *Handler) NewVehiclePage(c echo.Context) error {
	data := vehicleFormPage{Vehicle: &domain.Vehicle{}, Action: "/veiculos/novo"}
	if current(c).Role == domain.RoleManager {
		owners, err := h.svc.Users.List(c.Request().Context(), currentPrincipal(c), string(domain.RoleClient))
		if err != nil {
			return h.fail(c, err, "/veiculos")
		}
		data.Owners = owners
	}
	return h.render(c, "vehicle_form", "Novo veículo", data)
}

func (h *Handler) CreateVehicle(c echo.Context) error {
	var form vehicleForm
	if err := bindForm(c, &form); err != nil {
		return h.fail(c, err, "/veiculos/novo")
	}

	vehicle, err := h.svc.Vehicles.Create(c.Request().Context(), currentPrincipal(c), ports.CreateVehicleInput{
		Plate:   form.Plate,
		Make:    form.Make,
		Model:   form.Model,
		Year:    form.Year,
		Color:   form.Color,
		OwnerID: form.OwnerID,
	})
	if err != nil {
		return h.fail(c, err, "/veiculos/novo")
	}
	return h.success(c, "Veículo "+vehicle.Plate+" cadastrado com sucesso!", "/veiculos")
}

func (h *Handler) EditVehiclePage(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return h.fail(c, domain.ErrVehicleNotFound, "/veiculos")
	}
	p := currentPrincipal(c)
	detail, err := h.svc.Vehicles.Get(c.Request().Context(), p, id)
	if err != nil {
		return h.fail(c, err, "/veiculos")
	}
	if err := domain.Authorize(p, domain.ResourceVehicle, domain.ActionUpdate, domain.Target{OwnerID: detail.Vehicle.OwnerID}); err != nil {
		return h.fail(c, err, "/veiculos")
	}
	return h.render(c, "vehicle_form", "Editar veículo", vehicleFormPage{
		Vehicle: detail.Vehicle,
		Action:  fmt.Sprintf("/veiculos/%d/editar", id),
	})
}

func (h *Handler) UpdateVehicle(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return h.fail(c, domain.ErrVehicleNotFound, "/veiculos")
	}
	back := fmt.Sprintf("/veiculos/%d/editar", id)

	var form vehicleForm
	if err := bindForm(c, &form); err != nil {
		return h.fail(c, err, back)
	}

	_, err := h.svc.Vehicles.Update(c.Request().Context(), currentPrincipal(c), id, ports.UpdateVehicleInput{
		Plate: &form.Plate,
		Make:  &form.Make,
		Model: &form.Model,
		Year:  &form.Year,
		Color: &form.Color,
	})
	if err != nil {
		return h.fail(c, err, back)
	}
	return h.success(c, "Veículo atualizado com sucesso!", fmt.Sprintf("/veiculos/%d", id))
}

// DeleteVehicle refuses vehicles that still have services.
func (h *Handler) DeleteVehicle(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return h.fail(c, domain.ErrVehicleNotFound, "/veiculos")
	}
	if err := h.svc.Vehicles.Delete(c.Request().Context(), currentPrincipal(c), id); err != nil {
		return h.fail(c, err, fmt.Sprintf("/veiculos/%d", id))
	}
	return h.success(c, "Veículo excluído com sucesso!", "/veiculos")
}
