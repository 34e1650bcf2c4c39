package web

import (
	"context"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/oficina/workshop/internal/core/domain"
	"github.com/oficina/workshop/internal/core/ports"
)

// serviceRow pairs a service with its vehicle plate for listings.
type serviceRow struct {
	Service *domain.Service
	Plate   string
}

type servicesPage struct {
	Rows   []serviceRow
	Status string
}

type serviceDetailPage struct {
	Service      *domain.Service
	Vehicle      *domain.Vehicle
	Quotes       []*domain.Quote
	History      []*domain.ServiceEvent
	CanEdit      bool
	CanQuote     bool
	CanApprove   bool
	ApprovedID   uint
	MechanicName string
}

type serviceFormPage struct {
	Service   *domain.Service
	Vehicles  []*domain.Vehicle
	Mechanics []*domain.User
	Action    string
	// StatusOnly hides every field but the status, for mechanics.
	StatusOnly bool
}

func (h *Handler) plates(ctx context.Context, p domain.Principal) map[uint]string {
	vehicles, err := h.svc.Vehicles.List(ctx, p)
	if err != nil {
		h.log.Warn().Err(err).Msg("vehicle lookup failed")
		return nil
	}
	out := make(map[uint]string, len(vehicles))
	for _, v := range vehicles {
		out[v.ID] = v.Plate
	}
	return out
}

func (h *Handler) Services(c echo.Context) error {
	ctx := c.Request().Context()
	p := currentPrincipal(c)
	status := c.QueryParam("status")

	services, err := h.svc.Lifecycle.List(ctx, p, ports.ListServicesInput{Status: status})
	if err != nil {
		return h.fail(c, err, "/dashboard")
	}

	plates := h.plates(ctx, p)
	rows := make([]serviceRow, 0, len(services))
	for _, s := range services {
		rows = append(rows, serviceRow{Service: s, Plate: plates[s.VehicleID]})
	}
	return h.render(c, "services", "Serviços", servicesPage{Rows: rows, Status: status})
}

func (h *Handler) ServiceDetail(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return h.fail(c, domain.ErrServiceNotFound, "/servicos")
	}
	ctx := c.Request().Context()
	p := currentPrincipal(c)

	detail, err := h.svc.Lifecycle.Get(ctx, p, id)
	if err != nil {
		return h.fail(c, err, "/servicos")
	}
	svc := detail.Service

	data := serviceDetailPage{
		Service:    svc,
		Quotes:     detail.Quotes,
		CanEdit:    domain.Authorize(p, domain.ResourceService, domain.ActionUpdate, svc.Target()) == nil,
		CanQuote:   domain.Authorize(p, domain.ResourceQuote, domain.ActionCreate, svc.Target()) == nil,
		CanApprove: domain.Authorize(p, domain.ResourceQuote, domain.ActionApprove, svc.Target()) == nil,
	}
	if svc.ApprovedQuoteID != nil {
		data.ApprovedID = *svc.ApprovedQuoteID
	}
	if v, err := h.svc.Vehicles.Get(ctx, p, svc.VehicleID); err == nil {
		data.Vehicle = v.Vehicle
	}
	if svc.MechanicID != nil {
		if u, err := h.svc.Users.Get(ctx, p, *svc.MechanicID); err == nil {
			data.MechanicName = u.User.Name
		}
	}
	if events, err := h.svc.History.History(ctx, p, id); err == nil {
		data.History = events
	} else {
		h.log.Warn().Err(err).Uint("service_id", id).Msg("history unavailable")
	}
	return h.render(c, "service_detail", fmt.Sprintf("Serviço #%d", id), data)
}

// RequestServicePage lets a client open a request for one of their vehicles.
func (h *Handler) RequestServicePage(c echo.Context) error {
	vehicles, err := h.svc.Vehicles.List(c.Request().Context(), currentPrincipal(c))
	if err != nil {
		return h.fail(c, err, "/servicos")
	}
	if len(vehicles) == 0 {
		h.sessions.flash(c, "warning", "Cadastre um veículo antes de solicitar um serviço.")
		return c.Redirect(http.StatusSeeOther, "/veiculos/novo")
	}
	return h.render(c, "service_request", "Solicitar serviço", vehicles)
}

func (h *Handler) RequestService(c echo.Context) error {
	var form requestServiceForm
	if err := bindForm(c, &form); err != nil {
		return h.fail(c, err, "/servicos/solicitar")
	}

	svc, err := h.svc.Lifecycle.Create(c.Request().Context(), currentPrincipal(c), ports.CreateServiceInput{
		VehicleID:   form.VehicleID,
		Description: form.Description,
	})
	if err != nil {
		return h.fail(c, err, "/servicos/solicitar")
	}
	return h.success(c, "Serviço solicitado! Aguarde o orçamento.", fmt.Sprintf("/servicos/%d", svc.ID))
}

func (h *Handler) serviceFormData(ctx context.Context, p domain.Principal) (serviceFormPage, error) {
	vehicles, err := h.svc.Vehicles.List(ctx, p)
	if err != nil {
		return serviceFormPage{}, err
	}
	// Mechanics only see themselves, which is also whom they may assign.
	mechanics, err := h.svc.Users.List(ctx, p, string(domain.RoleMechanic))
	if err != nil {
		return serviceFormPage{}, err
	}
	return serviceFormPage{Vehicles: vehicles, Mechanics: mechanics}, nil
}

func (h *Handler) NewServicePage(c echo.Context) error {
	data, err := h.serviceFormData(c.Request().Context(), currentPrincipal(c))
	if err != nil {
		return h.fail(c, err, "/servicos")
	}
	data.Service = &domain.Service{Status: domain.StatusAwaitingQuote}
	data.Action = "/servicos/novo"
	return h.render(c, "service_form", "Novo serviço", data)
}

func (h *Handler) CreateService(c echo.Context) error {
	var form serviceForm
	if err := c.Bind(&form); err != nil {
		return h.fail(c, err, "/servicos/novo")
	}
	mechanic, err := form.mechanic()
	if err != nil {
		return h.fail(c, err, "/servicos/novo")
	}
	expected, err := form.expected()
	if err != nil {
		return h.fail(c, err, "/servicos/novo")
	}

	svc, err := h.svc.Lifecycle.Create(c.Request().Context(), currentPrincipal(c), ports.CreateServiceInput{
		VehicleID:   form.VehicleID,
		Description: form.Description,
		Notes:       form.Notes,
		Status:      form.Status,
		MechanicID:  mechanic,
		ExpectedAt:  expected,
	})
	if err != nil {
		return h.fail(c, err, "/servicos/novo")
	}
	return h.success(c, "Serviço criado com sucesso!", fmt.Sprintf("/servicos/%d", svc.ID))
}

func (h *Handler) EditServicePage(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return h.fail(c, domain.ErrServiceNotFound, "/servicos")
	}
	ctx := c.Request().Context()
	p := currentPrincipal(c)

	detail, err := h.svc.Lifecycle.Get(ctx, p, id)
	if err != nil {
		return h.fail(c, err, "/servicos")
	}
	if err := domain.Authorize(p, domain.ResourceService, domain.ActionUpdate, detail.Service.Target()); err != nil {
		return h.fail(c, err, fmt.Sprintf("/servicos/%d", id))
	}

	data := serviceFormPage{StatusOnly: p.Role == domain.RoleMechanic}
	if !data.StatusOnly {
		if data, err = h.serviceFormData(ctx, p); err != nil {
			return h.fail(c, err, fmt.Sprintf("/servicos/%d", id))
		}
	}
	data.Service = detail.Service
	data.Action = fmt.Sprintf("/servicos/%d/editar", id)
	return h.render(c, "service_form", fmt.Sprintf("Editar serviço #%d", id), data)
}

// UpdateService sends only the status for mechanics; managers send every field.
func (h *Handler) UpdateService(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return h.fail(c, domain.ErrServiceNotFound, "/servicos")
	}
	back := fmt.Sprintf("/servicos/%d/editar", id)

	var form serviceForm
	if err := c.Bind(&form); err != nil {
		return h.fail(c, err, back)
	}

	p := currentPrincipal(c)
	in := ports.UpdateServiceInput{Status: &form.Status}
	if p.Role == domain.RoleManager {
		mechanic, err := form.mechanic()
		if err != nil {
			return h.fail(c, err, back)
		}
		expected, err := form.expected()
		if err != nil {
			return h.fail(c, err, back)
		}
		in.Description = &form.Description
		in.Notes = &form.Notes
		in.MechanicID = mechanic
		in.ClearMechanic = mechanic == nil
		in.ExpectedAt = expected
	}

	if _, err := h.svc.Lifecycle.Update(c.Request().Context(), p, id, in); err != nil {
		return h.fail(c, err, back)
	}
	return h.success(c, "Serviço atualizado com sucesso!", fmt.Sprintf("/servicos/%d", id))
}

// CreateQuote adds a quote; a mechanic quoting an unassigned service claims it.
func (h *Handler) CreateQuote(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return h.fail(c, domain.ErrServiceNotFound, "/servicos")
	}
	back := fmt.Sprintf("/servicos/%d", id)

	var form quoteForm
	if err := bindForm(c, &form); err != nil {
		return h.fail(c, err, back)
	}
	amount, err := form.amount()
	if err != nil {
		return h.fail(c, err, back)
	}

	if _, err := h.svc.Quotes.Create(c.Request().Context(), currentPrincipal(c), ports.CreateQuoteInput{
		ServiceID:   id,
		Description: form.Description,
		Amount:      amount,
	}); err != nil {
		return h.fail(c, err, back)
	}
	return h.success(c, "Orçamento criado com sucesso!", back)
}

func (h *Handler) ApproveQuote(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return h.fail(c, domain.ErrQuoteNotFound, "/servicos")
	}

	svc, err := h.svc.Quotes.Approve(c.Request().Context(), currentPrincipal(c), id)
	if err != nil {
		return h.fail(c, err, "/servicos")
	}
	return h.success(c, "Orçamento aprovado! O serviço será iniciado em breve.", fmt.Sprintf("/servicos/%d", svc.ID))
}
