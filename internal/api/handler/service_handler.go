package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/oficina/workshop/internal/core/ports"
)

// ServiceHandler handles service requests, their quotes and their history.
type ServiceHandler struct {
	lifecycle ports.LifecycleService
	quotes    ports.QuoteService
	history   ports.HistoryService
}

func NewServiceHandler(lifecycle ports.LifecycleService, quotes ports.QuoteService, history ports.HistoryService) *ServiceHandler {
	return &ServiceHandler{lifecycle: lifecycle, quotes: quotes, history: history}
}

// List handles GET /api/servicos.
//
// @Summary      List visible services, newest first
// @Tags         servicos
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "Status filter"
// @Success      200     {object}  serviceListResponse
// @Failure      400     {object}  messageResponse
// @Failure      401     {object}  messageResponse
// @Router       /servicos [get]
func (h *ServiceHandler) List(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	services, err := h.lifecycle.List(c.Request().Context(), p, ports.ListServicesInput{Status: c.QueryParam("status")})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, serviceListResponse{Services: toServiceResponses(services), Total: len(services)})
}

// Get handles GET /api/servicos/:id.
//
// @Summary      Get a service with its quotes
// @Tags         servicos
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Service ID"
// @Success      200  {object}  serviceDetailResponse
// @Failure      403  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /servicos/{id} [get]
func (h *ServiceHandler) Get(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	detail, err := h.lifecycle.Get(c.Request().Context(), p, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toServiceDetailResponse(detail))
}

// Create handles POST /api/servicos.
//
// @Summary      Open a service request
// @Description  status, mecanico_id and data_previsao are staff-only.
// @Tags         servicos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createServiceRequest  true  "Service details"
// @Success      201   {object}  serviceMutationResponse
// @Failure      400   {object}  messageResponse
// @Failure      403   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /servicos [post]
func (h *ServiceHandler) Create(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	var req createServiceRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	svc, err := h.lifecycle.Create(c.Request().Context(), p, toCreateServiceInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, serviceMutationResponse{Message: "service created", Service: toServiceResponse(svc)})
}

// Update handles PUT /api/servicos/:id.
//
// @Summary      Update a service
// @Description  Managers may change every field; assigned mechanics only the status.
// @Tags         servicos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                   true  "Service ID"
// @Param        body  body      updateServiceRequest  true  "Fields to change"
// @Success      200   {object}  serviceMutationResponse
// @Failure      400   {object}  messageResponse
// @Failure      403   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Failure      409   {object}  messageResponse
// @Router       /servicos/{id} [put]
func (h *ServiceHandler) Update(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req updateServiceRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	svc, err := h.lifecycle.Update(c.Request().Context(), p, id, toUpdateServiceInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, serviceMutationResponse{Message: "service updated", Service: toServiceResponse(svc)})
}

// CreateQuote handles POST /api/servicos/:id/orcamento.
//
// @Summary      Add a quote to a service
// @Description  A mechanic quoting an unassigned service claims it.
// @Tags         orcamentos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                 true  "Service ID"
// @Param        body  body      createQuoteRequest  true  "Quote"
// @Success      201   {object}  quoteMutationResponse
// @Failure      400   {object}  messageResponse
// @Failure      403   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /servicos/{id}/orcamento [post]
func (h *ServiceHandler) CreateQuote(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req createQuoteRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	quote, err := h.quotes.Create(c.Request().Context(), p, ports.CreateQuoteInput{
		ServiceID:   id,
		Description: req.Description,
		Amount:      req.Amount,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, quoteMutationResponse{Message: "quote created", Quote: toQuoteResponse(quote)})
}

// ListQuotes handles GET /api/servicos/:id/orcamentos.
//
// @Summary      List a service's quotes, newest first
// @Tags         orcamentos
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Service ID"
// @Success      200  {object}  quoteListResponse
// @Failure      403  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /servicos/{id}/orcamentos [get]
func (h *ServiceHandler) ListQuotes(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	quotes, err := h.quotes.List(c.Request().Context(), p, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, quoteListResponse{Quotes: toQuoteResponses(quotes), Total: len(quotes)})
}

// ApproveQuote handles POST /api/orcamentos/:id/aprovar.
//
// @Summary      Approve a quote (vehicle owner only)
// @Description  Binds the quote amount to the service; the last approval wins.
// @Tags         orcamentos
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Quote ID"
// @Success      200  {object}  serviceMutationResponse
// @Failure      403  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Failure      409  {object}  messageResponse
// @Router       /orcamentos/{id}/aprovar [post]
func (h *ServiceHandler) ApproveQuote(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	svc, err := h.quotes.Approve(c.Request().Context(), p, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, serviceMutationResponse{Message: "quote approved", Service: toServiceResponse(svc)})
}

// History handles GET /api/servicos/:id/historico.
//
// @Summary      Audit trail of a service, oldest first
// @Tags         servicos
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Service ID"
// @Success      200  {object}  historyResponse
// @Failure      403  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /servicos/{id}/historico [get]
func (h *ServiceHandler) History(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	events, err := h.history.History(c.Request().Context(), p, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, historyResponse{ServiceID: id, Events: toEventResponses(events), Total: len(events)})
}
