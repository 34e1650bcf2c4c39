// Package web serves the server-rendered HTML frontend. Pages authenticate
// with a redis-backed session and call the same core services as the JSON API.
package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/oficina/workshop/internal/core/domain"
	"github.com/oficina/workshop/internal/core/ports"
)

// Services bundles the core use cases the pages call.
type Services struct {
	Auth      ports.AuthService
	Users     ports.UserService
	Vehicles  ports.VehicleService
	Lifecycle ports.LifecycleService
	Quotes    ports.QuoteService
	Dashboard ports.DashboardService
	History   ports.HistoryService
}

// Handler holds the page handlers.
type Handler struct {
	svc      Services
	sessions *sessions
	log      zerolog.Logger
}

func NewHandler(svc Services, store ports.SessionStore, cfg SessionConfig, log zerolog.Logger) *Handler {
	return &Handler{
		svc:      svc,
		sessions: &sessions{store: store, cfg: cfg, log: log},
		log:      log,
	}
}

// Mount registers every page on e. The echo instance must carry a Renderer
// and a Validator.
func (h *Handler) Mount(e *echo.Echo) {
	s := h.sessions
	public := []echo.MiddlewareFunc{s.middleware}
	auth := []echo.MiddlewareFunc{s.middleware, s.requireLogin}
	with := func(extra echo.MiddlewareFunc) []echo.MiddlewareFunc {
		return append(append([]echo.MiddlewareFunc{}, auth...), extra)
	}
	staff := with(s.requireRole(domain.RoleManager, domain.RoleMechanic))
	manager := with(s.requireRole(domain.RoleManager))
	owners := with(s.requireRole(domain.RoleManager, domain.RoleClient))

	e.GET("/", h.Landing, public...)
	e.GET("/login", h.LoginPage, public...)
	e.POST("/login", h.Login, public...)
	e.GET("/register", h.RegisterPage, public...)
	e.POST("/register", h.Register, public...)
	e.GET("/logout", h.Logout, public...)

	e.GET("/dashboard", h.Dashboard, auth...)

	e.GET("/veiculos", h.Vehicles, auth...)
	e.GET("/veiculos/novo", h.NewVehiclePage, owners...)
	e.POST("/veiculos/novo", h.CreateVehicle, owners...)
	e.GET("/veiculos/:id", h.VehicleDetail, auth...)
	e.GET("/veiculos/:id/editar", h.EditVehiclePage, owners...)
	e.POST("/veiculos/:id/editar", h.UpdateVehicle, owners...)
	e.POST("/veiculos/:id/deletar", h.DeleteVehicle, owners...)

	e.GET("/servicos", h.Services, auth...)
	e.GET("/servicos/solicitar", h.RequestServicePage, auth...)
	e.POST("/servicos/solicitar", h.RequestService, auth...)
	e.GET("/servicos/novo", h.NewServicePage, staff...)
	e.POST("/servicos/novo", h.CreateService, staff...)
	e.GET("/servicos/:id", h.ServiceDetail, auth...)
	e.GET("/servicos/:id/editar", h.EditServicePage, staff...)
	e.POST("/servicos/:id/editar", h.UpdateService, staff...)
	e.POST("/servicos/:id/orcamentos", h.CreateQuote, staff...)
	e.POST("/orcamentos/:id/aprovar", h.ApproveQuote, auth...)

	e.GET("/usuarios", h.Users, manager...)
	e.GET("/usuarios/novo", h.NewUserPage, manager...)
	e.POST("/usuarios/novo", h.CreateUser, manager...)
}

// page is the data every template receives.
type page struct {
	Title   string
	Session *ports.Session
	Flashes []ports.Flash
	Data    any
}

func (h *Handler) render(c echo.Context, name, title string, data any) error {
	return c.Render(http.StatusOK, name, page{
		Title:   title,
		Session: current(c),
		Flashes: h.sessions.popFlashes(c),
		Data:    data,
	})
}

func (h *Handler) success(c echo.Context, msg, to string) error {
	h.sessions.flash(c, "success", msg)
	return c.Redirect(http.StatusSeeOther, to)
}

// fail turns err into a flash message and redirects to.
func (h *Handler) fail(c echo.Context, err error, to string) error {
	h.sessions.flash(c, "danger", h.message(c, err))
	return c.Redirect(http.StatusSeeOther, to)
}

// messages translates the known domain errors for the pages.
var messages = map[*domain.Error]string{
	domain.ErrInvalidStatus:      "Status inválido.",
	domain.ErrInvalidAmount:      "O valor deve ser maior que zero.",
	domain.ErrInvalidRole:        "Tipo de usuário inválido.",
	domain.ErrInvalidMechanic:    "O responsável deve ser um mecânico.",
	domain.ErrInvalidCredentials: "Email ou senha incorretos.",
	domain.ErrForbidden:          "Acesso negado.",
	domain.ErrUserNotFound:       "Usuário não encontrado.",
	domain.ErrVehicleNotFound:    "Veículo não encontrado.",
	domain.ErrServiceNotFound:    "Serviço não encontrado.",
	domain.ErrQuoteNotFound:      "Orçamento não encontrado.",
	domain.ErrEmailTaken:         "Email já cadastrado.",
	domain.ErrPlateTaken:         "Placa já cadastrada.",
	domain.ErrVehicleHasServices: "Não é possível excluir um veículo com serviços registrados.",
	domain.ErrInvalidTransition:  "Transição de status não permitida.",
}

func (h *Handler) message(c echo.Context, err error) string {
	var de *domain.Error
	if errors.As(err, &de) {
		if msg, ok := messages[de]; ok {
			return msg
		}
		return de.Error()
	}
	var he *echo.HTTPError
	if errors.As(err, &he) && he.Code < http.StatusInternalServerError {
		return "Dados inválidos."
	}

	h.log.Error().Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("page request failed")
	return "Erro interno. Tente novamente."
}

func pathID(c echo.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// bindForm decodes and validates a posted form.
func bindForm(c echo.Context, form any) error {
	if err := c.Bind(form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form").SetInternal(err)
	}
	return c.Validate(form)
}
