package web

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/oficina/workshop/internal/api/metrics"
	"github.com/oficina/workshop/internal/core/domain"
	"github.com/oficina/workshop/internal/core/ports"
)

func (h *Handler) Landing(c echo.Context) error {
	if current(c).Authenticated() {
		return c.Redirect(http.StatusSeeOther, "/dashboard")
	}
	return h.render(c, "index", "Oficina", nil)
}

func (h *Handler) LoginPage(c echo.Context) error {
	if current(c).Authenticated() {
		return c.Redirect(http.StatusSeeOther, "/dashboard")
	}
	return h.render(c, "login", "Entrar", nil)
}

func (h *Handler) Login(c echo.Context) error {
	var form loginForm
	if err := c.Bind(&form); err != nil {
		return h.fail(c, err, "/login")
	}

	user, err := h.svc.Auth.Authenticate(c.Request().Context(), form.Email, form.Password)
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("web", "failure").Inc()
		return h.fail(c, err, "/login")
	}
	metrics.AuthAttemptsTotal.WithLabelValues("web", "success").Inc()

	if err := h.sessions.login(c, user); err != nil {
		return h.fail(c, err, "/login")
	}
	return h.success(c, "Bem-vindo, "+user.Name+"!", "/dashboard")
}

func (h *Handler) RegisterPage(c echo.Context) error {
	if current(c).Authenticated() {
		return c.Redirect(http.StatusSeeOther, "/dashboard")
	}
	return h.render(c, "register", "Cadastro", nil)
}

// Register creates a client account. Other roles are created by managers.
func (h *Handler) Register(c echo.Context) error {
	var form registerForm
	if err := c.Bind(&form); err != nil {
		return h.fail(c, err, "/register")
	}
	phone, err := form.validate()
	if err != nil {
		return h.fail(c, err, "/register")
	}

	_, _, err = h.svc.Auth.Register(c.Request().Context(), ports.RegisterInput{
		Name:     form.Name,
		Email:    form.Email,
		Password: form.Password,
		Phone:    phone,
		Role:     string(domain.RoleClient),
	})
	if err != nil {
		return h.fail(c, err, "/register")
	}
	return h.success(c, "Cadastro realizado com sucesso! Faça login.", "/login")
}

func (h *Handler) Logout(c echo.Context) error {
	h.sessions.logout(c)
	h.sessions.flash(c, "info", "Você saiu do sistema.")
	return c.Redirect(http.StatusSeeOther, "/login")
}

func (h *Handler) Dashboard(c echo.Context) error {
	d, err := h.svc.Dashboard.Dashboard(c.Request().Context(), currentPrincipal(c))
	if err != nil {
		h.sessions.flash(c, "danger", h.message(c, err))
		return h.render(c, "dashboard", "Painel", nil)
	}
	return h.render(c, "dashboard", "Painel", d)
}
