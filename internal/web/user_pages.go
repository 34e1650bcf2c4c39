package web

import (
	"github.com/labstack/echo/v4"

	"github.com/oficina/workshop/internal/core/domain"
	"github.com/oficina/workshop/internal/core/ports"
)

type usersPage struct {
	Users []*domain.User
	Role  string
}

func (h *Handler) Users(c echo.Context) error {
	role := c.QueryParam("tipo")
	users, err := h.svc.Users.List(c.Request().Context(), currentPrincipal(c), role)
	if err != nil {
		return h.fail(c, err, "/dashboard")
	}
	return h.render(c, "users", "Usuários", usersPage{Users: users, Role: role})
}

func (h *Handler) NewUserPage(c echo.Context) error {
	return h.render(c, "user_form", "Novo usuário", nil)
}

// CreateUser lets a manager create accounts of any role.
func (h *Handler) CreateUser(c echo.Context) error {
	var form userForm
	if err := bindForm(c, &form); err != nil {
		return h.fail(c, err, "/usuarios/novo")
	}

	user, err := h.svc.Users.Create(c.Request().Context(), currentPrincipal(c), ports.CreateUserInput{
		Name:     form.Name,
		Email:    form.Email,
		Password: form.Password,
		Phone:    nonDigits.ReplaceAllString(form.Phone, ""),
		Role:     form.Role,
	})
	if err != nil {
		return h.fail(c, err, "/usuarios/novo")
	}
	return h.success(c, "Usuário "+user.Name+" criado com sucesso!", "/usuarios")
}
