package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/oficina/workshop/internal/core/domain"
	"github.com/oficina/workshop/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, in ports.RegisterInput) (*domain.User, string, error)
	loginFn    func(ctx context.Context, email, password string) (string, *domain.User, error)
	profileFn  func(ctx context.Context, p domain.Principal) (*ports.UserDetail, error)
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, string, error) {
	return s.registerFn(ctx, in)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	_, u, err := s.loginFn(ctx, email, password)
	return u, err
}

func (s *stubAuthService) ParseToken(string) (domain.Principal, error) {
	return domain.Principal{}, domain.ErrInvalidToken
}

func (s *stubAuthService) Profile(ctx context.Context, p domain.Principal) (*ports.UserDetail, error) {
	return s.profileFn(ctx, p)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func jsonRequest(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return resp
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, in ports.RegisterInput) (*domain.User, string, error) {
			if in.Name != "Alice" || in.Email != "alice@x.com" || in.Password != "pw123456" || in.Role != "cliente" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.User{
				ID:        1,
				Name:      in.Name,
				Email:     in.Email,
				Role:      domain.RoleClient,
				CreatedAt: time.Date(2024, 5, 1, 9, 0, 0, 0, time.FixedZone("BRT", -3*3600)),
			}, "token123", nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := jsonRequest(e, http.MethodPost, "/api/auth/registro",
		`{"nome":"Alice","email":"alice@x.com","senha":"pw123456","tipo":"cliente"}`)
	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	resp := decode(t, rec)
	if resp["token"] != "token123" {
		t.Fatalf("expected token, got %v", resp["token"])
	}
	user, ok := resp["usuario"].(map[string]any)
	if !ok {
		t.Fatalf("expected usuario in response")
	}
	if user["tipo"] != "cliente" || user["email"] != "alice@x.com" {
		t.Fatalf("unexpected user payload: %+v", user)
	}
	if user["data_cadastro"] != "2024-05-01T12:00:00Z" {
		t.Fatalf("expected UTC timestamp, got %v", user["data_cadastro"])
	}
	if _, leaked := user["senha_hash"]; leaked {
		t.Fatalf("password hash must never be serialized")
	}
}

func TestAuthHandler_Register_EmailTaken(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, in ports.RegisterInput) (*domain.User, string, error) {
			return nil, "", domain.ErrEmailTaken
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := jsonRequest(e, http.MethodPost, "/api/auth/registro",
		`{"nome":"Bob","email":"bob@x.com","senha":"pw123456","tipo":"cliente"}`)
	err := handler.Register(c)
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestAuthHandler_Register_ValidationFailure(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, in ports.RegisterInput) (*domain.User, string, error) {
			t.Fatalf("should not be called")
			return nil, "", nil
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := jsonRequest(e, http.MethodPost, "/api/auth/registro", `{"nome":"Bob","email":"bob@x.com","senha":"123"}`)
	err := handler.Register(c)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if !strings.Contains(err.Error(), "senha must be at least 6") || !strings.Contains(err.Error(), "tipo is required") {
		t.Fatalf("expected field messages under json names, got %q", err.Error())
	}
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	e := newTestEcho()
	handler := NewAuthHandler(&stubAuthService{})

	c, _ := jsonRequest(e, http.MethodPost, "/api/auth/registro", "not-json")
	err := handler.Register(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			if email != "alice@x.com" || password != "pw123456" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return "token123", &domain.User{ID: 1, Name: "Alice", Role: domain.RoleClient}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := jsonRequest(e, http.MethodPost, "/api/auth/login", `{"email":"alice@x.com","senha":"pw123456"}`)
	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	resp := decode(t, rec)
	if resp["token"] != "token123" {
		t.Fatalf("expected token, got %v", resp["token"])
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := jsonRequest(e, http.MethodPost, "/api/auth/login", `{"email":"alice@x.com","senha":"bad"}`)
	if err := handler.Login(c); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected unauthenticated, got %v", err)
	}
}

func TestAuthHandler_Profile_RequiresPrincipal(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		profileFn: func(ctx context.Context, p domain.Principal) (*ports.UserDetail, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := jsonRequest(e, http.MethodGet, "/api/auth/perfil", "")
	if err := handler.Profile(c); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected unauthenticated, got %v", err)
	}
}

func TestAuthHandler_Profile_IncludesVehicles(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		profileFn: func(ctx context.Context, p domain.Principal) (*ports.UserDetail, error) {
			return &ports.UserDetail{
				User:     &domain.User{ID: p.UserID, Name: "Alice", Role: p.Role},
				Vehicles: []*domain.Vehicle{{ID: 3, Plate: "ABC1234", OwnerID: p.UserID}},
			}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := jsonRequest(e, http.MethodGet, "/api/auth/perfil", "")
	c.Set(PrincipalKey, domain.Principal{UserID: 7, Role: domain.RoleClient})
	if err := handler.Profile(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	resp := decode(t, rec)
	vehicles, ok := resp["veiculos"].([]any)
	if !ok || len(vehicles) != 1 {
		t.Fatalf("expected one vehicle, got %v", resp["veiculos"])
	}
	if vehicles[0].(map[string]any)["placa"] != "ABC1234" {
		t.Fatalf("unexpected vehicle payload: %v", vehicles[0])
	}
}
