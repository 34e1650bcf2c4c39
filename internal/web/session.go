package web

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/oficina/workshop/internal/core/domain"
	"github.com/oficina/workshop/internal/core/ports"
)

const sessionKey = "web_session"

// SessionConfig controls the session cookie.
type SessionConfig struct {
	Cookie string
	TTL    time.Duration
	Secure bool
}

// sessionState is the per-request view of the session. The session is only
// persisted, and the cookie only issued, once something is written to it.
type sessionState struct {
	token string
	sess  *ports.Session
}

type sessions struct {
	store ports.SessionStore
	cfg   SessionConfig
	log   zerolog.Logger
}

// middleware loads the session named by the cookie. Unknown or expired
// tokens fall back to a fresh anonymous session.
func (s *sessions) middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		st := &sessionState{sess: &ports.Session{}}
		if ck, err := c.Cookie(s.cfg.Cookie); err == nil && ck.Value != "" {
			sess, err := s.store.Get(c.Request().Context(), ck.Value)
			switch {
			case err == nil:
				st.token, st.sess = ck.Value, sess
			case errors.Is(err, ports.ErrSessionNotFound):
				s.clearCookie(c)
			default:
				s.log.Error().Err(err).Msg("session load failed")
			}
		}
		c.Set(sessionKey, st)
		return next(c)
	}
}

func state(c echo.Context) *sessionState {
	if st, ok := c.Get(sessionKey).(*sessionState); ok {
		return st
	}
	return &sessionState{sess: &ports.Session{}}
}

// current returns the session of the request, never nil.
func current(c echo.Context) *ports.Session {
	return state(c).sess
}

// currentPrincipal returns the logged-in identity.
func currentPrincipal(c echo.Context) domain.Principal {
	return current(c).Principal()
}

// save persists the session, creating it and setting the cookie on first write.
func (s *sessions) save(c echo.Context) error {
	st := state(c)
	ctx := c.Request().Context()
	if st.token == "" {
		token, err := s.store.Create(ctx, st.sess)
		if err != nil {
			return err
		}
		st.token = token
		s.setCookie(c, token)
		c.Set(sessionKey, st)
		return nil
	}
	return s.store.Save(ctx, st.token, st.sess)
}

// flash queues a message for the next rendered page.
func (s *sessions) flash(c echo.Context, kind, msg string) {
	st := state(c)
	st.sess.Flashes = append(st.sess.Flashes, ports.Flash{Kind: kind, Message: msg})
	if err := s.save(c); err != nil {
		s.log.Error().Err(err).Msg("session save failed")
	}
}

// popFlashes removes and returns the queued messages.
func (s *sessions) popFlashes(c echo.Context) []ports.Flash {
	st := state(c)
	if len(st.sess.Flashes) == 0 {
		return nil
	}
	out := st.sess.Flashes
	st.sess.Flashes = nil
	if st.token != "" {
		if err := s.store.Save(c.Request().Context(), st.token, st.sess); err != nil {
			s.log.Error().Err(err).Msg("session save failed")
		}
	}
	return out
}

// login replaces the session with a fresh authenticated one, so a token
// issued before login is never reused.
func (s *sessions) login(c echo.Context, u *domain.User) error {
	st := state(c)
	if st.token != "" {
		s.destroy(c.Request().Context(), st.token)
	}
	st.token = ""
	st.sess = &ports.Session{UserID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role, Flashes: st.sess.Flashes}
	return s.save(c)
}

// logout drops the session and its cookie.
func (s *sessions) logout(c echo.Context) {
	st := state(c)
	if st.token != "" {
		s.destroy(c.Request().Context(), st.token)
	}
	st.token = ""
	st.sess = &ports.Session{}
	s.clearCookie(c)
}

func (s *sessions) destroy(ctx context.Context, token string) {
	if err := s.store.Delete(ctx, token); err != nil {
		s.log.Warn().Err(err).Msg("session delete failed")
	}
}

func (s *sessions) setCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     s.cfg.Cookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.cfg.TTL.Seconds()),
		HttpOnly: true,
		Secure:   s.cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *sessions) clearCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     s.cfg.Cookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// requireLogin redirects anonymous visitors to the login page.
func (s *sessions) requireLogin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !current(c).Authenticated() {
			s.flash(c, "warning", "Faça login para acessar esta página.")
			return c.Redirect(http.StatusSeeOther, "/login")
		}
		return next(c)
	}
}

// requireRole redirects callers whose role is not in roles to the dashboard.
func (s *sessions) requireRole(roles ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role := current(c).Role
			for _, r := range roles {
				if r == role {
					return next(c)
				}
			}
			s.flash(c, "danger", "Acesso negado.")
			return c.Redirect(http.StatusSeeOther, "/dashboard")
		}
	}
}
