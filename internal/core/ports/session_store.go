package ports

import (
	"context"
	"errors"

	"github.com/oficina/workshop/internal/core/domain"
)

// ErrSessionNotFound is returned for unknown or expired session tokens.
var ErrSessionNotFound = errors.New("session not found")

// Flash is a one-shot message shown on the next rendered page.
type Flash struct {
	Kind    string `json:"kind"` // success, info, warning, danger
	Message string `json:"message"`
}

// Session is the server-side state behind the HTML session cookie.
// A zero UserID is an anonymous session that only carries flashes.
type Session struct {
	UserID  uint        `json:"user_id"`
	Name    string      `json:"name"`
	Email   string      `json:"email"`
	Role    domain.Role `json:"role"`
	Flashes []Flash     `json:"flashes,omitempty"`
}

// Principal returns the identity carried by the session.
func (s *Session) Principal() domain.Principal {
	return domain.Principal{UserID: s.UserID, Role: s.Role}
}

// Authenticated reports whether the session belongs to a logged-in user.
func (s *Session) Authenticated() bool {
	return s != nil && s.UserID != 0
}

// SessionStore keeps sessions keyed by an opaque client-held token.
type SessionStore interface {
	Create(ctx context.Context, s *Session) (token string, err error)
	Get(ctx context.Context, token string) (*Session, error)
	Save(ctx context.Context, token string, s *Session) error
	Delete(ctx context.Context, token string) error
}
