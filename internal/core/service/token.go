package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/oficina/workshop/internal/core/domain"
)

const defaultTokenTTL = time.Hour

// TokenManager issues and verifies HS256 bearer tokens carrying
// usuario_id and tipo claims.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a token for user, valid for the configured TTL.
func (m *TokenManager) Issue(user *domain.User) (string, error) {
	now := m.now()
	claims := jwt.MapClaims{
		"usuario_id": user.ID,
		"tipo":       string(user.Role),
		"iat":        now.Unix(),
		"exp":        now.Add(m.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.secret)
}

// Parse verifies signature and expiry and returns the principal.
func (m *TokenManager) Parse(token string) (domain.Principal, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return m.secret, nil
	}, jwt.WithExpirationRequired(), jwt.WithTimeFunc(m.now))
	if err != nil || !tkn.Valid {
		return domain.Principal{}, domain.ErrInvalidToken
	}

	// JSON numbers decode as float64.
	id, _ := claims["usuario_id"].(float64)
	role, _ := claims["tipo"].(string)
	p := domain.Principal{UserID: uint(id), Role: domain.Role(role)}
	if id <= 0 || !p.Valid() {
		return domain.Principal{}, domain.ErrInvalidToken
	}
	return p, nil
}
