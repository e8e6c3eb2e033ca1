package service

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"cabadmin/internal/domain"
)

// SessionClaims are carried by the token handed to dashboard clients.
type SessionClaims struct {
	SessionID string      `json:"sid"`
	Role      domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// SessionTokens signs and verifies session tokens.
type SessionTokens struct {
	secret []byte
	ttl    time.Duration
}

// NewSessionTokens creates a new SessionTokens. A zero ttl issues tokens without expiry.
func NewSessionTokens(secret string, ttl time.Duration) *SessionTokens {
	return &SessionTokens{secret: []byte(secret), ttl: ttl}
}

// Issue returns a signed token for session.
func (t *SessionTokens) Issue(session *domain.Session) (string, error) {
	claims := SessionClaims{
		SessionID: session.ID,
		Role:      session.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  session.UserID,
			IssuedAt: jwt.NewNumericDate(session.CreatedAt),
		},
	}
	if t.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(session.CreatedAt.Add(t.ttl))
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Parse verifies a token and returns its claims.
func (t *SessionTokens) Parse(tokenStr string) (*SessionClaims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &SessionClaims{}, func(*jwt.Token) (any, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, errors.Join(ErrUnauthenticated, err)
	}
	claims, ok := parsed.Claims.(*SessionClaims)
	if !ok || !parsed.Valid || claims.SessionID == "" {
		return nil, ErrUnauthenticated
	}
	return claims, nil
}
