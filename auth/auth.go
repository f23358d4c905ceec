// Package auth resolves bearer tokens into admin identities.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/6ixminds/labs_backend/models"
	"github.com/golang-jwt/jwt/v4"
)

var ErrInvalidToken = errors.New("invalid token")

// Identity is the authenticated caller stored in the request locals.
type Identity struct {
	Subject string `json:"id"`
	Email   string `json:"email"`
	Role    string `json:"role"`
}

func (i Identity) HasRole(roles ...string) bool {
	for _, r := range roles {
		if i.Role == r {
			return true
		}
	}
	return false
}

// Claims is the payload of the access tokens issued on login.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

func (c *Claims) Identity() Identity {
	return Identity{Subject: c.Subject, Email: c.Email, Role: c.Role}
}

// TokenIssuer signs and parses HS256 access tokens.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (t *TokenIssuer) Secret() []byte {
	return t.secret
}

// Issue returns a signed token for admin and its expiry.
func (t *TokenIssuer) Issue(admin models.Admin) (string, time.Time, error) {
	now := t.now()
	expiresAt := now.Add(t.ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		Email: admin.Email,
		Role:  admin.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   admin.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})

	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// Parse validates a raw token string. Used where the request does not go
// through the HTTP middleware (the admin websocket).
func (t *TokenIssuer) Parse(raw string) (Identity, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil || !token.Valid {
		return Identity{}, ErrInvalidToken
	}
	return claims.Identity(), nil
}

// DevProvider accepts opaque development tokens carrying a fixed prefix and
// resolves them to a super-admin. Never constructed in production.
type DevProvider struct {
	prefix string
}

func NewDevProvider(enabled bool, prefix string) *DevProvider {
	if !enabled || prefix == "" {
		return nil
	}
	return &DevProvider{prefix: prefix}
}

// Resolve reports whether token is a development token. A nil provider
// resolves nothing.
func (p *DevProvider) Resolve(token string) (Identity, bool) {
	if p == nil || !strings.HasPrefix(token, p.prefix) {
		return Identity{}, false
	}
	return Identity{
		Subject: token,
		Email:   "dev@localhost",
		Role:    models.RoleSuperAdmin,
	}, true
}
