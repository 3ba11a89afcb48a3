package token

import (
	"errors"
	"fmt"
	"time"

	"delivery/internal/entities"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrMissingClaim = errors.New("token missing required claim")
)

// Manager signs and verifies HMAC credentials against the shared secret. The
// auth service issuing tokens and this service verifying them share JWT_SECRET.
type Manager struct {
	secret []byte
}

func New(secret string) *Manager {
	return &Manager{secret: []byte(secret)}
}

// Verify checks signature and expiry, then extracts the party identity from
// the claims. The subject may arrive as either `sub` or `id` depending on the
// issuing service's version.
func (m *Manager) Verify(tokenStr string) (*entities.Identity, error) {
	parsed, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	userID, _ := claims["sub"].(string)
	if userID == "" {
		userID, _ = claims["id"].(string)
	}
	if userID == "" {
		return nil, fmt.Errorf("%w: subject", ErrMissingClaim)
	}

	roleStr, _ := claims["role"].(string)
	role := entities.RoleType(roleStr)
	if !role.Valid() {
		return nil, fmt.Errorf("%w: role", ErrMissingClaim)
	}

	email, _ := claims["email"].(string)

	return &entities.Identity{
		UserID: userID,
		Role:   role,
		Email:  email,
	}, nil
}

// Sign issues a credential for the given identity. The service itself only
// verifies; signing is here for local development and tests.
func (m *Manager) Sign(identity entities.Identity, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  identity.UserID,
		"role": identity.Role.String(),
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	}
	if identity.Email != "" {
		claims["email"] = identity.Email
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
