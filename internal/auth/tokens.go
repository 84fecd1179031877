package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/plakhov/taskboard/internal/config"
	"github.com/plakhov/taskboard/internal/entities"
)

// DefaultTokenLifetime is used when no lifetime is configured.
const DefaultTokenLifetime = 7 * 24 * time.Hour

var ErrInvalidToken = errors.New("invalid token")

// SessionClaims is the identity claim set embedded in a session token.
type SessionClaims struct {
	UserID   uint              `json:"user_id"`
	Username string            `json:"username"`
	Role     entities.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer mints and verifies signed session tokens. The signing secret
// is read once at startup and never mutated afterwards.
type TokenIssuer struct {
	secret   []byte
	lifetime time.Duration
}

// NewTokenIssuer creates a token issuer from the auth configuration.
func NewTokenIssuer(cfg config.Auth) *TokenIssuer {
	lifetime := cfg.TokenLifetime
	if lifetime == 0 {
		lifetime = DefaultTokenLifetime
	}
	return &TokenIssuer{
		secret:   []byte(cfg.JWTSecret),
		lifetime: lifetime,
	}
}

// Issue produces a signed token carrying the user's identity claims,
// expiring a fixed lifetime from now.
func (i *TokenIssuer) Issue(user *entities.User) (string, error) {
	now := time.Now()
	claims := &SessionClaims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(i.lifetime)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Subject:   fmt.Sprintf("%d", user.ID),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiry and returns the embedded claims.
// Any failure means the caller must treat the request as unauthenticated.
func (i *TokenIssuer) Verify(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.UserID == 0 {
		return nil, fmt.Errorf("%w: missing user_id claim", ErrInvalidToken)
	}
	return claims, nil
}
