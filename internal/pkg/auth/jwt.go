package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	domainErrors "github.com/feastline/orderd/internal/domain/errors"
)

// JWTGate verifies bearer credentials as HS256-signed JWTs whose subject
// claim carries the user identifier. It can also issue tokens, which keeps
// local development and tests independent of a live identity provider.
type JWTGate struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTGate builds a JWTGate with the provided signing secret.
func NewJWTGate(secret string, opts Options) *JWTGate {
	ttl := opts.TTL
	if ttl == 0 {
		ttl = 24 * time.Hour
	}
	return &JWTGate{secret: []byte(secret), ttl: ttl}
}

// Issue generates a signed bearer credential for the user.
func (g *JWTGate) Issue(userID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(g.ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(g.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify validates the credential signature and expiry, returning the subject.
func (g *JWTGate) Verify(_ context.Context, credential string) (string, error) {
	if credential == "" {
		return "", domainErrors.ErrAuthenticationFailed
	}

	token, err := jwt.ParseWithClaims(credential, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return g.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", domainErrors.ErrAuthenticationFailed, err)
	}
	if !token.Valid {
		return "", domainErrors.ErrAuthenticationFailed
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", domainErrors.ErrAuthenticationFailed
	}
	return claims.Subject, nil
}
