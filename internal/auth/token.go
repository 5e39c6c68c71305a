package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/cinevo/cinevo-cli/pkg/model"
)

// TokenClaims contains the fields the client reads from a Cinevo JWT.
type TokenClaims struct {
	Email  string
	Role   model.UserRole
	Expiry time.Time
}

// Parse extracts claims from a bearer token without verifying the signature.
// Verification is the server's job; the client only needs role and expiry to
// decide what to show. Returns a zero-value TokenClaims for malformed tokens.
func Parse(raw string) TokenClaims {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return TokenClaims{}
	}

	info := TokenClaims{}
	if v, ok := claims["email"].(string); ok {
		info.Email = v
	}
	if v, ok := claims["role"].(string); ok {
		info.Role = model.UserRole(v)
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		info.Expiry = exp.Time
	}
	return info
}

// IsExpired reports whether the token's expiry time has passed.
// A zero expiry (no exp claim) is treated as not expired.
func (t TokenClaims) IsExpired() bool {
	if t.Expiry.IsZero() {
		return false
	}
	return time.Now().After(t.Expiry)
}
