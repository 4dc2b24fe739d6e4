package backoffice

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/goliatone/go-errors"
)

// SessionClaims are the token claims this client cares about. Signature
// verification is the backend's job; the client only decodes the payload to
// recover identity and expiry when restoring a persisted session.
type SessionClaims struct {
	jwt.RegisteredClaims
	UserRole string `json:"role,omitempty"`
}

// Identifier returns the subject claim, the account email
func (c *SessionClaims) Identifier() string {
	return c.RegisteredClaims.Subject
}

// Role returns the global role claim if the token carries one
func (c *SessionClaims) Role() Role {
	return Role(c.UserRole)
}

// Issued returns the iat claim, nil when absent
func (c *SessionClaims) Issued() *time.Time {
	if c.RegisteredClaims.IssuedAt == nil {
		return nil
	}
	issued := c.RegisteredClaims.IssuedAt.Time
	return &issued
}

// Expires returns the exp claim, nil when absent
func (c *SessionClaims) Expires() *time.Time {
	if c.RegisteredClaims.ExpiresAt == nil {
		return nil
	}
	expires := c.RegisteredClaims.ExpiresAt.Time
	return &expires
}

// Expired reports whether the token is past its expiry at the given time.
// Tokens without an exp claim never expire client side.
func (c *SessionClaims) Expired(now time.Time) bool {
	expires := c.Expires()
	if expires == nil {
		return false
	}
	return now.After(*expires)
}

// ClaimsFromToken decodes the claims of an opaque session token without
// verifying its signature.
func ClaimsFromToken(token string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, errors.Wrap(err, errors.CategoryAuth, "unable to decode session token").
			WithCode(errors.CodeUnauthorized)
	}
	return claims, nil
}
