package backoffice_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/goliatone/go-backoffice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeToken(t *testing.T, email string, role backoffice.Role, expiresAt time.Time) string {
	t.Helper()

	claims := jwt.MapClaims{
		"sub":  email,
		"role": string(role),
		"iat":  time.Now().Add(-time.Minute).Unix(),
		"exp":  expiresAt.Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte("test-signing-key"))
	require.NoError(t, err)

	return signed
}

func TestClaimsFromToken(t *testing.T) {
	expiresAt := time.Now().Add(time.Hour).Truncate(time.Second)
	token := makeToken(t, "ana@example.com", backoffice.RoleAdmin, expiresAt)

	claims, err := backoffice.ClaimsFromToken(token)
	require.NoError(t, err)

	assert.Equal(t, "ana@example.com", claims.Identifier())
	assert.Equal(t, backoffice.RoleAdmin, claims.Role())
	require.NotNil(t, claims.Expires())
	assert.True(t, claims.Expires().Equal(expiresAt))
	assert.NotNil(t, claims.Issued())
}

func TestClaimsFromTokenMalformed(t *testing.T) {
	_, err := backoffice.ClaimsFromToken("not-a-token")
	assert.Error(t, err)
}

func TestClaimsExpired(t *testing.T) {
	now := time.Now()

	fresh := makeToken(t, "ana@example.com", backoffice.RoleStaff, now.Add(time.Hour))
	claims, err := backoffice.ClaimsFromToken(fresh)
	require.NoError(t, err)
	assert.False(t, claims.Expired(now))
	assert.True(t, claims.Expired(now.Add(2*time.Hour)))

	// Tokens without exp never expire client side
	bare := &backoffice.SessionClaims{}
	assert.False(t, bare.Expired(now))
	assert.Nil(t, bare.Expires())
	assert.Nil(t, bare.Issued())
}
