package identity

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const testIssuer = "clubsvc-test"

var testSecret = []byte("test-shared-secret")

func mintToken(t *testing.T, mutate func(*Claims)) string {
	t.Helper()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testIssuer,
			Subject:   "uid-123",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Email: "coach@club.io",
	}
	if mutate != nil {
		mutate(&claims)
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	require.NoError(t, err)
	return signed
}

func TestVerifyAcceptsValidToken(t *testing.T) {
	t.Parallel()

	v := NewJWTVerifier(testSecret, testIssuer)
	id, err := v.Verify(context.Background(), mintToken(t, nil))
	require.NoError(t, err)
	require.Equal(t, Identity{UID: "uid-123", Email: "coach@club.io"}, id)
}

func TestVerifyFailsClosed(t *testing.T) {
	t.Parallel()

	v := NewJWTVerifier(testSecret, testIssuer)

	t.Run("empty credential", func(t *testing.T) {
		_, err := v.Verify(context.Background(), "   ")
		require.ErrorIs(t, err, ErrUnverified)
	})

	t.Run("garbage credential", func(t *testing.T) {
		_, err := v.Verify(context.Background(), "not-a-jwt")
		require.ErrorIs(t, err, ErrUnverified)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewJWTVerifier([]byte("different-secret"), testIssuer)
		_, err := other.Verify(context.Background(), mintToken(t, nil))
		require.ErrorIs(t, err, ErrUnverified)
	})

	t.Run("expired token", func(t *testing.T) {
		token := mintToken(t, func(c *Claims) {
			c.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
		})
		_, err := v.Verify(context.Background(), token)
		require.ErrorIs(t, err, ErrUnverified)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		token := mintToken(t, func(c *Claims) { c.Issuer = "someone-else" })
		_, err := v.Verify(context.Background(), token)
		require.ErrorIs(t, err, ErrUnverified)
	})

	t.Run("missing subject", func(t *testing.T) {
		token := mintToken(t, func(c *Claims) { c.Subject = "" })
		_, err := v.Verify(context.Background(), token)
		require.ErrorIs(t, err, ErrUnverified)
	})
}
