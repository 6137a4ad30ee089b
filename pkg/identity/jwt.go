package identity

import (
	"context"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the token claims the service relies on: the registered set for
// subject/expiry plus the verified email the provider embeds.
type Claims struct {
	jwt.RegisteredClaims

	Email string `json:"email,omitempty"`
}

// JWTVerifier verifies HS256 tokens minted by the external auth provider
// using a shared secret. Any parse, signature, issuer, or expiry failure is
// collapsed into ErrUnverified so no internal detail leaks to callers.
type JWTVerifier struct {
	secret []byte
	issuer string
}

// NewJWTVerifier returns a verifier for tokens signed with secret. When
// issuer is non-empty the token's iss claim must match it.
func NewJWTVerifier(secret []byte, issuer string) *JWTVerifier {
	return &JWTVerifier{secret: secret, issuer: issuer}
}

func (v *JWTVerifier) Verify(ctx context.Context, credential string) (Identity, error) {
	credential = strings.TrimSpace(credential)
	if credential == "" {
		return Identity{}, ErrUnverified
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	var claims Claims
	token, err := jwt.ParseWithClaims(credential, &claims, func(t *jwt.Token) (any, error) {
		return v.secret, nil
	}, opts...)
	if err != nil || !token.Valid {
		return Identity{}, ErrUnverified
	}

	if claims.Subject == "" {
		return Identity{}, ErrUnverified
	}

	return Identity{UID: claims.Subject, Email: claims.Email}, nil
}
