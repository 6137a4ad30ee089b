// Package identity resolves bearer credentials to a verified caller
// identity. The core consumes the Verifier interface only; token issuance
// belongs to the external auth provider.
package identity

import (
	"context"
	"errors"
)

// Identity is a verified caller: a stable uid plus the email the auth
// provider has confirmed for it.
type Identity struct {
	UID   string
	Email string
}

// ErrUnverified is returned for any credential that cannot be verified.
// Callers must not distinguish failure modes beyond this.
var ErrUnverified = errors.New("identity: credential could not be verified")

// Verifier turns a raw bearer credential into a verified Identity.
type Verifier interface {
	Verify(ctx context.Context, credential string) (Identity, error)
}
