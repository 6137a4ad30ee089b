package httpx

import (
	"context"

	"github.com/footballeyeq/clubsvc/pkg/identity"
)

type ctxKey string

const ctxKeyIdentity ctxKey = "identity"

// ContextWithIdentity attaches a verified caller identity to the context.
func ContextWithIdentity(ctx context.Context, id identity.Identity) context.Context {
	return context.WithValue(ctx, ctxKeyIdentity, id)
}

// IdentityFromContext returns the verified caller identity, if present.
func IdentityFromContext(ctx context.Context) (identity.Identity, bool) {
	id, ok := ctx.Value(ctxKeyIdentity).(identity.Identity)
	return id, ok
}
