package rest

import (
	"context"

	"github.com/flickstack/rental-api/internal/domain"
)

type ctxKeyPrincipal struct{}

func withPrincipal(ctx context.Context, u *domain.User) context.Context {
	return context.WithValue(ctx, ctxKeyPrincipal{}, u)
}

// GetPrincipal returns the user the session middleware authenticated for
// this request.
func GetPrincipal(ctx context.Context) (*domain.User, bool) {
	u, ok := ctx.Value(ctxKeyPrincipal{}).(*domain.User)
	return u, ok
}
