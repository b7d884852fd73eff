package middleware

import (
	"context"

	"github.com/studysphere/server/internal/infrastructure/security"
)

type ctxKey string

const ctxClaims ctxKey = "claims"

func WithClaims(ctx context.Context, claims security.Claims) context.Context {
	return context.WithValue(ctx, ctxClaims, claims)
}

func ClaimsFromContext(ctx context.Context) (security.Claims, bool) {
	v, ok := ctx.Value(ctxClaims).(security.Claims)
	return v, ok && v != nil
}

// EmailFromContext returns the authenticated caller's email claim.
func EmailFromContext(ctx context.Context) (string, bool) {
	claims, ok := ClaimsFromContext(ctx)
	if !ok {
		return "", false
	}
	email := claims.Email()
	return email, email != ""
}
