package auth

import (
	"context"

	"github.com/dmitrijs2005/bloglist/internal/server/models"
)

type ctxKey struct{}

// WithUser stores the authenticated user for the rest of the request.
func WithUser(ctx context.Context, u *models.User) context.Context {
	return context.WithValue(ctx, ctxKey{}, u)
}

// UserFromContext returns the user stored by WithUser.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	u, ok := ctx.Value(ctxKey{}).(*models.User)
	return u, ok && u != nil
}
