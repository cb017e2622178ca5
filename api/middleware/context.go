package middleware

import (
	"context"

	"github.com/google/uuid"

	"github.com/haneulsoft/weddingmoa-backend/pkg/enums"
)

type ctxKeyUserID struct{}
type ctxKeyRole struct{}
type ctxKeyAccessID struct{}

// WithUserID stores the authenticated user ID on the context.
func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, ctxKeyUserID{}, userID)
}

// UserIDFromContext returns the authenticated user ID, if any.
func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(ctxKeyUserID{}).(uuid.UUID)
	return id, ok
}

// WithRole stores the authenticated user role on the context.
func WithRole(ctx context.Context, role enums.UserRole) context.Context {
	return context.WithValue(ctx, ctxKeyRole{}, role)
}

// RoleFromContext returns the authenticated user role, if any.
func RoleFromContext(ctx context.Context) (enums.UserRole, bool) {
	role, ok := ctx.Value(ctxKeyRole{}).(enums.UserRole)
	return role, ok
}

// WithAccessID stores the token's session identifier on the context.
func WithAccessID(ctx context.Context, accessID string) context.Context {
	return context.WithValue(ctx, ctxKeyAccessID{}, accessID)
}

// AccessIDFromContext returns the token's session identifier, if any.
func AccessIDFromContext(ctx context.Context) (string, bool) {
	accessID, ok := ctx.Value(ctxKeyAccessID{}).(string)
	return accessID, ok
}
