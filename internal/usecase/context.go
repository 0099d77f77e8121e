package usecase

import (
	"context"

	"go-jobmatch-backend/internal/domain"
	"go-jobmatch-backend/pkg/apperror"
)

// ctxString reads a context value set either through gin (string key) or
// through context.WithValue (CtxKey), so usecases work behind both the HTTP
// layer and plain contexts in tests.
func ctxString(ctx context.Context, key domain.CtxKey) string {
	if v, ok := ctx.Value(string(key)).(string); ok && v != "" {
		return v
	}
	if v, ok := ctx.Value(key).(string); ok {
		return v
	}
	return ""
}

// currentUserID returns the authenticated user id or an unauthorized error
func currentUserID(ctx context.Context) (string, error) {
	id := ctxString(ctx, domain.KeyUserID)
	if id == "" {
		return "", apperror.Unauthorized("User not authenticated")
	}
	return id, nil
}

func currentRole(ctx context.Context) string {
	return ctxString(ctx, domain.KeyUserRole)
}

// requireAdmin checks if the current user has admin role
func requireAdmin(ctx context.Context) error {
	if currentRole(ctx) != domain.RoleAdmin {
		return apperror.Forbidden("Admin access required")
	}
	return nil
}
