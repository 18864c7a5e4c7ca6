package utils

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const AdminIDKey contextKey = "admin_id"

// SetAdminContext stores the authenticated admin's ID on the context.
func SetAdminContext(ctx context.Context, adminID uuid.UUID) context.Context {
	return context.WithValue(ctx, AdminIDKey, adminID.String())
}

// GetAdminIDFromContext reads the authenticated admin's ID from the context.
func GetAdminIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	adminIDVal := ctx.Value(AdminIDKey)
	if adminIDVal == nil {
		return uuid.Nil, false
	}

	adminIDStr, ok := adminIDVal.(string)
	if !ok {
		return uuid.Nil, false
	}

	adminID, err := uuid.Parse(adminIDStr)
	if err != nil {
		return uuid.Nil, false
	}

	return adminID, true
}
