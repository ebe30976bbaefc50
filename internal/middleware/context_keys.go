package middleware

import (
	"context"

	"github.com/dutytracker/timesheet_backend/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// userIDKey stores the authenticated user's ID in the request context.
const userIDKey = contextKey("userID")

// roleProfileKey stores the resolved role-profile in the request context.
const roleProfileKey = contextKey("roleProfile")

// GetUserIDFromContext retrieves the authenticated user ID from the request
// context. It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	return userID, ok
}

// GetRoleProfileFromContext retrieves the role-profile resolved by
// RequireRole from the request context.
func GetRoleProfileFromContext(c *gin.Context) (*domain.RoleProfile, bool) {
	profile, ok := c.Request.Context().Value(roleProfileKey).(*domain.RoleProfile)
	return profile, ok
}

func withRoleProfile(ctx context.Context, profile *domain.RoleProfile) context.Context {
	return context.WithValue(ctx, roleProfileKey, profile)
}
