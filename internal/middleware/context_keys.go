package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/wisnuad/internship_mgmt_app/internal/core/domain"
)

// userIDKey and userRoleKey store the authenticated user's identity in the
// request context. Using a custom type prevents collisions.
const (
	userIDKey   = contextKey("userID")
	userRoleKey = contextKey("userRole")
)

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userIDVal := c.Request.Context().Value(userIDKey)
	if userIDVal == nil {
		return "", false
	}
	userID, ok := userIDVal.(string)
	return userID, ok
}

// GetActorFromContext builds the domain actor for the authenticated caller.
// The reviewer capability is derived from the role claim set by the auth
// middleware.
func GetActorFromContext(c *gin.Context) (domain.Actor, bool) {
	userID, ok := GetUserIDFromContext(c)
	if !ok {
		return domain.Actor{}, false
	}
	role, _ := c.Request.Context().Value(userRoleKey).(string)
	isReviewer := role == string(domain.RoleReviewer) || role == string(domain.RoleAdmin)
	return domain.Actor{ActorID: userID, IsReviewer: isReviewer}, true
}
