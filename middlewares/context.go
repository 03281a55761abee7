package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cleanease/cleanease-api/models"
)

const (
	ctxUserIDKey = "user_id"
	ctxRoleKey   = "role"
)

// Caller is the identity resolved once by the auth middleware and passed to
// handlers through the gin context. Handlers never re-derive identity from
// the token themselves.
type Caller struct {
	UserID uuid.UUID
	Role   string
}

// IsAdmin reports whether the caller holds the admin role claim. This is the
// single admin-detection rule used everywhere.
func (cl Caller) IsAdmin() bool {
	return cl.Role == models.RoleAdmin
}

func setCaller(c *gin.Context, caller Caller) {
	c.Set(ctxUserIDKey, caller.UserID)
	c.Set(ctxRoleKey, caller.Role)
}

// CallerFrom returns the caller injected by AuthMiddleware. The second value
// is false when the request carries no resolved identity.
func CallerFrom(c *gin.Context) (Caller, bool) {
	idVal, ok := c.Get(ctxUserIDKey)
	if !ok {
		return Caller{}, false
	}
	id, ok := idVal.(uuid.UUID)
	if !ok {
		return Caller{}, false
	}
	return Caller{UserID: id, Role: c.GetString(ctxRoleKey)}, true
}
