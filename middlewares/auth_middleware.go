package middlewares

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cleanease/cleanease-api/apperrors"
	"github.com/cleanease/cleanease-api/utils"
)

func resolveCaller(c *gin.Context) (Caller, *apperrors.AppError) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return Caller{}, apperrors.NewUnauthorized("Authentication required")
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	claims, err := utils.ParseToken(tokenString)
	if err != nil {
		return Caller{}, apperrors.NewUnauthorized("Invalid or expired token")
	}

	return Caller{UserID: claims.UserID, Role: claims.Role}, nil
}

// AuthMiddleware resolves the caller from the bearer token and injects it
// into the context for the inner handler.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, appErr := resolveCaller(c)
		if appErr != nil {
			c.Error(appErr)
			c.Abort()
			return
		}

		setCaller(c, caller)
		c.Next()
	}
}

// AdminAuthMiddleware is AuthMiddleware plus the admin role claim check.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, appErr := resolveCaller(c)
		if appErr != nil {
			c.Error(appErr)
			c.Abort()
			return
		}

		if !caller.IsAdmin() {
			c.Error(apperrors.NewForbidden("Admin access required"))
			c.Abort()
			return
		}

		setCaller(c, caller)
		c.Next()
	}
}
