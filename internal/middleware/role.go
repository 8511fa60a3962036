package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AnarosBeauty/salon-scheduler/internal/domain/role"
)

// RequireRole n'autorise que les rôles listés. À placer après AuthMiddleware.
func RequireRole(allowed ...role.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		current := UserRole(c)

		for _, r := range allowed {
			if current == r {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient_role"})
	}
}

// RequireAdmin couvre admin et superadmin.
func RequireAdmin() gin.HandlerFunc {
	return RequireRole(role.SuperAdmin, role.Admin)
}

// RequireFrontDesk : tout le monde sauf les comptes staff simples.
func RequireFrontDesk() gin.HandlerFunc {
	return RequireRole(role.SuperAdmin, role.Admin, role.Reception)
}
