package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mataxelle/BilMo/internal/models"
)

// RequireAdmin vérifie que le principal a le rôle "admin". Le message est
// propre à chaque action (même formulation que les réponses 403 historiques).
func RequireAdmin(message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists || role != models.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": message})
			c.Abort()
			return
		}
		c.Next()
	}
}
