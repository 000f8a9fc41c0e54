package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/md-abdullah-al-ahad/skillsync-backend/domain"
)

// role checking middleware

func AdminOnly() gin.HandlerFunc {
	return requireRole(domain.RoleAdmin, "Admins only")
}

func StudentOnly() gin.HandlerFunc {
	return requireRole(domain.RoleStudent, "Students only")
}

func TutorOnly() gin.HandlerFunc {
	return requireRole(domain.RoleTutor, "Tutors only")
}

func requireRole(role, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		got, exists := c.Get("role")
		if !exists || got != role {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": message,
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
