package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AldeNeto/baby/auth"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/google", func(c *gin.Context) {
			auth.GoogleUserLoginHandler(c.Writer, c.Request, db)
		})
	}
}
