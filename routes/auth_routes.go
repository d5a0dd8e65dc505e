package routes

import (
	"github.com/WanderstayHolidays/crm_end/controllers"
	"github.com/WanderstayHolidays/crm_end/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the session routes.
func RegisterAuthRoutes(router *gin.Engine) {
	auth := router.Group("/api/auth")

	// Public
	auth.POST("/login", controllers.Login)

	// Authenticated
	auth.GET("/validate", middleware.AuthMiddleware(), controllers.Validate)
	auth.POST("/logout", middleware.AuthMiddleware(), controllers.Logout)
}
