package routes

import (
	"github.com/WanderstayHolidays/crm_end/controllers"
	"github.com/WanderstayHolidays/crm_end/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers the admin user-management routes.
func RegisterUserRoutes(router *gin.Engine) {
	users := router.Group("/api/users")
	users.Use(middleware.AuthMiddleware())
	users.Use(middleware.RequireAdmin())
	{
		users.GET("", controllers.GetUsers)
		users.POST("", controllers.CreateUser)
		users.PATCH("/:id/role", controllers.UpdateUserRole)
		users.PATCH("/:id/active", controllers.UpdateUserActive)
	}
}
