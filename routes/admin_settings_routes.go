package routes

import (
	"github.com/WanderstayHolidays/crm_end/controllers"
	"github.com/WanderstayHolidays/crm_end/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterAdminSettingsRoutes registers the notification settings routes.
// Reads are open to any staff session so advisor clients can honor the
// toggle; writes are admin-only.
func RegisterAdminSettingsRoutes(router *gin.Engine) {
	settings := router.Group("/api/admin/settings")
	settings.Use(middleware.AuthMiddleware())
	{
		settings.GET("", controllers.GetNotificationSettings)
		settings.PUT("", middleware.RequireAdmin(), controllers.UpdateNotificationSettings)
	}
}
