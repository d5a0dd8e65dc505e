package routes

import (
	"github.com/WanderstayHolidays/crm_end/controllers"
	"github.com/WanderstayHolidays/crm_end/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterNotificationRoutes registers the follow-up reminder feed routes.
func RegisterNotificationRoutes(router *gin.Engine) {
	notifications := router.Group("/api/notifications")
	notifications.Use(middleware.AuthMiddleware())
	{
		notifications.GET("", controllers.GetPendingReminders)
		notifications.POST("/start", controllers.StartNotifications)
		notifications.POST("/stop", controllers.StopNotifications)
	}
}
