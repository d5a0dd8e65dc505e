package routes

import (
	"github.com/WanderstayHolidays/crm_end/controllers"
	"github.com/WanderstayHolidays/crm_end/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterDashboardStatsRoutes registers the admin dashboard stats route.
func RegisterDashboardStatsRoutes(router *gin.Engine) {
	stats := router.Group("/api/dashboard")
	stats.Use(middleware.AuthMiddleware())
	stats.Use(middleware.RequireAdmin())
	{
		stats.GET("/stats", controllers.GetDashboardStats)
	}
}
