package routes

import (
	"github.com/WanderstayHolidays/crm_end/controllers"
	"github.com/WanderstayHolidays/crm_end/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterAssignmentRoutes registers the admin assignment console routes.
func RegisterAssignmentRoutes(router *gin.Engine) {
	assignments := router.Group("/api/assignments")
	assignments.Use(middleware.AuthMiddleware())
	assignments.Use(middleware.RequireAdmin())
	{
		assignments.GET("/unassigned", controllers.GetUnassignedInquiries)
		assignments.GET("/advisors", controllers.GetActiveAdvisors)
		assignments.POST("", controllers.AssignInquiry)
	}
}
