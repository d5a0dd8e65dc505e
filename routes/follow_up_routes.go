package routes

import (
	"github.com/WanderstayHolidays/crm_end/controllers"
	"github.com/WanderstayHolidays/crm_end/middleware"
	"github.com/WanderstayHolidays/crm_end/models"

	"github.com/gin-gonic/gin"
)

// RegisterFollowUpRoutes registers the follow-up dashboard routes.
func RegisterFollowUpRoutes(router *gin.Engine) {
	followUps := router.Group("/api/follow-ups")
	followUps.Use(middleware.AuthMiddleware())
	followUps.Use(middleware.RequireRole(models.UserRoleADMIN, models.UserRoleTRAVEL_ADVISOR))
	{
		followUps.GET("", controllers.GetFollowUpDashboard)
		followUps.GET("/overdue", controllers.GetOverdueFollowUps)
	}
}
