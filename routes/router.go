package routes

import (
	"github.com/WanderstayHolidays/crm_end/repository"
	"github.com/WanderstayHolidays/crm_end/utils"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires up every route group.
func RegisterRoutes(router *gin.Engine) {
	RegisterAuthRoutes(router)
	RegisterInquiryRoutes(router)
	RegisterAssignmentRoutes(router)
	RegisterFollowUpRoutes(router)
	RegisterNotificationRoutes(router)
	RegisterUserRoutes(router)
	RegisterAdminSettingsRoutes(router)
	RegisterCatalogRoutes(router)
	RegisterDashboardStatsRoutes(router)

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	router.GET("/api/db-status", func(c *gin.Context) {
		status, err := repository.GetDatabaseStatus()
		if err != nil {
			utils.ErrorResponse(c, "fetching database status failed: "+err.Error(), 500)
			return
		}
		c.JSON(200, status)
	})
}
