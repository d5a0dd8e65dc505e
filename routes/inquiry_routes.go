package routes

import (
	"github.com/WanderstayHolidays/crm_end/controllers"
	"github.com/WanderstayHolidays/crm_end/middleware"
	"github.com/WanderstayHolidays/crm_end/models"

	"github.com/gin-gonic/gin"
)

// RegisterInquiryRoutes registers the inquiry lifecycle routes. Submission is
// public; everything else requires a staff session.
func RegisterInquiryRoutes(router *gin.Engine) {
	// Public lead form
	router.POST("/api/inquiries", controllers.SubmitInquiry)

	inquiries := router.Group("/api/inquiries")
	inquiries.Use(middleware.AuthMiddleware())
	inquiries.Use(middleware.RequireRole(models.UserRoleADMIN, models.UserRoleTRAVEL_ADVISOR))
	{
		inquiries.GET("", controllers.GetInquiryList)
		inquiries.GET("/:id", controllers.GetInquiryDetail)
		inquiries.PUT("/:id/status", controllers.UpdateInquiryStatus)

		inquiries.GET("/:id/comments", controllers.GetInquiryComments)
		inquiries.POST("/:id/comments", controllers.CreateInquiryComment)

		inquiries.GET("/:id/activity", controllers.GetInquiryActivity)
		inquiries.GET("/:id/status-timeline", controllers.GetStatusTimeline)
	}
}
