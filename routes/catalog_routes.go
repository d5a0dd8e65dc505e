package routes

import (
	"github.com/WanderstayHolidays/crm_end/controllers"

	"github.com/gin-gonic/gin"
)

// RegisterCatalogRoutes registers the public marketing catalogue routes.
func RegisterCatalogRoutes(router *gin.Engine) {
	catalog := router.Group("/api/catalog")
	{
		catalog.GET("/destinations", controllers.GetDestinations)
		catalog.GET("/destinations/:id", controllers.GetDestinationDetail)
		catalog.GET("/packages", controllers.GetHolidayPackages)
		catalog.GET("/packages/:id", controllers.GetHolidayPackageDetail)
		catalog.GET("/inquiry-destinations", controllers.GetInquiryDestinations)
	}
}
