package controllers

import (
	"time"

	"github.com/WanderstayHolidays/crm_end/models"
	"github.com/WanderstayHolidays/crm_end/repository"
	"github.com/WanderstayHolidays/crm_end/service"
	"github.com/WanderstayHolidays/crm_end/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetFollowUpDashboard returns scheduled follow-ups visible to the caller,
// soonest first. Optional query filters combine with AND semantics:
// date (calendar day), destination (case-insensitive substring) and, for
// admins only, advisor. Each row carries a server-computed overdue flag.
func GetFollowUpDashboard(c *gin.Context) {
	user, err := utils.GetUser(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	filters := service.FollowUpFilters{
		Destination: c.Query("destination"),
	}

	if rawDate := c.Query("date"); rawDate != "" {
		parsed, err := time.Parse("2006-01-02", rawDate)
		if err != nil {
			utils.HandleError(c, utils.CreateValidationError("date must be YYYY-MM-DD"))
			return
		}
		filters.Date = &parsed
	}

	if utils.IsAdmin(user.Role) {
		filters.AdvisorID = c.Query("advisor")
	} else {
		// Advisors only ever see their own follow-ups.
		filters.AdvisorID = user.ID
	}

	filter := bson.M{"next_follow_up_date": bson.M{"$ne": nil}}
	if filters.AdvisorID != "" {
		filter["assigned_to"] = filters.AdvisorID
	}

	ctx := repository.GetContext()
	findOptions := options.Find().SetSort(bson.M{"next_follow_up_date": 1})
	cursor, err := repository.Collection(repository.InquiriesCollection).Find(ctx, filter, findOptions)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	defer cursor.Close(ctx)

	var inquiries []models.Inquiry
	if err := cursor.All(ctx, &inquiries); err != nil {
		utils.HandleError(c, err)
		return
	}

	views, err := joinAdvisors(inquiries)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	views = service.FilterFollowUps(views, filters, time.Now())

	utils.ListResponse(c, "followUps", views, len(views))
}

// GetOverdueFollowUps returns the caller's follow-ups whose scheduled date
// has passed. Admins may query another advisor with the advisorId parameter.
func GetOverdueFollowUps(c *gin.Context) {
	user, err := utils.GetUser(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	advisorID := user.ID
	if utils.IsAdmin(user.Role) && c.Query("advisor") != "" {
		advisorID = c.Query("advisor")
	}

	now := time.Now()
	overdue, err := service.FetchOverdueFollowUps(repository.GetContext(), advisorID, now)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	views, err := joinAdvisors(overdue)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	for i := range views {
		views[i].Overdue = true
	}

	utils.ListResponse(c, "followUps", views, len(views))
}
