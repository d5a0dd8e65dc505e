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

// GetUnassignedInquiries returns inquiries waiting for an advisor, newest
// first.
func GetUnassignedInquiries(c *gin.Context) {
	filter := bson.M{"$or": []bson.M{
		{"assigned_to": bson.M{"$exists": false}},
		{"assigned_to": ""},
	}}

	ctx := repository.GetContext()
	findOptions := options.Find().SetSort(bson.M{"created_at": -1})
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

	utils.ListResponse(c, "inquiries", inquiries, len(inquiries))
}

// GetActiveAdvisors returns the travel advisors available for assignment.
func GetActiveAdvisors(c *gin.Context) {
	filter := bson.M{
		"role":      models.UserRoleTRAVEL_ADVISOR,
		"is_active": true,
	}

	ctx := repository.GetContext()
	findOptions := options.Find().SetSort(bson.M{"full_name": 1})
	cursor, err := repository.Collection(repository.ProfilesCollection).Find(ctx, filter, findOptions)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	defer cursor.Close(ctx)

	var profiles []models.Profile
	if err := cursor.All(ctx, &profiles); err != nil {
		utils.HandleError(c, err)
		return
	}

	advisors := make([]models.AdvisorRef, 0, len(profiles))
	for _, profile := range profiles {
		advisors = append(advisors, models.AdvisorRef{
			ID:       profile.ID.Hex(),
			FullName: profile.FullName,
			Email:    profile.Email,
		})
	}

	utils.ListResponse(c, "advisors", advisors, len(advisors))
}

// AssignInquiry hands an inquiry to an active travel advisor. Re-assignment
// overwrites the previous owner and restarts the lifecycle at fresh. Each
// assignment appends an "assigned" entry to the activity ledger.
func AssignInquiry(c *gin.Context) {
	var req models.AssignInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.CreateValidationError("invalid request payload: "+err.Error()))
		return
	}

	user, err := utils.GetUser(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	advisor, err := repository.FindProfileByID(req.AdvisorID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	if advisor.Role != models.UserRoleTRAVEL_ADVISOR {
		utils.HandleError(c, utils.CreateValidationError("assignee is not a travel advisor"))
		return
	}
	if !advisor.IsActive {
		utils.HandleError(c, utils.CreateValidationError("advisor account is deactivated"))
		return
	}

	inquiry, err := findInquiryByHexID(req.InquiryID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	previousAdvisor := inquiry.AssignedTo
	now := time.Now()
	service.ApplyAssignment(inquiry, req.AdvisorID, now)

	ctx := repository.GetContext()
	result, err := repository.Collection(repository.InquiriesCollection).UpdateOne(ctx,
		bson.M{"_id": inquiry.ID},
		bson.M{"$set": bson.M{
			"assigned_to": inquiry.AssignedTo,
			"assigned_at": inquiry.AssignedAt,
			"status":      inquiry.Status,
			"updated_at":  inquiry.UpdatedAt,
		}},
	)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	if result.MatchedCount == 0 {
		utils.HandleError(c, utils.CreateNotFoundError("inquiry"))
		return
	}

	service.LogInquiryActivityBestEffort(ctx, service.LogActivityParams{
		InquiryID:    inquiry.ID.Hex(),
		UserID:       user.ID,
		ActivityType: models.ActivityAssigned,
		Details: map[string]interface{}{
			"advisor_id":   req.AdvisorID,
			"advisor_name": advisor.FullName,
		},
		OldValue: previousAdvisor,
		NewValue: req.AdvisorID,
	})

	utils.Logger.Info().
		Str("inquiryId", inquiry.ID.Hex()).
		Str("advisorId", req.AdvisorID).
		Str("by", user.ID).
		Msg("inquiry assigned")

	utils.SuccessResponse(c, inquiry, "inquiry assigned")
}
