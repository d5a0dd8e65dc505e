package controllers

import (
	"net/http"
	"time"

	"github.com/WanderstayHolidays/crm_end/models"
	"github.com/WanderstayHolidays/crm_end/repository"
	"github.com/WanderstayHolidays/crm_end/service"
	"github.com/WanderstayHolidays/crm_end/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SubmitInquiry accepts a lead from the public website form. No
// authentication; the inquiry starts fresh and unassigned.
func SubmitInquiry(c *gin.Context) {
	var req models.SubmitInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.CreateValidationError("invalid request payload: "+err.Error()))
		return
	}

	if err := service.ValidateSubmitInquiry(req); err != nil {
		utils.HandleError(c, err)
		return
	}

	inquiry := service.NewInquiry(req, time.Now())

	ctx := repository.GetContext()
	result, err := repository.Collection(repository.InquiriesCollection).InsertOne(ctx, inquiry)
	if err != nil {
		if repository.IsNetworkError(err) {
			utils.HandleError(c, utils.CreateTransientIOError(err))
			return
		}
		utils.HandleError(c, err)
		return
	}

	inquiry.ID = result.InsertedID.(primitive.ObjectID)

	utils.Logger.Info().
		Str("inquiryId", inquiry.ID.Hex()).
		Str("destination", inquiry.Destination).
		Msg("new inquiry submitted")

	utils.SuccessResponse(c, inquiry, "inquiry submitted", http.StatusCreated)
}

// GetInquiryList returns inquiries visible to the caller, newest first.
// Admins see everything; advisors only their assigned inquiries. The status
// query parameter filters, with "all" (or absence) passing everything.
func GetInquiryList(c *gin.Context) {
	user, err := utils.GetUser(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	filter := bson.M{}
	if !utils.IsAdmin(user.Role) {
		filter["assigned_to"] = user.ID
	}

	statusFilter := c.Query("status")
	if statusFilter != "" && statusFilter != service.StatusFilterAll {
		if !models.IsValidInquiryStatus(models.InquiryStatus(statusFilter)) {
			utils.HandleError(c, utils.CreateValidationError("unknown status: "+statusFilter))
			return
		}
		filter["status"] = statusFilter
	}

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

	views, err := joinAdvisors(inquiries)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.ListResponse(c, "inquiries", views, len(views))
}

// GetInquiryDetail returns a single inquiry with its advisor joined in.
func GetInquiryDetail(c *gin.Context) {
	inquiry, err := findInquiryByHexID(c.Param("id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	user, err := utils.GetUser(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	if !utils.IsAdmin(user.Role) && inquiry.AssignedTo != user.ID {
		utils.HandleError(c, utils.CreatePermissionError())
		return
	}

	views, err := joinAdvisors([]models.Inquiry{*inquiry})
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, views[0], "")
}

// UpdateInquiryStatus moves an inquiry to a new lifecycle status. Admins may
// update any inquiry, advisors only their own. Every successful update
// appends a status_change entry to the activity ledger.
func UpdateInquiryStatus(c *gin.Context) {
	var req models.UpdateInquiryStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.CreateValidationError("invalid request payload: "+err.Error()))
		return
	}

	if !models.IsSelectableInquiryStatus(req.Status) {
		utils.HandleError(c, utils.CreateValidationError("status not selectable: "+string(req.Status)))
		return
	}

	user, err := utils.GetUser(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	inquiry, err := findInquiryByHexID(c.Param("id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	if !utils.CanManageInquiry(user, inquiry.AssignedTo) {
		utils.HandleError(c, utils.CreatePermissionError())
		return
	}

	oldStatus := inquiry.Status
	now := time.Now()
	service.ApplyStatusUpdate(inquiry, req.Status, req.FollowUpNotes, now)

	update := bson.M{"$set": bson.M{
		"status":         inquiry.Status,
		"last_follow_up": inquiry.LastFollowUp,
		"updated_at":     inquiry.UpdatedAt,
	}}
	if req.FollowUpNotes != "" {
		update["$set"].(bson.M)["follow_up_notes"] = inquiry.FollowUpNotes
	}

	ctx := repository.GetContext()
	_, err = repository.Collection(repository.InquiriesCollection).
		UpdateOne(ctx, bson.M{"_id": inquiry.ID}, update)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	service.LogInquiryActivityBestEffort(ctx, service.LogActivityParams{
		InquiryID:    inquiry.ID.Hex(),
		UserID:       user.ID,
		ActivityType: models.ActivityStatusChange,
		OldValue:     string(oldStatus),
		NewValue:     string(req.Status),
	})

	utils.Logger.Info().
		Str("inquiryId", inquiry.ID.Hex()).
		Str("from", string(oldStatus)).
		Str("to", string(req.Status)).
		Str("by", user.ID).
		Msg("inquiry status updated")

	utils.SuccessResponse(c, inquiry, "status updated")
}

// findInquiryByHexID loads one inquiry or returns a typed API error.
func findInquiryByHexID(id string) (*models.Inquiry, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, utils.CreateValidationError("invalid inquiry id")
	}

	var inquiry models.Inquiry
	err = repository.Collection(repository.InquiriesCollection).
		FindOne(repository.GetContext(), bson.M{"_id": objID}).
		Decode(&inquiry)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.CreateNotFoundError("inquiry")
		}
		return nil, err
	}

	return &inquiry, nil
}

// joinAdvisors batch-loads the assigned advisors and attaches them.
func joinAdvisors(inquiries []models.Inquiry) ([]models.InquiryView, error) {
	ids := make([]string, 0, len(inquiries))
	for _, inquiry := range inquiries {
		if inquiry.AssignedTo != "" {
			ids = append(ids, inquiry.AssignedTo)
		}
	}

	refs, err := repository.FetchProfileRefs(repository.GetContext(), ids)
	if err != nil {
		return nil, err
	}

	views := make([]models.InquiryView, 0, len(inquiries))
	for _, inquiry := range inquiries {
		views = append(views, models.InquiryView{
			Inquiry: inquiry,
			Advisor: refs[inquiry.AssignedTo],
		})
	}
	return views, nil
}
