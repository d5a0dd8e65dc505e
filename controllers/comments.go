package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/WanderstayHolidays/crm_end/models"
	"github.com/WanderstayHolidays/crm_end/repository"
	"github.com/WanderstayHolidays/crm_end/service"
	"github.com/WanderstayHolidays/crm_end/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetInquiryComments returns the inquiry's comments newest first, with
// authors joined in.
func GetInquiryComments(c *gin.Context) {
	inquiry, err := findInquiryByHexID(c.Param("id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	ctx := repository.GetContext()
	findOptions := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := repository.Collection(repository.InquiryCommentsCollection).
		Find(ctx, bson.M{"inquiry_id": inquiry.ID.Hex()}, findOptions)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	defer cursor.Close(ctx)

	var comments []models.InquiryComment
	if err := cursor.All(ctx, &comments); err != nil {
		utils.HandleError(c, err)
		return
	}

	authorIDs := make([]string, 0, len(comments))
	for _, comment := range comments {
		authorIDs = append(authorIDs, comment.UserID)
	}
	refs, err := repository.FetchProfileRefs(ctx, authorIDs)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	views := make([]models.InquiryCommentView, 0, len(comments))
	for _, comment := range comments {
		views = append(views, models.InquiryCommentView{
			InquiryComment: comment,
			Author:         refs[comment.UserID],
		})
	}

	utils.ListResponse(c, "comments", views, len(views))
}

// CreateInquiryComment adds an immutable comment to an inquiry. When the
// comment carries a next follow-up date the inquiry's schedule is refreshed
// and it moves to follow_up; the ledger then gets a follow_up_scheduled entry
// alongside the comment_added one.
func CreateInquiryComment(c *gin.Context) {
	var req models.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.CreateValidationError("invalid request payload: "+err.Error()))
		return
	}

	if utils.IsBlank(req.Comment) {
		utils.HandleError(c, utils.CreateValidationError("comment must not be empty"))
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

	now := time.Now()
	comment := models.InquiryComment{
		InquiryID:        inquiry.ID.Hex(),
		UserID:           user.ID,
		Comment:          strings.TrimSpace(req.Comment),
		NextFollowUpDate: req.NextFollowUpDate,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	ctx := repository.GetContext()
	result, err := repository.Collection(repository.InquiryCommentsCollection).InsertOne(ctx, comment)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	comment.ID = result.InsertedID.(primitive.ObjectID)

	if req.NextFollowUpDate != nil {
		service.ApplyCommentFollowUp(inquiry, req.NextFollowUpDate, now)

		_, err = repository.Collection(repository.InquiriesCollection).UpdateOne(ctx,
			bson.M{"_id": inquiry.ID},
			bson.M{"$set": bson.M{
				"next_follow_up_date": inquiry.NextFollowUpDate,
				"status":              inquiry.Status,
				"updated_at":          inquiry.UpdatedAt,
			}},
		)
		if err != nil {
			utils.HandleError(c, err)
			return
		}

		service.LogInquiryActivityBestEffort(ctx, service.LogActivityParams{
			InquiryID:    inquiry.ID.Hex(),
			UserID:       user.ID,
			ActivityType: models.ActivityFollowUpScheduled,
			NewValue:     req.NextFollowUpDate.Format(time.RFC3339),
		})
	}

	service.LogInquiryActivityBestEffort(ctx, service.LogActivityParams{
		InquiryID:    inquiry.ID.Hex(),
		UserID:       user.ID,
		ActivityType: models.ActivityCommentAdded,
		Details: map[string]interface{}{
			"comment":             comment.Comment,
			"next_follow_up_date": req.NextFollowUpDate,
		},
	})

	utils.SuccessResponse(c, comment, "comment added", http.StatusCreated)
}
