package controllers

import (
	"github.com/WanderstayHolidays/crm_end/models"
	"github.com/WanderstayHolidays/crm_end/repository"
	"github.com/WanderstayHolidays/crm_end/service"
	"github.com/WanderstayHolidays/crm_end/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetInquiryActivity returns the inquiry's full audit trail newest first,
// with the acting users joined in.
func GetInquiryActivity(c *gin.Context) {
	inquiry, err := findInquiryByHexID(c.Param("id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	ctx := repository.GetContext()
	findOptions := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := repository.Collection(repository.InquiryActivityCollection).
		Find(ctx, bson.M{"inquiry_id": inquiry.ID.Hex()}, findOptions)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	defer cursor.Close(ctx)

	var entries []models.InquiryActivity
	if err := cursor.All(ctx, &entries); err != nil {
		utils.HandleError(c, err)
		return
	}

	actorIDs := make([]string, 0, len(entries))
	for _, entry := range entries {
		actorIDs = append(actorIDs, entry.UserID)
	}
	refs, err := repository.FetchProfileRefs(ctx, actorIDs)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	views := make([]models.InquiryActivityView, 0, len(entries))
	for _, entry := range entries {
		views = append(views, models.InquiryActivityView{
			InquiryActivity: entry,
			Actor:           refs[entry.UserID],
		})
	}

	utils.ListResponse(c, "activities", views, len(views))
}

// GetStatusTimeline derives the status-timing analytics for an inquiry from
// its status_change ledger entries.
func GetStatusTimeline(c *gin.Context) {
	inquiry, err := findInquiryByHexID(c.Param("id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	ctx := repository.GetContext()
	findOptions := options.Find().SetSort(bson.M{"created_at": 1})
	cursor, err := repository.Collection(repository.InquiryActivityCollection).
		Find(ctx, bson.M{
			"inquiry_id":    inquiry.ID.Hex(),
			"activity_type": models.ActivityStatusChange,
		}, findOptions)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	defer cursor.Close(ctx)

	var entries []models.InquiryActivity
	if err := cursor.All(ctx, &entries); err != nil {
		utils.HandleError(c, err)
		return
	}

	timeline := service.ComputeStatusTimeline(entries)

	utils.ListResponse(c, "timeline", timeline, len(timeline))
}
