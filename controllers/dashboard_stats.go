package controllers

import (
	"time"

	"github.com/WanderstayHolidays/crm_end/models"
	"github.com/WanderstayHolidays/crm_end/repository"
	"github.com/WanderstayHolidays/crm_end/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// GetDashboardStats returns the admin console headline numbers: inquiry
// counts per status, the unassigned queue depth and overdue follow-ups.
func GetDashboardStats(c *gin.Context) {
	ctx := repository.GetContext()
	inquiries := repository.Collection(repository.InquiriesCollection)

	pipeline := []bson.M{
		{"$group": bson.M{"_id": "$status", "count": bson.M{"$sum": 1}}},
	}
	cursor, err := inquiries.Aggregate(ctx, pipeline)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	defer cursor.Close(ctx)

	var grouped []struct {
		Status models.InquiryStatus `bson:"_id"`
		Count  int64                `bson:"count"`
	}
	if err := cursor.All(ctx, &grouped); err != nil {
		utils.HandleError(c, err)
		return
	}

	byStatus := make(map[models.InquiryStatus]int64, len(grouped))
	var total int64
	for _, group := range grouped {
		byStatus[group.Status] = group.Count
		total += group.Count
	}

	unassigned, err := inquiries.CountDocuments(ctx, bson.M{"$or": []bson.M{
		{"assigned_to": bson.M{"$exists": false}},
		{"assigned_to": ""},
	}})
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	overdue, err := inquiries.CountDocuments(ctx, bson.M{
		"next_follow_up_date": bson.M{"$ne": nil, "$lt": time.Now()},
		"assigned_to":         bson.M{"$nin": []interface{}{nil, ""}},
	})
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"total":      total,
		"byStatus":   byStatus,
		"unassigned": unassigned,
		"overdue":    overdue,
	}, "")
}
