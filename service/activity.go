package service

import (
	"context"
	"time"

	"github.com/WanderstayHolidays/crm_end/models"
	"github.com/WanderstayHolidays/crm_end/repository"
	"github.com/WanderstayHolidays/crm_end/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LogActivityParams describes one activity ledger append.
type LogActivityParams struct {
	InquiryID    string
	UserID       string
	ActivityType models.ActivityType
	Details      interface{}
	OldValue     string
	NewValue     string
}

// LogInquiryActivity appends one entry to the inquiry activity ledger as a
// single atomic insert and returns the new entry id.
func LogInquiryActivity(ctx context.Context, params LogActivityParams) (string, error) {
	entry := models.InquiryActivity{
		InquiryID:    params.InquiryID,
		UserID:       params.UserID,
		ActivityType: params.ActivityType,
		Details:      params.Details,
		OldValue:     params.OldValue,
		NewValue:     params.NewValue,
		CreatedAt:    time.Now(),
	}

	collection := repository.Collection(repository.InquiryActivityCollection)
	result, err := collection.InsertOne(ctx, entry)
	if err != nil {
		return "", err
	}

	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

// LogInquiryActivityBestEffort appends a ledger entry after a primary
// mutation has already succeeded. A failed append is logged and swallowed:
// the ledger may lag or miss an entry, it never blocks or rolls back the
// mutation it describes.
func LogInquiryActivityBestEffort(ctx context.Context, params LogActivityParams) {
	if _, err := LogInquiryActivity(ctx, params); err != nil {
		utils.LogError(err, map[string]interface{}{
			"inquiryId":    params.InquiryID,
			"activityType": params.ActivityType,
		}, "activity log append failed")
	}
}
