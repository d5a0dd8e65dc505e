package controllers

import (
	"context"
	"time"

	"github.com/WanderstayHolidays/crm_end/models"
	"github.com/WanderstayHolidays/crm_end/repository"
	"github.com/WanderstayHolidays/crm_end/service"
	"github.com/WanderstayHolidays/crm_end/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetNotificationSettings returns the typed notifier configuration, with
// defaults filled in for anything not yet stored.
func GetNotificationSettings(c *gin.Context) {
	settings, err := service.FetchNotificationSettings(repository.GetContext())
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, settings, "")
}

// UpdateNotificationSettings upserts the notifier configuration. Only the
// supplied fields change; the frequency must stay within 1 to 24 hours.
// Running pollers pick up the new settings on their next restart.
func UpdateNotificationSettings(c *gin.Context) {
	var req models.UpdateNotificationSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.CreateValidationError("invalid request payload: "+err.Error()))
		return
	}

	if req.NotificationsEnabled == nil && req.NotificationFrequencyHours == nil {
		utils.HandleError(c, utils.CreateValidationError("no settings supplied"))
		return
	}

	if req.NotificationFrequencyHours != nil {
		hours := *req.NotificationFrequencyHours
		if hours < models.MinNotificationFrequencyHours || hours > models.MaxNotificationFrequencyHours {
			utils.HandleError(c, utils.CreateValidationError("frequency must be between 1 and 24 hours"))
			return
		}
	}

	ctx := repository.GetContext()
	if req.NotificationsEnabled != nil {
		if err := upsertSetting(ctx, models.SettingToastEnabled, *req.NotificationsEnabled); err != nil {
			utils.HandleError(c, err)
			return
		}
	}
	if req.NotificationFrequencyHours != nil {
		if err := upsertSetting(ctx, models.SettingToastFrequencyHours, *req.NotificationFrequencyHours); err != nil {
			utils.HandleError(c, err)
			return
		}
	}

	settings, err := service.FetchNotificationSettings(ctx)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.Logger.Info().
		Bool("enabled", settings.Enabled).
		Int("frequencyHours", settings.FrequencyHours).
		Msg("notification settings updated")

	utils.SuccessResponse(c, settings, "settings updated")
}

// upsertSetting writes one key/value row, overwriting any existing value.
func upsertSetting(ctx context.Context, key string, value interface{}) error {
	now := time.Now()
	opts := options.Update().SetUpsert(true)
	_, err := repository.Collection(repository.AdminSettingsCollection).UpdateOne(
		ctx,
		bson.M{"setting_key": key},
		bson.M{
			"$set":         bson.M{"setting_value": value, "updated_at": now},
			"$setOnInsert": bson.M{"setting_key": key, "created_at": now},
		},
		opts,
	)
	return err
}
