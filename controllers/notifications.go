package controllers

import (
	"github.com/WanderstayHolidays/crm_end/models"
	"github.com/WanderstayHolidays/crm_end/service"
	"github.com/WanderstayHolidays/crm_end/utils"

	"github.com/gin-gonic/gin"
)

// Notifier drives the per-advisor follow-up reminder pollers. Started on
// advisor login, stopped on logout, shut down with the server.
var Notifier = service.NewNotifierManager(nil, nil)

// StartNotifications restarts the caller's reminder poller, picking up the
// current admin settings. Advisors only.
func StartNotifications(c *gin.Context) {
	user, err := utils.GetUser(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	if user.Role != string(models.UserRoleTRAVEL_ADVISOR) {
		utils.HandleError(c, utils.CreatePermissionError())
		return
	}

	Notifier.StartForAdvisor(user.ID)
	utils.SuccessResponse(c, nil, "notifications started")
}

// StopNotifications stops the caller's reminder poller.
func StopNotifications(c *gin.Context) {
	user, err := utils.GetUser(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	Notifier.StopForAdvisor(user.ID)
	utils.SuccessResponse(c, nil, "notifications stopped")
}

// GetPendingReminders drains and returns the caller's reminder feed. The
// console polls this endpoint and toasts each returned reminder.
func GetPendingReminders(c *gin.Context) {
	user, err := utils.GetUser(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	reminders := Notifier.DrainReminders(user.ID)
	utils.ListResponse(c, "reminders", reminders, len(reminders))
}
