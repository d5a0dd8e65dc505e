package controllers

import (
	"net/http"

	"github.com/WanderstayHolidays/crm_end/models"
	"github.com/WanderstayHolidays/crm_end/repository"
	"github.com/WanderstayHolidays/crm_end/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Login authenticates a profile and issues a session token. A travel advisor
// logging in also starts their follow-up reminder poller.
func Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.CreateValidationError("invalid request payload: "+err.Error()))
		return
	}

	ctx := repository.GetContext()
	var profile models.Profile
	err := repository.Collection(repository.ProfilesCollection).
		FindOne(ctx, bson.M{"email": req.Email}).
		Decode(&profile)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.ErrorResponse(c, "invalid email or password", http.StatusUnauthorized)
			return
		}
		utils.HandleError(c, err)
		return
	}

	if !utils.VerifyPassword(req.Password, profile.Password) {
		utils.Logger.Info().Str("email", req.Email).Msg("login rejected, wrong password")
		utils.ErrorResponse(c, "invalid email or password", http.StatusUnauthorized)
		return
	}

	if !profile.IsActive {
		utils.ErrorResponse(c, "account is deactivated", http.StatusForbidden)
		return
	}

	token, err := utils.GenerateToken(profile)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	if profile.Role == models.UserRoleTRAVEL_ADVISOR {
		Notifier.StartForAdvisor(profile.ID.Hex())
	}

	utils.Logger.Info().
		Str("userId", profile.ID.Hex()).
		Str("role", string(profile.Role)).
		Msg("user logged in")

	utils.SuccessResponse(c, models.LoginResponse{Token: token, User: profile}, "login successful")
}

// Validate confirms the bearer token is still good and returns the current
// profile. The console calls this on page load to restore the session.
func Validate(c *gin.Context) {
	user, err := utils.GetUser(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	profile, err := repository.FindProfileByID(user.ID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	if !profile.IsActive {
		utils.ErrorResponse(c, "account is deactivated", http.StatusForbidden)
		return
	}

	utils.SuccessResponse(c, profile, "")
}

// Logout ends the session. Advisors get their reminder poller stopped; the
// token itself simply expires client-side.
func Logout(c *gin.Context) {
	user, err := utils.GetUser(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	if user.Role == string(models.UserRoleTRAVEL_ADVISOR) {
		Notifier.StopForAdvisor(user.ID)
	}

	utils.Logger.Info().Str("userId", user.ID).Msg("user logged out")
	utils.SuccessResponse(c, nil, "logged out")
}
