package controllers

import (
	"net/http"
	"time"

	"github.com/WanderstayHolidays/crm_end/models"
	"github.com/WanderstayHolidays/crm_end/repository"
	"github.com/WanderstayHolidays/crm_end/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetUsers lists all profiles for the admin console, newest first.
func GetUsers(c *gin.Context) {
	ctx := repository.GetContext()
	findOptions := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := repository.Collection(repository.ProfilesCollection).Find(ctx, bson.M{}, findOptions)
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

	utils.ListResponse(c, "users", profiles, len(profiles))
}

// CreateUser creates a profile from the admin console. Emails are unique.
func CreateUser(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.CreateValidationError("invalid request payload: "+err.Error()))
		return
	}

	if !models.IsValidUserRole(req.Role) {
		utils.HandleError(c, utils.CreateValidationError("unknown role: "+string(req.Role)))
		return
	}

	ctx := repository.GetContext()
	count, err := repository.Collection(repository.ProfilesCollection).
		CountDocuments(ctx, bson.M{"email": req.Email})
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	if count > 0 {
		utils.HandleError(c, utils.CreateValidationError("email already registered"))
		return
	}

	now := time.Now()
	profile := models.Profile{
		Email:     req.Email,
		FullName:  req.FullName,
		Password:  utils.HashPassword(req.Password),
		Role:      req.Role,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	result, err := repository.Collection(repository.ProfilesCollection).InsertOne(ctx, profile)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	profile.ID = result.InsertedID.(primitive.ObjectID)

	utils.Logger.Info().
		Str("userId", profile.ID.Hex()).
		Str("role", string(profile.Role)).
		Msg("user created")

	utils.SuccessResponse(c, profile, "user created", http.StatusCreated)
}

// UpdateUserRole changes a profile's role.
func UpdateUserRole(c *gin.Context) {
	var req models.UpdateUserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.CreateValidationError("invalid request payload: "+err.Error()))
		return
	}

	if !models.IsValidUserRole(req.Role) {
		utils.HandleError(c, utils.CreateValidationError("unknown role: "+string(req.Role)))
		return
	}

	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.HandleError(c, utils.CreateValidationError("invalid user id"))
		return
	}

	ctx := repository.GetContext()
	result, err := repository.Collection(repository.ProfilesCollection).UpdateOne(ctx,
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{"role": req.Role, "updated_at": time.Now()}},
	)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	if result.MatchedCount == 0 {
		utils.HandleError(c, utils.CreateNotFoundError("user"))
		return
	}

	utils.SuccessResponse(c, nil, "role updated")
}

// UpdateUserActive toggles the soft-deactivation flag. Deactivating an
// advisor also stops their reminder poller; their assigned inquiries stay
// untouched until re-assigned.
func UpdateUserActive(c *gin.Context) {
	var req models.UpdateUserActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IsActive == nil {
		utils.HandleError(c, utils.CreateValidationError("isActive is required"))
		return
	}

	id := c.Param("id")
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		utils.HandleError(c, utils.CreateValidationError("invalid user id"))
		return
	}

	ctx := repository.GetContext()
	result, err := repository.Collection(repository.ProfilesCollection).UpdateOne(ctx,
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{"is_active": *req.IsActive, "updated_at": time.Now()}},
	)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	if result.MatchedCount == 0 {
		utils.HandleError(c, utils.CreateNotFoundError("user"))
		return
	}

	if !*req.IsActive {
		Notifier.StopForAdvisor(id)
	}

	utils.SuccessResponse(c, nil, "account updated")
}
