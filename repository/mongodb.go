package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/WanderstayHolidays/crm_end/models"
	"github.com/WanderstayHolidays/crm_end/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	// Collection names
	InquiriesCollection        = "inquiries"
	InquiryCommentsCollection  = "inquiry_comments"
	InquiryActivityCollection  = "inquiry_activity_log"
	ProfilesCollection         = "profiles"
	AdminSettingsCollection    = "admin_settings"
	ApiOperationLogsCollection = "apiOperationLogs"
)

var (
	client *mongo.Client
	db     *mongo.Database
	ctx    = context.Background()
)

// InitMongoDB establishes the MongoDB connection.
func InitMongoDB(uri, dbName string) error {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var err error
	clientOptions := options.Client().ApplyURI(uri)
	client, err = mongo.Connect(connectCtx, clientOptions)
	if err != nil {
		return fmt.Errorf("connecting to MongoDB: %w", err)
	}

	pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
	defer pingCancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		return fmt.Errorf("pinging MongoDB: %w", err)
	}

	db = client.Database(dbName)
	utils.Logger.Info().Str("database", dbName).Msg("connected to MongoDB")

	return nil
}

// CloseMongoDB tears down the MongoDB connection.
func CloseMongoDB() {
	if client != nil {
		if err := client.Disconnect(ctx); err != nil {
			utils.Logger.Error().Err(err).Msg("disconnecting from MongoDB failed")
			return
		}
		utils.Logger.Info().Msg("disconnected from MongoDB")
	}
}

// GetContext returns the context used for MongoDB operations.
func GetContext() context.Context {
	return ctx
}

// Collection returns the named collection.
func Collection(name string) *mongo.Collection {
	return db.Collection(name)
}

// ExecuteDbOperation runs an idempotent operation with retries on transient
// failures. Only used for reads and bootstrap work; writes stay single-shot.
func ExecuteDbOperation(operation func() (interface{}, error), retries int) (interface{}, error) {
	if retries <= 0 {
		retries = 3
	}

	var lastErr error
	for i := 0; i < retries; i++ {
		result, err := operation()
		if err == nil {
			return result, nil
		}

		lastErr = err
		utils.Logger.Error().Err(err).Msgf("db operation failed, retry (%d/%d)", i+1, retries)

		if !isRetryableError(err) {
			break
		}

		time.Sleep(time.Duration(500*(i+1)) * time.Millisecond)
	}

	return nil, lastErr
}

// isRetryableError reports whether the error is worth retrying.
func isRetryableError(err error) bool {
	retryableCodes := map[int]bool{
		6:     true, // HostUnreachable
		7:     true, // HostNotFound
		89:    true, // NetworkTimeout
		91:    true, // ShutdownInProgress
		189:   true, // PrimarySteppedDown
		10107: true, // NotMaster
		13436: true, // NotMasterNoSlaveOk
		11600: true, // InterruptedAtShutdown
		11602: true, // InterruptedDueToReplStateChange
		10058: true, // ConnectionReset
	}

	if cmdErr, ok := err.(mongo.CommandError); ok {
		return retryableCodes[int(cmdErr.Code)]
	}

	return IsNetworkError(err)
}

// IsNetworkError reports whether the error looks like a transport failure.
func IsNetworkError(err error) bool {
	errMsg := strings.ToLower(err.Error())
	networkErrors := []string{
		"connection refused",
		"connection reset",
		"connection closed",
		"no reachable servers",
		"timeout",
		"context deadline exceeded",
		"server selection error",
	}

	for _, ne := range networkErrors {
		if strings.Contains(errMsg, ne) {
			return true
		}
	}

	return false
}

// InitializeCollections creates the collections used by the service.
func InitializeCollections() error {
	collections := []string{
		InquiriesCollection,
		InquiryCommentsCollection,
		InquiryActivityCollection,
		ProfilesCollection,
		AdminSettingsCollection,
		ApiOperationLogsCollection,
	}

	for _, collName := range collections {
		collExists, err := CollectionExists(collName)
		if err != nil {
			return fmt.Errorf("checking collection: %w", err)
		}

		if !collExists {
			if err := db.CreateCollection(ctx, collName); err != nil {
				return fmt.Errorf("creating collection: %w", err)
			}
			utils.Logger.Info().Str("collection", collName).Msg("collection created")
		} else {
			utils.Logger.Info().Str("collection", collName).Msg("collection exists")
		}
	}

	return nil
}

// CollectionExists reports whether the named collection exists.
func CollectionExists(collName string) (bool, error) {
	collections, err := db.ListCollectionNames(ctx, bson.M{"name": collName})
	if err != nil {
		return false, err
	}

	for _, name := range collections {
		if name == collName {
			return true, nil
		}
	}

	return false, nil
}

// InitializeAdminAccount seeds the default administrator profile.
func InitializeAdminAccount() error {
	profilesCollection := db.Collection(ProfilesCollection)

	count, err := profilesCollection.CountDocuments(ctx, bson.M{"role": models.UserRoleADMIN})
	if err != nil {
		return fmt.Errorf("checking admin account: %w", err)
	}

	if count > 0 {
		utils.Logger.Info().Msg("admin account exists, skipping seed")
		return nil
	}

	adminProfile := models.Profile{
		Email:     "admin@wanderstay.in",
		FullName:  "Administrator",
		Password:  utils.HashPassword("admin123"),
		Role:      models.UserRoleADMIN,
		IsActive:  true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	_, err = profilesCollection.InsertOne(ctx, adminProfile)
	if err != nil {
		return fmt.Errorf("creating admin account: %w", err)
	}

	utils.Logger.Info().Msg("default admin account created")
	return nil
}

// FindProfileByID looks up a profile by its hex id.
func FindProfileByID(id string) (*models.Profile, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid id format: %w", err)
	}

	var profile models.Profile
	err = db.Collection(ProfilesCollection).FindOne(ctx, bson.M{"_id": objID}).Decode(&profile)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.CreateNotFoundError("profile")
		}
		return nil, err
	}

	return &profile, nil
}

// FetchProfileRefs batch-loads trimmed profiles for a set of hex ids and
// returns them keyed by id. One query regardless of how many rows reference
// the profiles, so callers can join locally instead of per-row lookups.
func FetchProfileRefs(ctx context.Context, ids []string) (map[string]*models.AdvisorRef, error) {
	refs := make(map[string]*models.AdvisorRef)
	if len(ids) == 0 {
		return refs, nil
	}

	seen := make(map[string]bool)
	objIDs := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		objID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		objIDs = append(objIDs, objID)
	}
	if len(objIDs) == 0 {
		return refs, nil
	}

	cursor, err := db.Collection(ProfilesCollection).Find(ctx, bson.M{"_id": bson.M{"$in": objIDs}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var profiles []models.Profile
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, err
	}

	for _, profile := range profiles {
		refs[profile.ID.Hex()] = &models.AdvisorRef{
			ID:       profile.ID.Hex(),
			FullName: profile.FullName,
			Email:    profile.Email,
		}
	}

	return refs, nil
}

// GetDatabaseStatus reports per-collection document counts.
func GetDatabaseStatus() (map[string]interface{}, error) {
	collections := []string{
		InquiriesCollection,
		InquiryCommentsCollection,
		InquiryActivityCollection,
		ProfilesCollection,
		AdminSettingsCollection,
		ApiOperationLogsCollection,
	}

	result := make(map[string]interface{})

	for _, collName := range collections {
		coll := db.Collection(collName)
		count, err := coll.CountDocuments(ctx, bson.M{})
		if err != nil {
			utils.Logger.Error().Err(err).Str("collection", collName).Msg("counting collection failed")
			result[collName] = map[string]interface{}{
				"count": 0,
				"error": err.Error(),
			}
			continue
		}
		result[collName] = map[string]interface{}{
			"count": count,
		}
	}

	return result, nil
}
