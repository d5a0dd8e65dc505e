package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserRole enumerates profile roles.
type UserRole string

const (
	UserRoleADMIN          UserRole = "admin"          // back-office administrator
	UserRoleTRAVEL_ADVISOR UserRole = "travel_advisor" // owns and follows up assigned inquiries
	UserRoleTRAVELER       UserRole = "traveler"       // default site visitor role
)

// IsValidUserRole reports whether the value is a known role.
func IsValidUserRole(role UserRole) bool {
	switch role {
	case UserRoleADMIN, UserRoleTRAVEL_ADVISOR, UserRoleTRAVELER:
		return true
	}
	return false
}

// Profile is an account record. Advisors are never deleted, only deactivated.
type Profile struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email     string             `bson:"email" json:"email"`
	FullName  string             `bson:"full_name" json:"full_name"`
	Password  string             `bson:"password" json:"-"` // never serialized out
	Role      UserRole           `bson:"role" json:"role"`
	IsActive  bool               `bson:"is_active" json:"is_active"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// AdvisorRef is the trimmed profile view joined onto inquiries and comments.
type AdvisorRef struct {
	ID       string `bson:"-" json:"id"`
	FullName string `bson:"full_name" json:"full_name"`
	Email    string `bson:"email" json:"email,omitempty"`
}

type (
	// LoginRequest is the credential payload.
	LoginRequest struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	// LoginResponse carries the session token and the profile.
	LoginResponse struct {
		Token string  `json:"token"`
		User  Profile `json:"user"`
	}

	// CreateUserRequest creates a profile out-of-band (admin console).
	CreateUserRequest struct {
		Email    string   `json:"email" binding:"required,email"`
		FullName string   `json:"fullName" binding:"required,min=2"`
		Password string   `json:"password" binding:"required,min=6"`
		Role     UserRole `json:"role" binding:"required"`
	}

	// UpdateUserRoleRequest changes a profile's role.
	UpdateUserRoleRequest struct {
		Role UserRole `json:"role" binding:"required"`
	}

	// UpdateUserActiveRequest toggles the soft-deactivation flag.
	UpdateUserActiveRequest struct {
		IsActive *bool `json:"isActive" binding:"required"`
	}
)
