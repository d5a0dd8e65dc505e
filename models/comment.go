package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InquiryComment is a free-text note on an inquiry. Comments are immutable
// once created; there is no edit or delete path.
type InquiryComment struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	InquiryID        string             `bson:"inquiry_id" json:"inquiry_id"`
	UserID           string             `bson:"user_id" json:"user_id"`
	Comment          string             `bson:"comment" json:"comment"`
	NextFollowUpDate *time.Time         `bson:"next_follow_up_date,omitempty" json:"next_follow_up_date,omitempty"`
	CreatedAt        time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt        time.Time          `bson:"updated_at" json:"updated_at"`
}

// InquiryCommentView is a comment with the author joined in.
type InquiryCommentView struct {
	InquiryComment `bson:",inline"`
	Author         *AdvisorRef `bson:"-" json:"author,omitempty"`
}

// CreateCommentRequest adds a comment and optionally schedules the next
// follow-up. Supplying NextFollowUpDate is the sole way an inquiry's
// next_follow_up_date gets set or refreshed.
type CreateCommentRequest struct {
	Comment          string     `json:"comment" binding:"required"`
	NextFollowUpDate *time.Time `json:"nextFollowUpDate"`
}
