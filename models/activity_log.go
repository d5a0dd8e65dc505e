package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ActivityType enumerates the recorded action kinds.
type ActivityType string

const (
	ActivityCommentAdded      ActivityType = "comment_added"
	ActivityStatusChange      ActivityType = "status_change"
	ActivityAssigned          ActivityType = "assigned"
	ActivityFollowUpScheduled ActivityType = "follow_up_scheduled"
)

// InquiryActivity is one entry of the append-only audit trail for an inquiry.
// Ordered by CreatedAt; the status_change entries are the sole source for the
// status-timing analytics.
type InquiryActivity struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	InquiryID    string             `bson:"inquiry_id" json:"inquiry_id"`
	UserID       string             `bson:"user_id" json:"user_id"`
	ActivityType ActivityType       `bson:"activity_type" json:"activity_type"`
	Details      interface{}        `bson:"details,omitempty" json:"details,omitempty"`
	OldValue     string             `bson:"old_value,omitempty" json:"old_value,omitempty"`
	NewValue     string             `bson:"new_value,omitempty" json:"new_value,omitempty"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
}

// InquiryActivityView is an activity entry with the actor joined in.
type InquiryActivityView struct {
	InquiryActivity `bson:",inline"`
	Actor           *AdvisorRef `bson:"-" json:"actor,omitempty"`
}

// StatusTimelinePoint is one derived step of the status timeline. The most
// recent point has no duration: the inquiry is still in that status.
type StatusTimelinePoint struct {
	Status       InquiryStatus `json:"status"`
	ChangedAt    time.Time     `json:"changed_at"`
	ChangedBy    string        `json:"changed_by"`
	HoursInState *float64      `json:"time_in_status_hours,omitempty"`
	Duration     string        `json:"duration"`
	LongDuration bool          `json:"long_duration"`
}
