package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InquiryStatus enumerates the inquiry lifecycle states.
type InquiryStatus string

const (
	InquiryStatusFRESH       InquiryStatus = "fresh"
	InquiryStatusASSIGNED    InquiryStatus = "assigned"
	InquiryStatusFOLLOW_UP   InquiryStatus = "follow_up"
	InquiryStatusHOT         InquiryStatus = "hot"
	InquiryStatusCOLD        InquiryStatus = "cold"
	InquiryStatusREQUIREMENT InquiryStatus = "requirement"
	InquiryStatusITINERARY   InquiryStatus = "itinerary"

	// Legacy values still present in stored rows. Accepted on read,
	// never produced by any transition.
	InquiryStatusPENDING_ASSIGNMENT InquiryStatus = "pending_assignment"
	InquiryStatusNEEDS_FOLLOW_UP    InquiryStatus = "needs_follow_up"
)

// IsValidInquiryStatus reports whether the value may be stored.
func IsValidInquiryStatus(status InquiryStatus) bool {
	switch status {
	case InquiryStatusFRESH, InquiryStatusASSIGNED, InquiryStatusFOLLOW_UP,
		InquiryStatusHOT, InquiryStatusCOLD, InquiryStatusREQUIREMENT,
		InquiryStatusITINERARY, InquiryStatusPENDING_ASSIGNMENT,
		InquiryStatusNEEDS_FOLLOW_UP:
		return true
	}
	return false
}

// IsSelectableInquiryStatus reports whether advisors may move an inquiry into
// the value. The two legacy states are read-only history.
func IsSelectableInquiryStatus(status InquiryStatus) bool {
	switch status {
	case InquiryStatusPENDING_ASSIGNMENT, InquiryStatusNEEDS_FOLLOW_UP:
		return false
	}
	return IsValidInquiryStatus(status)
}

// Inquiry is a customer travel lead.
// Invariant: AssignedAt is set iff AssignedTo is set. Inquiries are never
// hard-deleted.
type Inquiry struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name             string             `bson:"name" json:"name"`
	Phone            string             `bson:"phone" json:"phone"`
	Destination      string             `bson:"destination" json:"destination"`
	FromCity         string             `bson:"from_city" json:"from_city"`
	Travellers       int                `bson:"travellers" json:"travellers"`
	Status           InquiryStatus      `bson:"status" json:"status"`
	AssignedTo       string             `bson:"assigned_to,omitempty" json:"assigned_to,omitempty"`
	AssignedAt       *time.Time         `bson:"assigned_at,omitempty" json:"assigned_at,omitempty"`
	FollowUpNotes    string             `bson:"follow_up_notes,omitempty" json:"follow_up_notes,omitempty"`
	LastFollowUp     *time.Time         `bson:"last_follow_up,omitempty" json:"last_follow_up,omitempty"`
	NextFollowUpDate *time.Time         `bson:"next_follow_up_date,omitempty" json:"next_follow_up_date,omitempty"`
	CreatedAt        time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt        time.Time          `bson:"updated_at" json:"updated_at"`
}

// InquiryView is an inquiry with the assigned advisor joined in and, on the
// follow-up dashboard, the overdue flag computed server-side.
type InquiryView struct {
	Inquiry `bson:",inline"`
	Advisor *AdvisorRef `bson:"-" json:"advisor,omitempty"`
	Overdue bool        `bson:"-" json:"overdue"`
}

type (
	// SubmitInquiryRequest is the public lead form payload.
	SubmitInquiryRequest struct {
		Name        string `json:"name" binding:"required"`
		Phone       string `json:"phone" binding:"required"`
		Destination string `json:"destination" binding:"required"`
		FromCity    string `json:"fromCity" binding:"required"`
		Travellers  int    `json:"travellers" binding:"required"`
	}

	// UpdateInquiryStatusRequest moves an inquiry to a new status.
	UpdateInquiryStatusRequest struct {
		Status        InquiryStatus `json:"status" binding:"required"`
		FollowUpNotes string        `json:"followUpNotes"`
	}

	// AssignInquiryRequest hands an inquiry to an advisor.
	AssignInquiryRequest struct {
		InquiryID string `json:"inquiryId" binding:"required"`
		AdvisorID string `json:"advisorId" binding:"required"`
	}
)
