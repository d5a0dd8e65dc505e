package service

import (
	"time"

	"github.com/WanderstayHolidays/crm_end/models"
	"github.com/WanderstayHolidays/crm_end/utils"
)

// ValidateSubmitInquiry checks the public lead form constraints: every field
// required, phone exactly ten digits, traveller count positive.
func ValidateSubmitInquiry(req models.SubmitInquiryRequest) error {
	if utils.IsBlank(req.Name) {
		return utils.CreateValidationError("name is required")
	}
	if utils.IsBlank(req.Destination) {
		return utils.CreateValidationError("destination is required")
	}
	if utils.IsBlank(req.FromCity) {
		return utils.CreateValidationError("from city is required")
	}
	if !utils.IsValidPhone(req.Phone) {
		return utils.CreateValidationError("phone must be exactly 10 digits")
	}
	if req.Travellers <= 0 {
		return utils.CreateValidationError("traveller count must be a positive number")
	}
	return nil
}

// NewInquiry builds a fresh, unassigned inquiry from a validated submission.
// Creation is a single atomic insert, so a failed submit can simply be retried.
func NewInquiry(req models.SubmitInquiryRequest, now time.Time) models.Inquiry {
	return models.Inquiry{
		Name:        req.Name,
		Phone:       req.Phone,
		Destination: req.Destination,
		FromCity:    req.FromCity,
		Travellers:  req.Travellers,
		Status:      models.InquiryStatusFRESH,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// ApplyAssignment hands the inquiry to an advisor. Assignment and the status
// reset to fresh happen together; assigned_at is overwritten unconditionally,
// including on re-assignment to the same advisor.
func ApplyAssignment(inquiry *models.Inquiry, advisorID string, now time.Time) {
	inquiry.AssignedTo = advisorID
	inquiry.AssignedAt = &now
	inquiry.Status = models.InquiryStatusFRESH
	inquiry.UpdatedAt = now
}

// ApplyStatusUpdate moves the inquiry to a new status and stamps the
// follow-up bookkeeping fields. Notes are kept only when supplied.
func ApplyStatusUpdate(inquiry *models.Inquiry, status models.InquiryStatus, notes string, now time.Time) {
	inquiry.Status = status
	inquiry.LastFollowUp = &now
	if notes != "" {
		inquiry.FollowUpNotes = notes
	}
	inquiry.UpdatedAt = now
}

// ApplyCommentFollowUp records the effect of a comment that schedules the
// next follow-up: the date is set/refreshed and the inquiry moves to
// follow_up. A comment without a date leaves the inquiry untouched.
func ApplyCommentFollowUp(inquiry *models.Inquiry, nextFollowUp *time.Time, now time.Time) {
	if nextFollowUp == nil {
		return
	}
	inquiry.NextFollowUpDate = nextFollowUp
	inquiry.Status = models.InquiryStatusFOLLOW_UP
	inquiry.UpdatedAt = now
}
