package service

import (
	"testing"
	"time"

	"github.com/WanderstayHolidays/crm_end/models"
	"github.com/WanderstayHolidays/crm_end/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSubmission() models.SubmitInquiryRequest {
	return models.SubmitInquiryRequest{
		Name:        "Priya Sharma",
		Phone:       "9876543210",
		Destination: "Bali, Indonesia",
		FromCity:    "Mumbai",
		Travellers:  2,
	}
}

func TestValidateSubmitInquiry(t *testing.T) {
	assert.NoError(t, ValidateSubmitInquiry(validSubmission()))

	tests := []struct {
		name   string
		mutate func(*models.SubmitInquiryRequest)
	}{
		{"blank name", func(r *models.SubmitInquiryRequest) { r.Name = "   " }},
		{"blank destination", func(r *models.SubmitInquiryRequest) { r.Destination = "" }},
		{"blank from city", func(r *models.SubmitInquiryRequest) { r.FromCity = "" }},
		{"short phone", func(r *models.SubmitInquiryRequest) { r.Phone = "98765" }},
		{"long phone", func(r *models.SubmitInquiryRequest) { r.Phone = "98765432101" }},
		{"alpha phone", func(r *models.SubmitInquiryRequest) { r.Phone = "98765abcde" }},
		{"zero travellers", func(r *models.SubmitInquiryRequest) { r.Travellers = 0 }},
		{"negative travellers", func(r *models.SubmitInquiryRequest) { r.Travellers = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validSubmission()
			tt.mutate(&req)

			err := ValidateSubmitInquiry(req)
			require.Error(t, err)

			apiErr, ok := err.(*utils.ApiError)
			require.True(t, ok)
			assert.Equal(t, 400, apiErr.StatusCode)
			assert.Equal(t, "VALIDATION_ERROR", apiErr.ErrorCode)
		})
	}
}

func TestNewInquiryStartsFreshAndUnassigned(t *testing.T) {
	now := time.Now()
	inquiry := NewInquiry(validSubmission(), now)

	assert.Equal(t, models.InquiryStatusFRESH, inquiry.Status)
	assert.Empty(t, inquiry.AssignedTo)
	assert.Nil(t, inquiry.AssignedAt)
	assert.Nil(t, inquiry.NextFollowUpDate)
	assert.Equal(t, now, inquiry.CreatedAt)
	assert.Equal(t, now, inquiry.UpdatedAt)
}

func TestApplyAssignment(t *testing.T) {
	now := time.Now()
	inquiry := NewInquiry(validSubmission(), now.Add(-time.Hour))
	inquiry.Status = models.InquiryStatusHOT

	ApplyAssignment(&inquiry, "advisor-1", now)

	assert.Equal(t, "advisor-1", inquiry.AssignedTo)
	require.NotNil(t, inquiry.AssignedAt)
	assert.Equal(t, now, *inquiry.AssignedAt)
	// Assignment always restarts the lifecycle.
	assert.Equal(t, models.InquiryStatusFRESH, inquiry.Status)
}

func TestApplyAssignmentOverwritesPreviousAdvisor(t *testing.T) {
	first := time.Now().Add(-24 * time.Hour)
	second := time.Now()

	inquiry := NewInquiry(validSubmission(), first)
	ApplyAssignment(&inquiry, "advisor-1", first)
	ApplyAssignment(&inquiry, "advisor-2", second)

	assert.Equal(t, "advisor-2", inquiry.AssignedTo)
	assert.Equal(t, second, *inquiry.AssignedAt)
}

func TestApplyStatusUpdate(t *testing.T) {
	now := time.Now()
	inquiry := NewInquiry(validSubmission(), now.Add(-time.Hour))

	ApplyStatusUpdate(&inquiry, models.InquiryStatusHOT, "ready to book", now)

	assert.Equal(t, models.InquiryStatusHOT, inquiry.Status)
	require.NotNil(t, inquiry.LastFollowUp)
	assert.Equal(t, now, *inquiry.LastFollowUp)
	assert.Equal(t, "ready to book", inquiry.FollowUpNotes)
}

func TestApplyStatusUpdateKeepsNotesWhenEmpty(t *testing.T) {
	now := time.Now()
	inquiry := NewInquiry(validSubmission(), now)
	inquiry.FollowUpNotes = "earlier note"

	ApplyStatusUpdate(&inquiry, models.InquiryStatusCOLD, "", now)

	assert.Equal(t, "earlier note", inquiry.FollowUpNotes)
}

func TestApplyCommentFollowUp(t *testing.T) {
	now := time.Now()
	inquiry := NewInquiry(validSubmission(), now)
	ApplyAssignment(&inquiry, "advisor-1", now)

	// Comment without a date changes nothing.
	ApplyCommentFollowUp(&inquiry, nil, now)
	assert.Equal(t, models.InquiryStatusFRESH, inquiry.Status)
	assert.Nil(t, inquiry.NextFollowUpDate)

	// Comment with a date schedules and moves to follow_up.
	due := now.Add(48 * time.Hour)
	ApplyCommentFollowUp(&inquiry, &due, now)
	assert.Equal(t, models.InquiryStatusFOLLOW_UP, inquiry.Status)
	require.NotNil(t, inquiry.NextFollowUpDate)
	assert.Equal(t, due, *inquiry.NextFollowUpDate)
}

// Exercises the common lifecycle end to end: submit, assign, comment with a
// follow-up date, then close out hot.
func TestInquiryLifecycle(t *testing.T) {
	t0 := time.Date(2026, 5, 10, 10, 0, 0, 0, time.UTC)

	inquiry := NewInquiry(validSubmission(), t0)
	assert.Equal(t, models.InquiryStatusFRESH, inquiry.Status)

	t1 := t0.Add(2 * time.Hour)
	ApplyAssignment(&inquiry, "advisor-7", t1)
	assert.Equal(t, "advisor-7", inquiry.AssignedTo)

	t2 := t1.Add(3 * time.Hour)
	due := t2.Add(24 * time.Hour)
	ApplyCommentFollowUp(&inquiry, &due, t2)
	assert.Equal(t, models.InquiryStatusFOLLOW_UP, inquiry.Status)

	t3 := t2.Add(20 * time.Hour)
	ApplyStatusUpdate(&inquiry, models.InquiryStatusHOT, "quoted Bali package", t3)
	assert.Equal(t, models.InquiryStatusHOT, inquiry.Status)
	assert.Equal(t, t3, *inquiry.LastFollowUp)

	// The schedule set earlier survives the status change.
	assert.Equal(t, due, *inquiry.NextFollowUpDate)
}
