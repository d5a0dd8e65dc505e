package service

import (
	"testing"
	"time"

	"github.com/WanderstayHolidays/crm_end/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func followUpRow(advisorID, destination string, due *time.Time) models.InquiryView {
	return models.InquiryView{
		Inquiry: models.Inquiry{
			Name:             "Test Lead",
			Destination:      destination,
			AssignedTo:       advisorID,
			NextFollowUpDate: due,
			Status:           models.InquiryStatusFOLLOW_UP,
		},
	}
}

func TestMatchesStatusFilter(t *testing.T) {
	assert.True(t, MatchesStatusFilter(models.InquiryStatusHOT, ""))
	assert.True(t, MatchesStatusFilter(models.InquiryStatusHOT, "all"))
	assert.True(t, MatchesStatusFilter(models.InquiryStatusHOT, "hot"))
	assert.False(t, MatchesStatusFilter(models.InquiryStatusHOT, "cold"))
}

func TestIsOverdue(t *testing.T) {
	now := time.Now()

	assert.False(t, IsOverdue(nil, now))

	past := now.Add(-time.Second)
	assert.True(t, IsOverdue(&past, now))

	future := now.Add(time.Second)
	assert.False(t, IsOverdue(&future, now))

	// The exact instant is not yet overdue.
	assert.False(t, IsOverdue(&now, now))
}

func TestIsUnassigned(t *testing.T) {
	inquiry := models.Inquiry{}
	assert.True(t, IsUnassigned(inquiry))

	inquiry.AssignedTo = "advisor-1"
	assert.False(t, IsUnassigned(inquiry))
}

func TestSameCalendarDay(t *testing.T) {
	morning := time.Date(2026, 6, 15, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 6, 15, 23, 59, 0, 0, time.UTC)
	nextDay := time.Date(2026, 6, 16, 0, 0, 1, 0, time.UTC)

	assert.True(t, SameCalendarDay(morning, evening))
	assert.False(t, SameCalendarDay(evening, nextDay))
}

func TestMatchesFollowUpFiltersRequiresSchedule(t *testing.T) {
	row := followUpRow("advisor-1", "Bali, Indonesia", nil)
	assert.False(t, MatchesFollowUpFilters(row.Inquiry, FollowUpFilters{}))
}

func TestMatchesFollowUpFiltersDestinationSubstring(t *testing.T) {
	due := time.Now()
	row := followUpRow("advisor-1", "Bali, Indonesia", &due)

	assert.True(t, MatchesFollowUpFilters(row.Inquiry, FollowUpFilters{Destination: "bali"}))
	assert.True(t, MatchesFollowUpFilters(row.Inquiry, FollowUpFilters{Destination: "INDONESIA"}))
	assert.False(t, MatchesFollowUpFilters(row.Inquiry, FollowUpFilters{Destination: "kerala"}))
}

func TestMatchesFollowUpFiltersCombineWithAnd(t *testing.T) {
	due := time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC)
	sameDay := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)
	otherDay := time.Date(2026, 6, 16, 0, 0, 0, 0, time.UTC)
	row := followUpRow("advisor-1", "Bali, Indonesia", &due)

	// All predicates match.
	assert.True(t, MatchesFollowUpFilters(row.Inquiry, FollowUpFilters{
		Date:        &sameDay,
		Destination: "bali",
		AdvisorID:   "advisor-1",
	}))

	// One failing predicate rejects the row.
	assert.False(t, MatchesFollowUpFilters(row.Inquiry, FollowUpFilters{
		Date:        &otherDay,
		Destination: "bali",
		AdvisorID:   "advisor-1",
	}))
	assert.False(t, MatchesFollowUpFilters(row.Inquiry, FollowUpFilters{
		Date:        &sameDay,
		Destination: "bali",
		AdvisorID:   "advisor-2",
	}))
}

func TestFilterFollowUpsStampsOverdue(t *testing.T) {
	now := time.Now()
	past := now.Add(-2 * time.Hour)
	future := now.Add(2 * time.Hour)

	rows := []models.InquiryView{
		followUpRow("advisor-1", "Bali, Indonesia", &past),
		followUpRow("advisor-1", "Kerala, India", &future),
		followUpRow("advisor-1", "Goa, India", nil),
	}

	filtered := FilterFollowUps(rows, FollowUpFilters{}, now)

	require.Len(t, filtered, 2)
	assert.True(t, filtered[0].Overdue)
	assert.False(t, filtered[1].Overdue)
}
