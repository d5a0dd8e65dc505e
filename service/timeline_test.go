package service

import (
	"testing"
	"time"

	"github.com/WanderstayHolidays/crm_end/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statusChange(status string, at time.Time) models.InquiryActivity {
	return models.InquiryActivity{
		InquiryID:    "inq-1",
		UserID:       "user-1",
		ActivityType: models.ActivityStatusChange,
		NewValue:     status,
		CreatedAt:    at,
	}
}

func TestComputeStatusTimelineEmpty(t *testing.T) {
	timeline := ComputeStatusTimeline(nil)
	assert.Empty(t, timeline)
}

func TestComputeStatusTimelineSingleEntryIsOpenEnded(t *testing.T) {
	now := time.Now()
	timeline := ComputeStatusTimeline([]models.InquiryActivity{
		statusChange("fresh", now),
	})

	require.Len(t, timeline, 1)
	assert.Equal(t, models.InquiryStatusFRESH, timeline[0].Status)
	assert.Nil(t, timeline[0].HoursInState)
	assert.Equal(t, "Current status", timeline[0].Duration)
	assert.False(t, timeline[0].LongDuration)
}

func TestComputeStatusTimelineDurations(t *testing.T) {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	entries := []models.InquiryActivity{
		statusChange("fresh", base),
		statusChange("follow_up", base.Add(30*time.Minute)),
		statusChange("hot", base.Add(30*time.Minute+5*time.Hour)),
		statusChange("itinerary", base.Add(30*time.Minute+5*time.Hour+72*time.Hour)),
	}

	timeline := ComputeStatusTimeline(entries)
	require.Len(t, timeline, 4)

	// One point per ledger entry, in order.
	assert.Equal(t, models.InquiryStatusFRESH, timeline[0].Status)
	assert.Equal(t, models.InquiryStatusFOLLOW_UP, timeline[1].Status)
	assert.Equal(t, models.InquiryStatusHOT, timeline[2].Status)
	assert.Equal(t, models.InquiryStatusITINERARY, timeline[3].Status)

	require.NotNil(t, timeline[0].HoursInState)
	assert.InDelta(t, 0.5, *timeline[0].HoursInState, 0.001)
	assert.Equal(t, "30 minutes", timeline[0].Duration)
	assert.False(t, timeline[0].LongDuration)

	require.NotNil(t, timeline[1].HoursInState)
	assert.Equal(t, "5.0 hours", timeline[1].Duration)

	require.NotNil(t, timeline[2].HoursInState)
	assert.Equal(t, "3 days 0 hours", timeline[2].Duration)
	assert.True(t, timeline[2].LongDuration)

	// Final point is the current status.
	assert.Nil(t, timeline[3].HoursInState)
	assert.Equal(t, "Current status", timeline[3].Duration)
}

func TestComputeStatusTimelineMissingNewValue(t *testing.T) {
	entry := statusChange("", time.Now())
	timeline := ComputeStatusTimeline([]models.InquiryActivity{entry})

	require.Len(t, timeline, 1)
	assert.Equal(t, models.InquiryStatus("unknown"), timeline[0].Status)
}

func TestFormatStatusDuration(t *testing.T) {
	tests := []struct {
		hours    float64
		expected string
	}{
		{0, "0 minutes"},
		{0.25, "15 minutes"},
		{0.99, "59 minutes"},
		{1, "1.0 hours"},
		{2.53, "2.5 hours"},
		{23.9, "23.9 hours"},
		{24, "1 days 0 hours"},
		{30, "1 days 6 hours"},
		{49.5, "2 days 2 hours"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatStatusDuration(tt.hours), "hours=%v", tt.hours)
	}
}

func TestLongDurationThreshold(t *testing.T) {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	// Exactly 48h is not flagged, just over is.
	exact := ComputeStatusTimeline([]models.InquiryActivity{
		statusChange("fresh", base),
		statusChange("hot", base.Add(48*time.Hour)),
	})
	require.Len(t, exact, 2)
	assert.False(t, exact[0].LongDuration)

	over := ComputeStatusTimeline([]models.InquiryActivity{
		statusChange("fresh", base),
		statusChange("hot", base.Add(48*time.Hour+time.Minute)),
	})
	require.Len(t, over, 2)
	assert.True(t, over[0].LongDuration)
}
