package service

import (
	"fmt"
	"math"

	"github.com/WanderstayHolidays/crm_end/models"
)

// LongDurationThresholdHours marks timeline steps worth highlighting in the
// admin console. Display concern only, not a business rule.
const LongDurationThresholdHours = 48.0

// ComputeStatusTimeline derives the status timeline from the inquiry's
// status_change ledger entries, which must be ordered ascending by creation
// time. Each point's duration runs until the next change; the final point is
// open-ended (the inquiry is still in that status). An empty ledger yields an
// empty timeline, which is a valid state, not an error.
func ComputeStatusTimeline(entries []models.InquiryActivity) []models.StatusTimelinePoint {
	timeline := make([]models.StatusTimelinePoint, 0, len(entries))

	for i, entry := range entries {
		status := models.InquiryStatus(entry.NewValue)
		if entry.NewValue == "" {
			status = "unknown"
		}

		point := models.StatusTimelinePoint{
			Status:    status,
			ChangedAt: entry.CreatedAt,
			ChangedBy: entry.UserID,
			Duration:  "Current status",
		}

		if i+1 < len(entries) {
			hours := entries[i+1].CreatedAt.Sub(entry.CreatedAt).Hours()
			point.HoursInState = &hours
			point.Duration = FormatStatusDuration(hours)
			point.LongDuration = hours > LongDurationThresholdHours
		}

		timeline = append(timeline, point)
	}

	return timeline
}

// FormatStatusDuration renders an hour count for display: minutes below one
// hour, hours to one decimal below a day, days plus hours beyond that.
func FormatStatusDuration(hours float64) string {
	if hours < 1 {
		minutes := int(math.Round(hours * 60))
		return fmt.Sprintf("%d minutes", minutes)
	}
	if hours < 24 {
		return fmt.Sprintf("%.1f hours", math.Round(hours*10)/10)
	}
	days := int(hours / 24)
	remainingHours := int(math.Round(math.Mod(hours, 24)))
	return fmt.Sprintf("%d days %d hours", days, remainingHours)
}
