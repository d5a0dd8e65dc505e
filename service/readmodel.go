package service

import (
	"strings"
	"time"

	"github.com/WanderstayHolidays/crm_end/models"
)

// StatusFilterAll is the sentinel that disables the status predicate.
const StatusFilterAll = "all"

// MatchesStatusFilter applies the single-select status filter of the inquiry
// list. The "all" sentinel (or an empty filter) passes everything.
func MatchesStatusFilter(status models.InquiryStatus, filter string) bool {
	if filter == "" || filter == StatusFilterAll {
		return true
	}
	return string(status) == filter
}

// IsOverdue reports whether a scheduled follow-up date has passed. A missing
// date is never overdue.
func IsOverdue(nextFollowUp *time.Time, now time.Time) bool {
	return nextFollowUp != nil && nextFollowUp.Before(now)
}

// IsUnassigned reports whether the inquiry has no owning advisor.
func IsUnassigned(inquiry models.Inquiry) bool {
	return inquiry.AssignedTo == ""
}

// SameCalendarDay compares two instants by calendar day, ignoring
// time-of-day. The follow-up date filter works on days, not exact instants.
func SameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// FollowUpFilters are the combinable dashboard predicates. Zero values
// disable the corresponding predicate; set predicates are AND-ed.
type FollowUpFilters struct {
	Date        *time.Time // calendar-day match on next_follow_up_date
	Destination string     // case-insensitive substring
	AdvisorID   string     // exact match, admin-only filter
}

// MatchesFollowUpFilters applies the combined dashboard filters to one row.
// Rows without a follow-up date never match: the dashboard only shows
// scheduled follow-ups.
func MatchesFollowUpFilters(inquiry models.Inquiry, filters FollowUpFilters) bool {
	if inquiry.NextFollowUpDate == nil {
		return false
	}
	if filters.Date != nil && !SameCalendarDay(*inquiry.NextFollowUpDate, *filters.Date) {
		return false
	}
	if filters.Destination != "" &&
		!strings.Contains(strings.ToLower(inquiry.Destination), strings.ToLower(filters.Destination)) {
		return false
	}
	if filters.AdvisorID != "" && inquiry.AssignedTo != filters.AdvisorID {
		return false
	}
	return true
}

// FilterFollowUps applies the dashboard filters to a row set and stamps the
// overdue flag on the survivors.
func FilterFollowUps(rows []models.InquiryView, filters FollowUpFilters, now time.Time) []models.InquiryView {
	filtered := make([]models.InquiryView, 0, len(rows))
	for _, row := range rows {
		if !MatchesFollowUpFilters(row.Inquiry, filters) {
			continue
		}
		row.Overdue = IsOverdue(row.NextFollowUpDate, now)
		filtered = append(filtered, row)
	}
	return filtered
}
