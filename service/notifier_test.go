package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/WanderstayHolidays/crm_end/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func overdueInquiry(name string, due time.Time) models.Inquiry {
	return models.Inquiry{
		ID:               primitive.NewObjectID(),
		Name:             name,
		Destination:      "Bali, Indonesia",
		Status:           models.InquiryStatusFOLLOW_UP,
		NextFollowUpDate: &due,
	}
}

func enabledSettings(ctx context.Context) (models.NotificationSettings, error) {
	return models.NotificationSettings{Enabled: true, FrequencyHours: 1}, nil
}

func disabledSettings(ctx context.Context) (models.NotificationSettings, error) {
	return models.NotificationSettings{Enabled: false, FrequencyHours: 1}, nil
}

func TestNotifierDisabledIsNoOp(t *testing.T) {
	var calls atomic.Int32
	fetch := func(ctx context.Context, advisorID string, now time.Time) ([]models.Inquiry, error) {
		calls.Add(1)
		return nil, nil
	}

	manager := NewNotifierManager(fetch, disabledSettings)
	manager.StartForAdvisor("advisor-1")

	assert.Equal(t, 0, manager.ActiveSessionCount())
	assert.Empty(t, manager.DrainReminders("advisor-1"))
	assert.Equal(t, int32(0), calls.Load())
}

func TestNotifierRaisesRemindersOnStart(t *testing.T) {
	due := time.Now().Add(-time.Hour)
	fetch := func(ctx context.Context, advisorID string, now time.Time) ([]models.Inquiry, error) {
		return []models.Inquiry{overdueInquiry("Priya Sharma", due)}, nil
	}

	manager := NewNotifierManager(fetch, enabledSettings)
	manager.StartForAdvisor("advisor-1")
	defer manager.Shutdown()

	assert.Equal(t, 1, manager.ActiveSessionCount())

	var reminders []FollowUpReminder
	require.Eventually(t, func() bool {
		reminders = manager.DrainReminders("advisor-1")
		return len(reminders) == 1
	}, 2*time.Second, 10*time.Millisecond)

	assert.Equal(t, "Priya Sharma", reminders[0].CustomerName)
	assert.Equal(t, "Bali, Indonesia", reminders[0].Destination)
	assert.Equal(t, due, reminders[0].DueAt)

	// Drained feed stays empty until the next cycle.
	assert.Empty(t, manager.DrainReminders("advisor-1"))
}

func TestNotifierStopDiscardsSession(t *testing.T) {
	fetch := func(ctx context.Context, advisorID string, now time.Time) ([]models.Inquiry, error) {
		return []models.Inquiry{overdueInquiry("Lead", time.Now().Add(-time.Minute))}, nil
	}

	manager := NewNotifierManager(fetch, enabledSettings)
	manager.StartForAdvisor("advisor-1")

	require.Eventually(t, func() bool {
		manager.mu.Lock()
		defer manager.mu.Unlock()
		session, ok := manager.sessions["advisor-1"]
		return ok && len(session.reminders) > 0
	}, 2*time.Second, 10*time.Millisecond)

	manager.StopForAdvisor("advisor-1")
	assert.Equal(t, 0, manager.ActiveSessionCount())
	assert.Empty(t, manager.DrainReminders("advisor-1"))
}

func TestNotifierRestartReplacesSession(t *testing.T) {
	fetch := func(ctx context.Context, advisorID string, now time.Time) ([]models.Inquiry, error) {
		return nil, nil
	}

	manager := NewNotifierManager(fetch, enabledSettings)
	manager.StartForAdvisor("advisor-1")
	manager.StartForAdvisor("advisor-1")
	defer manager.Shutdown()

	assert.Equal(t, 1, manager.ActiveSessionCount())
}

func TestNotifierSettingsFailureFallsBackToDefaults(t *testing.T) {
	fetch := func(ctx context.Context, advisorID string, now time.Time) ([]models.Inquiry, error) {
		return nil, nil
	}
	failingSettings := func(ctx context.Context) (models.NotificationSettings, error) {
		return models.NotificationSettings{}, assert.AnError
	}

	manager := NewNotifierManager(fetch, failingSettings)
	manager.StartForAdvisor("advisor-1")
	defer manager.Shutdown()

	// Defaults keep notifications on.
	assert.Equal(t, 1, manager.ActiveSessionCount())
}

func TestNotifierShutdownStopsEverySession(t *testing.T) {
	fetch := func(ctx context.Context, advisorID string, now time.Time) ([]models.Inquiry, error) {
		return nil, nil
	}

	manager := NewNotifierManager(fetch, enabledSettings)
	manager.StartForAdvisor("advisor-1")
	manager.StartForAdvisor("advisor-2")
	require.Equal(t, 2, manager.ActiveSessionCount())

	manager.Shutdown()
	assert.Equal(t, 0, manager.ActiveSessionCount())
}
