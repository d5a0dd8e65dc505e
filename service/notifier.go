package service

import (
	"context"
	"sync"
	"time"

	"github.com/WanderstayHolidays/crm_end/models"
	"github.com/WanderstayHolidays/crm_end/repository"
	"github.com/WanderstayHolidays/crm_end/utils"

	"go.mongodb.org/mongo-driver/bson"
)

// OverdueFetcher loads the overdue follow-ups owned by one advisor.
type OverdueFetcher func(ctx context.Context, advisorID string, now time.Time) ([]models.Inquiry, error)

// SettingsFetcher loads the current notification settings.
type SettingsFetcher func(ctx context.Context) (models.NotificationSettings, error)

// FollowUpReminder is one pending reminder in an advisor's feed.
type FollowUpReminder struct {
	InquiryID    string    `json:"inquiry_id"`
	CustomerName string    `json:"customer_name"`
	Destination  string    `json:"destination"`
	DueAt        time.Time `json:"due_at"`
	RaisedAt     time.Time `json:"raised_at"`
}

type notifierSession struct {
	cancel    context.CancelFunc
	reminders []FollowUpReminder
}

// NotifierManager runs one reminder poller per signed-in advisor. Each session
// checks immediately on start, then on a ticker at the configured frequency.
// Reminders accumulate in an in-memory feed until drained; the same overdue
// inquiry is re-reported on every cycle until its follow-up is handled.
type NotifierManager struct {
	mu            sync.Mutex
	sessions      map[string]*notifierSession
	fetchOverdue  OverdueFetcher
	fetchSettings SettingsFetcher
}

// NewNotifierManager builds a manager with the given fetchers. Pass nil to use
// the MongoDB-backed defaults.
func NewNotifierManager(fetchOverdue OverdueFetcher, fetchSettings SettingsFetcher) *NotifierManager {
	if fetchOverdue == nil {
		fetchOverdue = FetchOverdueFollowUps
	}
	if fetchSettings == nil {
		fetchSettings = FetchNotificationSettings
	}
	return &NotifierManager{
		sessions:      make(map[string]*notifierSession),
		fetchOverdue:  fetchOverdue,
		fetchSettings: fetchSettings,
	}
}

// StartForAdvisor begins (or restarts) the reminder poller for one advisor.
// When notifications are disabled in the admin settings this is a no-op and
// any running session for the advisor is stopped.
func (m *NotifierManager) StartForAdvisor(advisorID string) {
	settings, err := m.fetchSettings(context.Background())
	if err != nil {
		utils.LogError(err, map[string]interface{}{"advisorId": advisorID}, "loading notification settings failed")
		settings = models.DefaultNotificationSettings()
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if existing, ok := m.sessions[advisorID]; ok {
		existing.cancel()
		delete(m.sessions, advisorID)
	}

	if !settings.Enabled {
		utils.Logger.Info().Str("advisorId", advisorID).Msg("follow-up notifications disabled, poller not started")
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	session := &notifierSession{cancel: cancel}
	m.sessions[advisorID] = session

	interval := time.Duration(settings.FrequencyHours) * time.Hour
	go m.runSession(ctx, advisorID, interval)

	utils.Logger.Info().
		Str("advisorId", advisorID).
		Int("frequencyHours", settings.FrequencyHours).
		Msg("follow-up reminder poller started")
}

// StopForAdvisor tears down the advisor's poller and discards any undrained
// reminders.
func (m *NotifierManager) StopForAdvisor(advisorID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if session, ok := m.sessions[advisorID]; ok {
		session.cancel()
		delete(m.sessions, advisorID)
		utils.Logger.Info().Str("advisorId", advisorID).Msg("follow-up reminder poller stopped")
	}
}

// DrainReminders returns and clears the advisor's pending reminder feed.
func (m *NotifierManager) DrainReminders(advisorID string) []FollowUpReminder {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[advisorID]
	if !ok || len(session.reminders) == 0 {
		return []FollowUpReminder{}
	}

	reminders := session.reminders
	session.reminders = nil
	return reminders
}

// ActiveSessionCount reports the number of running pollers.
func (m *NotifierManager) ActiveSessionCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Shutdown stops every running poller.
func (m *NotifierManager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for advisorID, session := range m.sessions {
		session.cancel()
		delete(m.sessions, advisorID)
	}
	utils.Logger.Info().Msg("all follow-up reminder pollers stopped")
}

func (m *NotifierManager) runSession(ctx context.Context, advisorID string, interval time.Duration) {
	m.checkOnce(ctx, advisorID)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.checkOnce(ctx, advisorID)
		}
	}
}

func (m *NotifierManager) checkOnce(ctx context.Context, advisorID string) {
	now := time.Now()
	overdue, err := m.fetchOverdue(ctx, advisorID, now)
	if err != nil {
		if ctx.Err() == nil {
			utils.LogError(err, map[string]interface{}{"advisorId": advisorID}, "overdue follow-up check failed")
		}
		return
	}
	if len(overdue) == 0 {
		return
	}

	reminders := make([]FollowUpReminder, 0, len(overdue))
	for _, inquiry := range overdue {
		reminders = append(reminders, FollowUpReminder{
			InquiryID:    inquiry.ID.Hex(),
			CustomerName: inquiry.Name,
			Destination:  inquiry.Destination,
			DueAt:        *inquiry.NextFollowUpDate,
			RaisedAt:     now,
		})
	}

	m.mu.Lock()
	if session, ok := m.sessions[advisorID]; ok {
		session.reminders = append(session.reminders, reminders...)
	}
	m.mu.Unlock()

	utils.Logger.Debug().
		Str("advisorId", advisorID).
		Int("count", len(reminders)).
		Msg("overdue follow-up reminders raised")
}

// FetchOverdueFollowUps loads the advisor's inquiries whose scheduled
// follow-up date has passed.
func FetchOverdueFollowUps(ctx context.Context, advisorID string, now time.Time) ([]models.Inquiry, error) {
	filter := bson.M{
		"assigned_to":         advisorID,
		"next_follow_up_date": bson.M{"$ne": nil, "$lt": now},
	}

	cursor, err := repository.Collection(repository.InquiriesCollection).Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var inquiries []models.Inquiry
	if err := cursor.All(ctx, &inquiries); err != nil {
		return nil, err
	}
	return inquiries, nil
}

// FetchNotificationSettings loads the notification settings rows and folds
// them into a typed value, falling back to defaults for missing keys.
func FetchNotificationSettings(ctx context.Context) (models.NotificationSettings, error) {
	cursor, err := repository.Collection(repository.AdminSettingsCollection).Find(ctx, bson.M{
		"setting_key": bson.M{"$in": []string{
			models.SettingToastEnabled,
			models.SettingToastFrequencyHours,
		}},
	})
	if err != nil {
		return models.DefaultNotificationSettings(), err
	}
	defer cursor.Close(ctx)

	var settings []models.AdminSetting
	if err := cursor.All(ctx, &settings); err != nil {
		return models.DefaultNotificationSettings(), err
	}

	return models.ParseNotificationSettings(settings), nil
}
