package models

import (
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Setting keys used by the follow-up notifier.
const (
	SettingToastEnabled           = "toast_enabled"
	SettingToastFrequencyHours    = "follow_up_toast_frequency_hours"
	DefaultNotificationFrequency  = 2
	MinNotificationFrequencyHours = 1
	MaxNotificationFrequencyHours = 24
)

// AdminSetting is a key/value feature toggle or tunable.
// Writing an existing key overwrites its value (upsert semantics).
type AdminSetting struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	SettingKey   string             `bson:"setting_key" json:"setting_key"`
	SettingValue interface{}        `bson:"setting_value" json:"setting_value"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}

// NotificationSettings is the typed view over the stored key/value pairs.
// Absent or malformed keys fall back to the defaults.
type NotificationSettings struct {
	Enabled        bool `json:"notificationsEnabled"`
	FrequencyHours int  `json:"notificationFrequencyHours"`
}

// DefaultNotificationSettings returns the settings used when nothing is stored.
func DefaultNotificationSettings() NotificationSettings {
	return NotificationSettings{Enabled: true, FrequencyHours: DefaultNotificationFrequency}
}

// ParseNotificationSettings builds the typed settings from raw rows.
// An explicit stored false disables notifications; unparseable values keep
// the defaults.
func ParseNotificationSettings(rows []AdminSetting) NotificationSettings {
	settings := DefaultNotificationSettings()
	for _, row := range rows {
		switch row.SettingKey {
		case SettingToastEnabled:
			if enabled, ok := asBool(row.SettingValue); ok {
				settings.Enabled = enabled
			}
		case SettingToastFrequencyHours:
			if hours, ok := asInt(row.SettingValue); ok &&
				hours >= MinNotificationFrequencyHours && hours <= MaxNotificationFrequencyHours {
				settings.FrequencyHours = hours
			}
		}
	}
	return settings
}

// asBool coerces the loosely-typed stored value. The original store kept
// booleans both as true/false and as "true"/"false" strings.
func asBool(value interface{}) (bool, bool) {
	switch v := value.(type) {
	case bool:
		return v, true
	case string:
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return false, false
		}
		return parsed, true
	}
	return false, false
}

// asInt coerces the stored value, accepting the numeric types the BSON
// decoder may produce plus the original string representation.
func asInt(value interface{}) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	case string:
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return 0, false
		}
		return parsed, true
	}
	return 0, false
}

// UpdateNotificationSettingsRequest updates the notifier configuration.
type UpdateNotificationSettingsRequest struct {
	NotificationsEnabled       *bool `json:"notificationsEnabled"`
	NotificationFrequencyHours *int  `json:"notificationFrequencyHours"`
}
