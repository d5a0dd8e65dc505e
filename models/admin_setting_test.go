package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultNotificationSettings(t *testing.T) {
	settings := DefaultNotificationSettings()
	assert.True(t, settings.Enabled)
	assert.Equal(t, 2, settings.FrequencyHours)
}

func TestParseNotificationSettingsEmpty(t *testing.T) {
	settings := ParseNotificationSettings(nil)
	assert.Equal(t, DefaultNotificationSettings(), settings)
}

func TestParseNotificationSettingsExplicitFalseDisables(t *testing.T) {
	settings := ParseNotificationSettings([]AdminSetting{
		{SettingKey: SettingToastEnabled, SettingValue: false},
	})
	assert.False(t, settings.Enabled)
}

func TestParseNotificationSettingsStringCoercions(t *testing.T) {
	settings := ParseNotificationSettings([]AdminSetting{
		{SettingKey: SettingToastEnabled, SettingValue: "false"},
		{SettingKey: SettingToastFrequencyHours, SettingValue: "6"},
	})
	assert.False(t, settings.Enabled)
	assert.Equal(t, 6, settings.FrequencyHours)
}

func TestParseNotificationSettingsNumericTypes(t *testing.T) {
	// The BSON decoder may hand back any of these.
	for _, value := range []interface{}{4, int32(4), int64(4), float64(4)} {
		settings := ParseNotificationSettings([]AdminSetting{
			{SettingKey: SettingToastFrequencyHours, SettingValue: value},
		})
		assert.Equal(t, 4, settings.FrequencyHours, "value %T", value)
	}
}

func TestParseNotificationSettingsFrequencyRange(t *testing.T) {
	// Out-of-range or garbage values keep the default.
	for _, value := range []interface{}{0, 25, -3, "soon", nil} {
		settings := ParseNotificationSettings([]AdminSetting{
			{SettingKey: SettingToastFrequencyHours, SettingValue: value},
		})
		assert.Equal(t, DefaultNotificationFrequency, settings.FrequencyHours, "value %v", value)
	}

	// Boundaries are inclusive.
	for _, value := range []int{1, 24} {
		settings := ParseNotificationSettings([]AdminSetting{
			{SettingKey: SettingToastFrequencyHours, SettingValue: value},
		})
		assert.Equal(t, value, settings.FrequencyHours)
	}
}

func TestParseNotificationSettingsGarbageEnabledKeepsDefault(t *testing.T) {
	settings := ParseNotificationSettings([]AdminSetting{
		{SettingKey: SettingToastEnabled, SettingValue: "maybe"},
	})
	assert.True(t, settings.Enabled)
}

func TestIsSelectableInquiryStatus(t *testing.T) {
	selectable := []InquiryStatus{
		InquiryStatusFRESH, InquiryStatusASSIGNED, InquiryStatusFOLLOW_UP,
		InquiryStatusHOT, InquiryStatusCOLD, InquiryStatusREQUIREMENT,
		InquiryStatusITINERARY,
	}
	for _, status := range selectable {
		assert.True(t, IsSelectableInquiryStatus(status), string(status))
	}

	// Legacy values are readable history, never a target state.
	assert.True(t, IsValidInquiryStatus(InquiryStatusPENDING_ASSIGNMENT))
	assert.True(t, IsValidInquiryStatus(InquiryStatusNEEDS_FOLLOW_UP))
	assert.False(t, IsSelectableInquiryStatus(InquiryStatusPENDING_ASSIGNMENT))
	assert.False(t, IsSelectableInquiryStatus(InquiryStatusNEEDS_FOLLOW_UP))
	assert.False(t, IsSelectableInquiryStatus(InquiryStatus("booked")))
}
