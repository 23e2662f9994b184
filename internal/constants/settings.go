package constants

const (
	// Booking window settings
	SettingMaxDaysToBook        = "max_days_to_book"
	SettingMinDaysToBook        = "min_days_to_book"
	SettingDelayBetweenMeetings = "delay_between_meetings"
	SettingTimezone             = "timezone"

	// Default Settings Values
	DefaultMaxDaysToBook        = 30
	DefaultMinDaysToBook        = 1
	DefaultDelayBetweenMeetings = 0
	DefaultTimezone             = "Local" // Use system local timezone by default

	// DefaultIntervalStart and DefaultIntervalEnd seed a newly enabled day.
	DefaultIntervalStart = "09:00"
	DefaultIntervalEnd   = "17:00"
)
