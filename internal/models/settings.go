package models

// UserSettings represents the booking-window preferences stored server-side
type UserSettings struct {
	MaxDaysToBook        int    `json:"max_days_to_book"`        // furthest out a meeting may be booked, in days
	MinDaysToBook        int    `json:"min_days_to_book"`        // minimum lead time for a booking, in days
	DelayBetweenMeetings int    `json:"delay_between_meetings"`  // buffer between consecutive meetings, in minutes
	Timezone             string `json:"timezone"`                // IANA timezone name (e.g. "America/New_York", or "Local" for system timezone)
}

// UserSettingsPatch carries a partial settings update; nil fields are left unchanged.
type UserSettingsPatch struct {
	MaxDaysToBook        *int    `json:"max_days_to_book,omitempty"`
	MinDaysToBook        *int    `json:"min_days_to_book,omitempty"`
	DelayBetweenMeetings *int    `json:"delay_between_meetings,omitempty"`
	Timezone             *string `json:"timezone,omitempty"`
}

// Apply returns a copy of s with the patch's non-nil fields applied.
func (p UserSettingsPatch) Apply(s UserSettings) UserSettings {
	if p.MaxDaysToBook != nil {
		s.MaxDaysToBook = *p.MaxDaysToBook
	}
	if p.MinDaysToBook != nil {
		s.MinDaysToBook = *p.MinDaysToBook
	}
	if p.DelayBetweenMeetings != nil {
		s.DelayBetweenMeetings = *p.DelayBetweenMeetings
	}
	if p.Timezone != nil {
		s.Timezone = *p.Timezone
	}
	return s
}
