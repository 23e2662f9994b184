package models

// WeeklySlot is one contiguous interval of availability on one weekday.
// Day uses the canonical Sunday=0..Saturday=6 convention everywhere above
// the API boundary. Times are HH:MM wall-clock strings: device-local while
// held in the edit model, UTC only on the wire.
type WeeklySlot struct {
	Day       int    `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// TimeInterval is a start/end pair within a single day.
type TimeInterval struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Interval returns the slot's times without the day.
func (s WeeklySlot) Interval() TimeInterval {
	return TimeInterval{Start: s.StartTime, End: s.EndTime}
}
