package models

import "github.com/google/uuid"

// ExceptionDate is a single-date override of the weekly pattern.
// ID is assigned by the backend and stays empty for locally-created records
// until they are persisted; LocalID tracks those records in the meantime.
// A nil StartTime/EndTime pair means the exception covers the full day.
type ExceptionDate struct {
	ID          string  `json:"id,omitempty"`
	LocalID     string  `json:"-"`
	Date        string  `json:"date"`
	StartTime   *string `json:"start_time"`
	EndTime     *string `json:"end_time"`
	IsAvailable bool    `json:"is_available"`
}

// NewLocalException creates a not-yet-persisted exception for the given date.
// Pass nil times for a full-day exception.
func NewLocalException(date string, start, end *string, isAvailable bool) ExceptionDate {
	return ExceptionDate{
		LocalID:     uuid.NewString(),
		Date:        date,
		StartTime:   start,
		EndTime:     end,
		IsAvailable: isAvailable,
	}
}

// IsFullDay reports whether the exception has no explicit interval.
func (e ExceptionDate) IsFullDay() bool {
	return e.StartTime == nil || e.EndTime == nil
}

// Persisted reports whether the backend has assigned this record an id.
func (e ExceptionDate) Persisted() bool {
	return e.ID != ""
}
