package constants

// SessionState represents the current state of the TUI application
type SessionState int

// CopyKind distinguishes where a copied interval set came from
type CopyKind string

// IntervalField identifies which end of an interval is being edited
type IntervalField string

const (
	AppName           = "meetly"
	DefaultKeyringKey = "api-token"
	DefaultConfigPath = "~/.config/meetly/meetly.db"
	Version           = "v0.3.1"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// TimeFormatWithSeconds covers backend payloads that include seconds (HH:MM:SS)
	TimeFormatWithSeconds = "15:04:05"

	// Display sentinels. Malformed server data renders as these, never as a crash.
	InvalidTimeLabel = "Invalid time"
	InvalidDateLabel = "Invalid date"
	AllDayLabel      = "All day"

	// Interval Field constants
	IntervalFieldStart IntervalField = "start_time"
	IntervalFieldEnd   IntervalField = "end_time"

	// Copy Kind constants
	CopyKindCurrent  CopyKind = "current"
	CopyKindPrevious CopyKind = "previous"

	// Session States
	StateWeek SessionState = iota
	StateEditTime
	StateConfirmCopy
	StateConfirmQuit
)
