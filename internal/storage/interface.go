package storage

import "github.com/meetly-app/meetly-cli/internal/models"

// Provider is the device-local snapshot cache. It holds the last server
// state the client fetched: the weekly schedule, the exception records, and
// the user settings. Screens render from it when offline, and the
// reconciliation baseline survives restarts through it.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Weekly schedule snapshot
	GetWeeklySlots() ([]models.WeeklySlot, error)
	SaveWeeklySlots([]models.WeeklySlot) error

	// Exception snapshot
	GetExceptions() ([]models.ExceptionDate, error)
	SaveExceptions([]models.ExceptionDate) error

	// User settings snapshot
	GetUserSettings() (models.UserSettings, error)
	SaveUserSettings(models.UserSettings) error

	// Sync bookkeeping
	GetLastSyncedAt() (string, error)
	SetLastSyncedAt(timestamp string) error

	// Utils
	GetConfigPath() string
}
