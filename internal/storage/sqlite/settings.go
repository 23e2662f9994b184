package sqlite

import (
	"fmt"

	"github.com/meetly-app/meetly-cli/internal/constants"
	"github.com/meetly-app/meetly-cli/internal/models"
)

// GetUserSettings returns the cached booking-window preferences, falling
// back to defaults when nothing has been synced yet.
func (s *Store) GetUserSettings() (models.UserSettings, error) {
	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return models.UserSettings{}, err
	}
	defer rows.Close()

	settings := models.UserSettings{
		MaxDaysToBook:        constants.DefaultMaxDaysToBook,
		MinDaysToBook:        constants.DefaultMinDaysToBook,
		DelayBetweenMeetings: constants.DefaultDelayBetweenMeetings,
		Timezone:             constants.DefaultTimezone,
	}
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.UserSettings{}, err
		}
		switch key {
		case constants.SettingMaxDaysToBook:
			if _, err := fmt.Sscanf(value, "%d", &settings.MaxDaysToBook); err != nil {
				return models.UserSettings{}, fmt.Errorf("parsing max_days_to_book: %w", err)
			}
		case constants.SettingMinDaysToBook:
			if _, err := fmt.Sscanf(value, "%d", &settings.MinDaysToBook); err != nil {
				return models.UserSettings{}, fmt.Errorf("parsing min_days_to_book: %w", err)
			}
		case constants.SettingDelayBetweenMeetings:
			if _, err := fmt.Sscanf(value, "%d", &settings.DelayBetweenMeetings); err != nil {
				return models.UserSettings{}, fmt.Errorf("parsing delay_between_meetings: %w", err)
			}
		case constants.SettingTimezone:
			settings.Timezone = value
		}
	}
	return settings, rows.Err()
}

// SaveUserSettings replaces the cached booking-window preferences.
func (s *Store) SaveUserSettings(settings models.UserSettings) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	if _, err := stmt.Exec(constants.SettingMaxDaysToBook, fmt.Sprintf("%d", settings.MaxDaysToBook)); err != nil {
		return err
	}
	if _, err := stmt.Exec(constants.SettingMinDaysToBook, fmt.Sprintf("%d", settings.MinDaysToBook)); err != nil {
		return err
	}
	if _, err := stmt.Exec(constants.SettingDelayBetweenMeetings, fmt.Sprintf("%d", settings.DelayBetweenMeetings)); err != nil {
		return err
	}
	if _, err := stmt.Exec(constants.SettingTimezone, settings.Timezone); err != nil {
		return err
	}
	return tx.Commit()
}
