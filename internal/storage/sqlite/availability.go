package sqlite

import (
	"database/sql"

	"github.com/meetly-app/meetly-cli/internal/models"
)

// GetWeeklySlots returns the cached weekly schedule in insertion order.
func (s *Store) GetWeeklySlots() ([]models.WeeklySlot, error) {
	rows, err := s.db.Query("SELECT day, start_time, end_time FROM weekly_slots ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var slots []models.WeeklySlot
	for rows.Next() {
		var slot models.WeeklySlot
		if err := rows.Scan(&slot.Day, &slot.StartTime, &slot.EndTime); err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}
	return slots, rows.Err()
}

// SaveWeeklySlots replaces the cached weekly schedule wholesale.
func (s *Store) SaveWeeklySlots(slots []models.WeeklySlot) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM weekly_slots"); err != nil {
		return err
	}

	stmt, err := tx.Prepare("INSERT INTO weekly_slots (day, start_time, end_time) VALUES (?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, slot := range slots {
		if _, err := stmt.Exec(slot.Day, slot.StartTime, slot.EndTime); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// GetExceptions returns the cached exception records in insertion order.
func (s *Store) GetExceptions() ([]models.ExceptionDate, error) {
	rows, err := s.db.Query("SELECT id, local_id, date, start_time, end_time, is_available FROM exception_dates ORDER BY rowid_ord")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exceptions []models.ExceptionDate
	for rows.Next() {
		var record models.ExceptionDate
		var start, end sql.NullString
		var available int
		if err := rows.Scan(&record.ID, &record.LocalID, &record.Date, &start, &end, &available); err != nil {
			return nil, err
		}
		if start.Valid {
			record.StartTime = &start.String
		}
		if end.Valid {
			record.EndTime = &end.String
		}
		record.IsAvailable = available != 0
		exceptions = append(exceptions, record)
	}
	return exceptions, rows.Err()
}

// SaveExceptions replaces the cached exception records wholesale.
func (s *Store) SaveExceptions(exceptions []models.ExceptionDate) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM exception_dates"); err != nil {
		return err
	}

	stmt, err := tx.Prepare("INSERT INTO exception_dates (id, local_id, date, start_time, end_time, is_available) VALUES (?, ?, ?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, record := range exceptions {
		available := 0
		if record.IsAvailable {
			available = 1
		}
		var start, end any
		if record.StartTime != nil {
			start = *record.StartTime
		}
		if record.EndTime != nil {
			end = *record.EndTime
		}
		if _, err := stmt.Exec(record.ID, record.LocalID, record.Date, start, end, available); err != nil {
			return err
		}
	}
	return tx.Commit()
}
