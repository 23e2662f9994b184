package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/meetly-app/meetly-cli/internal/models"
	"github.com/meetly-app/meetly-cli/internal/timeutil"
)

// GetWeeklyAvailability fetches the recurring weekly schedule. Wire records
// carry UTC clock times and a backend-version-dependent weekday field; the
// result is canonical local-time slots. When the UTC-to-local conversion of
// a slot's start crosses midnight, the slot moves to the adjacent weekday.
func (c *Client) GetWeeklyAvailability(ctx context.Context) ([]models.WeeklySlot, error) {
	body, err := c.do(ctx, http.MethodGet, "/availability/weekly", nil)
	if err != nil {
		return nil, err
	}

	records, err := decodeList(body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode weekly availability: %w", err)
	}

	slots := make([]models.WeeklySlot, 0, len(records))
	for _, record := range records {
		day, ok := resolveCanonicalDay(record)
		if !ok {
			continue
		}
		start, ok := stringField(record, "start_time")
		if !ok {
			continue
		}
		end, ok := stringField(record, "end_time")
		if !ok {
			continue
		}

		refDate := refDateForDay(day)
		localStart, localDate := timeutil.FromUTCTime(refDate, timeutil.NormalizeTimeString(start), c.loc)
		localEnd, _ := timeutil.FromUTCTime(refDate, timeutil.NormalizeTimeString(end), c.loc)

		localDay := day
		if shifted, ok := dayOfDate(localDate); ok {
			localDay = shifted
		}

		slots = append(slots, models.WeeklySlot{
			Day:       localDay,
			StartTime: localStart,
			EndTime:   localEnd,
		})
	}
	return slots, nil
}

type weeklyPayload struct {
	DayOfWeek int                   `json:"day_of_week"`
	Intervals []models.TimeInterval `json:"intervals"`
}

// PutWeeklyAvailability replaces the full interval set for one UTC weekday.
// Intervals must already be UTC clock times; use SaveWeeklyAvailability for
// the local-to-UTC remapping.
func (c *Client) PutWeeklyAvailability(ctx context.Context, day int, intervals []models.TimeInterval) error {
	if intervals == nil {
		intervals = []models.TimeInterval{}
	}
	_, err := c.do(ctx, http.MethodPost, "/availability/weekly", weeklyPayload{
		DayOfWeek: day,
		Intervals: intervals,
	})
	return err
}

// SaveWeeklyAvailability converts a local-time weekly snapshot to UTC and
// replaces every weekday's interval set, including empty days so cleared
// days actually clear. Calls are sequential; the first failure aborts so
// the caller can re-fetch and see exactly what applied.
func (c *Client) SaveWeeklyAvailability(ctx context.Context, slots []models.WeeklySlot) error {
	buckets := make(map[int][]models.TimeInterval, 7)
	for day := 0; day < 7; day++ {
		buckets[day] = []models.TimeInterval{}
	}

	for _, slot := range slots {
		refDate := refDateForDay(slot.Day)
		utcStart, utcDate := timeutil.ToUTCTime(refDate, slot.StartTime, c.loc)
		utcEnd, _ := timeutil.ToUTCTime(refDate, slot.EndTime, c.loc)

		utcDay := slot.Day
		if shifted, ok := dayOfDate(utcDate); ok {
			utcDay = shifted
		}
		buckets[utcDay] = append(buckets[utcDay], models.TimeInterval{Start: utcStart, End: utcEnd})
	}

	for day := 0; day < 7; day++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := c.PutWeeklyAvailability(ctx, day, buckets[day]); err != nil {
			return err
		}
	}
	return nil
}

// GetExceptionDates fetches the one-off overrides. Wire times are UTC and
// convert to local against each exception's own calendar date; the date
// rolls with the conversion when it crosses midnight.
func (c *Client) GetExceptionDates(ctx context.Context) ([]models.ExceptionDate, error) {
	body, err := c.do(ctx, http.MethodGet, "/availability/exceptions", nil)
	if err != nil {
		return nil, err
	}

	records, err := decodeList(body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode exception dates: %w", err)
	}

	exceptions := make([]models.ExceptionDate, 0, len(records))
	for _, record := range records {
		date, ok := stringField(record, "exception_date", "date")
		if !ok {
			continue
		}

		exception := models.ExceptionDate{Date: date}
		if id, ok := stringField(record, "id"); ok {
			exception.ID = id
		} else if raw, ok := record["id"]; ok {
			if n, isNum := raw.(float64); isNum {
				exception.ID = fmt.Sprintf("%.0f", n)
			}
		}
		if avail, ok := record["is_available"].(bool); ok {
			exception.IsAvailable = avail
		}

		start, hasStart := stringField(record, "start_time")
		end, hasEnd := stringField(record, "end_time")
		if hasStart && hasEnd {
			localStart, localDate := timeutil.FromUTCTime(date, timeutil.NormalizeTimeString(start), c.loc)
			localEnd, _ := timeutil.FromUTCTime(date, timeutil.NormalizeTimeString(end), c.loc)
			exception.Date = localDate
			exception.StartTime = &localStart
			exception.EndTime = &localEnd
		}

		exceptions = append(exceptions, exception)
	}
	return exceptions, nil
}

type exceptionPayload struct {
	ID            string  `json:"id,omitempty"`
	ExceptionDate string  `json:"exception_date"`
	StartTime     *string `json:"start_time"`
	EndTime       *string `json:"end_time"`
	IsFullDay     bool    `json:"is_full_day"`
	IsAvailable   bool    `json:"is_available"`
}

// AddExceptionDate persists one exception. The record's times are local;
// they convert to UTC here, and the wire date follows the converted start
// across a midnight boundary.
func (c *Client) AddExceptionDate(ctx context.Context, record models.ExceptionDate) error {
	payload := exceptionPayload{
		ID:            record.ID,
		ExceptionDate: record.Date,
		IsFullDay:     record.IsFullDay(),
		IsAvailable:   record.IsAvailable,
	}

	if !record.IsFullDay() {
		utcStart, utcDate := timeutil.ToUTCTime(record.Date, *record.StartTime, c.loc)
		utcEnd, _ := timeutil.ToUTCTime(record.Date, *record.EndTime, c.loc)
		payload.ExceptionDate = utcDate
		payload.StartTime = &utcStart
		payload.EndTime = &utcEnd
	}

	_, err := c.do(ctx, http.MethodPost, "/availability/exceptions", payload)
	return err
}

// DeleteExceptionDate removes a persisted exception by server id. Backend
// versions without the endpoint surface ErrDeleteUnsupported so callers can
// fall back to a neutralizing write.
func (c *Client) DeleteExceptionDate(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/availability/exceptions/"+id, nil)
	if err == nil {
		return nil
	}
	if hasStatus(err, http.StatusNotFound) || hasStatus(err, http.StatusMethodNotAllowed) {
		return ErrDeleteUnsupported
	}
	return err
}
