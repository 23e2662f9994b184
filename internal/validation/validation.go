package validation

import (
	"fmt"
	"time"

	"github.com/meetly-app/meetly-cli/internal/availability"
	"github.com/meetly-app/meetly-cli/internal/models"
	"github.com/meetly-app/meetly-cli/internal/timeutil"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictInvalidTime      ConflictType = "invalid_time"
	ConflictInvertedInterval ConflictType = "inverted_interval"
	ConflictOverlappingSlots ConflictType = "overlapping_slots"
	ConflictInvalidSettings  ConflictType = "invalid_settings"
)

// Conflict represents a detected problem in a schedule or settings edit
type Conflict struct {
	Type        ConflictType
	Description string
	Day         int // canonical weekday, -1 when not applicable
}

// Result contains all detected conflicts
type Result struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (r *Result) HasConflicts() bool {
	return len(r.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts
func (r *Result) FormatReport() string {
	if !r.HasConflicts() {
		return "No conflicts detected."
	}
	report := "Conflicts detected:\n"
	for _, conflict := range r.Conflicts {
		report += fmt.Sprintf("- %s\n", conflict.Description)
	}
	return report
}

// ValidateWeek checks every day of a weekly snapshot: each interval must
// carry valid HH:MM times with start before end, and intervals on the same
// day should not overlap. Overlaps are reported so the screen can warn
// before persisting; the backend remains the source of truth.
func ValidateWeek(week *availability.Week) Result {
	result := Result{Conflicts: []Conflict{}}

	for day := 0; day < 7; day++ {
		intervals := week.Intervals(day)
		for _, interval := range intervals {
			if !timeutil.IsValidTime(interval.Start) || !timeutil.IsValidTime(interval.End) {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:        ConflictInvalidTime,
					Description: fmt.Sprintf("%s has an incomplete interval (%s - %s)", dayName(day), interval.Start, interval.End),
					Day:         day,
				})
				continue
			}
			if interval.Start >= interval.End {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:        ConflictInvertedInterval,
					Description: fmt.Sprintf("%s interval ends (%s) before it starts (%s)", dayName(day), interval.End, interval.Start),
					Day:         day,
				})
			}
		}

		// O(n²) overlap check, fine for the handful of intervals a day holds.
		for i := 0; i < len(intervals); i++ {
			for j := i + 1; j < len(intervals); j++ {
				if intervalsOverlap(intervals[i], intervals[j]) {
					result.Conflicts = append(result.Conflicts, Conflict{
						Type: ConflictOverlappingSlots,
						Description: fmt.Sprintf("%s: %s - %s overlaps %s - %s", dayName(day),
							intervals[i].Start, intervals[i].End, intervals[j].Start, intervals[j].End),
						Day: day,
					})
				}
			}
		}
	}

	return result
}

// ValidateUserSettings checks booking-window preferences before any network
// call is attempted.
func ValidateUserSettings(settings models.UserSettings) Result {
	result := Result{Conflicts: []Conflict{}}

	if settings.MinDaysToBook < 0 || settings.MaxDaysToBook < 0 {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictInvalidSettings,
			Description: "booking window days must be non-negative",
			Day:         -1,
		})
	}
	if settings.MinDaysToBook > settings.MaxDaysToBook {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type: ConflictInvalidSettings,
			Description: fmt.Sprintf("min_days_to_book (%d) cannot exceed max_days_to_book (%d)",
				settings.MinDaysToBook, settings.MaxDaysToBook),
			Day: -1,
		})
	}
	if settings.DelayBetweenMeetings < 0 {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictInvalidSettings,
			Description: "delay_between_meetings must be a non-negative number of minutes",
			Day:         -1,
		})
	}
	if !validTimezone(settings.Timezone) {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictInvalidSettings,
			Description: fmt.Sprintf("unknown timezone %q", settings.Timezone),
			Day:         -1,
		})
	}

	return result
}

func validTimezone(timezone string) bool {
	if timezone == "" || timezone == "Local" {
		return true
	}
	_, err := time.LoadLocation(timezone)
	return err == nil
}

// intervalsOverlap checks two HH:MM ranges on the same day. Two ranges
// overlap if start1 < end2 and start2 < end1; fixed-width HH:MM compares
// correctly as strings.
func intervalsOverlap(a, b models.TimeInterval) bool {
	return a.Start < b.End && b.Start < a.End
}

var dayNames = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

func dayName(day int) string {
	if day < 0 || day > 6 {
		return fmt.Sprintf("day %d", day)
	}
	return dayNames[day]
}
