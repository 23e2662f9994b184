package validation

import (
	"strings"
	"testing"

	"github.com/meetly-app/meetly-cli/internal/availability"
	"github.com/meetly-app/meetly-cli/internal/models"
)

func week(slots ...models.WeeklySlot) *availability.Week {
	return availability.NewWeek(slots)
}

func TestValidateWeekClean(t *testing.T) {
	result := ValidateWeek(week(
		models.WeeklySlot{Day: 1, StartTime: "09:00", EndTime: "12:00"},
		models.WeeklySlot{Day: 1, StartTime: "13:00", EndTime: "17:00"},
		models.WeeklySlot{Day: 3, StartTime: "10:00", EndTime: "11:00"},
	))

	if result.HasConflicts() {
		t.Errorf("clean week reported conflicts: %s", result.FormatReport())
	}
	if got := result.FormatReport(); got != "No conflicts detected." {
		t.Errorf("FormatReport = %q", got)
	}
}

func TestValidateWeekInvalidTime(t *testing.T) {
	result := ValidateWeek(week(
		models.WeeklySlot{Day: 2, StartTime: "9:00", EndTime: "12:00"},
	))

	if !result.HasConflicts() {
		t.Fatal("expected a conflict for malformed time")
	}
	if result.Conflicts[0].Type != ConflictInvalidTime {
		t.Errorf("type = %q, want invalid_time", result.Conflicts[0].Type)
	}
	if result.Conflicts[0].Day != 2 {
		t.Errorf("day = %d, want 2", result.Conflicts[0].Day)
	}
}

func TestValidateWeekInvertedInterval(t *testing.T) {
	result := ValidateWeek(week(
		models.WeeklySlot{Day: 4, StartTime: "17:00", EndTime: "09:00"},
	))

	if len(result.Conflicts) != 1 || result.Conflicts[0].Type != ConflictInvertedInterval {
		t.Errorf("conflicts = %+v, want one inverted_interval", result.Conflicts)
	}
}

func TestValidateWeekOverlap(t *testing.T) {
	result := ValidateWeek(week(
		models.WeeklySlot{Day: 1, StartTime: "09:00", EndTime: "12:00"},
		models.WeeklySlot{Day: 1, StartTime: "11:00", EndTime: "14:00"},
	))

	found := false
	for _, c := range result.Conflicts {
		if c.Type == ConflictOverlappingSlots {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an overlap conflict, got %+v", result.Conflicts)
	}

	// Touching intervals are not an overlap.
	result = ValidateWeek(week(
		models.WeeklySlot{Day: 1, StartTime: "09:00", EndTime: "12:00"},
		models.WeeklySlot{Day: 1, StartTime: "12:00", EndTime: "14:00"},
	))
	if result.HasConflicts() {
		t.Errorf("back-to-back intervals flagged: %+v", result.Conflicts)
	}

	// Same times on different days never conflict.
	result = ValidateWeek(week(
		models.WeeklySlot{Day: 1, StartTime: "09:00", EndTime: "12:00"},
		models.WeeklySlot{Day: 2, StartTime: "09:00", EndTime: "12:00"},
	))
	if result.HasConflicts() {
		t.Errorf("cross-day intervals flagged: %+v", result.Conflicts)
	}
}

func TestValidateUserSettings(t *testing.T) {
	valid := models.UserSettings{
		MaxDaysToBook:        30,
		MinDaysToBook:        1,
		DelayBetweenMeetings: 15,
		Timezone:             "America/New_York",
	}
	if result := ValidateUserSettings(valid); result.HasConflicts() {
		t.Errorf("valid settings flagged: %s", result.FormatReport())
	}

	tests := []struct {
		name     string
		mutate   func(*models.UserSettings)
		wantHint string
	}{
		{"negative min", func(s *models.UserSettings) { s.MinDaysToBook = -1 }, "non-negative"},
		{"min exceeds max", func(s *models.UserSettings) { s.MinDaysToBook = 60 }, "cannot exceed"},
		{"negative delay", func(s *models.UserSettings) { s.DelayBetweenMeetings = -5 }, "delay_between_meetings"},
		{"bogus timezone", func(s *models.UserSettings) { s.Timezone = "Mars/Olympus_Mons" }, "unknown timezone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := valid
			tt.mutate(&settings)

			result := ValidateUserSettings(settings)
			if !result.HasConflicts() {
				t.Fatal("expected a conflict")
			}
			if !strings.Contains(result.FormatReport(), tt.wantHint) {
				t.Errorf("report %q missing %q", result.FormatReport(), tt.wantHint)
			}
		})
	}

	// Local and empty timezones are acceptable.
	for _, tz := range []string{"", "Local"} {
		settings := valid
		settings.Timezone = tz
		if result := ValidateUserSettings(settings); result.HasConflicts() {
			t.Errorf("timezone %q flagged: %s", tz, result.FormatReport())
		}
	}
}
