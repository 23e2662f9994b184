package availability

import (
	"testing"

	"github.com/meetly-app/meetly-cli/internal/constants"
	"github.com/meetly-app/meetly-cli/internal/models"
)

func slot(day int, start, end string) models.WeeklySlot {
	return models.WeeklySlot{Day: day, StartTime: start, EndTime: end}
}

func TestGroupByDay(t *testing.T) {
	slots := []models.WeeklySlot{
		slot(1, "09:00", "12:00"),
		slot(3, "10:00", "11:00"),
		slot(1, "13:00", "17:00"),
		slot(9, "08:00", "09:00"), // out of range, dropped
	}

	grouped := GroupByDay(slots)

	if len(grouped) != 7 {
		t.Fatalf("expected 7 buckets, got %d", len(grouped))
	}
	for day := 0; day < 7; day++ {
		if grouped[day] == nil {
			t.Errorf("day %d bucket is nil, want empty slice", day)
		}
	}

	if got := len(grouped[1]); got != 2 {
		t.Fatalf("day 1 has %d intervals, want 2", got)
	}
	// Insertion order preserved within the day.
	if grouped[1][0].Start != "09:00" || grouped[1][1].Start != "13:00" {
		t.Errorf("day 1 order broken: %+v", grouped[1])
	}
	if len(grouped[3]) != 1 {
		t.Errorf("day 3 has %d intervals, want 1", len(grouped[3]))
	}

	total := 0
	for day := 0; day < 7; day++ {
		total += len(grouped[day])
	}
	if total != 3 {
		t.Errorf("grouping kept %d intervals, want 3 (out-of-range dropped)", total)
	}
}

func TestNewWeekCopies(t *testing.T) {
	original := []models.WeeklySlot{slot(1, "09:00", "12:00")}
	week := NewWeek(original)

	week.Slots[0].StartTime = "08:00"
	if original[0].StartTime != "09:00" {
		t.Error("NewWeek aliased the caller's slice")
	}
}

func TestToggleDay(t *testing.T) {
	week := NewWeek([]models.WeeklySlot{
		slot(1, "09:00", "12:00"),
		slot(1, "13:00", "17:00"),
		slot(2, "10:00", "11:00"),
	})

	// Toggling a day with intervals clears all of them, leaving others alone.
	week.ToggleDay(1)
	if week.HasIntervals(1) {
		t.Error("toggle should have cleared day 1")
	}
	if !week.HasIntervals(2) {
		t.Error("toggle touched day 2")
	}

	// Toggling an empty day seeds one default interval.
	week.ToggleDay(1)
	intervals := week.Intervals(1)
	if len(intervals) != 1 {
		t.Fatalf("toggle seeded %d intervals, want 1", len(intervals))
	}
	if intervals[0].Start != constants.DefaultIntervalStart || intervals[0].End != constants.DefaultIntervalEnd {
		t.Errorf("default interval = %+v", intervals[0])
	}
}

func TestRemoveIntervalPerDayPosition(t *testing.T) {
	// Day 2's slots are interleaved with day 1's in the flat collection;
	// removal at position 1 must hit day 2's second interval.
	week := NewWeek([]models.WeeklySlot{
		slot(1, "08:00", "09:00"),
		slot(2, "09:00", "10:00"),
		slot(1, "10:00", "11:00"),
		slot(2, "11:00", "12:00"),
	})

	week.RemoveInterval(2, 1)

	if got := week.Intervals(2); len(got) != 1 || got[0].Start != "09:00" {
		t.Errorf("day 2 after removal = %+v, want only 09:00-10:00", got)
	}
	if got := week.Intervals(1); len(got) != 2 {
		t.Errorf("day 1 lost intervals: %+v", got)
	}

	// Out-of-range position is a no-op.
	week.RemoveInterval(2, 5)
	if len(week.Intervals(2)) != 1 {
		t.Error("out-of-range removal changed the day")
	}
}

func TestUpdateIntervalMasksInput(t *testing.T) {
	week := NewWeek([]models.WeeklySlot{slot(1, "09:00", "12:00")})

	week.UpdateInterval(1, 0, constants.IntervalFieldStart, "0830")
	week.UpdateInterval(1, 0, constants.IntervalFieldEnd, "17:30")

	got := week.Intervals(1)[0]
	if got.Start != "08:30" {
		t.Errorf("start = %q, want 08:30 (masked)", got.Start)
	}
	if got.End != "17:30" {
		t.Errorf("end = %q, want 17:30", got.End)
	}
}

func TestCopySourceForDay(t *testing.T) {
	t.Run("own day duplicates last interval", func(t *testing.T) {
		week := NewWeek([]models.WeeklySlot{
			slot(1, "09:00", "12:00"),
			slot(1, "13:00", "17:00"),
		})

		source := week.CopySourceForDay(1)
		if source == nil {
			t.Fatal("expected a copy source")
		}
		if source.Kind != constants.CopyKindCurrent {
			t.Errorf("kind = %q, want current", source.Kind)
		}
		if len(source.Intervals) != 1 || source.Intervals[0].Start != "13:00" {
			t.Errorf("intervals = %+v, want just the last one", source.Intervals)
		}
	})

	t.Run("empty day scans backward", func(t *testing.T) {
		week := NewWeek([]models.WeeklySlot{
			slot(2, "09:00", "12:00"),
			slot(2, "13:00", "17:00"),
		})

		source := week.CopySourceForDay(5)
		if source == nil {
			t.Fatal("expected a copy source")
		}
		if source.Kind != constants.CopyKindPrevious {
			t.Errorf("kind = %q, want previous", source.Kind)
		}
		if len(source.Intervals) != 2 {
			t.Errorf("expected full interval set, got %+v", source.Intervals)
		}
	})

	t.Run("scan wraps across the week", func(t *testing.T) {
		week := NewWeek([]models.WeeklySlot{slot(6, "10:00", "11:00")})

		source := week.CopySourceForDay(0)
		if source == nil {
			t.Fatal("expected a copy source from Saturday")
		}
		if source.Kind != constants.CopyKindPrevious || len(source.Intervals) != 1 {
			t.Errorf("unexpected source: %+v", source)
		}
	})

	t.Run("empty week offers nothing", func(t *testing.T) {
		week := NewWeek(nil)
		if source := week.CopySourceForDay(3); source != nil {
			t.Errorf("expected nil source, got %+v", source)
		}
	})
}

func TestApplyCopy(t *testing.T) {
	week := NewWeek([]models.WeeklySlot{slot(2, "09:00", "12:00")})

	source := week.CopySourceForDay(4)
	week.ApplyCopy(4, source)

	got := week.Intervals(4)
	if len(got) != 1 || got[0].Start != "09:00" || got[0].End != "12:00" {
		t.Errorf("day 4 after copy = %+v", got)
	}

	// Nil source is a no-op.
	week.ApplyCopy(4, nil)
	if len(week.Intervals(4)) != 1 {
		t.Error("nil copy changed the day")
	}
}

func TestIsComplete(t *testing.T) {
	tests := []struct {
		name  string
		slots []models.WeeklySlot
		day   int
		want  bool
	}{
		{"empty day is complete", nil, 1, true},
		{"valid interval", []models.WeeklySlot{slot(1, "09:00", "17:00")}, 1, true},
		{"partial time", []models.WeeklySlot{slot(1, "09:3", "17:00")}, 1, false},
		{"inverted interval", []models.WeeklySlot{slot(1, "17:00", "09:00")}, 1, false},
		{"zero-length interval", []models.WeeklySlot{slot(1, "09:00", "09:00")}, 1, false},
		{
			"one bad interval fails the day",
			[]models.WeeklySlot{slot(1, "09:00", "12:00"), slot(1, "13:00", "")},
			1,
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			week := NewWeek(tt.slots)
			if got := week.IsComplete(tt.day); got != tt.want {
				t.Errorf("IsComplete(%d) = %v, want %v", tt.day, got, tt.want)
			}
		})
	}
}
