// Package availability holds the in-memory weekly schedule being edited: a
// flat collection of per-day slots plus the operations the editing screen
// needs. All operations are synchronous and touch only the snapshot; nothing
// here talks to the backend.
package availability

import (
	"github.com/meetly-app/meetly-cli/internal/constants"
	"github.com/meetly-app/meetly-cli/internal/models"
	"github.com/meetly-app/meetly-cli/internal/timeutil"
)

// Week is an editable snapshot of the weekly schedule. Slots for different
// days may be interleaved in the flat collection; day-scoped operations
// count positions among that day's own slots only.
type Week struct {
	Slots []models.WeeklySlot
}

// NewWeek wraps a flat slot collection, copying it so edits never alias the
// caller's original snapshot.
func NewWeek(slots []models.WeeklySlot) *Week {
	w := &Week{Slots: make([]models.WeeklySlot, len(slots))}
	copy(w.Slots, slots)
	return w
}

// CopySource describes what a "copy from previous day" action would clone.
type CopySource struct {
	Kind      constants.CopyKind
	Intervals []models.TimeInterval
}

// GroupByDay buckets a flat slot collection into exactly seven per-day
// interval lists, preserving insertion order within each day. Empty days get
// an empty (non-nil) bucket so callers can range 0..6 without nil checks.
func GroupByDay(slots []models.WeeklySlot) map[int][]models.TimeInterval {
	grouped := make(map[int][]models.TimeInterval, 7)
	for day := 0; day < 7; day++ {
		grouped[day] = []models.TimeInterval{}
	}
	for _, slot := range slots {
		if slot.Day < 0 || slot.Day > 6 {
			continue
		}
		grouped[slot.Day] = append(grouped[slot.Day], slot.Interval())
	}
	return grouped
}

// Intervals returns the day's intervals in insertion order.
func (w *Week) Intervals(day int) []models.TimeInterval {
	var out []models.TimeInterval
	for _, slot := range w.Slots {
		if slot.Day == day {
			out = append(out, slot.Interval())
		}
	}
	return out
}

// HasIntervals reports whether the day has any slot at all.
func (w *Week) HasIntervals(day int) bool {
	for _, slot := range w.Slots {
		if slot.Day == day {
			return true
		}
	}
	return false
}

// ToggleDay is the coarse on/off switch for a day: clearing every interval
// when any exist (the day becomes unavailable), or seeding one default
// interval when none do.
func (w *Week) ToggleDay(day int) {
	if w.HasIntervals(day) {
		kept := w.Slots[:0]
		for _, slot := range w.Slots {
			if slot.Day != day {
				kept = append(kept, slot)
			}
		}
		w.Slots = kept
		return
	}
	w.AddInterval(day, nil)
}

// AddInterval appends one interval to the day, defaulting to 09:00-17:00.
func (w *Week) AddInterval(day int, defaults *models.TimeInterval) {
	interval := models.TimeInterval{
		Start: constants.DefaultIntervalStart,
		End:   constants.DefaultIntervalEnd,
	}
	if defaults != nil {
		interval = *defaults
	}
	w.Slots = append(w.Slots, models.WeeklySlot{
		Day:       day,
		StartTime: interval.Start,
		EndTime:   interval.End,
	})
}

// RemoveInterval deletes the interval at the given position within the
// day's own bucket. The position is counted per-day, not as an index into
// the flat collection.
func (w *Week) RemoveInterval(day, index int) {
	seen := 0
	for i, slot := range w.Slots {
		if slot.Day != day {
			continue
		}
		if seen == index {
			w.Slots = append(w.Slots[:i], w.Slots[i+1:]...)
			return
		}
		seen++
	}
}

// UpdateInterval edits one time field of one interval, running the value
// through the partial-time mask so incremental typing lands well-formed.
func (w *Week) UpdateInterval(day, index int, field constants.IntervalField, value string) {
	seen := 0
	for i := range w.Slots {
		if w.Slots[i].Day != day {
			continue
		}
		if seen == index {
			masked := timeutil.FormatPartialTime(value)
			if field == constants.IntervalFieldStart {
				w.Slots[i].StartTime = masked
			} else {
				w.Slots[i].EndTime = masked
			}
			return
		}
		seen++
	}
}

// CopySourceForDay backs the "copy from previous day" convenience action.
// A day that already has intervals duplicates its own last interval; an
// empty day offers the full interval set of the nearest earlier day with
// any, scanning backward and wrapping across the week. Returns nil when the
// whole week is empty.
func (w *Week) CopySourceForDay(day int) *CopySource {
	if own := w.Intervals(day); len(own) > 0 {
		return &CopySource{
			Kind:      constants.CopyKindCurrent,
			Intervals: []models.TimeInterval{own[len(own)-1]},
		}
	}
	for offset := 1; offset <= 6; offset++ {
		candidate := ((day-offset)%7 + 7) % 7
		if intervals := w.Intervals(candidate); len(intervals) > 0 {
			return &CopySource{
				Kind:      constants.CopyKindPrevious,
				Intervals: intervals,
			}
		}
	}
	return nil
}

// ApplyCopy appends the copy source's intervals to the day.
func (w *Week) ApplyCopy(day int, source *CopySource) {
	if source == nil {
		return
	}
	for _, interval := range source.Intervals {
		iv := interval
		w.AddInterval(day, &iv)
	}
}

// IsComplete gates persistence for a day: every interval must carry two
// valid HH:MM times with start strictly before end. Days failing this must
// not be sent to the backend.
func (w *Week) IsComplete(day int) bool {
	for _, interval := range w.Intervals(day) {
		if !timeutil.IsValidTime(interval.Start) || !timeutil.IsValidTime(interval.End) {
			return false
		}
		if interval.Start >= interval.End {
			return false
		}
	}
	return true
}
