package tui

import (
	"fmt"
	"strings"

	"github.com/meetly-app/meetly-cli/internal/constants"
	"github.com/meetly-app/meetly-cli/internal/timeutil"
)

// DayLabel returns the display name for a canonical weekday.
func DayLabel(day int) string {
	names := [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
	if day < 0 || day > 6 {
		return fmt.Sprintf("day %d", day)
	}
	return names[day]
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("Weekly availability\n\n")

	for day := 0; day < 7; day++ {
		label := DayLabel(day)
		intervals := m.week.Intervals(day)

		var line string
		if len(intervals) == 0 {
			line = unavailableStyle.Render("unavailable")
		} else {
			parts := make([]string, 0, len(intervals))
			for i, interval := range intervals {
				rendered := timeutil.FormatDisplayInterval(interval.Start, interval.End, m.locale.Uses24HourClock)
				if day == m.day && i == m.interval && m.state != constants.StateConfirmCopy {
					rendered = selectedIntervalStyle.Render("[" + rendered + "]")
				}
				parts = append(parts, rendered)
			}
			line = strings.Join(parts, ", ")
		}

		row := fmt.Sprintf("%-10s %s", label, line)
		if day == m.day {
			b.WriteString(selectedDayStyle.Render(row))
		} else {
			b.WriteString(dayStyle.Render(row))
		}
		if day == m.day && !m.week.IsComplete(day) {
			b.WriteString(" " + dangerStyle.Render("!"))
		}
		b.WriteString("\n")
	}

	switch m.state {
	case constants.StateEditTime:
		field := "start"
		if m.editField == constants.IntervalFieldEnd {
			field = "end"
		}
		b.WriteString(fmt.Sprintf("\nEdit %s time for %s: %s\n", field, DayLabel(m.day), m.input.View()))
	case constants.StateConfirmCopy:
		if m.copyOffer != nil {
			what := "duplicate the last interval"
			if m.copyOffer.Kind == constants.CopyKindPrevious {
				what = fmt.Sprintf("clone %d interval(s) from the previous available day", len(m.copyOffer.Intervals))
			}
			b.WriteString(fmt.Sprintf("\nCopy: %s onto %s? (y/n)\n", what, DayLabel(m.day)))
		}
	case constants.StateConfirmQuit:
		b.WriteString("\n" + warningStyle.Render("Quit without saving? (y/n)") + "\n")
	}

	if m.statusMsg != "" {
		b.WriteString("\n" + m.statusMsg + "\n")
	}

	b.WriteString("\n" + m.help.View(m.keys))
	return docStyle.Render(b.String())
}
