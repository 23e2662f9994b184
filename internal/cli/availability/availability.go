package availability

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/meetly-app/meetly-cli/internal/availability"
	"github.com/meetly-app/meetly-cli/internal/cli"
	"github.com/meetly-app/meetly-cli/internal/timeutil"
	"github.com/meetly-app/meetly-cli/internal/tui"
	"github.com/meetly-app/meetly-cli/internal/validation"
)

type ListCmd struct{}

func (c *ListCmd) Run(ctx *cli.Context) error {
	slots, err := ctx.Store.GetWeeklySlots()
	if err != nil {
		return fmt.Errorf("failed to read cached availability: %w", err)
	}

	grouped := availability.GroupByDay(slots)
	fmt.Println("Weekly availability:")
	for day := 0; day < 7; day++ {
		intervals := grouped[day]
		if len(intervals) == 0 {
			fmt.Printf("  %-10s unavailable\n", cli.DayName(day))
			continue
		}
		for i, interval := range intervals {
			label := ""
			if i == 0 {
				label = cli.DayName(day)
			}
			fmt.Printf("  %-10s %s\n", label,
				timeutil.FormatDisplayInterval(interval.Start, interval.End, ctx.Locale.Uses24HourClock))
		}
	}
	return nil
}

type EditCmd struct{}

func (c *EditCmd) Run(ctx *cli.Context) error {
	slots, err := ctx.Store.GetWeeklySlots()
	if err != nil {
		return fmt.Errorf("failed to read cached availability: %w", err)
	}

	program := tea.NewProgram(tui.New(slots, ctx.Locale))
	finalModel, err := program.Run()
	if err != nil {
		return fmt.Errorf("editor failed: %w", err)
	}

	editor, ok := finalModel.(tui.Model)
	if !ok || !editor.Saved() {
		fmt.Println("No changes saved.")
		return nil
	}

	week := editor.Week()
	result := validation.ValidateWeek(week)
	if result.HasConflicts() {
		fmt.Println(result.FormatReport())
		return fmt.Errorf("schedule has conflicts, nothing was saved")
	}

	runCtx := context.Background()
	if err := ctx.API.SaveWeeklyAvailability(runCtx, week.Slots); err != nil {
		return err
	}

	// Re-fetch so the cache reflects what the server actually accepted.
	if err := ctx.RefreshCache(runCtx); err != nil {
		return fmt.Errorf("saved, but re-fetch failed: %w", err)
	}

	fmt.Println("Weekly availability saved.")
	return nil
}
