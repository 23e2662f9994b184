package exceptions

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/meetly-app/meetly-cli/internal/availability"
	"github.com/meetly-app/meetly-cli/internal/cli"
	"github.com/meetly-app/meetly-cli/internal/constants"
	"github.com/meetly-app/meetly-cli/internal/models"
	"github.com/meetly-app/meetly-cli/internal/reconcile"
	"github.com/meetly-app/meetly-cli/internal/timeutil"
)

type ListCmd struct{}

func (c *ListCmd) Run(ctx *cli.Context) error {
	exceptions, err := ctx.Store.GetExceptions()
	if err != nil {
		return fmt.Errorf("failed to read cached exceptions: %w", err)
	}
	if len(exceptions) == 0 {
		fmt.Println("No exception dates.")
		return nil
	}

	fmt.Println("Exception dates:")
	for _, record := range exceptions {
		kind := "unavailable"
		if record.IsAvailable {
			kind = "available"
		}
		fmt.Printf("  %-14s %-12s %s\n",
			timeutil.FormatExceptionDate(ctx.Locale.LocaleTag, record.Date),
			kind,
			timeutil.FormatExceptionInterval(record.StartTime, record.EndTime, ctx.Locale.Uses24HourClock))
	}
	return nil
}

type EditCmd struct{}

func (c *EditCmd) Run(ctx *cli.Context) error {
	session := reconcile.NewSession()
	session.BeginLoad()

	runCtx := context.Background()
	records, err := ctx.API.GetExceptionDates(runCtx)
	if err != nil {
		// Offline fallback: edit against the cached snapshot. The post-save
		// re-fetch still decides what the server really holds.
		cached, cacheErr := ctx.Store.GetExceptions()
		if cacheErr != nil {
			return err
		}
		fmt.Println("Warning: could not reach server, editing cached snapshot.")
		records = cached
	}
	session.Loaded(records)
	session.BeginEdit()

	for {
		action, err := promptAction(session)
		if err != nil {
			return err
		}

		switch action {
		case "add":
			record, err := promptNewException()
			if err != nil {
				return err
			}
			if record != nil {
				session.Add(*record)
			}
		case "remove":
			if err := promptRemove(session); err != nil {
				return err
			}
		case "done":
			return c.persist(runCtx, ctx, session)
		case "discard":
			fmt.Println("Discarded edits.")
			return nil
		}
	}
}

func (c *EditCmd) persist(runCtx context.Context, ctx *cli.Context, session *reconcile.Session) error {
	slots, err := ctx.Store.GetWeeklySlots()
	if err != nil {
		return fmt.Errorf("failed to read cached weekly schedule: %w", err)
	}
	weekly := availability.NewWeek(slots)

	if err := session.Done(runCtx, ctx.API, weekly); err != nil {
		return fmt.Errorf("some changes failed to persist, run 'meetly sync' and review: %w", err)
	}

	if err := ctx.RefreshCache(runCtx); err != nil {
		return fmt.Errorf("saved, but re-fetch failed: %w", err)
	}
	fmt.Println("Exception dates saved.")
	return nil
}

func promptAction(session *reconcile.Session) (string, error) {
	summary := fmt.Sprintf("%d exception(s) in working copy", len(session.Current()))

	var action string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Edit exceptions").
				Description(summary).
				Options(
					huh.NewOption("Add exception", "add"),
					huh.NewOption("Remove exception", "remove"),
					huh.NewOption("Done (save changes)", "done"),
					huh.NewOption("Discard", "discard"),
				).
				Value(&action),
		),
	)
	if err := form.Run(); err != nil {
		return "", err
	}
	return action, nil
}

func promptNewException() (*models.ExceptionDate, error) {
	var (
		date      string
		fullDay   bool
		start     string
		end       string
		available bool
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Date (YYYY-MM-DD)").
				Value(&date).
				Validate(func(s string) error {
					if _, err := time.Parse(constants.DateFormat, s); err != nil {
						return fmt.Errorf("expected YYYY-MM-DD")
					}
					return nil
				}),
			huh.NewConfirm().
				Title("Full day?").
				Value(&fullDay),
			huh.NewConfirm().
				Title("Available on this date?").
				Description("No marks the date as a blackout.").
				Value(&available),
		),
	)
	if err := form.Run(); err != nil {
		return nil, err
	}

	if fullDay {
		record := models.NewLocalException(date, nil, nil, available)
		return &record, nil
	}

	timesForm := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Start time (HH:MM)").
				Value(&start).
				Validate(validateClock),
			huh.NewInput().
				Title("End time (HH:MM)").
				Value(&end).
				Validate(validateClock),
		),
	)
	if err := timesForm.Run(); err != nil {
		return nil, err
	}

	start = timeutil.FormatPartialTime(start)
	end = timeutil.FormatPartialTime(end)
	if start >= end {
		return nil, fmt.Errorf("end time %s is not after start time %s", end, start)
	}

	record := models.NewLocalException(date, &start, &end, available)
	return &record, nil
}

func promptRemove(session *reconcile.Session) error {
	current := session.Current()
	if len(current) == 0 {
		fmt.Println("No exceptions to remove.")
		return nil
	}

	options := make([]huh.Option[string], 0, len(current))
	for _, record := range current {
		options = append(options, huh.NewOption(record.Date, record.Date))
	}

	var date string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Remove which date?").
				Options(options...).
				Value(&date),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}
	session.Remove(date)
	return nil
}

func validateClock(s string) error {
	if !timeutil.IsValidTime(timeutil.FormatPartialTime(s)) {
		return fmt.Errorf("expected HH:MM (24-hour)")
	}
	return nil
}
