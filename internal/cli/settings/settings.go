package settings

import (
	"context"
	"fmt"

	"github.com/meetly-app/meetly-cli/internal/cli"
	"github.com/meetly-app/meetly-cli/internal/models"
	"github.com/meetly-app/meetly-cli/internal/validation"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	MaxDaysToBook        *int    `help:"Furthest out a meeting may be booked, in days."`
	MinDaysToBook        *int    `help:"Minimum lead time for a booking, in days."`
	DelayBetweenMeetings *int    `help:"Buffer between consecutive meetings, in minutes."`
	Timezone             *string `help:"IANA timezone name, or 'Local' for the system timezone."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetUserSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if c.List {
		fmt.Println("Current Settings:")
		fmt.Printf("  Max Days To Book:       %d\n", settings.MaxDaysToBook)
		fmt.Printf("  Min Days To Book:       %d\n", settings.MinDaysToBook)
		fmt.Printf("  Delay Between Meetings: %d min\n", settings.DelayBetweenMeetings)
		fmt.Printf("  Timezone:               %s\n", settings.Timezone)
		return nil
	}

	patch := models.UserSettingsPatch{
		MaxDaysToBook:        c.MaxDaysToBook,
		MinDaysToBook:        c.MinDaysToBook,
		DelayBetweenMeetings: c.DelayBetweenMeetings,
		Timezone:             c.Timezone,
	}
	if patch == (models.UserSettingsPatch{}) {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
		return nil
	}

	updated := patch.Apply(settings)
	result := validation.ValidateUserSettings(updated)
	if result.HasConflicts() {
		fmt.Println(result.FormatReport())
		return fmt.Errorf("invalid settings, nothing was saved")
	}

	runCtx := context.Background()
	if err := ctx.API.UpsertUserSettings(runCtx, patch); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	if err := ctx.Store.SaveUserSettings(updated); err != nil {
		return fmt.Errorf("saved, but failed to update local cache: %w", err)
	}

	fmt.Println("Settings updated successfully.")
	return nil
}
