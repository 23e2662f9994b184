package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/meetly-app/meetly-cli/internal/api"
	"github.com/meetly-app/meetly-cli/internal/config"
	"github.com/meetly-app/meetly-cli/internal/logger"
	"github.com/meetly-app/meetly-cli/internal/models"
	"github.com/meetly-app/meetly-cli/internal/storage"
)

type Context struct {
	Store     storage.Provider
	API       *api.Client
	Locale    models.LocaleContext
	Config    config.Config
	CachePath string
}

// RefreshCache pulls authoritative server state into the local snapshot
// cache. This is the mandatory post-save re-fetch: until it succeeds the
// local snapshots must not be trusted to match the server.
func (c *Context) RefreshCache(ctx context.Context) error {
	slots, err := c.API.GetWeeklyAvailability(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch weekly availability: %w", err)
	}
	if err := c.Store.SaveWeeklySlots(slots); err != nil {
		return fmt.Errorf("failed to cache weekly availability: %w", err)
	}

	exceptions, err := c.API.GetExceptionDates(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch exception dates: %w", err)
	}
	if err := c.Store.SaveExceptions(exceptions); err != nil {
		return fmt.Errorf("failed to cache exception dates: %w", err)
	}

	settings, err := c.API.GetUserSettings(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch user settings: %w", err)
	}
	if err := c.Store.SaveUserSettings(settings); err != nil {
		return fmt.Errorf("failed to cache user settings: %w", err)
	}

	if err := c.Store.SetLastSyncedAt(time.Now().UTC().Format(time.RFC3339)); err != nil {
		logger.Warn("Failed to record sync timestamp", "error", err)
	}
	return nil
}

// DayName returns the display name for a canonical weekday.
func DayName(day int) string {
	names := [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
	if day < 0 || day > 6 {
		return fmt.Sprintf("day %d", day)
	}
	return names[day]
}
