package reconcile

import (
	"context"
	"fmt"
	"time"

	"github.com/meetly-app/meetly-cli/internal/availability"
	"github.com/meetly-app/meetly-cli/internal/constants"
	"github.com/meetly-app/meetly-cli/internal/logger"
	"github.com/meetly-app/meetly-cli/internal/models"
)

// Repository is the slice of the backend the persistence pass needs.
// Records carry device-local times here; the repository converts to UTC at
// the wire.
type Repository interface {
	AddExceptionDate(ctx context.Context, record models.ExceptionDate) error
	DeleteExceptionDate(ctx context.Context, id string) error
}

// Persist issues the change's calls sequentially: adds in collection order,
// then updates, then removals, each awaited before the next so a partial
// failure leaves a deterministic, inspectable subset applied. Individual
// failures are logged and do not abort the remaining calls, but any failure
// makes the whole pass report an error so the caller re-fetches. Cancelling
// the context stops issuing further calls without rolling back sent ones.
func Persist(ctx context.Context, repo Repository, change Change, weekly *availability.Week) error {
	failed := 0

	for _, record := range change.ToAdd {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := repo.AddExceptionDate(ctx, record); err != nil {
			logger.Error("Failed to add exception", "date", record.Date, "error", err)
			failed++
		}
	}

	for _, record := range change.ToUpdate {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := repo.AddExceptionDate(ctx, record); err != nil {
			logger.Error("Failed to update exception", "date", record.Date, "error", err)
			failed++
		}
	}

	for _, record := range change.ToRemove {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := removeException(ctx, repo, record, weekly); err != nil {
			logger.Error("Failed to remove exception", "date", record.Date, "error", err)
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d exception changes failed to persist", failed,
			len(change.ToAdd)+len(change.ToUpdate)+len(change.ToRemove))
	}
	return nil
}

// removeException prefers the delete endpoint when the record has a server
// id. Records that were only ever local, or servers without a delete
// operation, fall back to a neutralizing write: a full-day exception whose
// availability replays what the base weekly schedule produces for that
// weekday. This is a degraded approximation of deletion, not an exact
// inverse; the weekly schedule may have changed since the exception was
// created.
func removeException(ctx context.Context, repo Repository, record models.ExceptionDate, weekly *availability.Week) error {
	if record.Persisted() {
		err := repo.DeleteExceptionDate(ctx, record.ID)
		if err == nil {
			return nil
		}
		logger.Warn("Delete endpoint failed, falling back to neutralizing write",
			"date", record.Date, "id", record.ID, "error", err)
	}

	neutral := models.ExceptionDate{
		Date:        record.Date,
		IsAvailable: weeklyDefault(record.Date, weekly),
	}
	return repo.AddExceptionDate(ctx, neutral)
}

// weeklyDefault reports whether the base weekly schedule makes the user
// available on the date's weekday.
func weeklyDefault(date string, weekly *availability.Week) bool {
	if weekly == nil {
		return false
	}
	parsed, err := time.Parse(constants.DateFormat, date)
	if err != nil {
		return false
	}
	return weekly.HasIntervals(int(parsed.Weekday()))
}
