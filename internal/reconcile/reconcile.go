// Package reconcile computes the minimal set of persistence calls needed to
// bring the server's exception-date records in line with a locally edited
// snapshot. The diff runs on the date natural key, never on array position.
package reconcile

import (
	"github.com/mitchellh/hashstructure/v2"

	"github.com/meetly-app/meetly-cli/internal/logger"
	"github.com/meetly-app/meetly-cli/internal/models"
)

// Change is the outcome of diffing an original snapshot against an edited
// one. ToUpdate holds records whose date exists in both snapshots but whose
// fields differ; they re-submit carrying the existing server id.
type Change struct {
	ToAdd    []models.ExceptionDate
	ToRemove []models.ExceptionDate
	ToUpdate []models.ExceptionDate
}

// Empty reports whether the change would issue no persistence calls.
func (c Change) Empty() bool {
	return len(c.ToAdd) == 0 && len(c.ToRemove) == 0 && len(c.ToUpdate) == 0
}

// Reconcile diffs two exception snapshots by date. Duplicate dates within
// one snapshot resolve last-write-wins; they should not normally occur since
// date is the natural key.
func Reconcile(original, current []models.ExceptionDate) Change {
	originalByDate := byDate(original)
	currentByDate := byDate(current)

	var change Change
	for _, record := range current {
		prior, exists := originalByDate[record.Date]
		if !exists {
			// Last-write-wins: only the version that survived into the map counts.
			if record == currentByDate[record.Date] {
				change.ToAdd = append(change.ToAdd, record)
			}
			continue
		}
		if record == currentByDate[record.Date] && !sameFields(prior, record) {
			updated := record
			updated.ID = prior.ID
			change.ToUpdate = append(change.ToUpdate, updated)
		}
	}
	for _, record := range original {
		if _, exists := currentByDate[record.Date]; !exists {
			if record == originalByDate[record.Date] {
				change.ToRemove = append(change.ToRemove, record)
			}
		}
	}
	return change
}

// Dedupe collapses the collection to one entry per distinct composite key
// (date, start, end, availability), keeping the first occurrence in order.
// It runs before any persistence pass so repeated local mutation cannot
// create server-side duplicates.
func Dedupe(records []models.ExceptionDate) []models.ExceptionDate {
	seen := make(map[uint64]struct{}, len(records))
	out := make([]models.ExceptionDate, 0, len(records))
	for _, record := range records {
		key, err := hashstructure.Hash(compositeKey(record), hashstructure.FormatV2, nil)
		if err != nil {
			// Hashing a plain struct of strings cannot realistically fail;
			// keep the record rather than drop data.
			logger.Warn("Failed to hash exception for dedup", "date", record.Date, "error", err)
			out = append(out, record)
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, record)
	}
	return out
}

type exceptionKey struct {
	Date        string
	StartTime   *string
	EndTime     *string
	IsAvailable bool
}

func compositeKey(e models.ExceptionDate) exceptionKey {
	return exceptionKey{
		Date:        e.Date,
		StartTime:   e.StartTime,
		EndTime:     e.EndTime,
		IsAvailable: e.IsAvailable,
	}
}

func byDate(records []models.ExceptionDate) map[string]models.ExceptionDate {
	m := make(map[string]models.ExceptionDate, len(records))
	for _, record := range records {
		m[record.Date] = record
	}
	return m
}

func sameFields(a, b models.ExceptionDate) bool {
	return derefEq(a.StartTime, b.StartTime) &&
		derefEq(a.EndTime, b.EndTime) &&
		a.IsAvailable == b.IsAvailable
}

func derefEq(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
