package api

import (
	"fmt"
	"time"

	json "github.com/goccy/go-json"

	"github.com/meetly-app/meetly-cli/internal/constants"
	"github.com/meetly-app/meetly-cli/internal/logger"
	"github.com/meetly-app/meetly-cli/internal/weekday"
)

// decodeList tolerates the three list shapes observed across backend
// versions: a bare JSON array, {"entries": [...]}, and {"data": [...]}.
func decodeList(body []byte) ([]map[string]any, error) {
	var direct []map[string]any
	if err := json.Unmarshal(body, &direct); err == nil {
		return direct, nil
	}

	var wrapped struct {
		Entries []map[string]any `json:"entries"`
		Data    []map[string]any `json:"data"`
	}
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return nil, fmt.Errorf("unrecognized list response shape: %w", err)
	}
	if wrapped.Entries != nil {
		return wrapped.Entries, nil
	}
	if wrapped.Data != nil {
		return wrapped.Data, nil
	}
	return nil, nil
}

// resolveCanonicalDay extracts and canonicalizes the weekday from a raw
// record. Records whose weekday field carries the name "weekday" use the
// one-based Monday-first convention; every other field name is zero-based
// Sunday-first. Records with no resolvable day are skipped, not defaulted.
func resolveCanonicalDay(record map[string]any) (int, bool) {
	raw, ok := weekday.ResolveDayField(record)
	if !ok {
		logger.Warn("Skipping availability record with no weekday field")
		return 0, false
	}

	conv := weekday.ConventionSunday0
	if _, usesWeekday := record["weekday"]; usesWeekday {
		if _, overridden := record["day_of_week"]; !overridden {
			conv = weekday.ConventionMonday1
		}
	}

	day, err := weekday.ToCanonical(raw, conv)
	if err != nil {
		logger.Warn("Skipping availability record with out-of-range weekday", "value", raw)
		return 0, false
	}
	return day, true
}

func stringField(record map[string]any, keys ...string) (string, bool) {
	for _, key := range keys {
		if raw, ok := record[key]; ok {
			if s, ok := raw.(string); ok {
				return s, true
			}
		}
	}
	return "", false
}

// refDateForDay returns a fixed reference date falling on the given
// canonical weekday. Weekly slots have no calendar date, but converting
// their clock times between UTC and local can cross midnight and land on an
// adjacent weekday; anchoring to a concrete date lets the conversion report
// the shifted day. 2024-01-07 is a Sunday.
func refDateForDay(day int) string {
	ref := time.Date(2024, time.January, 7+day, 0, 0, 0, 0, time.UTC)
	return ref.Format(constants.DateFormat)
}

// dayOfDate returns the canonical weekday of a YYYY-MM-DD string.
func dayOfDate(dateStr string) (int, bool) {
	parsed, err := time.Parse(constants.DateFormat, dateStr)
	if err != nil {
		return 0, false
	}
	return int(parsed.Weekday()), true
}
