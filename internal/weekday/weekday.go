// Package weekday resolves the two weekday numbering conventions that appear
// at the API boundary into one canonical index: Sunday=0 through Saturday=6.
// Every inbound and outbound translation happens here; nothing above this
// seam ever sees a Monday-first number.
package weekday

import (
	"fmt"
	"strconv"
)

// Convention names a backend weekday numbering scheme.
type Convention string

const (
	// ConventionSunday0 is zero-based Sunday-first: 0=Sun..6=Sat.
	ConventionSunday0 Convention = "sunday0"
	// ConventionMonday1 is one-based Monday-first: 1=Mon..7=Sun.
	ConventionMonday1 Convention = "monday1"
)

// dayFieldPrecedence lists the field names backend records use for the
// weekday, in the order they win when more than one is present.
var dayFieldPrecedence = []string{"day_of_week", "weekday", "day", "dayIndex"}

// ToCanonical converts a raw backend weekday number into the canonical
// Sunday=0 index.
func ToCanonical(value int, conv Convention) (int, error) {
	switch conv {
	case ConventionSunday0:
		if value < 0 || value > 6 {
			return 0, fmt.Errorf("weekday %d out of range for %s", value, conv)
		}
		return value, nil
	case ConventionMonday1:
		if value < 1 || value > 7 {
			return 0, fmt.Errorf("weekday %d out of range for %s", value, conv)
		}
		return value % 7, nil
	default:
		return 0, fmt.Errorf("unknown weekday convention %q", conv)
	}
}

// FromCanonical converts a canonical Sunday=0 index into the given
// convention for an outbound payload.
func FromCanonical(day int, conv Convention) (int, error) {
	if day < 0 || day > 6 {
		return 0, fmt.Errorf("canonical day %d out of range", day)
	}
	switch conv {
	case ConventionSunday0:
		return day, nil
	case ConventionMonday1:
		if day == 0 {
			return 7, nil
		}
		return day, nil
	default:
		return 0, fmt.Errorf("unknown weekday convention %q", conv)
	}
}

// ResolveDayField inspects a heterogeneous backend record for a weekday
// field and returns the raw numeric value if one is present and parseable.
// The second return is false when no usable field exists, letting the caller
// skip the record instead of defaulting it onto a wrong day.
func ResolveDayField(record map[string]any) (int, bool) {
	for _, field := range dayFieldPrecedence {
		raw, ok := record[field]
		if !ok || raw == nil {
			continue
		}
		if n, ok := asInt(raw); ok {
			return n, true
		}
	}
	return 0, false
}

func asInt(v any) (int, bool) {
	switch typed := v.(type) {
	case int:
		return typed, true
	case int64:
		return int(typed), true
	case float64:
		// JSON numbers decode as float64; reject anything fractional.
		if typed != float64(int(typed)) {
			return 0, false
		}
		return int(typed), true
	case string:
		n, err := strconv.Atoi(typed)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}
