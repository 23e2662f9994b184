package models

import (
	"os"
	"strings"
	"time"
)

// LocaleContext captures the device locale and timezone once per screen load.
// It is threaded explicitly into the time utilities instead of being queried
// at arbitrary call sites, so conversions stay unit-testable.
type LocaleContext struct {
	Uses24HourClock bool
	TimeZone        string
	LocaleTag       string
}

// DetectLocale reads the process environment and system timezone.
func DetectLocale() LocaleContext {
	tag := os.Getenv("LC_TIME")
	if tag == "" {
		tag = os.Getenv("LANG")
	}
	if i := strings.IndexAny(tag, ".@"); i >= 0 {
		tag = tag[:i]
	}
	tag = strings.ReplaceAll(tag, "_", "-")
	if tag == "" || tag == "C" || tag == "POSIX" {
		tag = "en-US"
	}

	return LocaleContext{
		Uses24HourClock: !prefers12HourClock(tag),
		TimeZone:        time.Local.String(),
		LocaleTag:       tag,
	}
}

// Location resolves the context's timezone, falling back to the system zone.
func (lc LocaleContext) Location() *time.Location {
	if lc.TimeZone == "" || lc.TimeZone == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(lc.TimeZone)
	if err != nil {
		return time.Local
	}
	return loc
}

// prefers12HourClock covers the locales that conventionally render AM/PM.
func prefers12HourClock(tag string) bool {
	switch strings.ToLower(tag) {
	case "en-us", "en-ca", "en-au", "en-nz", "en-ph", "en-in", "es-mx", "es-us":
		return true
	}
	return false
}
