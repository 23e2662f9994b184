package timeutil

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/meetly-app/meetly-cli/internal/constants"
)

var (
	timeRe        = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
	timeSecondsRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d:[0-5]\d$`)
	digitsRe      = regexp.MustCompile(`\D`)
)

// NormalizeTimeString reduces HH:MM:SS to HH:MM and validates the result.
// Input that matches neither pattern is returned unchanged so the caller can
// display whatever the server sent instead of crashing on it.
func NormalizeTimeString(raw string) string {
	s := strings.TrimSpace(raw)
	if timeSecondsRe.MatchString(s) {
		return s[:5]
	}
	if timeRe.MatchString(s) {
		return s
	}
	return raw
}

// IsValidTime reports whether s is a well-formed 24-hour HH:MM string.
func IsValidTime(s string) bool {
	return timeRe.MatchString(s)
}

// FormatPartialTime masks live-typed input into HH:MM shape: non-digits are
// stripped, digits are capped at four, and the separator is inserted after
// the hour. Idempotent on already-formatted input.
func FormatPartialTime(input string) string {
	digits := digitsRe.ReplaceAllString(input, "")
	if len(digits) > 4 {
		digits = digits[:4]
	}
	if len(digits) <= 2 {
		return digits
	}
	return digits[:2] + ":" + digits[2:]
}

// ToUTCTime anchors a local wall-clock time to the given calendar date and
// reads it back in UTC. It returns both the UTC clock time and the UTC
// calendar date, since crossing midnight rolls the date forward or backward.
// Unparseable input passes through unchanged.
func ToUTCTime(dateStr, timeStr string, loc *time.Location) (string, string) {
	return shiftClock(dateStr, timeStr, loc, time.UTC)
}

// FromUTCTime is the inverse of ToUTCTime: it anchors a UTC clock time to the
// given date and reads back the local clock time and local calendar date.
func FromUTCTime(dateStr, timeStr string, loc *time.Location) (string, string) {
	return shiftClock(dateStr, timeStr, time.UTC, loc)
}

func shiftClock(dateStr, timeStr string, from, to *time.Location) (string, string) {
	date, err := time.Parse(constants.DateFormat, dateStr)
	if err != nil {
		return timeStr, dateStr
	}
	clock, err := time.Parse(constants.TimeFormat, NormalizeTimeString(timeStr))
	if err != nil {
		return timeStr, dateStr
	}

	anchored := time.Date(
		date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), 0, 0,
		from,
	).In(to)

	return anchored.Format(constants.TimeFormat), anchored.Format(constants.DateFormat)
}

// FormatClock renders a single HH:MM string for display. With uses24h false
// the hour converts to 12-hour AM/PM form (0 -> 12 AM, 12 -> 12 PM).
func FormatClock(hhmm string, uses24h bool) string {
	s := NormalizeTimeString(hhmm)
	if !IsValidTime(s) {
		return constants.InvalidTimeLabel
	}
	if uses24h {
		return s
	}

	clock, _ := time.Parse(constants.TimeFormat, s)
	hour := clock.Hour()
	meridiem := "AM"
	switch {
	case hour == 0:
		hour = 12
	case hour == 12:
		meridiem = "PM"
	case hour > 12:
		hour -= 12
		meridiem = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", hour, clock.Minute(), meridiem)
}

// FormatDisplayInterval renders "HH:MM - HH:MM" or the 12-hour equivalent.
func FormatDisplayInterval(start, end string, uses24h bool) string {
	return FormatClock(start, uses24h) + " - " + FormatClock(end, uses24h)
}

// FormatExceptionInterval renders an exception's interval, treating a nil
// pair as a full-day override rather than attempting to format null times.
func FormatExceptionInterval(start, end *string, uses24h bool) string {
	if start == nil || end == nil {
		return constants.AllDayLabel
	}
	return FormatDisplayInterval(*start, *end, uses24h)
}

// FormatExceptionDate renders a short locale-sensitive date for an exception
// row, e.g. "Mon, Jan 5" for month-first locales and "Mon 5 Jan" otherwise.
// An unparseable date maps to the invalid-date sentinel.
func FormatExceptionDate(localeTag, dateStr string) string {
	date, err := time.Parse(constants.DateFormat, dateStr)
	if err != nil {
		return constants.InvalidDateLabel
	}
	if monthFirstLocale(localeTag) {
		return date.Format("Mon, Jan 2")
	}
	return date.Format("Mon 2 Jan")
}

func monthFirstLocale(tag string) bool {
	switch strings.ToLower(tag) {
	case "en-us", "en-ca", "en-ph":
		return true
	}
	return false
}
