package validation

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// InvalidDate is the sentinel coerced value of a short-date that failed to
// parse. It is distinct from every date a user can enter.
var InvalidDate = time.Time{}

// fallbackLayouts implement the explicit MM/dd/yyyy pattern, tolerating
// single digit months and days.
var fallbackLayouts = []string{
	"01/02/2006",
	"1/2/2006",
}

// ParseShortDate parses raw input with a free-form date parse first and the
// MM/dd/yyyy fallback second. Zone-less input is read as UTC. On failure it
// returns InvalidDate and false.
func ParseShortDate(raw string) (time.Time, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return InvalidDate, false
	}
	if parsed, ok := parseNative(trimmed); ok {
		return parsed, true
	}
	if parsed, ok := parseWith(fallbackLayouts, trimmed); ok {
		return parsed, true
	}
	return InvalidDate, false
}

// IsInvalidDate reports whether t is the failed-parse sentinel.
func IsInvalidDate(t time.Time) bool {
	return t.Equal(InvalidDate)
}

func parseNative(value string) (parsed time.Time, ok bool) {
	// dateparse can panic on some malformed inputs
	defer func() {
		if r := recover(); r != nil {
			parsed, ok = InvalidDate, false
		}
	}()

	parsed, err := dateparse.ParseIn(value, time.UTC)
	if err != nil || IsInvalidDate(parsed) {
		return InvalidDate, false
	}
	return parsed, true
}

func parseWith(layouts []string, value string) (time.Time, bool) {
	for _, layout := range layouts {
		parsed, err := time.ParseInLocation(layout, value, time.UTC)
		if err == nil {
			return parsed, true
		}
	}
	return InvalidDate, false
}
