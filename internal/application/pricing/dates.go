package pricing

import (
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

var dateLayouts = []string{
	DateLayout,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ParseDate accepts a plain calendar date or a timestamp. Values without an
// offset are read in the engine's location.
func (e *Engine) ParseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		t, err := time.ParseInLocation(layout, raw, e.cfg.Location)
		if err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// civilDay maps t to its calendar date in loc, expressed as UTC midnight so day
// differences are exact multiples of 24h regardless of DST in loc.
func civilDay(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}
