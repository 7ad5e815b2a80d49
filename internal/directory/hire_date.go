package directory

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrMissingHireDate = errors.New("hire date is missing")

var hireDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"01/02/2006",
}

// ParseHireDate accepts the date shapes directories commonly emit and returns
// the calendar date at UTC midnight.
func ParseHireDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, ErrMissingHireDate
	}

	for _, layout := range hireDateLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized hire date %q", raw)
}
