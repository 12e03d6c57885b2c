package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Dosada05/tournament-fixtures/models"
	"github.com/araddon/dateparse"
)

var ErrInvalidDate = errors.New("invalid date")

// ParseDay accepts the date formats organisers type ("2026-03-01", "03/01/2026",
// "March 1, 2026", RFC 3339) and returns the calendar day at UTC midnight.
// An empty string yields the zero time.
func ParseDay(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	if d, err := models.ParseDay(s); err == nil {
		return d, nil
	}
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return models.DayOf(t), nil
}

// NormalizeClock pads a single-digit hour ("9:05" -> "09:05"). Anything else is
// returned trimmed and left for validation.
func NormalizeClock(s string) string {
	s = strings.TrimSpace(s)
	if len(s) == 4 && s[1] == ':' {
		return "0" + s
	}
	return s
}

// SplitList splits a comma separated value and drops empty items.
func SplitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
