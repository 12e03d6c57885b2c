// Package schedule derives read-only views from a flat fixture list: the day
// calendar, tie groups, the flat list of standalone fixtures and the playoff
// bracket. Nothing here mutates its input.
package schedule

import (
	"sort"
	"time"

	"github.com/Dosada05/tournament-fixtures/models"
)

type CalendarDay struct {
	Date         time.Time `json:"date"`
	Key          string    `json:"key"`
	FixtureCount int       `json:"fixture_count"`
}

// Calendar returns one entry per day from start to end inclusive, each with the
// number of fixtures played that day. Only the calendar day of a fixture matters.
func Calendar(start, end time.Time, fixtures []*models.Fixture) []CalendarDay {
	start, end = models.DayOf(start), models.DayOf(end)
	if start.IsZero() || end.IsZero() || end.Before(start) {
		return []CalendarDay{}
	}

	counts := CountByDay(fixtures)
	days := make([]CalendarDay, 0, int(end.Sub(start).Hours()/24)+1)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		key := d.Format(models.DateLayout)
		days = append(days, CalendarDay{Date: d, Key: key, FixtureCount: counts[key]})
	}
	return days
}

// ActiveDays keeps only days with at least one fixture.
func ActiveDays(days []CalendarDay) []CalendarDay {
	active := make([]CalendarDay, 0, len(days))
	for _, d := range days {
		if d.FixtureCount > 0 {
			active = append(active, d)
		}
	}
	return active
}

func CountByDay(fixtures []*models.Fixture) map[string]int {
	counts := make(map[string]int)
	for _, f := range fixtures {
		if key := f.DateKey(); key != "" {
			counts[key]++
		}
	}
	return counts
}

// FlatFixtures lists custom and round-robin fixtures individually, ordered by date
// then by time. Zero-padded HH:MM compares correctly as a string.
func FlatFixtures(fixtures []*models.Fixture) []*models.Fixture {
	flat := make([]*models.Fixture, 0)
	for _, f := range fixtures {
		if f.FixtureType == models.FixtureTypeCustom || f.FixtureType == models.FixtureTypeRoundRobin {
			flat = append(flat, f)
		}
	}
	sort.SliceStable(flat, func(i, j int) bool {
		a, b := flat[i], flat[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		return a.Time < b.Time
	})
	return flat
}

// PlayoffBracket lists playoff fixtures from the first quarterfinal to the final.
func PlayoffBracket(fixtures []*models.Fixture) []*models.Fixture {
	bracket := make([]*models.Fixture, 0, 8)
	for _, f := range fixtures {
		if f.FixtureType == models.FixtureTypePlayoff {
			bracket = append(bracket, f)
		}
	}
	sort.SliceStable(bracket, func(i, j int) bool {
		a, b := bracket[i], bracket[j]
		if a.PlayoffStage.Order() != b.PlayoffStage.Order() {
			return a.PlayoffStage.Order() < b.PlayoffStage.Order()
		}
		return a.PlayoffNumber < b.PlayoffNumber
	})
	return bracket
}
