package models

import "time"

// Tournament представляет турнир.
type Tournament struct {
	ID         string     `json:"id" db:"id"`
	Name       string     `json:"name" db:"name"`
	StartDate  time.Time  `json:"start_date" db:"start_date"`
	EndDate    time.Time  `json:"end_date" db:"end_date"`
	Categories []Category `json:"categories" db:"categories"`
	CreatedBy  string     `json:"created_by" db:"created_by"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
}

// EnabledCategories returns the tournament's categories in canonical order.
func (t *Tournament) EnabledCategories() []Category {
	return NormalizeCategories(t.Categories)
}

// FixtureStyle is the scheduling template an organiser picked for a tournament.
type FixtureStyle string

const (
	StyleCustom           FixtureStyle = "custom"
	StyleDreamBreaker     FixtureStyle = "dreambreaker"
	StyleMiniDreamBreaker FixtureStyle = "minidreambreaker"
	StyleRoundRobin       FixtureStyle = "roundrobin"
)

func (s FixtureStyle) IsValid() bool {
	switch s {
	case StyleCustom, StyleDreamBreaker, StyleMiniDreamBreaker, StyleRoundRobin:
		return true
	}
	return false
}

type StylePreference struct {
	TournamentID string       `json:"tournament_id" db:"tournament_id"`
	Style        FixtureStyle `json:"style" db:"style"`
	UpdatedAt    time.Time    `json:"updated_at" db:"updated_at"`
}
