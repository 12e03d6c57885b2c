package schedule

import (
	"strings"

	"github.com/Dosada05/tournament-fixtures/models"
)

// Filter narrows the tie-group and flat views. Empty fields match everything.
type Filter struct {
	TeamID  string `json:"team_id,omitempty"`
	VenueID string `json:"venue_id,omitempty"`
	Search  string `json:"search,omitempty"`
}

func (f Filter) IsEmpty() bool {
	return f.TeamID == "" && f.VenueID == "" && strings.TrimSpace(f.Search) == ""
}

func (f Filter) MatchFixture(fx *models.Fixture) bool {
	if f.TeamID != "" && !fx.Involves(f.TeamID) {
		return false
	}
	if f.VenueID != "" && fx.VenueID != f.VenueID {
		return false
	}
	if term := normalize(f.Search); term != "" {
		if !containsFold(fx.Team1Name, term) && !containsFold(fx.Team2Name, term) &&
			!containsFold(fx.VenueName, term) && !playersMatch(fx, term) {
			return false
		}
	}
	return true
}

// MatchGroup applies the filter to a whole tie: the venue and search terms match
// when any member fixture matches.
func (f Filter) MatchGroup(g *TieGroup) bool {
	if f.TeamID != "" && !g.Team1.Is(f.TeamID) && !g.Team2.Is(f.TeamID) {
		return false
	}
	if f.VenueID != "" {
		found := false
		for _, fx := range g.Fixtures {
			if fx.VenueID == f.VenueID {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if term := normalize(f.Search); term != "" {
		if containsFold(g.Team1Name, term) || containsFold(g.Team2Name, term) {
			return true
		}
		for _, fx := range g.Fixtures {
			if containsFold(fx.VenueName, term) || playersMatch(fx, term) {
				return true
			}
		}
		return false
	}
	return true
}

func (f Filter) FilterGroups(groups []*TieGroup) []*TieGroup {
	if f.IsEmpty() {
		return groups
	}
	out := make([]*TieGroup, 0, len(groups))
	for _, g := range groups {
		if f.MatchGroup(g) {
			out = append(out, g)
		}
	}
	return out
}

func (f Filter) FilterFixtures(fixtures []*models.Fixture) []*models.Fixture {
	if f.IsEmpty() {
		return fixtures
	}
	out := make([]*models.Fixture, 0, len(fixtures))
	for _, fx := range fixtures {
		if f.MatchFixture(fx) {
			out = append(out, fx)
		}
	}
	return out
}

func playersMatch(fx *models.Fixture, term string) bool {
	for _, slot := range []models.PlayerSlot{fx.Player1Team1, fx.Player2Team1, fx.Player1Team2, fx.Player2Team2} {
		if containsFold(slot.Name, term) {
			return true
		}
	}
	return false
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func containsFold(s, lowerTerm string) bool {
	return s != "" && strings.Contains(strings.ToLower(s), lowerTerm)
}
