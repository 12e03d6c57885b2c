package schedule

import (
	"sort"
	"time"

	"github.com/Dosada05/tournament-fixtures/models"
)

// TieGroup is every leg of one tie as played on one day.
type TieGroup struct {
	GroupID   string            `json:"group_id"`
	DateKey   string            `json:"date_key"`
	Date      time.Time         `json:"date"`
	Team1     models.TeamRef    `json:"team1"`
	Team2     models.TeamRef    `json:"team2"`
	Team1Name string            `json:"team1_name"`
	Team2Name string            `json:"team2_name"`
	Fixtures  []*models.Fixture `json:"fixtures"`
}

// SortedMembers returns the legs ordered by match number; Fixtures keeps the order
// they were bucketed in.
func (g *TieGroup) SortedMembers() []*models.Fixture {
	members := append([]*models.Fixture(nil), g.Fixtures...)
	sort.SliceStable(members, func(i, j int) bool {
		return members[i].MatchNumber < members[j].MatchNumber
	})
	return members
}

type groupKey struct {
	dateKey string
	groupID string
}

// TieGroups buckets grouped fixtures by (day, fixture group id). Round-robin
// fixtures are excluded even when a group id is present. The team and date of a
// bucket come from its first fixture. Buckets are sorted chronologically.
func TieGroups(fixtures []*models.Fixture) []*TieGroup {
	index := make(map[groupKey]*TieGroup)
	groups := make([]*TieGroup, 0)

	for _, f := range fixtures {
		if !f.IsTieMember() {
			continue
		}
		key := groupKey{dateKey: f.DateKey(), groupID: f.FixtureGroupID}
		g, ok := index[key]
		if !ok {
			g = &TieGroup{
				GroupID:   f.FixtureGroupID,
				DateKey:   key.dateKey,
				Date:      f.Date,
				Team1:     f.Team1,
				Team2:     f.Team2,
				Team1Name: f.Team1Name,
				Team2Name: f.Team2Name,
			}
			index[key] = g
			groups = append(groups, g)
		}
		g.Fixtures = append(g.Fixtures, f)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Date.Before(groups[j].Date)
	})
	return groups
}
