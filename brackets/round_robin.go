package brackets

import (
	"context"
	"fmt"
	"strings"

	"github.com/Dosada05/tournament-fixtures/models"
)

type RoundRobinGenerator struct{}

func NewRoundRobinGenerator() FixtureGenerator {
	return &RoundRobinGenerator{}
}

func (g *RoundRobinGenerator) GetName() string {
	return "RoundRobin"
}

// Generate creates one fixture per enabled category for every pair of teams in the
// same pool. Pairs are combinations (i < j): no reverse fixtures, no self pairing.
// Fixtures are grouped by pool only and never carry a fixture group id.
func (g *RoundRobinGenerator) Generate(ctx context.Context, p GenerateParams) (*Batch, error) {
	if p.Tournament == nil || p.Tournament.ID == "" {
		return nil, missing("tournament")
	}
	categories := p.Tournament.EnabledCategories()
	if len(categories) == 0 {
		return nil, ErrNoCategories
	}
	if err := validatePools(p.Pools, p.Teams); err != nil {
		return nil, err
	}

	date := p.Date
	if date.IsZero() {
		date = p.Tournament.StartDate
	}
	clock := p.Time
	if clock == "" {
		clock = DefaultFixtureTime
	}

	total := 0
	for _, pool := range p.Pools {
		n := len(pool.TeamIDs)
		total += len(categories) * n * (n - 1) / 2
	}

	fixtures := make([]*models.Fixture, 0, total)
	for _, pool := range p.Pools {
		members := pool.TeamIDs
		for i := 0; i < len(members); i++ {
			for j := i + 1; j < len(members); j++ {
				team1 := p.Teams[members[i]]
				team2 := p.Teams[members[j]]

				for _, category := range categories {
					params := p
					params.Team1 = team1
					params.Team2 = team2
					params.Date = date
					params.Time = clock
					params.Pool = pool.Name
					params.Court = ""

					f := baseFixture(params, models.FixtureTypeRoundRobin)
					f.MatchType = category
					f.MatchTypeLabel = category.Label()
					f.FixtureGroupID = ""
					fixtures = append(fixtures, f)
				}
			}
		}
	}

	return &Batch{Legs: fixtures}, nil
}

func validatePools(pools []Pool, teams map[string]*models.Team) error {
	if len(pools) == 0 {
		return fmt.Errorf("%w: at least one pool is required", ErrInvalidPools)
	}
	seenTeams := make(map[string]string)
	seenNames := make(map[string]bool)
	for _, pool := range pools {
		name := strings.TrimSpace(pool.Name)
		if name == "" {
			return fmt.Errorf("%w: pool name is required", ErrInvalidPools)
		}
		if seenNames[name] {
			return fmt.Errorf("%w: duplicate pool name %q", ErrInvalidPools, name)
		}
		seenNames[name] = true

		if len(pool.TeamIDs) < 2 {
			return fmt.Errorf("%w: pool %q needs at least 2 teams, got %d", ErrInvalidPools, name, len(pool.TeamIDs))
		}
		for _, id := range pool.TeamIDs {
			if _, ok := teams[id]; !ok {
				return fmt.Errorf("%w: team %q in pool %q is not part of the tournament", ErrInvalidPools, id, name)
			}
			if other, dup := seenTeams[id]; dup {
				return fmt.Errorf("%w: team %q appears in pools %q and %q", ErrInvalidPools, id, other, name)
			}
			seenTeams[id] = name
		}
	}
	return nil
}
