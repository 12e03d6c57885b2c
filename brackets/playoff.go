package brackets

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/Dosada05/tournament-fixtures/models"
)

// PlayoffBracketSize is the number of teams the playoff skeleton is built for.
const PlayoffBracketSize = 8

// PlayoffCategory is the category every playoff slot is played in.
const PlayoffCategory = models.CategoryMixedDoubles

type PlayoffGenerator struct {
	size int
}

func NewPlayoffGenerator() FixtureGenerator {
	return &PlayoffGenerator{size: PlayoffBracketSize}
}

func (g *PlayoffGenerator) GetName() string {
	return "Playoff"
}

// Generate builds the single-elimination skeleton: quarterfinals, semifinals, a
// third-place match and the final. Every slot starts unresolved and is filled by
// editing the fixture.
func (g *PlayoffGenerator) Generate(ctx context.Context, p GenerateParams) (*Batch, error) {
	if p.Tournament == nil || p.Tournament.ID == "" {
		return nil, missing("tournament")
	}

	numRounds := int(math.Ceil(math.Log2(float64(g.size))))
	stages := stagesForRounds(numRounds)
	if stages == nil {
		return nil, fmt.Errorf("unsupported playoff bracket size %d", g.size)
	}

	// Playoffs close the tournament: placeholders go on the last day.
	date := p.Date
	if date.IsZero() {
		date = p.Tournament.EndDate
	}
	if p.Time == "" {
		p.Time = DefaultFixtureTime
	}

	fixtures := make([]*models.Fixture, 0, g.size)
	matchesInRound := g.size / 2
	for r := 0; r < numRounds; r++ {
		stage := stages[r]
		if stage == models.StageFinal {
			// Third place is played before the final.
			fixtures = append(fixtures, playoffSlot(p, date, models.StageThirdPlace, 1))
		}
		for m := 1; m <= matchesInRound; m++ {
			fixtures = append(fixtures, playoffSlot(p, date, stage, m))
		}
		matchesInRound /= 2
	}

	return &Batch{Legs: fixtures}, nil
}

// stagesForRounds names the elimination rounds from the first one played.
func stagesForRounds(numRounds int) []models.PlayoffStage {
	switch numRounds {
	case 3:
		return []models.PlayoffStage{models.StageQuarterfinal, models.StageSemifinal, models.StageFinal}
	case 2:
		return []models.PlayoffStage{models.StageSemifinal, models.StageFinal}
	default:
		return nil
	}
}

func playoffSlot(p GenerateParams, date time.Time, stage models.PlayoffStage, number int) *models.Fixture {
	params := p
	params.Date = date
	params.Team1 = nil
	params.Team2 = nil
	params.Pool = ""
	params.Court = ""

	f := baseFixture(params, models.FixtureTypePlayoff)
	f.Team1 = models.UnresolvedTeam()
	f.Team2 = models.UnresolvedTeam()
	f.Team1Name = models.TBD
	f.Team2Name = models.TBD
	f.MatchType = PlayoffCategory
	f.MatchTypeLabel = PlayoffCategory.Label()
	f.PlayoffStage = stage
	f.PlayoffNumber = number
	f.PlayoffName = PlayoffName(stage, number)
	return f
}

func PlayoffName(stage models.PlayoffStage, number int) string {
	switch stage {
	case models.StageQuarterfinal:
		return fmt.Sprintf("Quarterfinal %d", number)
	case models.StageSemifinal:
		return fmt.Sprintf("Semifinal %d", number)
	case models.StageThirdPlace:
		return "Third Place"
	case models.StageFinal:
		return "Final"
	default:
		return string(stage)
	}
}
