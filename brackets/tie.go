package brackets

import (
	"context"
	"fmt"

	"github.com/Dosada05/tournament-fixtures/models"
	"github.com/google/uuid"
)

// tieGroupNamespace seeds the name-based group ids so the same teams and creation
// instant always produce the same id.
var tieGroupNamespace = uuid.MustParse("6f0f7b2e-3c1a-4d8e-9b55-2a7c1e9d4f10")

type leg struct {
	category models.Category
	repeat   bool // second leg of the same category, labelled " (2)"
}

var gameBreakerLegs = []leg{
	{category: models.CategoryMensDoubles},
	{category: models.CategoryWomensDoubles},
	{category: models.CategoryMensSingles},
	{category: models.CategoryWomensSingles},
	{category: models.CategoryMensDoubles, repeat: true},
	{category: models.CategoryMixedDoubles},
}

var miniGameBreakerLegs = []leg{
	{category: models.CategoryMensDoubles},
	{category: models.CategoryMensDoubles, repeat: true},
	{category: models.CategoryMixedDoubles},
	{category: models.CategoryMixedDoubles, repeat: true},
}

// TieGenerator builds a fixed sequence of category legs between two teams plus an
// appended tie-decider, all sharing one fixture group id.
type TieGenerator struct {
	name        string
	fixtureType models.FixtureType
	legs        []leg
	venueSlots  bool // whether pool and court are kept
}

func NewGameBreakerGenerator() FixtureGenerator {
	return &TieGenerator{
		name:        "GameBreaker",
		fixtureType: models.FixtureTypeDreamBreaker,
		legs:        gameBreakerLegs,
		venueSlots:  true,
	}
}

func NewMiniGameBreakerGenerator() FixtureGenerator {
	return &TieGenerator{
		name:        "MiniGameBreaker",
		fixtureType: models.FixtureTypeMiniDreamBreaker,
		legs:        miniGameBreakerLegs,
		venueSlots:  false,
	}
}

func (g *TieGenerator) GetName() string {
	return g.name
}

func (g *TieGenerator) Generate(ctx context.Context, p GenerateParams) (*Batch, error) {
	if p.Tournament == nil || p.Tournament.ID == "" {
		return nil, missing("tournament")
	}
	if err := validatePair(p.Team1, p.Team2); err != nil {
		return nil, err
	}
	if p.Date.IsZero() {
		return nil, missing("date")
	}
	if p.Time != "" {
		if err := ValidateTime(p.Time); err != nil {
			return nil, err
		}
	}
	if !g.venueSlots {
		p.Pool = ""
		p.Court = ""
	}

	groupID := TieGroupID(p.Team1.ID, p.Team2.ID, p.Now.UnixNano())

	batch := &Batch{Legs: make([]*models.Fixture, 0, len(g.legs))}
	for i, l := range g.legs {
		f := baseFixture(p, g.fixtureType)
		f.FixtureGroupID = groupID
		f.MatchNumber = i + 1
		f.MatchType = l.category
		f.MatchTypeLabel = l.category.Label()
		if l.repeat {
			f.MatchTypeLabel += " (2)"
		}
		batch.Legs = append(batch.Legs, f)
	}

	decider := baseFixture(p, g.fixtureType)
	decider.FixtureGroupID = groupID
	decider.MatchNumber = len(g.legs) + 1
	decider.MatchType = models.CategoryDreamBreaker
	decider.MatchTypeLabel = models.CategoryDreamBreaker.Label()
	decider.Team1Players = []string{}
	decider.Team2Players = []string{}
	batch.Decider = decider

	return batch, nil
}

// TieGroupID derives the shared group id of a tie from both team ids and the
// creation instant.
func TieGroupID(team1ID, team2ID string, createdAtNano int64) string {
	name := fmt.Sprintf("%s|%s|%d", team1ID, team2ID, createdAtNano)
	return uuid.NewSHA1(tieGroupNamespace, []byte(name)).String()
}
