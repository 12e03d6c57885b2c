package brackets

import (
	"context"
	"fmt"

	"github.com/Dosada05/tournament-fixtures/models"
)

type CustomGenerator struct{}

func NewCustomGenerator() FixtureGenerator {
	return &CustomGenerator{}
}

func (g *CustomGenerator) GetName() string {
	return "Custom"
}

// Generate builds a single standalone fixture from explicit input.
func (g *CustomGenerator) Generate(ctx context.Context, p GenerateParams) (*Batch, error) {
	if p.Tournament == nil || p.Tournament.ID == "" {
		return nil, missing("tournament")
	}
	if p.MatchType == "" {
		return nil, missing("matchType")
	}
	if !p.MatchType.IsValid() || p.MatchType == models.CategoryDreamBreaker {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, p.MatchType)
	}
	if err := validatePair(p.Team1, p.Team2); err != nil {
		return nil, err
	}
	if p.Time == "" {
		return nil, missing("time")
	}
	if err := ValidateTime(p.Time); err != nil {
		return nil, err
	}
	if p.Date.IsZero() {
		return nil, missing("date")
	}

	f := baseFixture(p, models.FixtureTypeCustom)
	f.MatchType = p.MatchType
	f.MatchTypeLabel = p.MatchType.Label()
	for name, slot := range p.Players {
		if !name.IsValid() {
			return nil, fmt.Errorf("%w: %q", ErrInvalidSlot, name)
		}
		*f.Slot(name) = slot
	}
	return &Batch{Legs: []*models.Fixture{f}}, nil
}
