package brackets

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Dosada05/tournament-fixtures/models"
)

func TestPlayoffGenerate(t *testing.T) {
	tournament := &models.Tournament{ID: "t1", EndDate: time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)}
	batch, err := NewPlayoffGenerator().Generate(context.Background(), GenerateParams{Tournament: tournament})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(batch.Legs) != 8 {
		t.Fatalf("got %d fixtures; want 8", len(batch.Legs))
	}

	stages := make(map[models.PlayoffStage]int)
	for _, f := range batch.Legs {
		stages[f.PlayoffStage]++
		if f.Team1.IsAssigned() || f.Team2.IsAssigned() {
			t.Errorf("%s: participants should be TBD", f.PlayoffName)
		}
		if f.Team1Name != models.TBD || f.Team2Name != models.TBD {
			t.Errorf("%s: names = %q/%q", f.PlayoffName, f.Team1Name, f.Team2Name)
		}
		if f.MatchType != models.CategoryMixedDoubles {
			t.Errorf("%s: MatchType = %s", f.PlayoffName, f.MatchType)
		}
		if f.FixtureGroupID != "" {
			t.Errorf("%s: unexpected group id", f.PlayoffName)
		}
		if f.DateKey() != "2026-06-30" || f.Time != DefaultFixtureTime {
			t.Errorf("%s: scheduled %s %q; want 2026-06-30 %s", f.PlayoffName, f.DateKey(), f.Time, DefaultFixtureTime)
		}
	}
	want := map[models.PlayoffStage]int{
		models.StageQuarterfinal: 4,
		models.StageSemifinal:    2,
		models.StageThirdPlace:   1,
		models.StageFinal:        1,
	}
	for stage, n := range want {
		if stages[stage] != n {
			t.Errorf("stage %s: got %d; want %d", stage, stages[stage], n)
		}
	}
	if last := batch.Legs[7]; last.PlayoffStage != models.StageFinal || last.PlayoffName != "Final" {
		t.Errorf("last slot = %+v", last)
	}
	if first := batch.Legs[0]; first.PlayoffName != "Quarterfinal 1" || first.PlayoffNumber != 1 {
		t.Errorf("first slot = %+v", first)
	}

	day := time.Date(2026, 6, 28, 0, 0, 0, 0, time.UTC)
	batch, err = NewPlayoffGenerator().Generate(context.Background(), GenerateParams{Tournament: tournament, Date: day, Time: "17:30"})
	if err != nil {
		t.Fatalf("Generate with schedule: %v", err)
	}
	if f := batch.Legs[0]; f.DateKey() != "2026-06-28" || f.Time != "17:30" {
		t.Errorf("override ignored: %s %q", f.DateKey(), f.Time)
	}
}

func TestCustomGenerate(t *testing.T) {
	base := GenerateParams{
		Tournament: &models.Tournament{ID: "t1"},
		Team1:      &models.Team{ID: "a", Name: "Aces"},
		Team2:      &models.Team{ID: "b", Name: "Blasters"},
		MatchType:  models.CategoryWomensSingles,
		Date:       time.Date(2026, 4, 2, 15, 30, 0, 0, time.UTC),
		Time:       "08:30",
		Players: map[models.SlotName]models.PlayerSlot{
			models.SlotPlayer1Team1: {ID: "p1", Name: "Ana"},
		},
	}

	batch, err := NewCustomGenerator().Generate(context.Background(), base)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	f := batch.Legs[0]
	if f.FixtureType != models.FixtureTypeCustom || f.FixtureGroupID != "" {
		t.Errorf("fixture = %+v", f)
	}
	if f.DateKey() != "2026-04-02" {
		t.Errorf("DateKey = %s", f.DateKey())
	}
	if f.Player1Team1.Name != "Ana" {
		t.Errorf("player slot not copied: %+v", f.Player1Team1)
	}
	if f.MatchTypeLabel != "Women's Singles" {
		t.Errorf("label = %q", f.MatchTypeLabel)
	}

	cases := []struct {
		name    string
		mutate  func(p *GenerateParams)
		wantErr error
	}{
		{"missing match type", func(p *GenerateParams) { p.MatchType = "" }, ErrMissingField},
		{"decider not allowed", func(p *GenerateParams) { p.MatchType = models.CategoryDreamBreaker }, ErrInvalidCategory},
		{"same team", func(p *GenerateParams) { p.Team2 = p.Team1 }, ErrIdenticalTeams},
		{"missing time", func(p *GenerateParams) { p.Time = "" }, ErrMissingField},
		{"missing date", func(p *GenerateParams) { p.Date = time.Time{} }, ErrMissingField},
		{"bad slot", func(p *GenerateParams) {
			p.Players = map[models.SlotName]models.PlayerSlot{"player3Team1": {ID: "x"}}
		}, ErrInvalidSlot},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := base
			c.mutate(&p)
			if _, err := NewCustomGenerator().Generate(context.Background(), p); !errors.Is(err, c.wantErr) {
				t.Errorf("err = %v; want %v", err, c.wantErr)
			}
		})
	}
}
