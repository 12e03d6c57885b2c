package brackets

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Dosada05/tournament-fixtures/models"
)

func tieParams() GenerateParams {
	return GenerateParams{
		Tournament: &models.Tournament{ID: "t1"},
		Team1:      &models.Team{ID: "a", Name: "Aces"},
		Team2:      &models.Team{ID: "b", Name: "Blasters"},
		Date:       time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		Time:       "14:00",
		Pool:       "Pool A",
		Court:      "Court 3",
		CreatedBy:  "admin@example.com",
		Now:        time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestGameBreakerGenerate(t *testing.T) {
	batch, err := NewGameBreakerGenerator().Generate(context.Background(), tieParams())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	all := batch.All()
	if len(all) != 7 {
		t.Fatalf("got %d fixtures; want 7", len(all))
	}

	wantCategories := []models.Category{
		models.CategoryMensDoubles,
		models.CategoryWomensDoubles,
		models.CategoryMensSingles,
		models.CategoryWomensSingles,
		models.CategoryMensDoubles,
		models.CategoryMixedDoubles,
		models.CategoryDreamBreaker,
	}
	groupID := all[0].FixtureGroupID
	if groupID == "" {
		t.Fatal("group id is empty")
	}
	for i, f := range all {
		if f.MatchNumber != i+1 {
			t.Errorf("fixture %d: MatchNumber = %d; want %d", i, f.MatchNumber, i+1)
		}
		if f.MatchType != wantCategories[i] {
			t.Errorf("fixture %d: MatchType = %s; want %s", i, f.MatchType, wantCategories[i])
		}
		if f.FixtureGroupID != groupID {
			t.Errorf("fixture %d: group id %q differs from %q", i, f.FixtureGroupID, groupID)
		}
		if f.FixtureType != models.FixtureTypeDreamBreaker {
			t.Errorf("fixture %d: FixtureType = %s", i, f.FixtureType)
		}
		if f.Team1.ID() != "a" || f.Team2.ID() != "b" || f.Team1Name != "Aces" || f.Team2Name != "Blasters" {
			t.Errorf("fixture %d: teams not shared: %+v", i, f)
		}
		if f.DateKey() != "2026-03-14" {
			t.Errorf("fixture %d: DateKey = %s", i, f.DateKey())
		}
		if f.Pool == nil || *f.Pool != "Pool A" {
			t.Errorf("fixture %d: pool not kept", i)
		}
	}

	if got := all[4].MatchTypeLabel; got != "Men's Doubles (2)" {
		t.Errorf("second men's doubles label = %q", got)
	}
	if got := all[0].MatchTypeLabel; got != "Men's Doubles" {
		t.Errorf("first men's doubles label = %q", got)
	}

	decider := batch.Decider
	if decider.MatchNumber != 7 || !decider.IsDecider() {
		t.Errorf("decider = %+v", decider)
	}
	if decider.Team1Players == nil || len(decider.Team1Players) != 0 || decider.Team2Players == nil || len(decider.Team2Players) != 0 {
		t.Errorf("decider rosters should be empty, got %v / %v", decider.Team1Players, decider.Team2Players)
	}
}

func TestMiniGameBreakerGenerate(t *testing.T) {
	batch, err := NewMiniGameBreakerGenerator().Generate(context.Background(), tieParams())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	all := batch.All()
	if len(all) != 5 {
		t.Fatalf("got %d fixtures; want 5", len(all))
	}
	wantLabels := []string{"Men's Doubles", "Men's Doubles (2)", "Mixed Doubles", "Mixed Doubles (2)", "Dream Breaker"}
	for i, f := range all {
		if f.MatchNumber != i+1 {
			t.Errorf("fixture %d: MatchNumber = %d", i, f.MatchNumber)
		}
		if f.MatchTypeLabel != wantLabels[i] {
			t.Errorf("fixture %d: label = %q; want %q", i, f.MatchTypeLabel, wantLabels[i])
		}
		if f.Pool != nil || f.Court != nil {
			t.Errorf("fixture %d: pool/court should be empty, got %v/%v", i, f.Pool, f.Court)
		}
		if f.FixtureType != models.FixtureTypeMiniDreamBreaker {
			t.Errorf("fixture %d: FixtureType = %s", i, f.FixtureType)
		}
	}
	if !all[4].IsDecider() {
		t.Error("match 5 should be the decider")
	}
}

func TestTieGenerateValidation(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(p *GenerateParams)
		wantErr error
	}{
		{"same teams", func(p *GenerateParams) { p.Team2 = &models.Team{ID: "a"} }, ErrIdenticalTeams},
		{"missing team1", func(p *GenerateParams) { p.Team1 = nil }, ErrMissingField},
		{"missing date", func(p *GenerateParams) { p.Date = time.Time{} }, ErrMissingField},
		{"bad time", func(p *GenerateParams) { p.Time = "9:5" }, ErrInvalidTime},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := tieParams()
			c.mutate(&p)
			_, err := NewGameBreakerGenerator().Generate(context.Background(), p)
			if !errors.Is(err, c.wantErr) {
				t.Errorf("err = %v; want %v", err, c.wantErr)
			}
		})
	}
}

func TestTieGroupIDDeterministic(t *testing.T) {
	a := TieGroupID("x", "y", 42)
	if b := TieGroupID("x", "y", 42); a != b {
		t.Errorf("same input produced %s and %s", a, b)
	}
	if c := TieGroupID("x", "y", 43); a == c {
		t.Error("different instants produced the same id")
	}
	if d := TieGroupID("y", "x", 42); a == d {
		t.Error("swapped teams produced the same id")
	}
}
