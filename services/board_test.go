package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Dosada05/tournament-fixtures/models"
)

func TestBoardAppliesSuccessfulChanges(t *testing.T) {
	env := newTestEnv(doublesFixture("fx1"), doublesFixture("fx2"))
	ctx := context.Background()

	board, err := NewBoard(ctx, env.svc, superAdmin, "t1")
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	if got := len(board.Day("2026-03-14")); got != 2 {
		t.Fatalf("day 2026-03-14 has %d fixtures; want 2", got)
	}

	date := "2026-03-15"
	if _, err := board.Update(ctx, "fx1", UpdateFixtureInput{Date: &date}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got := len(board.Day("2026-03-14")); got != 1 {
		t.Errorf("old day has %d fixtures; want 1", got)
	}
	if moved := board.Day("2026-03-15"); len(moved) != 1 || moved[0].ID != "fx1" {
		t.Errorf("new day = %v; want [fx1]", fixtureIDs(moved))
	}

	tie, err := board.GenerateMiniGameBreaker(ctx, TieInput{Team1ID: "a", Team2ID: "b", Date: "2026-03-16"})
	if err != nil {
		t.Fatalf("GenerateMiniGameBreaker: %v", err)
	}
	if got := len(board.Fixtures()); got != 2+len(tie) {
		t.Errorf("board has %d fixtures; want %d", got, 2+len(tie))
	}

	if _, err := board.Delete(ctx, tie[0].ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if got := len(board.Day("2026-03-16")); got != 0 {
		t.Errorf("tie day still has %d fixtures", got)
	}
	if _, ok := board.Fixture(tie[2].ID); ok {
		t.Error("group member survived on the board")
	}

	days := board.Calendar(time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC))
	want := []int{1, 1, 0}
	for i, d := range days {
		if d.FixtureCount != want[i] {
			t.Errorf("%s has %d fixtures; want %d", d.Key, d.FixtureCount, want[i])
		}
	}
}

func TestBoardUnchangedOnFailure(t *testing.T) {
	env := newTestEnv(doublesFixture("fx1"))
	ctx := context.Background()

	board, err := NewBoard(ctx, env.svc, superAdmin, "t1")
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	before, _ := board.Fixture("fx1")

	bad := "25:00"
	if _, err := board.Update(ctx, "fx1", UpdateFixtureInput{Time: &bad}); !errors.Is(err, ErrValidationFailed) {
		t.Fatalf("Update err = %v; want ErrValidationFailed", err)
	}
	if _, err := board.Delete(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Delete err = %v; want ErrNotFound", err)
	}
	env.fixtures.failOn = func(int, *models.Fixture) bool { return true }
	if _, err := board.GeneratePlayoffs(ctx, PlayoffInput{}); err == nil {
		t.Fatal("GeneratePlayoffs succeeded against a failing store")
	}

	after, ok := board.Fixture("fx1")
	if !ok || after != before {
		t.Error("fixture on the board changed after failed calls")
	}
	if got := len(board.Fixtures()); got != 1 {
		t.Errorf("board has %d fixtures; want 1", got)
	}
}

func TestNewBoardRejectsUnverifiedCaller(t *testing.T) {
	env := newTestEnv()
	if _, err := NewBoard(context.Background(), env.svc, nobody, "t1"); !errors.Is(err, ErrForbiddenOperation) {
		t.Errorf("err = %v; want ErrForbiddenOperation", err)
	}
}
