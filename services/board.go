package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Dosada05/tournament-fixtures/models"
	"github.com/Dosada05/tournament-fixtures/schedule"
)

// Board is one console's view of a tournament's fixtures. Every mutation goes
// through FixtureService first and touches local state only when it succeeded, so a
// failed call leaves the board exactly as it was.
type Board struct {
	svc          FixtureService
	caller       models.Caller
	tournamentID string

	mu       sync.RWMutex
	fixtures map[string]*models.Fixture
	buckets  *schedule.Buckets
}

// NewBoard loads the tournament's fixtures visible to caller.
func NewBoard(ctx context.Context, svc FixtureService, caller models.Caller, tournamentID string) (*Board, error) {
	b := &Board{svc: svc, caller: caller, tournamentID: tournamentID}
	if err := b.Refresh(ctx); err != nil {
		return nil, err
	}
	return b, nil
}

// Refresh re-reads every fixture. Bulk writes and FIXTURES_CHANGED messages from
// other consoles end here.
func (b *Board) Refresh(ctx context.Context) error {
	fixtures, err := b.svc.ListFixtures(ctx, b.caller, b.tournamentID)
	if err != nil {
		return err
	}
	byID := make(map[string]*models.Fixture, len(fixtures))
	for _, f := range fixtures {
		byID[f.ID] = f
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.fixtures = byID
	b.buckets = schedule.NewBuckets(fixtures)
	return nil
}

func (b *Board) CreateCustom(ctx context.Context, in CustomFixtureInput) (*models.Fixture, error) {
	in.TournamentID = b.tournamentID
	f, err := b.svc.CreateCustomFixture(ctx, b.caller, in)
	if err != nil {
		return nil, err
	}
	b.put(f)
	return f, nil
}

func (b *Board) GenerateGameBreaker(ctx context.Context, in TieInput) ([]*models.Fixture, error) {
	in.TournamentID = b.tournamentID
	return b.afterBulk(ctx)(b.svc.GenerateGameBreaker(ctx, b.caller, in))
}

func (b *Board) GenerateMiniGameBreaker(ctx context.Context, in TieInput) ([]*models.Fixture, error) {
	in.TournamentID = b.tournamentID
	return b.afterBulk(ctx)(b.svc.GenerateMiniGameBreaker(ctx, b.caller, in))
}

func (b *Board) GenerateRoundRobin(ctx context.Context, in RoundRobinInput) ([]*models.Fixture, error) {
	in.TournamentID = b.tournamentID
	return b.afterBulk(ctx)(b.svc.GenerateRoundRobin(ctx, b.caller, in))
}

func (b *Board) GeneratePlayoffs(ctx context.Context, in PlayoffInput) ([]*models.Fixture, error) {
	in.TournamentID = b.tournamentID
	return b.afterBulk(ctx)(b.svc.GeneratePlayoffs(ctx, b.caller, in))
}

// afterBulk refreshes the board once a bulk write succeeded. A failed refresh is
// returned with the written fixtures so the caller knows the write itself went in.
func (b *Board) afterBulk(ctx context.Context) func([]*models.Fixture, error) ([]*models.Fixture, error) {
	return func(fixtures []*models.Fixture, err error) ([]*models.Fixture, error) {
		if err != nil {
			return nil, err
		}
		return fixtures, b.Refresh(ctx)
	}
}

func (b *Board) Update(ctx context.Context, fixtureID string, in UpdateFixtureInput) (*models.Fixture, error) {
	f, err := b.svc.UpdateFixture(ctx, b.caller, fixtureID, in)
	if err != nil {
		return nil, err
	}
	b.put(f)
	return f, nil
}

func (b *Board) ResetPlayoff(ctx context.Context, fixtureID string) (*models.Fixture, error) {
	f, err := b.svc.ResetPlayoffFixture(ctx, b.caller, fixtureID)
	if err != nil {
		return nil, err
	}
	b.put(f)
	return f, nil
}

func (b *Board) Delete(ctx context.Context, fixtureID string) ([]string, error) {
	ids, err := b.svc.DeleteFixture(ctx, b.caller, fixtureID)
	if err != nil {
		return nil, err
	}
	b.drop(ids)
	return ids, nil
}

func (b *Board) DeleteGroup(ctx context.Context, groupID string) ([]string, error) {
	ids, err := b.svc.DeleteGroup(ctx, b.caller, groupID)
	if err != nil {
		return nil, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.buckets.RemoveGroup(groupID)
	for _, id := range ids {
		delete(b.fixtures, id)
		b.buckets.Remove(id)
	}
	return ids, nil
}

func (b *Board) put(f *models.Fixture) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.fixtures[f.ID] = f
	b.buckets.Move(f)
}

func (b *Board) drop(ids []string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, id := range ids {
		delete(b.fixtures, id)
		b.buckets.Remove(id)
	}
}

// Fixtures returns a snapshot in day order.
func (b *Board) Fixtures() []*models.Fixture {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]*models.Fixture, 0, len(b.fixtures))
	seen := make(map[string]bool, len(b.fixtures))
	for _, key := range b.buckets.Keys() {
		for _, f := range b.buckets.Day(key) {
			out = append(out, f)
			seen[f.ID] = true
		}
	}
	// без даты
	var undated []*models.Fixture
	for _, f := range b.fixtures {
		if !seen[f.ID] {
			undated = append(undated, f)
		}
	}
	sort.Slice(undated, func(i, j int) bool { return undated[i].ID < undated[j].ID })
	return append(out, undated...)
}

func (b *Board) Fixture(id string) (*models.Fixture, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	f, ok := b.fixtures[id]
	return f, ok
}

func (b *Board) Day(key string) []*models.Fixture {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.buckets.Day(key)
}

func (b *Board) Calendar(start, end time.Time) []schedule.CalendarDay {
	return schedule.Calendar(start, end, b.Fixtures())
}
