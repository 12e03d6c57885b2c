package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/Dosada05/tournament-fixtures/brackets"
	"github.com/Dosada05/tournament-fixtures/models"
	"github.com/Dosada05/tournament-fixtures/repositories"
	"github.com/Dosada05/tournament-fixtures/storage"
)

var errStoreDown = errors.New("store unavailable")

type fakeFixtureRepo struct {
	mu      sync.Mutex
	seq     int
	creates int
	rows    map[string]*models.Fixture
	order   []string
	writes  []*models.Fixture
	// failOn is asked before every insert with the 1-based insert count.
	failOn func(n int, f *models.Fixture) bool
}

func newFakeFixtureRepo(seed ...*models.Fixture) *fakeFixtureRepo {
	r := &fakeFixtureRepo{rows: make(map[string]*models.Fixture)}
	for _, f := range seed {
		r.rows[f.ID] = f.Clone()
		r.order = append(r.order, f.ID)
	}
	return r
}

func (r *fakeFixtureRepo) Create(ctx context.Context, exec repositories.SQLExecutor, f *models.Fixture) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.creates++
	if r.failOn != nil && r.failOn(r.creates, f) {
		return errStoreDown
	}
	if f.ID == "" {
		r.seq++
		f.ID = fmt.Sprintf("f%03d", r.seq)
	}
	if _, ok := r.rows[f.ID]; ok {
		return repositories.ErrFixtureConflict
	}
	r.rows[f.ID] = f.Clone()
	r.order = append(r.order, f.ID)
	r.writes = append(r.writes, f.Clone())
	return nil
}

func (r *fakeFixtureRepo) CreateMany(ctx context.Context, exec repositories.SQLExecutor, fixtures []*models.Fixture) (int, error) {
	for i, f := range fixtures {
		if err := r.Create(ctx, exec, f); err != nil {
			return i, err
		}
	}
	return len(fixtures), nil
}

func (r *fakeFixtureRepo) GetByID(ctx context.Context, id string) (*models.Fixture, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.rows[id]
	if !ok {
		return nil, repositories.ErrFixtureNotFound
	}
	return f.Clone(), nil
}

func (r *fakeFixtureRepo) List(ctx context.Context, filter repositories.FixtureFilter) ([]*models.Fixture, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Fixture
	for _, id := range r.order {
		f, ok := r.rows[id]
		if !ok || f.TournamentID != filter.TournamentID {
			continue
		}
		if filter.TeamID != "" && !f.Involves(filter.TeamID) {
			continue
		}
		if filter.GroupID != "" && f.FixtureGroupID != filter.GroupID {
			continue
		}
		if filter.FixtureType != nil && f.FixtureType != *filter.FixtureType {
			continue
		}
		out = append(out, f.Clone())
	}
	return out, nil
}

func (r *fakeFixtureRepo) ListByGroup(ctx context.Context, groupID string) ([]*models.Fixture, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Fixture
	for _, id := range r.order {
		if f, ok := r.rows[id]; ok && f.FixtureGroupID == groupID {
			out = append(out, f.Clone())
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].MatchNumber < out[j].MatchNumber })
	return out, nil
}

func (r *fakeFixtureRepo) Update(ctx context.Context, exec repositories.SQLExecutor, f *models.Fixture) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[f.ID]; !ok {
		return repositories.ErrFixtureNotFound
	}
	f.UpdatedAt = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	r.rows[f.ID] = f.Clone()
	return nil
}

func (r *fakeFixtureRepo) Delete(ctx context.Context, exec repositories.SQLExecutor, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return repositories.ErrFixtureNotFound
	}
	delete(r.rows, id)
	return nil
}

func (r *fakeFixtureRepo) DeleteMany(ctx context.Context, exec repositories.SQLExecutor, ids []string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, id := range ids {
		if _, ok := r.rows[id]; ok {
			delete(r.rows, id)
			n++
		}
	}
	return n, nil
}

func (r *fakeFixtureRepo) CountByType(ctx context.Context, tournamentID string, fixtureType models.FixtureType) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, f := range r.rows {
		if f.TournamentID == tournamentID && f.FixtureType == fixtureType {
			n++
		}
	}
	return n, nil
}

func (r *fakeFixtureRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows)
}

type fakeTournamentRepo struct {
	tournaments map[string]*models.Tournament
}

func (r *fakeTournamentRepo) Create(ctx context.Context, t *models.Tournament) error {
	r.tournaments[t.ID] = t
	return nil
}

func (r *fakeTournamentRepo) GetByID(ctx context.Context, id string) (*models.Tournament, error) {
	t, ok := r.tournaments[id]
	if !ok {
		return nil, repositories.ErrTournamentNotFound
	}
	copied := *t
	return &copied, nil
}

func (r *fakeTournamentRepo) List(ctx context.Context) ([]*models.Tournament, error) {
	var out []*models.Tournament
	for _, t := range r.tournaments {
		out = append(out, t)
	}
	return out, nil
}

type fakeRosterRepo struct {
	teams   []*models.Team
	players []*models.Player
}

func (r *fakeRosterRepo) CreateTeam(ctx context.Context, team *models.Team) error {
	r.teams = append(r.teams, team)
	return nil
}

func (r *fakeRosterRepo) GetTeamByID(ctx context.Context, id string) (*models.Team, error) {
	for _, t := range r.teams {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, repositories.ErrTeamNotFound
}

func (r *fakeRosterRepo) ListTeams(ctx context.Context, tournamentID string) ([]*models.Team, error) {
	var out []*models.Team
	for _, t := range r.teams {
		if t.TournamentID == tournamentID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeRosterRepo) CreatePlayer(ctx context.Context, player *models.Player) error {
	r.players = append(r.players, player)
	return nil
}

func (r *fakeRosterRepo) ListPlayers(ctx context.Context, tournamentID string) ([]*models.Player, error) {
	var out []*models.Player
	for _, p := range r.players {
		if p.TournamentID == tournamentID {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeVenueRepo struct {
	venues map[string]*models.Venue
}

func (r *fakeVenueRepo) Create(ctx context.Context, v *models.Venue) error {
	r.venues[v.ID] = v
	return nil
}

func (r *fakeVenueRepo) GetByID(ctx context.Context, id string) (*models.Venue, error) {
	v, ok := r.venues[id]
	if !ok {
		return nil, repositories.ErrVenueNotFound
	}
	return v, nil
}

func (r *fakeVenueRepo) List(ctx context.Context) ([]*models.Venue, error) {
	var out []*models.Venue
	for _, v := range r.venues {
		out = append(out, v)
	}
	return out, nil
}

type fakePreferenceRepo struct {
	prefs map[string]*models.StylePreference
}

func (r *fakePreferenceRepo) Get(ctx context.Context, tournamentID string) (*models.StylePreference, error) {
	p, ok := r.prefs[tournamentID]
	if !ok {
		return nil, repositories.ErrPreferenceNotFound
	}
	return p, nil
}

func (r *fakePreferenceRepo) Upsert(ctx context.Context, pref *models.StylePreference) error {
	r.prefs[pref.TournamentID] = pref
	return nil
}

type recordingNotifier struct {
	mu       sync.Mutex
	payloads []brackets.FixturesChangedPayload
}

func (n *recordingNotifier) NotifyFixturesChanged(payload brackets.FixturesChangedPayload) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.payloads = append(n.payloads, payload)
}

func (n *recordingNotifier) last() (brackets.FixturesChangedPayload, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.payloads) == 0 {
		return brackets.FixturesChangedPayload{}, false
	}
	return n.payloads[len(n.payloads)-1], true
}

type fakeStore struct {
	objects map[string][]byte
	fail    bool
}

func (s *fakeStore) Put(ctx context.Context, key string, contentType string, body io.Reader) (*storage.UploadResult, error) {
	if s.fail {
		return nil, errStoreDown
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, err
	}
	s.objects[key] = data
	return &storage.UploadResult{Key: key, Location: s.PublicURL(key)}, nil
}

func (s *fakeStore) Delete(ctx context.Context, key string) error {
	delete(s.objects, key)
	return nil
}

func (s *fakeStore) PublicURL(key string) string {
	return "https://cdn.example.com/" + key
}

var (
	superAdmin = models.Caller{UID: "u-super", Email: "admin@example.com", Role: models.RoleSuperAdmin}
	aceAdmin   = models.Caller{UID: "u-aces", Email: "aces@example.com", Role: models.RoleTeamAdmin, TeamID: "a"}
	nobody     = models.Caller{UID: "u-anon"}
)

type testEnv struct {
	svc         FixtureService
	fixtures    *fakeFixtureRepo
	tournaments *fakeTournamentRepo
	rosters     *fakeRosterRepo
	notifier    *recordingNotifier
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestEnv builds a tournament t1 with teams a, b and c. now is fixed to
// 2026-03-14 12:30 UTC.
func newTestEnv(seed ...*models.Fixture) *testEnv {
	env := &testEnv{
		fixtures: newFakeFixtureRepo(seed...),
		tournaments: &fakeTournamentRepo{tournaments: map[string]*models.Tournament{
			"t1": {
				ID:         "t1",
				Name:       "Spring Open",
				StartDate:  time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
				EndDate:    time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC),
				Categories: []models.Category{models.CategoryMixedDoubles, models.CategoryMensSingles},
			},
		}},
		rosters: &fakeRosterRepo{
			teams: []*models.Team{
				{ID: "a", TournamentID: "t1", Name: "Aces", PlayerIDs: []string{"pa1", "pa2", "pa3"}},
				{ID: "b", TournamentID: "t1", Name: "Blasters", PlayerIDs: []string{"pb1", "pb2"}},
				{ID: "c", TournamentID: "t1", Name: "Comets", PlayerIDs: []string{"pc1"}},
			},
			players: []*models.Player{
				{ID: "pa1", TournamentID: "t1", Name: "Arjun", Gender: models.GenderMale},
				{ID: "pa2", TournamentID: "t1", Name: "Dev", Gender: models.GenderMale},
				{ID: "pa3", TournamentID: "t1", Name: "Asha", Gender: models.GenderFemale},
				{ID: "pb1", TournamentID: "t1", Name: "Bruno", Gender: models.GenderMale},
				{ID: "pb2", TournamentID: "t1", Name: "Bea", Gender: models.GenderFemale},
				{ID: "pc1", TournamentID: "t1", Name: "Chen", Gender: models.GenderMale},
			},
		},
		notifier: &recordingNotifier{},
	}
	venues := &fakeVenueRepo{venues: map[string]*models.Venue{"v1": {ID: "v1", Name: "Central Courts"}}}
	svc := NewFixtureService(env.fixtures, env.tournaments, env.rosters, venues, env.notifier, discardLogger(), time.UTC)
	svc.(*fixtureService).now = func() time.Time { return time.Date(2026, 3, 14, 12, 30, 0, 0, time.UTC) }
	env.svc = svc
	return env
}

func (env *testEnv) setNow(t time.Time) {
	env.svc.(*fixtureService).now = func() time.Time { return t }
}

// doublesFixture is a men's doubles between a and b on 2026-03-14 at 14:00.
func doublesFixture(id string) *models.Fixture {
	return &models.Fixture{
		ID:           id,
		TournamentID: "t1",
		Date:         time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		Time:         "14:00",
		MatchType:    models.CategoryMensDoubles,
		Team1:        models.AssignedTeam("a"),
		Team2:        models.AssignedTeam("b"),
		Team1Name:    "Aces",
		Team2Name:    "Blasters",
		FixtureType:  models.FixtureTypeCustom,
		Status:       models.FixtureStatusScheduled,
	}
}
