package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/Dosada05/tournament-fixtures/models"
	"github.com/Dosada05/tournament-fixtures/schedule"
)

func TestBuildSchedule(t *testing.T) {
	env := newTestEnv(doublesFixture("fx1"))
	ctx := context.Background()
	if _, err := env.svc.GenerateGameBreaker(ctx, superAdmin, gameBreakerInput()); err != nil {
		t.Fatalf("GenerateGameBreaker: %v", err)
	}
	if _, err := env.svc.GeneratePlayoffs(ctx, superAdmin, PlayoffInput{TournamentID: "t1"}); err != nil {
		t.Fatalf("GeneratePlayoffs: %v", err)
	}
	svc := NewScheduleService(env.tournaments, env.svc)

	view, err := svc.BuildSchedule(ctx, superAdmin, "t1", ScheduleQuery{})
	if err != nil {
		t.Fatalf("BuildSchedule: %v", err)
	}
	if len(view.Days) != 7 {
		t.Errorf("got %d calendar days; want 7", len(view.Days))
	}
	if len(view.Groups) != 1 || len(view.Groups[0].Fixtures) != 7 {
		t.Errorf("groups = %d; want one tie of 7", len(view.Groups))
	}
	if len(view.Fixtures) != 1 || view.Fixtures[0].ID != "fx1" {
		t.Errorf("flat fixtures = %v; want [fx1]", fixtureIDs(view.Fixtures))
	}
	if len(view.Playoffs) != 8 || view.Playoffs[7].PlayoffStage != models.StageFinal {
		t.Errorf("playoff bracket has %d fixtures", len(view.Playoffs))
	}

	active, err := svc.BuildSchedule(ctx, superAdmin, "t1", ScheduleQuery{ActiveOnly: true, Filter: schedule.Filter{Search: "no such team"}})
	if err != nil {
		t.Fatalf("BuildSchedule(active): %v", err)
	}
	// 2026-03-14 holds fx1 and the tie, 2026-03-16 the playoffs
	if len(active.Days) != 2 {
		t.Errorf("got %d active days; want 2", len(active.Days))
	}
	if len(active.Groups) != 0 || len(active.Fixtures) != 0 {
		t.Error("search did not filter the views")
	}

	if _, err := svc.BuildSchedule(ctx, nobody, "t1", ScheduleQuery{}); !errors.Is(err, ErrForbiddenOperation) {
		t.Errorf("unverified caller err = %v; want ErrForbiddenOperation", err)
	}
}

func TestPublishSchedule(t *testing.T) {
	env := newTestEnv(doublesFixture("fx1"))
	ctx := context.Background()
	schedules := NewScheduleService(env.tournaments, env.svc)

	disabled := NewExportService(schedules, nil, discardLogger())
	if _, err := disabled.PublishSchedule(ctx, superAdmin, "t1"); !errors.Is(err, ErrExportDisabled) {
		t.Errorf("err = %v; want ErrExportDisabled", err)
	}

	store := &fakeStore{objects: make(map[string][]byte)}
	export := NewExportService(schedules, store, discardLogger())
	if _, err := export.PublishSchedule(ctx, aceAdmin, "t1"); !errors.Is(err, ErrForbiddenOperation) {
		t.Errorf("scoped publish err = %v; want ErrForbiddenOperation", err)
	}

	published, err := export.PublishSchedule(ctx, superAdmin, "t1")
	if err != nil {
		t.Fatalf("PublishSchedule: %v", err)
	}
	if published.Key != "schedules/t1.json" || published.URL != "https://cdn.example.com/schedules/t1.json" {
		t.Errorf("published = %+v", published)
	}
	if published.Fixtures != 1 {
		t.Errorf("fixtures = %d; want 1", published.Fixtures)
	}

	var snapshot struct {
		Schedule struct {
			Tournament struct {
				ID string `json:"id"`
			} `json:"tournament"`
			Fixtures []json.RawMessage `json:"fixtures"`
		} `json:"schedule"`
	}
	if err := json.Unmarshal(store.objects["schedules/t1.json"], &snapshot); err != nil {
		t.Fatalf("snapshot is not JSON: %v", err)
	}
	if snapshot.Schedule.Tournament.ID != "t1" || len(snapshot.Schedule.Fixtures) != 1 {
		t.Errorf("unexpected snapshot %+v", snapshot)
	}

	if err := export.UnpublishSchedule(ctx, superAdmin, "t1"); err != nil {
		t.Fatalf("UnpublishSchedule: %v", err)
	}
	if _, ok := store.objects["schedules/t1.json"]; ok {
		t.Error("snapshot still stored")
	}

	store.fail = true
	if _, err := export.PublishSchedule(ctx, superAdmin, "t1"); !errors.Is(err, ErrPersistence) {
		t.Errorf("failing store err = %v; want ErrPersistence", err)
	}
}

func TestStylePreference(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	svc := NewPreferenceService(&fakePreferenceRepo{prefs: make(map[string]*models.StylePreference)}, env.tournaments)

	if _, err := svc.GetStyle(ctx, superAdmin, "t1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetStyle before set err = %v; want ErrNotFound", err)
	}
	if _, err := svc.SetStyle(ctx, superAdmin, "t1", "knockout"); !errors.Is(err, ErrValidationFailed) {
		t.Errorf("unknown style err = %v; want ErrValidationFailed", err)
	}
	if _, err := svc.SetStyle(ctx, aceAdmin, "t1", models.StyleRoundRobin); !errors.Is(err, ErrForbiddenOperation) {
		t.Errorf("scoped SetStyle err = %v; want ErrForbiddenOperation", err)
	}
	if _, err := svc.SetStyle(ctx, superAdmin, "missing", models.StyleRoundRobin); !errors.Is(err, ErrTournamentNotFound) {
		t.Errorf("SetStyle(missing) err = %v; want ErrTournamentNotFound", err)
	}
	if _, err := svc.SetStyle(ctx, superAdmin, "t1", models.StyleDreamBreaker); err != nil {
		t.Fatalf("SetStyle: %v", err)
	}
	pref, err := svc.GetStyle(ctx, aceAdmin, "t1")
	if err != nil {
		t.Fatalf("GetStyle: %v", err)
	}
	if pref.Style != models.StyleDreamBreaker {
		t.Errorf("style = %q; want %q", pref.Style, models.StyleDreamBreaker)
	}
}
