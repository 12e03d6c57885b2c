package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Dosada05/tournament-fixtures/brackets"
	"github.com/Dosada05/tournament-fixtures/middleware"
	"github.com/Dosada05/tournament-fixtures/models"
	"github.com/Dosada05/tournament-fixtures/services"
	"github.com/go-chi/chi/v5"
)

// stubFixtureService embeds the interface so tests only implement what they hit.
type stubFixtureService struct {
	services.FixtureService
	gotCaller models.Caller
	gotUpdate services.UpdateFixtureInput
	gotRR     services.RoundRobinInput
	err       error
}

func (s *stubFixtureService) UpdateFixture(ctx context.Context, caller models.Caller, fixtureID string, in services.UpdateFixtureInput) (*models.Fixture, error) {
	s.gotCaller, s.gotUpdate = caller, in
	if s.err != nil {
		return nil, s.err
	}
	return &models.Fixture{ID: fixtureID, TournamentID: "t1"}, nil
}

func (s *stubFixtureService) GenerateRoundRobin(ctx context.Context, caller models.Caller, in services.RoundRobinInput) ([]*models.Fixture, error) {
	s.gotCaller, s.gotRR = caller, in
	if s.err != nil {
		return nil, s.err
	}
	return []*models.Fixture{{ID: "f1"}, {ID: "f2"}}, nil
}

func (s *stubFixtureService) GeneratePlayoffs(ctx context.Context, caller models.Caller, in services.PlayoffInput) ([]*models.Fixture, error) {
	return nil, s.err
}

func (s *stubFixtureService) DeleteFixture(ctx context.Context, caller models.Caller, fixtureID string) ([]string, error) {
	return []string{fixtureID, fixtureID + "-b"}, s.err
}

type stubScheduleService struct {
	gotQuery services.ScheduleQuery
}

func (s *stubScheduleService) BuildSchedule(ctx context.Context, caller models.Caller, tournamentID string, q services.ScheduleQuery) (*services.ScheduleView, error) {
	s.gotQuery = q
	return &services.ScheduleView{Tournament: &models.Tournament{ID: tournamentID}}, nil
}

var (
	superAdmin = models.Caller{UID: "u1", Email: "admin@example.com", Role: models.RoleSuperAdmin}
	aceAdmin   = models.Caller{UID: "u2", Role: models.RoleTeamAdmin, TeamID: "a"}
)

func withCaller(caller models.Caller) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(middleware.WithCaller(r.Context(), caller)))
		})
	}
}

func serve(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestMapServiceErrorToHTTP(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("%w: %w: f1", services.ErrNotFound, services.ErrFixtureNotFound), http.StatusNotFound},
		{fmt.Errorf("%w: found 8", services.ErrPlayoffsAlreadyExist), http.StatusConflict},
		{fmt.Errorf("%w: bad time", services.ErrValidationFailed), http.StatusBadRequest},
		{fmt.Errorf("%w: deadline", services.ErrForbiddenOperation), http.StatusForbidden},
		{services.ErrExportDisabled, http.StatusServiceUnavailable},
		{fmt.Errorf("%w: wrote 3 of 6", services.ErrPersistence), http.StatusInternalServerError},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			rec := httptest.NewRecorder()
			mapServiceErrorToHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil), tt.err)
			if rec.Code != tt.want {
				t.Errorf("status = %d; want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestUpdateFixtureHandler(t *testing.T) {
	svc := &stubFixtureService{}
	h := NewFixtureHandler(svc)
	router := chi.NewRouter()
	router.With(withCaller(aceAdmin)).Patch("/fixtures/{fixtureID}", h.UpdateFixture)

	rec := serve(t, router, http.MethodPatch, "/fixtures/f9", `{"players":{"player1Team1":"pa1"},"team1Players":["p1","p2"]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; body %s", rec.Code, rec.Body)
	}
	if svc.gotCaller != aceAdmin {
		t.Errorf("caller = %+v", svc.gotCaller)
	}
	if svc.gotUpdate.Players[models.SlotPlayer1Team1] != "pa1" || svc.gotUpdate.Team1Players == nil || len(*svc.gotUpdate.Team1Players) != 2 {
		t.Errorf("input = %+v", svc.gotUpdate)
	}
	if svc.gotUpdate.Date != nil || svc.gotUpdate.Team2Players != nil {
		t.Error("absent fields must stay nil")
	}

	rec = serve(t, router, http.MethodPatch, "/fixtures/f9", `{"score":"21-19"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("unknown field status = %d; want 400", rec.Code)
	}

	svc.err = fmt.Errorf("%w: edit deadline has passed", services.ErrForbiddenOperation)
	rec = serve(t, router, http.MethodPatch, "/fixtures/f9", `{"players":{"player1Team1":"pa1"}}`)
	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d; want 403", rec.Code)
	}
}

func TestGenerateRoundRobinHandler(t *testing.T) {
	svc := &stubFixtureService{}
	h := NewFixtureHandler(svc)
	router := chi.NewRouter()
	router.With(withCaller(superAdmin)).Post("/tournaments/{tournamentID}/fixtures/roundrobin", h.GenerateRoundRobin)

	body := `{"pools":[{"name":"Pool A","team_ids":["a","b","c"]}]}`
	rec := serve(t, router, http.MethodPost, "/tournaments/t1/fixtures/roundrobin", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d; body %s", rec.Code, rec.Body)
	}
	if svc.gotRR.TournamentID != "t1" || len(svc.gotRR.Pools) != 1 || len(svc.gotRR.Pools[0].TeamIDs) != 3 {
		t.Errorf("input = %+v", svc.gotRR)
	}
	if !strings.Contains(rec.Body.String(), `"count": 2`) {
		t.Errorf("body = %s", rec.Body)
	}

	svc.err = fmt.Errorf("%w: wrote 3 of 6 round-robin fixtures before failing: timeout", services.ErrPersistence)
	rec = serve(t, router, http.MethodPost, "/tournaments/t1/fixtures/roundrobin", body)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d; want 500", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "wrote 3 of 6") {
		t.Errorf("partial write count missing from %s", rec.Body)
	}
}

func TestGeneratePlayoffsWithoutBody(t *testing.T) {
	svc := &stubFixtureService{err: fmt.Errorf("%w: found 8", services.ErrPlayoffsAlreadyExist)}
	router := chi.NewRouter()
	router.With(withCaller(superAdmin)).Post("/tournaments/{tournamentID}/fixtures/playoffs", NewFixtureHandler(svc).GeneratePlayoffs)

	rec := serve(t, router, http.MethodPost, "/tournaments/t1/fixtures/playoffs", "")
	if rec.Code != http.StatusConflict {
		t.Errorf("status = %d; want 409", rec.Code)
	}
}

func TestHandlerRequiresCaller(t *testing.T) {
	router := chi.NewRouter()
	router.Delete("/fixtures/{fixtureID}", NewFixtureHandler(&stubFixtureService{}).DeleteFixture)

	rec := serve(t, router, http.MethodDelete, "/fixtures/f1", "")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d; want 401", rec.Code)
	}
}

func TestGetScheduleQuery(t *testing.T) {
	schedules := &stubScheduleService{}
	h := NewScheduleHandler(schedules, nil, nil)
	router := chi.NewRouter()
	router.With(withCaller(aceAdmin)).Get("/tournaments/{tournamentID}/schedule", h.GetSchedule)

	rec := serve(t, router, http.MethodGet, "/tournaments/t1/schedule?team=a&venue=v1&q=asha&activeOnly=true", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; body %s", rec.Code, rec.Body)
	}
	q := schedules.gotQuery
	if q.Filter.TeamID != "a" || q.Filter.VenueID != "v1" || q.Filter.Search != "asha" || !q.ActiveOnly {
		t.Errorf("query = %+v", q)
	}

	rec = serve(t, router, http.MethodGet, "/tournaments/t1/schedule?activeOnly=maybe", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d; want 400", rec.Code)
	}
}

func TestOriginChecker(t *testing.T) {
	check := originChecker([]string{"https://console.example.com"})
	tests := []struct {
		origin string
		want   bool
	}{
		{"", true},
		{"https://console.example.com", true},
		{"https://evil.example.com", false},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/ws/tournaments/t1", nil)
		if tt.origin != "" {
			req.Header.Set("Origin", tt.origin)
		}
		if got := check(req); got != tt.want {
			t.Errorf("origin %q allowed = %v; want %v", tt.origin, got, tt.want)
		}
	}
}

func TestServeWsRejectsUnboundCaller(t *testing.T) {
	h := NewWebSocketHandler(brackets.NewHub(nil), []string{"*"}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	router := chi.NewRouter()
	router.With(withCaller(models.Caller{UID: "u3", Role: models.RoleTeamAdmin})).Get("/ws/tournaments/{tournamentID}", h.ServeWs)

	rec := serve(t, router, http.MethodGet, "/ws/tournaments/t1", "")
	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d; want 403", rec.Code)
	}
}
