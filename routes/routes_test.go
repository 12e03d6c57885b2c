package routes

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Dosada05/tournament-fixtures/brackets"
	"github.com/Dosada05/tournament-fixtures/handlers"
	"github.com/Dosada05/tournament-fixtures/models"
	"github.com/Dosada05/tournament-fixtures/services"
	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v4"
)

var secret = []byte("routes-secret")

type listOnlyFixtureService struct {
	services.FixtureService
}

func (listOnlyFixtureService) ListFixtures(ctx context.Context, caller models.Caller, tournamentID string) ([]*models.Fixture, error) {
	return []*models.Fixture{}, nil
}

func (listOnlyFixtureService) GeneratePlayoffs(ctx context.Context, caller models.Caller, in services.PlayoffInput) ([]*models.Fixture, error) {
	return []*models.Fixture{}, nil
}

func token(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	claims["exp"] = time.Now().Add(time.Hour).Unix()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func newRouter() *chi.Mux {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := chi.NewRouter()
	SetupRoutes(router,
		Options{JWTSecret: secret, AllowedOrigins: []string{"*"}, RateLimitRPM: 0, Logger: logger},
		handlers.NewFixtureHandler(listOnlyFixtureService{}),
		handlers.NewScheduleHandler(nil, nil, nil),
		handlers.NewWebSocketHandler(brackets.NewHub(logger), []string{"*"}, logger),
	)
	return router
}

func TestRoutesAccess(t *testing.T) {
	router := newRouter()
	superToken := token(t, jwt.MapClaims{"user_id": "u1", "role": string(models.RoleSuperAdmin)})
	teamToken := token(t, jwt.MapClaims{"user_id": "u2", "role": string(models.RoleTeamAdmin), "team_id": "a"})

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		want   int
	}{
		{"health is public", http.MethodGet, "/health", "", http.StatusOK},
		{"api needs a token", http.MethodGet, "/api/tournaments/t1/fixtures", "", http.StatusUnauthorized},
		{"team admin lists", http.MethodGet, "/api/tournaments/t1/fixtures", teamToken, http.StatusOK},
		{"team admin cannot generate", http.MethodPost, "/api/tournaments/t1/fixtures/playoffs", teamToken, http.StatusForbidden},
		{"super admin generates", http.MethodPost, "/api/tournaments/t1/fixtures/playoffs", superToken, http.StatusCreated},
		{"team admin cannot delete groups", http.MethodDelete, "/api/fixture-groups/g1", teamToken, http.StatusForbidden},
		{"websocket needs a token", http.MethodGet, "/ws/tournaments/t1", "", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			if rec.Code != tt.want {
				t.Errorf("status = %d; want %d (body %s)", rec.Code, tt.want, rec.Body)
			}
		})
	}
}
