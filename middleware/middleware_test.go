package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Dosada05/tournament-fixtures/models"
	"github.com/golang-jwt/jwt/v4"
)

var testSecret = []byte("test-secret")

func signed(t *testing.T, claims jwt.MapClaims, secret []byte) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return token
}

func TestAuthenticate(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	exp := time.Now().Add(time.Hour).Unix()

	var got models.Caller
	handler := Authenticate(testSecret, logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = CallerFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantCaller models.Caller
	}{
		{
			name:       "team admin",
			header:     "Bearer " + signed(t, jwt.MapClaims{"user_id": "u1", "email": "aces@example.com", "role": "team_admin", "team_id": "a", "exp": exp}, testSecret),
			wantStatus: http.StatusNoContent,
			wantCaller: models.Caller{UID: "u1", Email: "aces@example.com", Role: models.RoleTeamAdmin, TeamID: "a"},
		},
		{
			name:       "numeric user id",
			header:     "Bearer " + signed(t, jwt.MapClaims{"user_id": float64(42), "role": "super_admin", "exp": exp}, testSecret),
			wantStatus: http.StatusNoContent,
			wantCaller: models.Caller{UID: "42", Role: models.RoleSuperAdmin},
		},
		{name: "missing header", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Token abc", wantStatus: http.StatusUnauthorized},
		{
			name:       "wrong secret",
			header:     "Bearer " + signed(t, jwt.MapClaims{"user_id": "u1", "exp": exp}, []byte("other")),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "expired",
			header:     "Bearer " + signed(t, jwt.MapClaims{"user_id": "u1", "exp": time.Now().Add(-time.Hour).Unix()}, testSecret),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "no subject",
			header:     "Bearer " + signed(t, jwt.MapClaims{"role": "super_admin", "exp": exp}, testSecret),
			wantStatus: http.StatusUnauthorized,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got = models.Caller{}
			req := httptest.NewRequest(http.MethodGet, "/api/fixtures/f1", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d; want %d", rec.Code, tt.wantStatus)
			}
			if got != tt.wantCaller {
				t.Errorf("caller = %+v; want %+v", got, tt.wantCaller)
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	handler := RequireRole(models.RoleSuperAdmin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name   string
		caller *models.Caller
		want   int
	}{
		{"super admin", &models.Caller{UID: "u", Role: models.RoleSuperAdmin}, http.StatusOK},
		{"team admin", &models.Caller{UID: "u", Role: models.RoleTeamAdmin, TeamID: "a"}, http.StatusForbidden},
		{"anonymous", nil, http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", nil)
			if tt.caller != nil {
				req = req.WithContext(WithCaller(req.Context(), *tt.caller))
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			if rec.Code != tt.want {
				t.Errorf("status = %d; want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestRateLimit(t *testing.T) {
	handler := RateLimit(2)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	status := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	// burst is 1 at 2 requests per minute
	if got := status("10.0.0.1:5000"); got != http.StatusOK {
		t.Fatalf("first request = %d", got)
	}
	if got := status("10.0.0.1:5001"); got != http.StatusTooManyRequests {
		t.Errorf("second request = %d; want 429", got)
	}
	if got := status("10.0.0.2:5000"); got != http.StatusOK {
		t.Errorf("other client = %d; want 200", got)
	}
}
