package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Dosada05/tournament-fixtures/models"
	"github.com/golang-jwt/jwt/v4"
)

type contextKey string

const callerContextKey contextKey = "caller"

// Определяем константы для имен JWT claims
const (
	jwtClaimUserID = "user_id"
	jwtClaimEmail  = "email"
	jwtClaimRole   = "role"
	jwtClaimTeamID = "team_id"
)

func WithCaller(ctx context.Context, caller models.Caller) context.Context {
	return context.WithValue(ctx, callerContextKey, caller)
}

func CallerFromContext(ctx context.Context) (models.Caller, bool) {
	caller, ok := ctx.Value(callerContextKey).(models.Caller)
	return caller, ok
}

func callerFromClaims(claims jwt.MapClaims) (models.Caller, error) {
	uid, err := stringClaim(claims, jwtClaimUserID)
	if err != nil {
		return models.Caller{}, err
	}
	if uid == "" {
		uid, _ = claims["sub"].(string)
	}
	if uid == "" {
		return models.Caller{}, fmt.Errorf("missing '%s' claim in token", jwtClaimUserID)
	}

	email, err := stringClaim(claims, jwtClaimEmail)
	if err != nil {
		return models.Caller{}, err
	}
	role, err := stringClaim(claims, jwtClaimRole)
	if err != nil {
		return models.Caller{}, err
	}
	teamID, err := stringClaim(claims, jwtClaimTeamID)
	if err != nil {
		return models.Caller{}, err
	}

	return models.Caller{UID: uid, Email: email, Role: models.UserRole(role), TeamID: teamID}, nil
}

// stringClaim reads an optional claim. Numbers are accepted for ids issued by
// older tokens.
func stringClaim(claims jwt.MapClaims, name string) (string, error) {
	raw, ok := claims[name]
	if !ok || raw == nil {
		return "", nil
	}
	switch v := raw.(type) {
	case string:
		return v, nil
	case float64:
		if v != float64(int64(v)) {
			return "", fmt.Errorf("'%s' claim is not an integer: %f", name, v)
		}
		return fmt.Sprintf("%d", int64(v)), nil
	default:
		return "", fmt.Errorf("invalid type for '%s' claim: expected string, got %T", name, raw)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
