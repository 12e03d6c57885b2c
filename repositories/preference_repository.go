package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dosada05/tournament-fixtures/models"
)

var ErrPreferenceNotFound = errors.New("fixture style preference not found")

// PreferenceRepository stores the fixture style chosen for each tournament.
type PreferenceRepository interface {
	Get(ctx context.Context, tournamentID string) (*models.StylePreference, error)
	Upsert(ctx context.Context, pref *models.StylePreference) error
}

type postgresPreferenceRepository struct {
	db *sql.DB
}

func NewPostgresPreferenceRepository(db *sql.DB) PreferenceRepository {
	return &postgresPreferenceRepository{db: db}
}

func (r *postgresPreferenceRepository) Get(ctx context.Context, tournamentID string) (*models.StylePreference, error) {
	query := `SELECT tournament_id, style, updated_at FROM fixture_style_preferences WHERE tournament_id = $1`
	p := &models.StylePreference{}
	err := r.db.QueryRowContext(ctx, query, tournamentID).Scan(&p.TournamentID, &p.Style, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPreferenceNotFound
		}
		return nil, fmt.Errorf("failed to scan style preference for %s: %w", tournamentID, err)
	}
	return p, nil
}

func (r *postgresPreferenceRepository) Upsert(ctx context.Context, p *models.StylePreference) error {
	query := `
		INSERT INTO fixture_style_preferences (tournament_id, style, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (tournament_id) DO UPDATE SET style = EXCLUDED.style, updated_at = NOW()
		RETURNING updated_at`
	err := r.db.QueryRowContext(ctx, query, p.TournamentID, p.Style).Scan(&p.UpdatedAt)
	if code, _, ok := pqCode(err); ok && code == pqForeignKeyViolation {
		return ErrTournamentNotFound
	}
	return err
}
