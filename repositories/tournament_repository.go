package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dosada05/tournament-fixtures/models"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

var (
	ErrTournamentNotFound     = errors.New("tournament not found")
	ErrTournamentNameConflict = errors.New("tournament name conflict for this organizer")
)

type TournamentRepository interface {
	Create(ctx context.Context, tournament *models.Tournament) error
	GetByID(ctx context.Context, id string) (*models.Tournament, error)
	List(ctx context.Context) ([]*models.Tournament, error)
}

type postgresTournamentRepository struct {
	db *sql.DB
}

func NewPostgresTournamentRepository(db *sql.DB) TournamentRepository {
	return &postgresTournamentRepository{db: db}
}

func (r *postgresTournamentRepository) Create(ctx context.Context, t *models.Tournament) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	t.Categories = models.NormalizeCategories(t.Categories)
	query := `
		INSERT INTO tournaments (id, name, start_date, end_date, categories, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query,
		t.ID, t.Name, nullDay(t.StartDate), nullDay(t.EndDate), pq.Array(categoryStrings(t.Categories)), t.CreatedBy,
	).Scan(&t.CreatedAt)

	return r.handleTournamentError(err)
}

func (r *postgresTournamentRepository) GetByID(ctx context.Context, id string) (*models.Tournament, error) {
	query := `
		SELECT id, name, start_date, end_date, categories, created_by, created_at
		FROM tournaments
		WHERE id = $1`

	t, err := scanTournament(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to scan tournament %s: %w", id, err)
	}
	return t, nil
}

func (r *postgresTournamentRepository) List(ctx context.Context) ([]*models.Tournament, error) {
	query := `
		SELECT id, name, start_date, end_date, categories, created_by, created_at
		FROM tournaments
		ORDER BY start_date DESC NULLS LAST, created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query tournaments: %w", err)
	}
	defer rows.Close()

	tournaments := make([]*models.Tournament, 0)
	for rows.Next() {
		t, scanErr := scanTournament(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan tournament row: %w", scanErr)
		}
		tournaments = append(tournaments, t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during tournament rows iteration: %w", err)
	}
	return tournaments, nil
}

func scanTournament(row rowScanner) (*models.Tournament, error) {
	var (
		t          models.Tournament
		start, end sql.NullTime
		categories pq.StringArray
	)
	if err := row.Scan(&t.ID, &t.Name, &start, &end, &categories, &t.CreatedBy, &t.CreatedAt); err != nil {
		return nil, err
	}
	t.StartDate = dayFrom(start)
	t.EndDate = dayFrom(end)
	cats := make([]models.Category, 0, len(categories))
	for _, c := range categories {
		cats = append(cats, models.Category(c))
	}
	t.Categories = models.NormalizeCategories(cats)
	return &t, nil
}

func categoryStrings(categories []models.Category) []string {
	out := make([]string, len(categories))
	for i, c := range categories {
		out[i] = string(c)
	}
	return out
}

func (r *postgresTournamentRepository) handleTournamentError(err error) error {
	if err == nil {
		return nil
	}
	if code, constraint, ok := pqCode(err); ok && code == pqUniqueViolation {
		if constraint == "tournaments_created_by_name_key" {
			return ErrTournamentNameConflict
		}
	}
	return err
}
