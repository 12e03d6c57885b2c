package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dosada05/tournament-fixtures/models"
	"github.com/google/uuid"
)

var (
	ErrVenueNotFound     = errors.New("venue not found")
	ErrVenueNameConflict = errors.New("venue name already exists")
)

type VenueRepository interface {
	Create(ctx context.Context, venue *models.Venue) error
	GetByID(ctx context.Context, id string) (*models.Venue, error)
	List(ctx context.Context) ([]*models.Venue, error)
}

type postgresVenueRepository struct {
	db *sql.DB
}

func NewPostgresVenueRepository(db *sql.DB) VenueRepository {
	return &postgresVenueRepository{db: db}
}

func (r *postgresVenueRepository) Create(ctx context.Context, v *models.Venue) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	query := `INSERT INTO venues (id, name, created_by) VALUES ($1, $2, $3) RETURNING created_at`
	err := r.db.QueryRowContext(ctx, query, v.ID, v.Name, v.CreatedBy).Scan(&v.CreatedAt)
	if code, _, ok := pqCode(err); ok && code == pqUniqueViolation {
		return ErrVenueNameConflict
	}
	return err
}

func (r *postgresVenueRepository) GetByID(ctx context.Context, id string) (*models.Venue, error) {
	query := `SELECT id, name, created_by, created_at FROM venues WHERE id = $1`
	v := &models.Venue{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&v.ID, &v.Name, &v.CreatedBy, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVenueNotFound
		}
		return nil, fmt.Errorf("failed to scan venue %s: %w", id, err)
	}
	return v, nil
}

func (r *postgresVenueRepository) List(ctx context.Context) ([]*models.Venue, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, created_by, created_at FROM venues ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query venues: %w", err)
	}
	defer rows.Close()

	venues := make([]*models.Venue, 0)
	for rows.Next() {
		var v models.Venue
		if scanErr := rows.Scan(&v.ID, &v.Name, &v.CreatedBy, &v.CreatedAt); scanErr != nil {
			return nil, fmt.Errorf("failed to scan venue row: %w", scanErr)
		}
		venues = append(venues, &v)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during venue rows iteration: %w", err)
	}
	return venues, nil
}
