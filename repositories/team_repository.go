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
	ErrTeamNotFound          = errors.New("team not found")
	ErrTeamTournamentInvalid = errors.New("team tournament reference is invalid")
)

// RosterRepository reads the teams and players of a tournament.
type RosterRepository interface {
	CreateTeam(ctx context.Context, team *models.Team) error
	GetTeamByID(ctx context.Context, id string) (*models.Team, error)
	ListTeams(ctx context.Context, tournamentID string) ([]*models.Team, error)
	CreatePlayer(ctx context.Context, player *models.Player) error
	ListPlayers(ctx context.Context, tournamentID string) ([]*models.Player, error)
}

type postgresRosterRepository struct {
	db *sql.DB
}

func NewPostgresRosterRepository(db *sql.DB) RosterRepository {
	return &postgresRosterRepository{db: db}
}

func (r *postgresRosterRepository) CreateTeam(ctx context.Context, team *models.Team) error {
	if team.ID == "" {
		team.ID = uuid.NewString()
	}
	query := `
		INSERT INTO teams (id, tournament_id, name, admin_email, admin_uid, player_ids)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`
	err := r.db.QueryRowContext(ctx, query,
		team.ID, team.TournamentID, team.Name, team.AdminEmail, team.AdminUID, pq.Array(team.PlayerIDs),
	).Scan(&team.CreatedAt)
	if code, _, ok := pqCode(err); ok && code == pqForeignKeyViolation {
		return ErrTeamTournamentInvalid
	}
	return err
}

func (r *postgresRosterRepository) GetTeamByID(ctx context.Context, id string) (*models.Team, error) {
	query := `
		SELECT id, tournament_id, name, admin_email, admin_uid, player_ids, created_at
		FROM teams WHERE id = $1`
	team, err := scanTeam(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to scan team %s: %w", id, err)
	}
	return team, nil
}

func (r *postgresRosterRepository) ListTeams(ctx context.Context, tournamentID string) ([]*models.Team, error) {
	query := `
		SELECT id, tournament_id, name, admin_email, admin_uid, player_ids, created_at
		FROM teams WHERE tournament_id = $1
		ORDER BY name ASC`

	rows, err := r.db.QueryContext(ctx, query, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query teams for tournament %s: %w", tournamentID, err)
	}
	defer rows.Close()

	teams := make([]*models.Team, 0)
	for rows.Next() {
		team, scanErr := scanTeam(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan team row: %w", scanErr)
		}
		teams = append(teams, team)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during team rows iteration: %w", err)
	}
	return teams, nil
}

func scanTeam(row rowScanner) (*models.Team, error) {
	var (
		team      models.Team
		playerIDs pq.StringArray
	)
	if err := row.Scan(&team.ID, &team.TournamentID, &team.Name, &team.AdminEmail, &team.AdminUID, &playerIDs, &team.CreatedAt); err != nil {
		return nil, err
	}
	team.PlayerIDs = []string(playerIDs)
	return &team, nil
}

func (r *postgresRosterRepository) CreatePlayer(ctx context.Context, p *models.Player) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	query := `INSERT INTO players (id, tournament_id, name, gender, age) VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecContext(ctx, query, p.ID, p.TournamentID, p.Name, p.Gender, p.Age)
	if code, _, ok := pqCode(err); ok && code == pqForeignKeyViolation {
		return ErrTeamTournamentInvalid
	}
	return err
}

func (r *postgresRosterRepository) ListPlayers(ctx context.Context, tournamentID string) ([]*models.Player, error) {
	query := `SELECT id, tournament_id, name, gender, age FROM players WHERE tournament_id = $1 ORDER BY name ASC`
	rows, err := r.db.QueryContext(ctx, query, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query players for tournament %s: %w", tournamentID, err)
	}
	defer rows.Close()

	players := make([]*models.Player, 0)
	for rows.Next() {
		var p models.Player
		if scanErr := rows.Scan(&p.ID, &p.TournamentID, &p.Name, &p.Gender, &p.Age); scanErr != nil {
			return nil, fmt.Errorf("failed to scan player row: %w", scanErr)
		}
		players = append(players, &p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during player rows iteration: %w", err)
	}
	return players, nil
}
