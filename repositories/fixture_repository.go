package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Dosada05/tournament-fixtures/models"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

var (
	ErrFixtureNotFound          = errors.New("fixture not found")
	ErrFixtureTournamentInvalid = errors.New("fixture tournament reference is invalid")
	ErrFixtureConflict          = errors.New("fixture id already exists")
)

// FixtureFilter selects fixtures. TournamentID is required; the rest narrow it.
type FixtureFilter struct {
	TournamentID string
	// TeamID keeps fixtures where the team plays on either side.
	TeamID      string
	GroupID     string
	FixtureType *models.FixtureType
}

type FixtureRepository interface {
	Create(ctx context.Context, exec SQLExecutor, f *models.Fixture) error
	// CreateMany inserts one by one and stops at the first failure. Rows written
	// before it stay; the returned count says how many there were.
	CreateMany(ctx context.Context, exec SQLExecutor, fixtures []*models.Fixture) (int, error)
	GetByID(ctx context.Context, id string) (*models.Fixture, error)
	List(ctx context.Context, filter FixtureFilter) ([]*models.Fixture, error)
	ListByGroup(ctx context.Context, groupID string) ([]*models.Fixture, error)
	Update(ctx context.Context, exec SQLExecutor, f *models.Fixture) error
	Delete(ctx context.Context, exec SQLExecutor, id string) error
	DeleteMany(ctx context.Context, exec SQLExecutor, ids []string) (int64, error)
	CountByType(ctx context.Context, tournamentID string, fixtureType models.FixtureType) (int, error)
}

type postgresFixtureRepository struct {
	db *sql.DB
}

func NewPostgresFixtureRepository(db *sql.DB) FixtureRepository {
	return &postgresFixtureRepository{db: db}
}

func (r *postgresFixtureRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

const fixtureColumns = `
	id, tournament_id, match_date, match_time, pool, court, venue_id, venue_name,
	match_type, match_type_label, team1, team2, team1_name, team2_name,
	p1t1_id, p1t1_name, p2t1_id, p2t1_name, p1t2_id, p1t2_name, p2t2_id, p2t2_name,
	team1_players, team2_players, fixture_group_id, match_number, fixture_type,
	playoff_stage, playoff_number, playoff_name, youtube_link, status,
	created_by, created_at, updated_at`

func (r *postgresFixtureRepository) Create(ctx context.Context, exec SQLExecutor, f *models.Fixture) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	query := `
		INSERT INTO fixtures (` + fixtureColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18,
		        $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31, $32, $33, NOW(), NOW())
		RETURNING created_at, updated_at`

	err := r.getExecutor(exec).QueryRowContext(ctx, query,
		f.ID, f.TournamentID, nullDay(f.Date), f.Time, nullStringPtr(f.Pool), nullStringPtr(f.Court),
		nullString(f.VenueID), nullString(f.VenueName),
		f.MatchType, f.MatchTypeLabel, f.Team1, f.Team2, f.Team1Name, f.Team2Name,
		nullString(f.Player1Team1.ID), nullString(f.Player1Team1.Name),
		nullString(f.Player2Team1.ID), nullString(f.Player2Team1.Name),
		nullString(f.Player1Team2.ID), nullString(f.Player1Team2.Name),
		nullString(f.Player2Team2.ID), nullString(f.Player2Team2.Name),
		pq.Array(f.Team1Players), pq.Array(f.Team2Players),
		nullString(f.FixtureGroupID), f.MatchNumber, f.FixtureType,
		nullString(string(f.PlayoffStage)), f.PlayoffNumber, nullString(f.PlayoffName),
		nullString(f.YoutubeLink), f.Status, f.CreatedBy,
	).Scan(&f.CreatedAt, &f.UpdatedAt)

	return r.handleFixtureError(err)
}

func (r *postgresFixtureRepository) CreateMany(ctx context.Context, exec SQLExecutor, fixtures []*models.Fixture) (int, error) {
	for i, f := range fixtures {
		if err := r.Create(ctx, exec, f); err != nil {
			return i, fmt.Errorf("insert fixture %d of %d: %w", i+1, len(fixtures), err)
		}
	}
	return len(fixtures), nil
}

func (r *postgresFixtureRepository) GetByID(ctx context.Context, id string) (*models.Fixture, error) {
	query := `SELECT ` + fixtureColumns + ` FROM fixtures WHERE id = $1`
	f, err := scanFixture(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrFixtureNotFound
		}
		return nil, fmt.Errorf("failed to scan fixture by id %s: %w", id, err)
	}
	return f, nil
}

func (r *postgresFixtureRepository) List(ctx context.Context, filter FixtureFilter) ([]*models.Fixture, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + fixtureColumns + ` FROM fixtures WHERE tournament_id = $1`)

	args := []interface{}{filter.TournamentID}
	placeholderIndex := 2

	if filter.TeamID != "" {
		p := strconv.Itoa(placeholderIndex)
		queryBuilder.WriteString(" AND (team1 = $" + p + " OR team2 = $" + p + ")")
		args = append(args, filter.TeamID)
		placeholderIndex++
	}
	if filter.GroupID != "" {
		queryBuilder.WriteString(" AND fixture_group_id = $")
		queryBuilder.WriteString(strconv.Itoa(placeholderIndex))
		args = append(args, filter.GroupID)
		placeholderIndex++
	}
	if filter.FixtureType != nil {
		queryBuilder.WriteString(" AND fixture_type = $")
		queryBuilder.WriteString(strconv.Itoa(placeholderIndex))
		args = append(args, *filter.FixtureType)
	}

	queryBuilder.WriteString(" ORDER BY match_date ASC NULLS LAST, match_time ASC, match_number ASC, created_at ASC")

	return r.query(ctx, queryBuilder.String(), args...)
}

func (r *postgresFixtureRepository) ListByGroup(ctx context.Context, groupID string) ([]*models.Fixture, error) {
	query := `SELECT ` + fixtureColumns + ` FROM fixtures WHERE fixture_group_id = $1 ORDER BY match_number ASC`
	return r.query(ctx, query, groupID)
}

func (r *postgresFixtureRepository) query(ctx context.Context, query string, args ...interface{}) ([]*models.Fixture, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query fixtures: %w", err)
	}
	defer rows.Close()

	fixtures := make([]*models.Fixture, 0)
	for rows.Next() {
		f, scanErr := scanFixture(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan fixture row: %w", scanErr)
		}
		fixtures = append(fixtures, f)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during fixture rows iteration: %w", err)
	}
	return fixtures, nil
}

// Update writes every mutable column and stamps updated_at on the server. The
// provenance columns (tournament, created_by, created_at) are never touched.
func (r *postgresFixtureRepository) Update(ctx context.Context, exec SQLExecutor, f *models.Fixture) error {
	query := `
		UPDATE fixtures SET
			match_date = $1, match_time = $2, pool = $3, court = $4, venue_id = $5, venue_name = $6,
			match_type = $7, match_type_label = $8, team1 = $9, team2 = $10, team1_name = $11, team2_name = $12,
			p1t1_id = $13, p1t1_name = $14, p2t1_id = $15, p2t1_name = $16,
			p1t2_id = $17, p1t2_name = $18, p2t2_id = $19, p2t2_name = $20,
			team1_players = $21, team2_players = $22, youtube_link = $23, status = $24,
			updated_at = NOW()
		WHERE id = $25
		RETURNING updated_at`

	err := r.getExecutor(exec).QueryRowContext(ctx, query,
		nullDay(f.Date), f.Time, nullStringPtr(f.Pool), nullStringPtr(f.Court),
		nullString(f.VenueID), nullString(f.VenueName),
		f.MatchType, f.MatchTypeLabel, f.Team1, f.Team2, f.Team1Name, f.Team2Name,
		nullString(f.Player1Team1.ID), nullString(f.Player1Team1.Name),
		nullString(f.Player2Team1.ID), nullString(f.Player2Team1.Name),
		nullString(f.Player1Team2.ID), nullString(f.Player1Team2.Name),
		nullString(f.Player2Team2.ID), nullString(f.Player2Team2.Name),
		pq.Array(f.Team1Players), pq.Array(f.Team2Players), nullString(f.YoutubeLink), f.Status,
		f.ID,
	).Scan(&f.UpdatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return ErrFixtureNotFound
	}
	return r.handleFixtureError(err)
}

func (r *postgresFixtureRepository) Delete(ctx context.Context, exec SQLExecutor, id string) error {
	result, err := r.getExecutor(exec).ExecContext(ctx, `DELETE FROM fixtures WHERE id = $1`, id)
	if err != nil {
		return r.handleFixtureError(err)
	}
	return checkAffectedRows(result, ErrFixtureNotFound)
}

func (r *postgresFixtureRepository) DeleteMany(ctx context.Context, exec SQLExecutor, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result, err := r.getExecutor(exec).ExecContext(ctx, `DELETE FROM fixtures WHERE id = ANY($1)`, pq.Array(ids))
	if err != nil {
		return 0, r.handleFixtureError(err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check affected rows: %w", err)
	}
	return n, nil
}

func (r *postgresFixtureRepository) CountByType(ctx context.Context, tournamentID string, fixtureType models.FixtureType) (int, error) {
	var n int
	query := `SELECT COUNT(*) FROM fixtures WHERE tournament_id = $1 AND fixture_type = $2`
	if err := r.db.QueryRowContext(ctx, query, tournamentID, fixtureType).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count %s fixtures: %w", fixtureType, err)
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanFixture(row rowScanner) (*models.Fixture, error) {
	var (
		f                                    models.Fixture
		date                                 sql.NullTime
		pool, court, venueID, venueName      sql.NullString
		p1t1ID, p1t1Name, p2t1ID, p2t1Name   sql.NullString
		p1t2ID, p1t2Name, p2t2ID, p2t2Name   sql.NullString
		groupID, stage, playoffName, youtube sql.NullString
		team1Players, team2Players           pq.StringArray
	)
	err := row.Scan(
		&f.ID, &f.TournamentID, &date, &f.Time, &pool, &court, &venueID, &venueName,
		&f.MatchType, &f.MatchTypeLabel, &f.Team1, &f.Team2, &f.Team1Name, &f.Team2Name,
		&p1t1ID, &p1t1Name, &p2t1ID, &p2t1Name, &p1t2ID, &p1t2Name, &p2t2ID, &p2t2Name,
		&team1Players, &team2Players, &groupID, &f.MatchNumber, &f.FixtureType,
		&stage, &f.PlayoffNumber, &playoffName, &youtube, &f.Status,
		&f.CreatedBy, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	f.Date = dayFrom(date)
	f.Pool = stringPtr(pool)
	f.Court = stringPtr(court)
	f.VenueID, f.VenueName = venueID.String, venueName.String
	f.Player1Team1 = models.PlayerSlot{ID: p1t1ID.String, Name: p1t1Name.String}
	f.Player2Team1 = models.PlayerSlot{ID: p2t1ID.String, Name: p2t1Name.String}
	f.Player1Team2 = models.PlayerSlot{ID: p1t2ID.String, Name: p1t2Name.String}
	f.Player2Team2 = models.PlayerSlot{ID: p2t2ID.String, Name: p2t2Name.String}
	f.Team1Players = []string(team1Players)
	f.Team2Players = []string(team2Players)
	if f.IsDecider() {
		if f.Team1Players == nil {
			f.Team1Players = []string{}
		}
		if f.Team2Players == nil {
			f.Team2Players = []string{}
		}
	}
	f.FixtureGroupID = groupID.String
	f.PlayoffStage = models.PlayoffStage(stage.String)
	f.PlayoffName = playoffName.String
	f.YoutubeLink = youtube.String
	return &f, nil
}

func (r *postgresFixtureRepository) handleFixtureError(err error) error {
	if err == nil {
		return nil
	}
	if code, constraint, ok := pqCode(err); ok {
		switch code {
		case pqUniqueViolation:
			if constraint == "fixtures_pkey" {
				return ErrFixtureConflict
			}
		case pqForeignKeyViolation:
			if constraint == "fixtures_tournament_id_fkey" {
				return ErrFixtureTournamentInvalid
			}
		}
	}
	return err
}
