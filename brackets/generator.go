package brackets

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/Dosada05/tournament-fixtures/models"
)

var (
	ErrMissingField    = errors.New("required field is missing")
	ErrIdenticalTeams  = errors.New("team1 and team2 must be different teams")
	ErrInvalidTime     = errors.New("time must be HH:MM in 24h format")
	ErrInvalidCategory = errors.New("match type is not a known category")
	ErrInvalidPools    = errors.New("invalid pool configuration")
	ErrNoCategories    = errors.New("tournament has no enabled categories")
	ErrInvalidSlot     = errors.New("unknown player slot")
)

// DefaultFixtureTime is the placeholder start time given to generated
// round-robin and playoff fixtures until an organiser schedules them.
const DefaultFixtureTime = "09:00"

var timePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// Pool is a named partition of teams for round-robin play.
type Pool struct {
	Name    string   `json:"name"`
	TeamIDs []string `json:"team_ids"`
}

type GenerateParams struct {
	Tournament *models.Tournament
	Team1      *models.Team
	Team2      *models.Team
	MatchType  models.Category
	Date       time.Time
	Time       string
	Pool       string
	Court      string
	Venue      *models.Venue
	Players    map[models.SlotName]models.PlayerSlot

	// Round-robin input.
	Pools []Pool
	Teams map[string]*models.Team

	CreatedBy string
	Now       time.Time
}

// Batch is the output of a generator. Decider is set only for tie formats and must
// be persisted after every leg.
type Batch struct {
	Legs    []*models.Fixture
	Decider *models.Fixture
}

func (b *Batch) All() []*models.Fixture {
	all := make([]*models.Fixture, 0, len(b.Legs)+1)
	all = append(all, b.Legs...)
	if b.Decider != nil {
		all = append(all, b.Decider)
	}
	return all
}

type FixtureGenerator interface {
	Generate(ctx context.Context, params GenerateParams) (*Batch, error)

	GetName() string
}

func ValidateTime(s string) error {
	if !timePattern.MatchString(s) {
		return fmt.Errorf("%w: got %q", ErrInvalidTime, s)
	}
	return nil
}

func missing(field string) error {
	return fmt.Errorf("%w: %s", ErrMissingField, field)
}

func validatePair(team1, team2 *models.Team) error {
	if team1 == nil || team1.ID == "" {
		return missing("team1")
	}
	if team2 == nil || team2.ID == "" {
		return missing("team2")
	}
	if team1.ID == team2.ID {
		return ErrIdenticalTeams
	}
	return nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// baseFixture fills the fields every generated fixture shares.
func baseFixture(p GenerateParams, fixtureType models.FixtureType) *models.Fixture {
	f := &models.Fixture{
		TournamentID: p.Tournament.ID,
		Date:         models.DayOf(p.Date),
		Time:         p.Time,
		Pool:         optional(p.Pool),
		Court:        optional(p.Court),
		FixtureType:  fixtureType,
		Status:       models.FixtureStatusScheduled,
		CreatedBy:    p.CreatedBy,
		CreatedAt:    p.Now,
		UpdatedAt:    p.Now,
	}
	if p.Team1 != nil {
		f.Team1 = models.AssignedTeam(p.Team1.ID)
		f.Team1Name = p.Team1.Name
	}
	if p.Team2 != nil {
		f.Team2 = models.AssignedTeam(p.Team2.ID)
		f.Team2Name = p.Team2.Name
	}
	if p.Venue != nil {
		f.VenueID = p.Venue.ID
		f.VenueName = p.Venue.Name
	}
	return f
}
