package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Dosada05/tournament-fixtures/brackets"
	"github.com/Dosada05/tournament-fixtures/eligibility"
	"github.com/Dosada05/tournament-fixtures/models"
	"github.com/Dosada05/tournament-fixtures/repositories"
	"github.com/Dosada05/tournament-fixtures/utils"
	"golang.org/x/sync/errgroup"
)

// Change actions carried in FIXTURES_CHANGED messages.
const (
	ActionCreated      = "created"
	ActionGenerated    = "generated"
	ActionUpdated      = "updated"
	ActionDeleted      = "deleted"
	ActionGroupDeleted = "group_deleted"
	ActionReset        = "reset"
)

// FixtureNotifier is told about every successful fixture mutation.
type FixtureNotifier interface {
	NotifyFixturesChanged(payload brackets.FixturesChangedPayload)
}

type CustomFixtureInput struct {
	TournamentID string                     `json:"-"`
	MatchType    models.Category            `json:"matchType"`
	Team1ID      string                     `json:"team1"`
	Team2ID      string                     `json:"team2"`
	Date         string                     `json:"date"`
	Time         string                     `json:"time"`
	Pool         string                     `json:"pool"`
	Court        string                     `json:"court"`
	VenueID      string                     `json:"venueId"`
	Players      map[models.SlotName]string `json:"players"`
}

type TieInput struct {
	TournamentID string `json:"-"`
	Team1ID      string `json:"team1"`
	Team2ID      string `json:"team2"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Pool         string `json:"pool"`
	Court        string `json:"court"`
	VenueID      string `json:"venueId"`
}

type RoundRobinInput struct {
	TournamentID string          `json:"-"`
	Pools        []brackets.Pool `json:"pools"`
	// Date and Time override the placeholder schedule.
	Date string `json:"date"`
	Time string `json:"time"`
}

type PlayoffInput struct {
	TournamentID string `json:"-"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	VenueID      string `json:"venueId"`
}

// UpdateFixtureInput is a patch: nil fields are left alone. Players maps a slot to
// a player id, an empty id clears the slot.
type UpdateFixtureInput struct {
	Date         *string               `json:"date"`
	Time         *string               `json:"time"`
	Pool         *string               `json:"pool"`
	Court        *string               `json:"court"`
	VenueID      *string               `json:"venueId"`
	YoutubeLink  *string               `json:"youtubeLink"`
	Status       *models.FixtureStatus `json:"status"`

	Players      map[models.SlotName]string `json:"players"`
	Team1Players *[]string                  `json:"team1Players"`
	Team2Players *[]string                  `json:"team2Players"`

	// Team assignment, playoff fixtures only.
	Team1ID *string `json:"team1"`
	Team2ID *string `json:"team2"`
}

func (in UpdateFixtureInput) touchesSchedule() bool {
	return in.Date != nil || in.Time != nil || in.Pool != nil || in.Court != nil ||
		in.VenueID != nil || in.YoutubeLink != nil || in.Status != nil ||
		in.Team1ID != nil || in.Team2ID != nil
}

type FixtureService interface {
	CreateCustomFixture(ctx context.Context, caller models.Caller, input CustomFixtureInput) (*models.Fixture, error)
	GenerateGameBreaker(ctx context.Context, caller models.Caller, input TieInput) ([]*models.Fixture, error)
	GenerateMiniGameBreaker(ctx context.Context, caller models.Caller, input TieInput) ([]*models.Fixture, error)
	GenerateRoundRobin(ctx context.Context, caller models.Caller, input RoundRobinInput) ([]*models.Fixture, error)
	GeneratePlayoffs(ctx context.Context, caller models.Caller, input PlayoffInput) ([]*models.Fixture, error)

	ListFixtures(ctx context.Context, caller models.Caller, tournamentID string) ([]*models.Fixture, error)
	GetFixture(ctx context.Context, caller models.Caller, fixtureID string) (*models.Fixture, error)
	UpdateFixture(ctx context.Context, caller models.Caller, fixtureID string, input UpdateFixtureInput) (*models.Fixture, error)
	// DeleteFixture deletes the fixture, or its whole group when it has one, and
	// returns the ids that were removed.
	DeleteFixture(ctx context.Context, caller models.Caller, fixtureID string) ([]string, error)
	DeleteGroup(ctx context.Context, caller models.Caller, groupID string) ([]string, error)
	ResetPlayoffFixture(ctx context.Context, caller models.Caller, fixtureID string) (*models.Fixture, error)
	EligiblePlayers(ctx context.Context, caller models.Caller, fixtureID string, slot models.SlotName) ([]*models.Player, error)
}

type fixtureService struct {
	fixtureRepo    repositories.FixtureRepository
	tournamentRepo repositories.TournamentRepository
	rosterRepo     repositories.RosterRepository
	venueRepo      repositories.VenueRepository
	notifier       FixtureNotifier
	logger         *slog.Logger
	location       *time.Location
	now            func() time.Time
}

func NewFixtureService(
	fixtureRepo repositories.FixtureRepository,
	tournamentRepo repositories.TournamentRepository,
	rosterRepo repositories.RosterRepository,
	venueRepo repositories.VenueRepository,
	notifier FixtureNotifier,
	logger *slog.Logger,
	location *time.Location,
) FixtureService {
	if location == nil {
		location = time.UTC
	}
	return &fixtureService{
		fixtureRepo:    fixtureRepo,
		tournamentRepo: tournamentRepo,
		rosterRepo:     rosterRepo,
		venueRepo:      venueRepo,
		notifier:       notifier,
		logger:         logger,
		location:       location,
		now:            time.Now,
	}
}

func (s *fixtureService) CreateCustomFixture(ctx context.Context, caller models.Caller, in CustomFixtureInput) (*models.Fixture, error) {
	if err := requirePrivileged(caller); err != nil {
		return nil, err
	}
	params, err := s.baseParams(ctx, caller, in.TournamentID, in.Date, in.Time, in.VenueID)
	if err != nil {
		return nil, err
	}
	if params.Team1, err = s.teamFor(ctx, params.Tournament, in.Team1ID); err != nil {
		return nil, err
	}
	if params.Team2, err = s.teamFor(ctx, params.Tournament, in.Team2ID); err != nil {
		return nil, err
	}
	params.MatchType = in.MatchType
	params.Pool = strings.TrimSpace(in.Pool)
	params.Court = strings.TrimSpace(in.Court)

	if len(in.Players) > 0 {
		players, err := s.playersByID(ctx, in.TournamentID)
		if err != nil {
			return nil, err
		}
		params.Players = make(map[models.SlotName]models.PlayerSlot, len(in.Players))
		for slot, playerID := range in.Players {
			if playerID == "" {
				continue
			}
			p, ok := players[playerID]
			if !ok {
				return nil, fmt.Errorf("%w: %w: %s", ErrNotFound, ErrPlayerNotFound, playerID)
			}
			params.Players[slot] = models.PlayerSlot{ID: p.ID, Name: p.Name}
		}
	}

	batch, err := brackets.NewCustomGenerator().Generate(ctx, params)
	if err != nil {
		return nil, handleDomainError(err)
	}
	f := batch.Legs[0]
	if err := s.fixtureRepo.Create(ctx, nil, f); err != nil {
		return nil, handleRepositoryError(err, "create fixture")
	}

	s.logger.InfoContext(ctx, "custom fixture created",
		slog.String("tournament_id", f.TournamentID), slog.String("fixture_id", f.ID), slog.String("match_type", string(f.MatchType)))
	s.notify(f.TournamentID, ActionCreated, []string{f.ID}, "")
	return f, nil
}

func (s *fixtureService) GenerateGameBreaker(ctx context.Context, caller models.Caller, in TieInput) ([]*models.Fixture, error) {
	return s.generateTie(ctx, caller, in, brackets.NewGameBreakerGenerator())
}

func (s *fixtureService) GenerateMiniGameBreaker(ctx context.Context, caller models.Caller, in TieInput) ([]*models.Fixture, error) {
	return s.generateTie(ctx, caller, in, brackets.NewMiniGameBreakerGenerator())
}

func (s *fixtureService) generateTie(ctx context.Context, caller models.Caller, in TieInput, generator brackets.FixtureGenerator) ([]*models.Fixture, error) {
	if err := requirePrivileged(caller); err != nil {
		return nil, err
	}
	params, err := s.baseParams(ctx, caller, in.TournamentID, in.Date, in.Time, in.VenueID)
	if err != nil {
		return nil, err
	}
	if params.Team1, err = s.teamFor(ctx, params.Tournament, in.Team1ID); err != nil {
		return nil, err
	}
	if params.Team2, err = s.teamFor(ctx, params.Tournament, in.Team2ID); err != nil {
		return nil, err
	}
	params.Pool = strings.TrimSpace(in.Pool)
	params.Court = strings.TrimSpace(in.Court)

	batch, err := generator.Generate(ctx, params)
	if err != nil {
		return nil, handleDomainError(err)
	}
	if err := s.writeTie(ctx, batch); err != nil {
		s.logger.ErrorContext(ctx, "tie generation failed", slog.String("generator", generator.GetName()),
			slog.String("tournament_id", in.TournamentID), slog.Any("error", err))
		return nil, err
	}

	all := batch.All()
	s.logger.InfoContext(ctx, "tie generated", slog.String("generator", generator.GetName()),
		slog.String("tournament_id", in.TournamentID), slog.String("group_id", batch.Decider.FixtureGroupID), slog.Int("fixtures", len(all)))
	s.notify(in.TournamentID, ActionGenerated, fixtureIDs(all), batch.Decider.FixtureGroupID)
	return all, nil
}

// writeTie stores every leg in parallel and the decider only once all legs are in.
// A failed leg leaves the others in place.
func (s *fixtureService) writeTie(ctx context.Context, batch *brackets.Batch) error {
	g, gCtx := errgroup.WithContext(ctx)
	for _, leg := range batch.Legs {
		leg := leg
		g.Go(func() error {
			if err := s.fixtureRepo.Create(gCtx, nil, leg); err != nil {
				return fmt.Errorf("leg %d (%s): %w", leg.MatchNumber, leg.MatchTypeLabel, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return handleRepositoryError(err, "write tie legs")
	}
	if batch.Decider == nil {
		return nil
	}
	if err := s.fixtureRepo.Create(ctx, nil, batch.Decider); err != nil {
		return handleRepositoryError(err, "write tie decider")
	}
	return nil
}

func (s *fixtureService) GenerateRoundRobin(ctx context.Context, caller models.Caller, in RoundRobinInput) ([]*models.Fixture, error) {
	if err := requirePrivileged(caller); err != nil {
		return nil, err
	}
	params, err := s.baseParams(ctx, caller, in.TournamentID, in.Date, in.Time, "")
	if err != nil {
		return nil, err
	}
	teams, err := s.rosterRepo.ListTeams(ctx, in.TournamentID)
	if err != nil {
		return nil, handleRepositoryError(err, "list teams")
	}
	params.Teams = make(map[string]*models.Team, len(teams))
	for _, t := range teams {
		params.Teams[t.ID] = t
	}
	params.Pools = in.Pools

	batch, err := brackets.NewRoundRobinGenerator().Generate(ctx, params)
	if err != nil {
		return nil, handleDomainError(err)
	}
	return s.writeSequential(ctx, in.TournamentID, "round-robin", batch.Legs)
}

func (s *fixtureService) GeneratePlayoffs(ctx context.Context, caller models.Caller, in PlayoffInput) ([]*models.Fixture, error) {
	if err := requirePrivileged(caller); err != nil {
		return nil, err
	}
	params, err := s.baseParams(ctx, caller, in.TournamentID, in.Date, in.Time, in.VenueID)
	if err != nil {
		return nil, err
	}
	existing, err := s.fixtureRepo.CountByType(ctx, in.TournamentID, models.FixtureTypePlayoff)
	if err != nil {
		return nil, handleRepositoryError(err, "count playoff fixtures")
	}
	if existing > 0 {
		return nil, fmt.Errorf("%w: found %d", ErrPlayoffsAlreadyExist, existing)
	}

	batch, err := brackets.NewPlayoffGenerator().Generate(ctx, params)
	if err != nil {
		return nil, handleDomainError(err)
	}
	return s.writeSequential(ctx, in.TournamentID, "playoff", batch.Legs)
}

// writeSequential writes one fixture at a time and aborts on the first failure.
// Fixtures written before it are not rolled back.
func (s *fixtureService) writeSequential(ctx context.Context, tournamentID, kind string, fixtures []*models.Fixture) ([]*models.Fixture, error) {
	written, err := s.fixtureRepo.CreateMany(ctx, nil, fixtures)
	if written > 0 {
		s.notify(tournamentID, ActionGenerated, fixtureIDs(fixtures[:written]), "")
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "fixture generation aborted", slog.String("kind", kind),
			slog.String("tournament_id", tournamentID), slog.Int("written", written), slog.Int("total", len(fixtures)), slog.Any("error", err))
		return nil, fmt.Errorf("%w: wrote %d of %d %s fixtures before failing: %v", ErrPersistence, written, len(fixtures), kind, err)
	}
	s.logger.InfoContext(ctx, "fixtures generated", slog.String("kind", kind),
		slog.String("tournament_id", tournamentID), slog.Int("fixtures", written))
	return fixtures, nil
}

func (s *fixtureService) ListFixtures(ctx context.Context, caller models.Caller, tournamentID string) ([]*models.Fixture, error) {
	filter := repositories.FixtureFilter{TournamentID: tournamentID}
	switch {
	case caller.IsPrivileged():
	case caller.IsScoped():
		filter.TeamID = caller.TeamID
	default:
		return nil, fmt.Errorf("%w: %w", ErrForbiddenOperation, eligibility.ErrUnverifiedCaller)
	}
	if _, err := s.tournamentRepo.GetByID(ctx, tournamentID); err != nil {
		return nil, handleRepositoryError(err, tournamentID)
	}
	fixtures, err := s.fixtureRepo.List(ctx, filter)
	if err != nil {
		return nil, handleRepositoryError(err, "list fixtures")
	}
	return fixtures, nil
}

func (s *fixtureService) GetFixture(ctx context.Context, caller models.Caller, fixtureID string) (*models.Fixture, error) {
	f, err := s.fixtureRepo.GetByID(ctx, fixtureID)
	if err != nil {
		return nil, handleRepositoryError(err, fixtureID)
	}
	if !eligibility.CanView(caller, f) {
		return nil, fmt.Errorf("%w: fixture %s is not visible to this caller", ErrForbiddenOperation, fixtureID)
	}
	return f, nil
}

func (s *fixtureService) UpdateFixture(ctx context.Context, caller models.Caller, fixtureID string, in UpdateFixtureInput) (*models.Fixture, error) {
	existing, err := s.fixtureRepo.GetByID(ctx, fixtureID)
	if err != nil {
		return nil, handleRepositoryError(err, fixtureID)
	}
	if err := eligibility.CanEdit(caller, existing, s.now(), s.location); err != nil {
		return nil, handleDomainError(err)
	}
	if !caller.IsPrivileged() && in.touchesSchedule() {
		return nil, fmt.Errorf("%w: team admins can only assign players", ErrForbiddenOperation)
	}

	updated := existing.Clone()
	if err := s.applySchedule(ctx, updated, in); err != nil {
		return nil, err
	}
	if err := s.applyTeams(ctx, updated, in); err != nil {
		return nil, err
	}
	if len(in.Players) > 0 || in.Team1Players != nil || in.Team2Players != nil {
		if err := s.applyPlayers(ctx, caller, updated, in); err != nil {
			return nil, err
		}
	}

	if err := s.fixtureRepo.Update(ctx, nil, updated); err != nil {
		return nil, handleRepositoryError(err, fixtureID)
	}
	s.logger.InfoContext(ctx, "fixture updated", slog.String("fixture_id", fixtureID), slog.String("by", caller.Identity()))
	s.notify(updated.TournamentID, ActionUpdated, []string{updated.ID}, updated.FixtureGroupID)
	return updated, nil
}

func (s *fixtureService) applySchedule(ctx context.Context, f *models.Fixture, in UpdateFixtureInput) error {
	if in.Date != nil {
		day, err := utils.ParseDay(*in.Date)
		if err != nil {
			return handleDomainError(err)
		}
		f.Date = day
	}
	if in.Time != nil {
		clock := utils.NormalizeClock(*in.Time)
		if clock != "" {
			if err := brackets.ValidateTime(clock); err != nil {
				return handleDomainError(err)
			}
		}
		f.Time = clock
	}
	if in.Pool != nil {
		f.Pool = trimmedOrNil(*in.Pool)
	}
	if in.Court != nil {
		f.Court = trimmedOrNil(*in.Court)
	}
	if in.VenueID != nil {
		if *in.VenueID == "" {
			f.VenueID, f.VenueName = "", ""
		} else {
			venue, err := s.venueRepo.GetByID(ctx, *in.VenueID)
			if err != nil {
				return handleRepositoryError(err, *in.VenueID)
			}
			f.VenueID, f.VenueName = venue.ID, venue.Name
		}
	}
	if in.YoutubeLink != nil {
		f.YoutubeLink = strings.TrimSpace(*in.YoutubeLink)
	}
	if in.Status != nil {
		f.Status = *in.Status
	}
	return nil
}

// applyTeams assigns playoff participants. Every other fixture keeps its teams.
func (s *fixtureService) applyTeams(ctx context.Context, f *models.Fixture, in UpdateFixtureInput) error {
	if in.Team1ID == nil && in.Team2ID == nil {
		return nil
	}
	if f.FixtureType != models.FixtureTypePlayoff {
		return validationError("teams of a %s fixture cannot be changed", f.FixtureType)
	}
	tournament, err := s.tournamentRepo.GetByID(ctx, f.TournamentID)
	if err != nil {
		return handleRepositoryError(err, f.TournamentID)
	}
	assign := func(id *string, ref *models.TeamRef, name *string) error {
		if id == nil {
			return nil
		}
		if *id == "" || *id == models.TBD {
			*ref, *name = models.UnresolvedTeam(), models.TBD
			return nil
		}
		team, err := s.teamFor(ctx, tournament, *id)
		if err != nil {
			return err
		}
		*ref, *name = models.AssignedTeam(team.ID), team.Name
		return nil
	}
	if err := assign(in.Team1ID, &f.Team1, &f.Team1Name); err != nil {
		return err
	}
	if err := assign(in.Team2ID, &f.Team2, &f.Team2Name); err != nil {
		return err
	}
	if f.Team1.IsAssigned() && f.Team1 == f.Team2 {
		return handleDomainError(brackets.ErrIdenticalTeams)
	}
	return nil
}

func (s *fixtureService) applyPlayers(ctx context.Context, caller models.Caller, f *models.Fixture, in UpdateFixtureInput) error {
	for name := range in.Players {
		if !name.IsValid() {
			return handleDomainError(fmt.Errorf("%w: %s", eligibility.ErrInvalidSlot, name))
		}
	}

	rc, err := s.loadRosterContext(ctx, f.TournamentID)
	if err != nil {
		return err
	}

	// Slots in the patch are checked against each other, not against the players
	// they replace.
	for slot := range in.Players {
		*f.Slot(slot) = models.PlayerSlot{}
	}

	for _, slot := range models.AllSlots {
		playerID, ok := in.Players[slot]
		if !ok {
			continue
		}
		if playerID == "" {
			if !caller.IsPrivileged() && !sideOf(f, slot).Is(caller.TeamID) {
				return handleDomainError(eligibility.ErrNotOwnSide)
			}
			*f.Slot(slot) = models.PlayerSlot{}
			continue
		}
		p, ok := rc.players[playerID]
		if !ok {
			return fmt.Errorf("%w: %w: %s", ErrNotFound, ErrPlayerNotFound, playerID)
		}
		a := s.assignment(caller, f, slot, rc)
		if err := eligibility.CheckAssignment(a, p); err != nil {
			return handleDomainError(err)
		}
		*f.Slot(slot) = models.PlayerSlot{ID: p.ID, Name: p.Name}
	}

	rosters := []struct {
		ids  *[]string
		side models.TeamRef
		dst  *[]string
	}{
		{in.Team1Players, f.Team1, &f.Team1Players},
		{in.Team2Players, f.Team2, &f.Team2Players},
	}
	for _, r := range rosters {
		if r.ids == nil {
			continue
		}
		if !f.IsDecider() {
			return validationError("player rosters only apply to the tie-decider")
		}
		if !caller.IsPrivileged() && !r.side.Is(caller.TeamID) {
			return handleDomainError(eligibility.ErrNotOwnSide)
		}
		if len(*r.ids) > 0 {
			if err := eligibility.ValidateDeciderRoster(caller, rc.teams[r.side.ID()], *r.ids); err != nil {
				return handleDomainError(err)
			}
		}
		*r.dst = append([]string{}, *r.ids...)
	}
	return nil
}

func (s *fixtureService) DeleteFixture(ctx context.Context, caller models.Caller, fixtureID string) ([]string, error) {
	if err := requirePrivileged(caller); err != nil {
		return nil, err
	}
	f, err := s.fixtureRepo.GetByID(ctx, fixtureID)
	if err != nil {
		return nil, handleRepositoryError(err, fixtureID)
	}
	if f.FixtureGroupID != "" {
		return s.deleteGroup(ctx, f.FixtureGroupID)
	}

	if err := s.fixtureRepo.Delete(ctx, nil, fixtureID); err != nil {
		return nil, handleRepositoryError(err, fixtureID)
	}
	s.logger.InfoContext(ctx, "fixture deleted", slog.String("fixture_id", fixtureID), slog.String("by", caller.Identity()))
	s.notify(f.TournamentID, ActionDeleted, []string{fixtureID}, "")
	return []string{fixtureID}, nil
}

func (s *fixtureService) DeleteGroup(ctx context.Context, caller models.Caller, groupID string) ([]string, error) {
	if err := requirePrivileged(caller); err != nil {
		return nil, err
	}
	if strings.TrimSpace(groupID) == "" {
		return nil, validationError("group id is required")
	}
	return s.deleteGroup(ctx, groupID)
}

// deleteGroup removes every fixture sharing groupID in one statement. The member
// list is read first, so a leg added concurrently may survive.
func (s *fixtureService) deleteGroup(ctx context.Context, groupID string) ([]string, error) {
	members, err := s.fixtureRepo.ListByGroup(ctx, groupID)
	if err != nil {
		return nil, handleRepositoryError(err, "list group "+groupID)
	}
	if len(members) == 0 {
		return nil, fmt.Errorf("%w: fixture group %s", ErrNotFound, groupID)
	}
	ids := fixtureIDs(members)
	deleted, err := s.fixtureRepo.DeleteMany(ctx, nil, ids)
	if err != nil {
		return nil, handleRepositoryError(err, "delete group "+groupID)
	}
	if int(deleted) != len(ids) {
		s.logger.WarnContext(ctx, "fixture group changed while deleting",
			slog.String("group_id", groupID), slog.Int("expected", len(ids)), slog.Int64("deleted", deleted))
	}
	s.logger.InfoContext(ctx, "fixture group deleted", slog.String("group_id", groupID), slog.Int("fixtures", len(ids)))
	s.notify(members[0].TournamentID, ActionGroupDeleted, ids, groupID)
	return ids, nil
}

func (s *fixtureService) ResetPlayoffFixture(ctx context.Context, caller models.Caller, fixtureID string) (*models.Fixture, error) {
	if err := requirePrivileged(caller); err != nil {
		return nil, err
	}
	existing, err := s.fixtureRepo.GetByID(ctx, fixtureID)
	if err != nil {
		return nil, handleRepositoryError(err, fixtureID)
	}
	if existing.FixtureType != models.FixtureTypePlayoff {
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, ErrNotPlayoffFixture)
	}

	f := existing.Clone()
	f.Team1, f.Team2 = models.UnresolvedTeam(), models.UnresolvedTeam()
	f.Team1Name, f.Team2Name = models.TBD, models.TBD
	f.ClearPlayers()

	if err := s.fixtureRepo.Update(ctx, nil, f); err != nil {
		return nil, handleRepositoryError(err, fixtureID)
	}
	s.logger.InfoContext(ctx, "playoff fixture reset", slog.String("fixture_id", fixtureID), slog.String("playoff", f.PlayoffName))
	s.notify(f.TournamentID, ActionReset, []string{f.ID}, "")
	return f, nil
}

func (s *fixtureService) EligiblePlayers(ctx context.Context, caller models.Caller, fixtureID string, slot models.SlotName) ([]*models.Player, error) {
	f, err := s.fixtureRepo.GetByID(ctx, fixtureID)
	if err != nil {
		return nil, handleRepositoryError(err, fixtureID)
	}
	if err := eligibility.CanEdit(caller, f, s.now(), s.location); err != nil {
		return nil, handleDomainError(err)
	}
	if !slot.IsValid() || f.IsDecider() {
		return nil, handleDomainError(fmt.Errorf("%w: %s", eligibility.ErrInvalidSlot, slot))
	}
	side := sideOf(f, slot)
	if !side.IsAssigned() {
		return nil, validationError("slot %s has no team assigned yet", slot)
	}

	rc, err := s.loadRosterContext(ctx, f.TournamentID)
	if err != nil {
		return nil, err
	}
	team, ok := rc.teams[side.ID()]
	if !ok {
		return nil, fmt.Errorf("%w: %w: %s", ErrNotFound, ErrTeamNotFound, side.ID())
	}
	candidates := make([]*models.Player, 0, len(team.PlayerIDs))
	for _, id := range team.PlayerIDs {
		if p, ok := rc.players[id]; ok {
			candidates = append(candidates, p)
		}
	}
	return eligibility.EligiblePlayers(s.assignment(caller, f, slot, rc), candidates), nil
}

// rosterContext is everything eligibility needs about one tournament.
type rosterContext struct {
	fixtures []*models.Fixture
	teams    map[string]*models.Team
	players  map[string]*models.Player
}

func (s *fixtureService) loadRosterContext(ctx context.Context, tournamentID string) (*rosterContext, error) {
	rc := &rosterContext{}
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		fixtures, err := s.fixtureRepo.List(gCtx, repositories.FixtureFilter{TournamentID: tournamentID})
		if err != nil {
			return handleRepositoryError(err, "list fixtures")
		}
		rc.fixtures = fixtures
		return nil
	})
	g.Go(func() error {
		teams, err := s.rosterRepo.ListTeams(gCtx, tournamentID)
		if err != nil {
			return handleRepositoryError(err, "list teams")
		}
		rc.teams = make(map[string]*models.Team, len(teams))
		for _, t := range teams {
			rc.teams[t.ID] = t
		}
		return nil
	})
	g.Go(func() error {
		players, err := s.playersByID(gCtx, tournamentID)
		if err != nil {
			return err
		}
		rc.players = players
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rc, nil
}

func (s *fixtureService) assignment(caller models.Caller, f *models.Fixture, slot models.SlotName, rc *rosterContext) eligibility.Assignment {
	side := sideOf(f, slot)
	return eligibility.Assignment{
		Caller:   caller,
		Fixture:  f,
		Slot:     slot,
		Team:     rc.teams[side.ID()],
		Related:  eligibility.RelatedFixtures(f, rc.fixtures),
		Players:  rc.players,
		Now:      s.now(),
		Location: s.location,
	}
}

func (s *fixtureService) playersByID(ctx context.Context, tournamentID string) (map[string]*models.Player, error) {
	players, err := s.rosterRepo.ListPlayers(ctx, tournamentID)
	if err != nil {
		return nil, handleRepositoryError(err, "list players")
	}
	byID := make(map[string]*models.Player, len(players))
	for _, p := range players {
		byID[p.ID] = p
	}
	return byID, nil
}

// baseParams loads the tournament and venue and parses the schedule shared by
// every generator.
func (s *fixtureService) baseParams(ctx context.Context, caller models.Caller, tournamentID, date, clock, venueID string) (brackets.GenerateParams, error) {
	params := brackets.GenerateParams{CreatedBy: caller.Identity(), Now: s.now().UTC()}

	tournament, err := s.tournamentRepo.GetByID(ctx, tournamentID)
	if err != nil {
		return params, handleRepositoryError(err, tournamentID)
	}
	params.Tournament = tournament

	if params.Date, err = utils.ParseDay(date); err != nil {
		return params, handleDomainError(err)
	}
	params.Time = utils.NormalizeClock(clock)
	if params.Time != "" {
		if err := brackets.ValidateTime(params.Time); err != nil {
			return params, handleDomainError(err)
		}
	}

	if venueID != "" {
		venue, err := s.venueRepo.GetByID(ctx, venueID)
		if err != nil {
			return params, handleRepositoryError(err, venueID)
		}
		params.Venue = venue
	}
	return params, nil
}

// teamFor loads a team and checks it plays in the tournament. An empty id returns
// nil so the generator reports the missing field.
func (s *fixtureService) teamFor(ctx context.Context, tournament *models.Tournament, teamID string) (*models.Team, error) {
	if teamID == "" {
		return nil, nil
	}
	team, err := s.rosterRepo.GetTeamByID(ctx, teamID)
	if err != nil {
		return nil, handleRepositoryError(err, teamID)
	}
	if team.TournamentID != tournament.ID {
		return nil, validationError("team %s does not play in tournament %s", teamID, tournament.ID)
	}
	return team, nil
}

func (s *fixtureService) notify(tournamentID, action string, ids []string, groupID string) {
	if s.notifier == nil {
		return
	}
	s.notifier.NotifyFixturesChanged(brackets.FixturesChangedPayload{
		TournamentID: tournamentID,
		Action:       action,
		FixtureIDs:   ids,
		GroupID:      groupID,
	})
}

func sideOf(f *models.Fixture, slot models.SlotName) models.TeamRef {
	if slot.Side() == 2 {
		return f.Team2
	}
	return f.Team1
}

func trimmedOrNil(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
