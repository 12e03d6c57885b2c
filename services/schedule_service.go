package services

import (
	"context"

	"github.com/Dosada05/tournament-fixtures/models"
	"github.com/Dosada05/tournament-fixtures/repositories"
	"github.com/Dosada05/tournament-fixtures/schedule"
)

// ScheduleView is everything a console renders for one tournament.
type ScheduleView struct {
	Tournament *models.Tournament     `json:"tournament"`
	Days       []schedule.CalendarDay `json:"days"`
	Groups     []*schedule.TieGroup   `json:"groups"`
	Fixtures   []*models.Fixture      `json:"fixtures"`
	Playoffs   []*models.Fixture      `json:"playoffs"`
	Filter     schedule.Filter        `json:"filter"`
}

type ScheduleQuery struct {
	Filter schedule.Filter
	// ActiveOnly drops calendar days without fixtures.
	ActiveOnly bool
}

type ScheduleService interface {
	BuildSchedule(ctx context.Context, caller models.Caller, tournamentID string, query ScheduleQuery) (*ScheduleView, error)
}

type scheduleService struct {
	tournamentRepo repositories.TournamentRepository
	fixtures       FixtureService
}

func NewScheduleService(tournamentRepo repositories.TournamentRepository, fixtures FixtureService) ScheduleService {
	return &scheduleService{tournamentRepo: tournamentRepo, fixtures: fixtures}
}

// BuildSchedule projects the fixtures the caller can see. The calendar counts are
// taken before filtering, the group and flat views after.
func (s *scheduleService) BuildSchedule(ctx context.Context, caller models.Caller, tournamentID string, q ScheduleQuery) (*ScheduleView, error) {
	fixtures, err := s.fixtures.ListFixtures(ctx, caller, tournamentID)
	if err != nil {
		return nil, err
	}
	tournament, err := s.tournamentRepo.GetByID(ctx, tournamentID)
	if err != nil {
		return nil, handleRepositoryError(err, tournamentID)
	}
	return projectSchedule(tournament, fixtures, q), nil
}

func projectSchedule(tournament *models.Tournament, fixtures []*models.Fixture, q ScheduleQuery) *ScheduleView {
	days := schedule.Calendar(tournament.StartDate, tournament.EndDate, fixtures)
	if q.ActiveOnly {
		days = schedule.ActiveDays(days)
	}
	return &ScheduleView{
		Tournament: tournament,
		Days:       days,
		Groups:     q.Filter.FilterGroups(schedule.TieGroups(fixtures)),
		Fixtures:   q.Filter.FilterFixtures(schedule.FlatFixtures(fixtures)),
		Playoffs:   schedule.PlayoffBracket(fixtures),
		Filter:     q.Filter,
	}
}
