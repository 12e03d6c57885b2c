package services

import (
	"context"
	"fmt"

	"github.com/Dosada05/tournament-fixtures/models"
	"github.com/Dosada05/tournament-fixtures/repositories"
)

// PreferenceService remembers which fixture style was picked for a tournament so
// the console can skip the style selection step.
type PreferenceService interface {
	GetStyle(ctx context.Context, caller models.Caller, tournamentID string) (*models.StylePreference, error)
	SetStyle(ctx context.Context, caller models.Caller, tournamentID string, style models.FixtureStyle) (*models.StylePreference, error)
}

type preferenceService struct {
	prefRepo       repositories.PreferenceRepository
	tournamentRepo repositories.TournamentRepository
}

func NewPreferenceService(prefRepo repositories.PreferenceRepository, tournamentRepo repositories.TournamentRepository) PreferenceService {
	return &preferenceService{prefRepo: prefRepo, tournamentRepo: tournamentRepo}
}

func (s *preferenceService) GetStyle(ctx context.Context, caller models.Caller, tournamentID string) (*models.StylePreference, error) {
	if !caller.IsPrivileged() && !caller.IsScoped() {
		return nil, fmt.Errorf("%w: unverified caller", ErrForbiddenOperation)
	}
	pref, err := s.prefRepo.Get(ctx, tournamentID)
	if err != nil {
		return nil, handleRepositoryError(err, "style preference for "+tournamentID)
	}
	return pref, nil
}

func (s *preferenceService) SetStyle(ctx context.Context, caller models.Caller, tournamentID string, style models.FixtureStyle) (*models.StylePreference, error) {
	if err := requirePrivileged(caller); err != nil {
		return nil, err
	}
	if !style.IsValid() {
		return nil, validationError("unknown fixture style %q", style)
	}
	if _, err := s.tournamentRepo.GetByID(ctx, tournamentID); err != nil {
		return nil, handleRepositoryError(err, tournamentID)
	}
	pref := &models.StylePreference{TournamentID: tournamentID, Style: style}
	if err := s.prefRepo.Upsert(ctx, pref); err != nil {
		return nil, handleRepositoryError(err, "save style preference")
	}
	return pref, nil
}
