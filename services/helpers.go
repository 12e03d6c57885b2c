package services

import (
	"errors"
	"fmt"

	"github.com/Dosada05/tournament-fixtures/brackets"
	"github.com/Dosada05/tournament-fixtures/eligibility"
	"github.com/Dosada05/tournament-fixtures/models"
	"github.com/Dosada05/tournament-fixtures/repositories"
	"github.com/Dosada05/tournament-fixtures/utils"
)

// handleRepositoryError переводит ошибки репозитория в ошибки сервиса.
func handleRepositoryError(err error, what string) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, repositories.ErrFixtureNotFound):
		return fmt.Errorf("%w: %w: %s", ErrNotFound, ErrFixtureNotFound, what)
	case errors.Is(err, repositories.ErrTournamentNotFound), errors.Is(err, repositories.ErrFixtureTournamentInvalid):
		return fmt.Errorf("%w: %w: %s", ErrNotFound, ErrTournamentNotFound, what)
	case errors.Is(err, repositories.ErrTeamNotFound):
		return fmt.Errorf("%w: %w: %s", ErrNotFound, ErrTeamNotFound, what)
	case errors.Is(err, repositories.ErrVenueNotFound):
		return fmt.Errorf("%w: %w: %s", ErrNotFound, ErrVenueNotFound, what)
	case errors.Is(err, repositories.ErrPreferenceNotFound):
		return fmt.Errorf("%w: %s", ErrNotFound, what)
	case errors.Is(err, repositories.ErrFixtureConflict):
		return fmt.Errorf("%w: %s: %v", ErrValidationFailed, what, err)
	default:
		return fmt.Errorf("%w: %s: %v", ErrPersistence, what, err)
	}
}

// handleDomainError maps generator and eligibility errors onto the service taxonomy.
func handleDomainError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, eligibility.ErrForbidden):
		return fmt.Errorf("%w: %w", ErrForbiddenOperation, err)
	case errors.Is(err, eligibility.ErrIneligible),
		errors.Is(err, brackets.ErrMissingField),
		errors.Is(err, brackets.ErrIdenticalTeams),
		errors.Is(err, brackets.ErrInvalidTime),
		errors.Is(err, brackets.ErrInvalidCategory),
		errors.Is(err, brackets.ErrInvalidPools),
		errors.Is(err, brackets.ErrNoCategories),
		errors.Is(err, brackets.ErrInvalidSlot),
		errors.Is(err, utils.ErrInvalidDate):
		return fmt.Errorf("%w: %w", ErrValidationFailed, err)
	default:
		return err
	}
}

func requirePrivileged(caller models.Caller) error {
	if !caller.IsPrivileged() {
		return fmt.Errorf("%w: only super admins can do this", ErrForbiddenOperation)
	}
	return nil
}

func validationError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidationFailed, fmt.Sprintf(format, args...))
}

func fixtureIDs(fixtures []*models.Fixture) []string {
	ids := make([]string, 0, len(fixtures))
	for _, f := range fixtures {
		ids = append(ids, f.ID)
	}
	return ids
}
