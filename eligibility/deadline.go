// Package eligibility decides who may edit a fixture and which players may fill
// its slots.
package eligibility

import (
	"errors"
	"fmt"
	"time"

	"github.com/Dosada05/tournament-fixtures/models"
)

// EditLeadTime is how long before the start of a match team admins lose edit access.
const EditLeadTime = 60 * time.Minute

var (
	ErrForbidden = errors.New("operation not permitted")

	ErrUnverifiedCaller = fmt.Errorf("%w: caller role or team could not be verified", ErrForbidden)
	ErrNotOwnTeam       = fmt.Errorf("%w: fixture does not involve the caller's team", ErrForbidden)
	ErrNotOwnSide       = fmt.Errorf("%w: slot belongs to the opposing team", ErrForbidden)
	ErrPastDeadline     = fmt.Errorf("%w: edit deadline has passed", ErrForbidden)
)

// Deadline returns the last moment a team admin may edit f: match start minus
// EditLeadTime, with date and time read in loc. ok is false when the fixture has
// no date or no parseable time, in which case no deadline applies.
func Deadline(f *models.Fixture, loc *time.Location) (deadline time.Time, ok bool) {
	if f == nil || f.Date.IsZero() || f.Time == "" {
		return time.Time{}, false
	}
	clock, err := time.Parse("15:04", f.Time)
	if err != nil {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := f.Date.Date()
	start := time.Date(y, m, d, clock.Hour(), clock.Minute(), 0, 0, loc)
	return start.Add(-EditLeadTime), true
}

// CanEdit reports whether caller may change f at now. Super admins always may.
// Team admins need their own team on the fixture and must be inside the deadline.
// Any caller that cannot be verified is rejected.
func CanEdit(caller models.Caller, f *models.Fixture, now time.Time, loc *time.Location) error {
	if f == nil {
		return ErrUnverifiedCaller
	}
	if caller.IsPrivileged() {
		return nil
	}
	if !caller.IsScoped() {
		return ErrUnverifiedCaller
	}
	if !f.Involves(caller.TeamID) {
		return ErrNotOwnTeam
	}
	if deadline, ok := Deadline(f, loc); ok && now.After(deadline) {
		return fmt.Errorf("%w (closed at %s)", ErrPastDeadline, deadline.Format(time.RFC3339))
	}
	return nil
}

// CanView reports whether the fixture is visible to caller. Team admins only see
// fixtures of their own team.
func CanView(caller models.Caller, f *models.Fixture) bool {
	if caller.IsPrivileged() {
		return true
	}
	return caller.IsScoped() && f.Involves(caller.TeamID)
}
