package eligibility

import (
	"errors"
	"fmt"
	"time"

	"github.com/Dosada05/tournament-fixtures/models"
)

// MaxAssignments is how many named slots one player may hold in a tie or, for
// standalone fixtures, across the fixtures of one matchup.
const MaxAssignments = 2

var (
	ErrIneligible = errors.New("player is not eligible")

	ErrInvalidSlot       = fmt.Errorf("%w: unknown or unusable slot", ErrIneligible)
	ErrNotOnTeam         = fmt.Errorf("%w: player is not on the slot's team", ErrIneligible)
	ErrAlreadyInFixture  = fmt.Errorf("%w: player already plays in this fixture", ErrIneligible)
	ErrAssignmentLimit   = fmt.Errorf("%w: player already holds %d assignments", ErrIneligible, MaxAssignments)
	ErrDuplicateCategory = fmt.Errorf("%w: player already plays this doubles category", ErrIneligible)
	ErrGenderMismatch    = fmt.Errorf("%w: player gender does not fit the slot", ErrIneligible)
	ErrRosterTooSmall    = fmt.Errorf("%w: decider roster needs at least %d distinct players", ErrIneligible, models.MinDeciderRoster)
)

// Assignment describes one slot that is about to be filled.
type Assignment struct {
	Caller  models.Caller
	Fixture *models.Fixture
	Slot    models.SlotName
	// Team owns the slot's side of the fixture.
	Team *models.Team
	// Related are the fixtures the assignment limit is counted over, usually from
	// RelatedFixtures. Fixture itself may be among them.
	Related []*models.Fixture
	// Players resolves slot occupants, needed for the mixed doubles partner rule.
	Players map[string]*models.Player

	Now      time.Time
	Location *time.Location
}

// RelatedFixtures picks the fixtures the assignment limit applies to: the other
// legs of the tie when f is grouped, otherwise the fixtures of the same matchup
// (same pair of teams, pool and day).
func RelatedFixtures(f *models.Fixture, all []*models.Fixture) []*models.Fixture {
	related := make([]*models.Fixture, 0)
	for _, other := range all {
		if f.IsTieMember() {
			if other.FixtureGroupID == f.FixtureGroupID && other.IsTieMember() {
				related = append(related, other)
			}
			continue
		}
		if !other.IsTieMember() && sameMatchup(f, other) {
			related = append(related, other)
		}
	}
	return related
}

func sameMatchup(a, b *models.Fixture) bool {
	if a.DateKey() != b.DateKey() || poolOf(a) != poolOf(b) {
		return false
	}
	if !a.Team1.IsAssigned() || !a.Team2.IsAssigned() {
		return a.ID == b.ID
	}
	return (a.Team1 == b.Team1 && a.Team2 == b.Team2) || (a.Team1 == b.Team2 && a.Team2 == b.Team1)
}

func poolOf(f *models.Fixture) string {
	if f.Pool == nil {
		return ""
	}
	return *f.Pool
}

// CheckAssignment returns nil when the player may go into the slot. Super admins
// skip every rule except slot validity.
func CheckAssignment(a Assignment, p *models.Player) error {
	if a.Fixture == nil || !a.Slot.IsValid() || a.Fixture.IsDecider() {
		return ErrInvalidSlot
	}
	if p == nil {
		return fmt.Errorf("%w: no player given", ErrIneligible)
	}
	if a.Caller.IsPrivileged() {
		return nil
	}

	if err := CanEdit(a.Caller, a.Fixture, a.Now, a.Location); err != nil {
		return err
	}
	if !sideTeam(a.Fixture, a.Slot).Is(a.Caller.TeamID) {
		return ErrNotOwnSide
	}
	if a.Team == nil || !a.Team.HasPlayer(p.ID) {
		return ErrNotOnTeam
	}

	for _, name := range models.AllSlots {
		if name != a.Slot && a.Fixture.Slot(name).ID == p.ID {
			return ErrAlreadyInFixture
		}
	}

	held := 0
	for _, other := range a.Related {
		if other.ID == a.Fixture.ID {
			continue
		}
		inOther := holds(other, p.ID)
		held += inOther
		if inOther > 0 && a.Fixture.MatchType.IsDoubles() && other.MatchType == a.Fixture.MatchType {
			return ErrDuplicateCategory
		}
	}
	if held >= MaxAssignments {
		return ErrAssignmentLimit
	}

	return checkGender(a, p)
}

// EligiblePlayers filters candidates down to the ones CheckAssignment accepts.
func EligiblePlayers(a Assignment, candidates []*models.Player) []*models.Player {
	eligible := make([]*models.Player, 0, len(candidates))
	for _, p := range candidates {
		if CheckAssignment(a, p) == nil {
			eligible = append(eligible, p)
		}
	}
	return eligible
}

func checkGender(a Assignment, p *models.Player) error {
	category := a.Fixture.MatchType
	if required, ok := category.RequiredGender(); ok {
		if p.Gender != required {
			return fmt.Errorf("%w: %s needs %s players", ErrGenderMismatch, category.Label(), required)
		}
		return nil
	}
	if category != models.CategoryMixedDoubles {
		return nil
	}
	partner := a.Fixture.Slot(a.Slot.Partner())
	if partner.IsEmpty() {
		return nil
	}
	other, ok := a.Players[partner.ID]
	if !ok {
		return nil
	}
	// Checked from either slot, so changing the first player re-checks the second.
	if want := other.Gender.Opposite(); want != "" && p.Gender != want {
		return fmt.Errorf("%w: mixed doubles partner of %s must be %s", ErrGenderMismatch, other.Name, want)
	}
	return nil
}

// ValidateDeciderRoster checks one side of a tie-decider: at least
// MinDeciderRoster distinct players, all from team. Super admins may name
// players from outside the team.
func ValidateDeciderRoster(caller models.Caller, team *models.Team, playerIDs []string) error {
	seen := make(map[string]bool, len(playerIDs))
	for _, id := range playerIDs {
		if id == "" {
			continue
		}
		if !caller.IsPrivileged() && (team == nil || !team.HasPlayer(id)) {
			return fmt.Errorf("%w: %s", ErrNotOnTeam, id)
		}
		seen[id] = true
	}
	if len(seen) < models.MinDeciderRoster {
		return fmt.Errorf("%w (got %d)", ErrRosterTooSmall, len(seen))
	}
	return nil
}

func sideTeam(f *models.Fixture, slot models.SlotName) models.TeamRef {
	if slot.Side() == 2 {
		return f.Team2
	}
	return f.Team1
}

func holds(f *models.Fixture, playerID string) int {
	n := 0
	for _, name := range models.AllSlots {
		if f.Slot(name).ID == playerID {
			n++
		}
	}
	return n
}
