package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// TBD is the stored form of a participant slot that has no team yet.
const TBD = "TBD"

// TeamRef is either an assigned team id or unresolved. The zero value is unresolved.
type TeamRef struct {
	id string
}

func AssignedTeam(id string) TeamRef {
	if id == TBD {
		return TeamRef{}
	}
	return TeamRef{id: id}
}

func UnresolvedTeam() TeamRef {
	return TeamRef{}
}

func (r TeamRef) IsAssigned() bool {
	return r.id != ""
}

// ID returns the team id, or "" when unresolved.
func (r TeamRef) ID() string {
	return r.id
}

func (r TeamRef) Is(teamID string) bool {
	return teamID != "" && r.id == teamID
}

func (r TeamRef) String() string {
	if r.id == "" {
		return TBD
	}
	return r.id
}

func (r TeamRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

func (r *TeamRef) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*r = TeamRef{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("team reference must be a string: %w", err)
	}
	*r = AssignedTeam(s)
	return nil
}

func (r TeamRef) Value() (driver.Value, error) {
	return r.String(), nil
}

func (r *TeamRef) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*r = TeamRef{}
	case string:
		*r = AssignedTeam(v)
	case []byte:
		*r = AssignedTeam(string(v))
	default:
		return fmt.Errorf("cannot scan %T into TeamRef", src)
	}
	return nil
}
