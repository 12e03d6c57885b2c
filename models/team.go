package models

import "time"

type Team struct {
	ID           string    `json:"id" db:"id"`
	TournamentID string    `json:"tournament_id" db:"tournament_id"`
	Name         string    `json:"name" db:"name"`
	AdminEmail   string    `json:"admin_email" db:"admin_email"`
	AdminUID     string    `json:"admin_uid" db:"admin_uid"`
	PlayerIDs    []string  `json:"player_ids" db:"player_ids"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

func (t *Team) HasPlayer(playerID string) bool {
	for _, id := range t.PlayerIDs {
		if id == playerID {
			return true
		}
	}
	return false
}

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// Opposite returns the other gender, or "" for an unknown value.
func (g Gender) Opposite() Gender {
	switch g {
	case GenderMale:
		return GenderFemale
	case GenderFemale:
		return GenderMale
	default:
		return ""
	}
}

type Player struct {
	ID           string `json:"id" db:"id"`
	TournamentID string `json:"tournament_id" db:"tournament_id"`
	Name         string `json:"name" db:"name"`
	Gender       Gender `json:"gender" db:"gender"`
	Age          int    `json:"age" db:"age"`
}

type Venue struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedBy string    `json:"created_by" db:"created_by"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
