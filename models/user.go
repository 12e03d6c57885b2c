package models

type UserRole string

const (
	// RoleSuperAdmin may act on every fixture of every tournament at any time.
	RoleSuperAdmin UserRole = "super_admin"
	// RoleTeamAdmin is bound to one team and may only assign that team's players.
	RoleTeamAdmin UserRole = "team_admin"
)

// Caller is the identity an operation is performed for.
type Caller struct {
	UID    string   `json:"uid"`
	Email  string   `json:"email"`
	Role   UserRole `json:"role"`
	TeamID string   `json:"team_id,omitempty"`
}

func (c Caller) IsPrivileged() bool {
	return c.Role == RoleSuperAdmin
}

// IsScoped reports whether the caller is a team admin with a usable team binding.
func (c Caller) IsScoped() bool {
	return c.Role == RoleTeamAdmin && c.TeamID != ""
}

// Identity is what gets written into created_by.
func (c Caller) Identity() string {
	if c.Email != "" {
		return c.Email
	}
	return c.UID
}
