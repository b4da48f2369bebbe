package domain

import "time"

type Role string

const (
	RoleEditor Role = "editor"
	RoleOwner  Role = "owner"
)

func (r Role) Valid() bool {
	return r == RoleEditor || r == RoleOwner
}

// TeamMember is an invited collaborator on a user's workspace. The
// (user_id, invited_email) pair is unique.
type TeamMember struct {
	ID           int64  `gorm:"primaryKey" json:"id,string"`
	UserID       int64  `gorm:"uniqueIndex:ux_team_members_owner_email,priority:1" json:"user_id,string"`
	InvitedEmail string `gorm:"size:255;uniqueIndex:ux_team_members_owner_email,priority:2" json:"invited_email"`
	Role         Role   `gorm:"size:16" json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (TeamMember) TableName() string { return "team_members" }
