package domain

import (
	"time"

	"gorm.io/datatypes"
)

// User is an account that owns features, impressions, settings and team
// members.
type User struct {
	ID           int64             `gorm:"primaryKey" json:"id"`
	Username     string            `gorm:"size:64;uniqueIndex" json:"username"`
	Email        string            `gorm:"size:255;uniqueIndex" json:"email"`
	PasswordHash string            `gorm:"size:255" json:"-"`
	Metadata     datatypes.JSONMap `gorm:"type:jsonb" json:"metadata,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string { return "users" }

// Session is a server side login session. Only the SHA-256 hash of the
// session token is stored.
type Session struct {
	ID               int64  `gorm:"primaryKey"`
	UserID           int64  `gorm:"index"`
	SessionTokenHash string `gorm:"size:64;uniqueIndex"`
	UserAgent        string `gorm:"size:512"`
	IPAddress        string `gorm:"size:64"`

	CreatedAt  time.Time
	ExpiresAt  time.Time
	LastSeenAt *time.Time
	RevokedAt  *time.Time
}

func (Session) TableName() string { return "sessions" }

func (s *Session) Active(now time.Time) bool {
	return s.RevokedAt == nil && now.Before(s.ExpiresAt)
}
