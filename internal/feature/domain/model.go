package domain

import "time"

// FeatureType classifies an announcement: a brand new capability, an
// update to an existing one, or a bug fix.
type FeatureType string

const (
	TypeNew    FeatureType = "new"
	TypeUpdate FeatureType = "update"
	TypeFix    FeatureType = "fix"
)

func (t FeatureType) Valid() bool {
	switch t {
	case TypeNew, TypeUpdate, TypeFix:
		return true
	}
	return false
}

const (
	MaxTitleLength       = 100
	MaxDescriptionLength = 1000
)

// Feature is a product change announced to end users. Impressions is a
// denormalized view counter kept in sync by the tracker.
type Feature struct {
	ID          int64       `gorm:"primaryKey" json:"id"`
	UserID      int64       `gorm:"index:ix_features_user_created,priority:1" json:"user_id"`
	Title       string      `gorm:"size:100" json:"title"`
	Description string      `gorm:"size:1000" json:"description"`
	FeatureType FeatureType `gorm:"size:16" json:"feature_type"`
	Impressions int64       `gorm:"default:0" json:"impressions"`

	CreatedAt time.Time `gorm:"index:ix_features_user_created,priority:2" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Feature) TableName() string { return "features" }
