package domain

import "time"

type ImpressionType string

const (
	TypeView  ImpressionType = "view"
	TypeClick ImpressionType = "click"
)

func (t ImpressionType) Valid() bool {
	return t == TypeView || t == TypeClick
}

// Impression is an append-only widget event. IDs are ULIDs so events
// sort by creation time.
type Impression struct {
	ID             string         `gorm:"primaryKey;size:26" json:"id"`
	FeatureID      int64          `gorm:"index:ix_impressions_feature_type_created,priority:1" json:"feature_id"`
	UserID         int64          `gorm:"index:ix_impressions_user_created,priority:1" json:"user_id"`
	ImpressionType ImpressionType `gorm:"size:8;index:ix_impressions_feature_type_created,priority:2" json:"impression_type"`

	CreatedAt time.Time `gorm:"index:ix_impressions_feature_type_created,priority:3;index:ix_impressions_user_created,priority:2" json:"created_at"`
}

func (Impression) TableName() string { return "impressions" }

// TypeCount is one row of a grouped count query.
type TypeCount struct {
	FeatureID      int64
	ImpressionType ImpressionType
	Count          int64
}
