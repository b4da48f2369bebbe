package domain

import (
	"context"
	"time"
)

// TrackRequest mirrors the widget payload. UID is the feature owner's
// user ID as claimed by the embedding page. IDs travel as JSON strings
// because snowflake values overflow the JS safe-integer range.
type TrackRequest struct {
	FeatureID int64          `json:"featureId,string"`
	UID       int64          `json:"uid,string"`
	Type      ImpressionType `json:"type"`
}

type Service interface {
	// Track validates and records one widget event. View events bump
	// the feature's denormalized counter asynchronously.
	Track(ctx context.Context, req TrackRequest) error
}

type Repository interface {
	Insert(ctx context.Context, impression *Impression) error

	// CountByType groups events for one owner since a cutoff, one row
	// per (feature, type) pair.
	CountByType(ctx context.Context, userID int64, since time.Time) ([]TypeCount, error)
}
