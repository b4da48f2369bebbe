package domain

import (
	"context"
	"time"

	"github.com/featureblastlabs/featureblast/pkg/db/pagination"
)

type CreateFeatureRequest struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	FeatureType FeatureType `json:"feature_type"`
}

type ListFeaturesResult struct {
	Features []Feature
	PageInfo pagination.PageInfo
}

type Service interface {
	Create(ctx context.Context, userID int64, req CreateFeatureRequest) (*Feature, error)
	Get(ctx context.Context, userID, featureID int64) (*Feature, error)
	List(ctx context.Context, userID int64, page pagination.Pagination) (*ListFeaturesResult, error)

	// Lookup fetches a feature regardless of owner. The tracker uses it
	// to verify ownership claims before recording an impression.
	Lookup(ctx context.Context, featureID int64) (*Feature, error)

	// Recent returns the newest published features for a user, newest
	// first, capped at limit.
	Recent(ctx context.Context, userID int64, limit int) ([]Feature, error)

	// ListAll returns every feature a user owns, newest first.
	ListAll(ctx context.Context, userID int64) ([]Feature, error)

	IncrementImpressions(ctx context.Context, featureID int64) error
	CountCreatedSince(ctx context.Context, userID int64, since time.Time) (int64, error)
}
