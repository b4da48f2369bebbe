package domain

import (
	"context"
	"time"

	"github.com/featureblastlabs/featureblast/pkg/db/pagination"
)

type Repository interface {
	Create(ctx context.Context, feature *Feature) error
	FindByID(ctx context.Context, featureID int64) (*Feature, error)
	FindByIDAndOwner(ctx context.Context, userID, featureID int64) (*Feature, error)
	ListByOwner(ctx context.Context, userID int64, page pagination.Pagination) ([]Feature, pagination.PageInfo, error)
	ListRecentByOwner(ctx context.Context, userID int64, limit int) ([]Feature, error)
	ListAllByOwner(ctx context.Context, userID int64) ([]Feature, error)
	IncrementImpressions(ctx context.Context, featureID int64) error
	CountCreatedSince(ctx context.Context, userID int64, since time.Time) (int64, error)
}
