package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/featureblastlabs/featureblast/internal/feature/domain"
	"github.com/featureblastlabs/featureblast/pkg/db/pagination"
)

type repository struct {
	db *gorm.DB
}

func New(db *gorm.DB) domain.Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, feature *domain.Feature) error {
	return r.db.WithContext(ctx).Create(feature).Error
}

func (r *repository) FindByID(ctx context.Context, featureID int64) (*domain.Feature, error) {
	var feature domain.Feature
	err := r.db.WithContext(ctx).Where("id = ?", featureID).First(&feature).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFeatureNotFound
		}
		return nil, err
	}
	return &feature, nil
}

func (r *repository) FindByIDAndOwner(ctx context.Context, userID, featureID int64) (*domain.Feature, error) {
	var feature domain.Feature
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", featureID, userID).
		First(&feature).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFeatureNotFound
		}
		return nil, err
	}
	return &feature, nil
}

func (r *repository) ListByOwner(ctx context.Context, userID int64, page pagination.Pagination) ([]domain.Feature, pagination.PageInfo, error) {
	limit := page.PageSize
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	q := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id DESC").
		Limit(limit + 1)

	if page.PageToken != "" {
		cursor, err := pagination.DecodeCursor(page.PageToken)
		if err != nil {
			return nil, pagination.PageInfo{}, domain.ErrInvalidPageToken
		}
		lastID, err := strconv.ParseInt(cursor.ID, 10, 64)
		if err != nil {
			return nil, pagination.PageInfo{}, domain.ErrInvalidPageToken
		}
		q = q.Where("id < ?", lastID)
	}

	var features []domain.Feature
	if err := q.Find(&features).Error; err != nil {
		return nil, pagination.PageInfo{}, err
	}

	features, info := pagination.BuildCursorPageInfo(features, limit, func(f domain.Feature) string {
		token, _ := pagination.EncodeCursor(pagination.Cursor{ID: strconv.FormatInt(f.ID, 10)})
		return token
	})
	return features, *info, nil
}

func (r *repository) ListRecentByOwner(ctx context.Context, userID int64, limit int) ([]domain.Feature, error) {
	var features []domain.Feature
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&features).Error
	return features, err
}

func (r *repository) ListAllByOwner(ctx context.Context, userID int64) ([]domain.Feature, error) {
	var features []domain.Feature
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&features).Error
	return features, err
}

func (r *repository) IncrementImpressions(ctx context.Context, featureID int64) error {
	return r.db.WithContext(ctx).
		Model(&domain.Feature{}).
		Where("id = ?", featureID).
		UpdateColumn("impressions", gorm.Expr("impressions + 1")).Error
}

func (r *repository) CountCreatedSince(ctx context.Context, userID int64, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Feature{}).
		Where("user_id = ? AND created_at >= ?", userID, since).
		Count(&count).Error
	return count, err
}
