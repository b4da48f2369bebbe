package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/featureblastlabs/featureblast/internal/impression/domain"
)

type repository struct {
	db *gorm.DB
}

func New(db *gorm.DB) domain.Repository {
	return &repository{db: db}
}

func (r *repository) Insert(ctx context.Context, impression *domain.Impression) error {
	return r.db.WithContext(ctx).Create(impression).Error
}

func (r *repository) CountByType(ctx context.Context, userID int64, since time.Time) ([]domain.TypeCount, error) {
	var rows []domain.TypeCount
	err := r.db.WithContext(ctx).
		Model(&domain.Impression{}).
		Select("feature_id, impression_type, COUNT(*) AS count").
		Where("user_id = ? AND created_at >= ?", userID, since).
		Group("feature_id, impression_type").
		Scan(&rows).Error
	return rows, err
}
