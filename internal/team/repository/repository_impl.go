package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/featureblastlabs/featureblast/internal/team/domain"
	"github.com/featureblastlabs/featureblast/pkg/db"
)

type repository struct {
	db *gorm.DB
}

func New(gdb *gorm.DB) domain.Repository {
	return &repository{db: gdb}
}

func (r *repository) Create(ctx context.Context, member *domain.TeamMember) error {
	if err := r.db.WithContext(ctx).Create(member).Error; err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.ErrAlreadyInvited
		}
		return err
	}
	return nil
}

func (r *repository) ListByOwner(ctx context.Context, userID int64) ([]domain.TeamMember, error) {
	var members []domain.TeamMember
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&members).Error
	return members, err
}

func (r *repository) Delete(ctx context.Context, userID, memberID int64) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", memberID, userID).
		Delete(&domain.TeamMember{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrMemberNotFound
	}
	return nil
}
