package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"

	"github.com/featureblastlabs/featureblast/internal/config"
	"github.com/featureblastlabs/featureblast/internal/feature/domain"
	settingsdomain "github.com/featureblastlabs/featureblast/internal/settings/domain"
	"github.com/featureblastlabs/featureblast/pkg/db/pagination"
)

const quotaWindow = 30 * 24 * time.Hour

type service struct {
	repo     domain.Repository
	settings settingsdomain.Service
	plans    *config.PlansConfigHolder
	genID    *snowflake.Node
}

func New(repo domain.Repository, settings settingsdomain.Service, plans *config.PlansConfigHolder, genID *snowflake.Node) domain.Service {
	return &service{repo: repo, settings: settings, plans: plans, genID: genID}
}

func (s *service) Create(ctx context.Context, userID int64, req domain.CreateFeatureRequest) (*domain.Feature, error) {
	title := strings.TrimSpace(req.Title)
	description := strings.TrimSpace(req.Description)
	if err := validateFields(title, description, req.FeatureType); err != nil {
		return nil, err
	}

	if err := s.checkQuota(ctx, userID); err != nil {
		return nil, err
	}

	feature := &domain.Feature{
		ID:          s.genID.Generate().Int64(),
		UserID:      userID,
		Title:       title,
		Description: description,
		FeatureType: req.FeatureType,
	}
	if err := s.repo.Create(ctx, feature); err != nil {
		return nil, err
	}
	return feature, nil
}

func (s *service) Get(ctx context.Context, userID, featureID int64) (*domain.Feature, error) {
	return s.repo.FindByIDAndOwner(ctx, userID, featureID)
}

func (s *service) List(ctx context.Context, userID int64, page pagination.Pagination) (*domain.ListFeaturesResult, error) {
	features, info, err := s.repo.ListByOwner(ctx, userID, page)
	if err != nil {
		return nil, err
	}
	return &domain.ListFeaturesResult{Features: features, PageInfo: info}, nil
}

func (s *service) Lookup(ctx context.Context, featureID int64) (*domain.Feature, error) {
	return s.repo.FindByID(ctx, featureID)
}

func (s *service) Recent(ctx context.Context, userID int64, limit int) ([]domain.Feature, error) {
	if limit <= 0 {
		limit = 5
	}
	return s.repo.ListRecentByOwner(ctx, userID, limit)
}

func (s *service) ListAll(ctx context.Context, userID int64) ([]domain.Feature, error) {
	return s.repo.ListAllByOwner(ctx, userID)
}

func (s *service) IncrementImpressions(ctx context.Context, featureID int64) error {
	return s.repo.IncrementImpressions(ctx, featureID)
}

func (s *service) CountCreatedSince(ctx context.Context, userID int64, since time.Time) (int64, error) {
	return s.repo.CountCreatedSince(ctx, userID, since)
}

func (s *service) checkQuota(ctx context.Context, userID int64) error {
	settings, err := s.settings.Get(ctx, userID)
	if err != nil {
		return err
	}

	limits := s.plans.Get().ForPlan(settings.Plan)
	if limits.FeatureQuota <= 0 {
		return nil
	}

	since := time.Now().UTC().Add(-quotaWindow)
	count, err := s.repo.CountCreatedSince(ctx, userID, since)
	if err != nil {
		return err
	}
	if count >= int64(limits.FeatureQuota) {
		return domain.ErrQuotaExceeded
	}
	return nil
}

func validateFields(title, description string, featureType domain.FeatureType) error {
	if title == "" {
		return domain.ErrTitleRequired
	}
	if len(title) > domain.MaxTitleLength {
		return domain.ErrTitleTooLong
	}
	if description == "" {
		return domain.ErrDescriptionMissing
	}
	if len(description) > domain.MaxDescriptionLength {
		return domain.ErrDescriptionTooLong
	}
	if !featureType.Valid() {
		return domain.ErrInvalidFeatureType
	}
	return nil
}
