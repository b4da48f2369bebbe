package service

import (
	"context"
	"errors"
	"regexp"
	"time"

	"gorm.io/gorm"

	"github.com/featureblastlabs/featureblast/internal/config"
	"github.com/featureblastlabs/featureblast/internal/settings/domain"
)

var hexColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

type service struct {
	repo  domain.Repository
	plans *config.PlansConfigHolder
}

func New(repo domain.Repository, plans *config.PlansConfigHolder) domain.Service {
	return &service{repo: repo, plans: plans}
}

func (s *service) Get(ctx context.Context, userID int64) (*domain.UserSettings, error) {
	settings, err := s.repo.Find(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.DefaultSettings(userID), nil
		}
		return nil, err
	}
	return settings, nil
}

func (s *service) Update(ctx context.Context, userID int64, req domain.UpdateSettingsRequest) (*domain.UserSettings, error) {
	settings, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.PrimaryColor != nil {
		if !hexColorRe.MatchString(*req.PrimaryColor) {
			return nil, domain.ErrInvalidColor
		}
		settings.PrimaryColor = *req.PrimaryColor
	}
	if req.HideBranding != nil {
		settings.HideBranding = *req.HideBranding
	}
	settings.UpdatedAt = time.Now().UTC()

	if err := s.repo.Upsert(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func (s *service) SetPlan(ctx context.Context, userID int64, plan string) (*domain.UserSettings, error) {
	if !domain.ValidPlan(plan) {
		return nil, domain.ErrInvalidPlan
	}

	settings, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	settings.Plan = plan
	settings.UpdatedAt = time.Now().UTC()

	if err := s.repo.Upsert(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func (s *service) EffectiveAppearance(ctx context.Context, userID int64) (domain.Appearance, error) {
	settings, err := s.Get(ctx, userID)
	if err != nil {
		return domain.Appearance{}, err
	}

	limits := s.plans.Get().ForPlan(settings.Plan)
	appearance := domain.Appearance{
		PrimaryColor: domain.DefaultPrimaryColor,
		HideBranding: false,
		Customizable: limits.Customization,
	}
	if limits.Customization {
		appearance.PrimaryColor = settings.PrimaryColor
	}
	if limits.HideBranding {
		appearance.HideBranding = settings.HideBranding
	}
	return appearance, nil
}
