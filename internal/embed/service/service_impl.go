package service

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"regexp"
	"strconv"
	"strings"

	"github.com/featureblastlabs/featureblast/internal/config"
	"github.com/featureblastlabs/featureblast/internal/embed/domain"
	featuredomain "github.com/featureblastlabs/featureblast/internal/feature/domain"
	settingsdomain "github.com/featureblastlabs/featureblast/internal/settings/domain"
)

const recentFeatureCount = 5

var hexColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

type scriptData struct {
	UID          string
	Color        string
	TrackURL     string
	ShowBranding bool
	FeaturesJSON string
}

type service struct {
	features featuredomain.Service
	settings settingsdomain.Service
	cfg      config.Config
}

func New(features featuredomain.Service, settings settingsdomain.Service, cfg config.Config) domain.Service {
	return &service{features: features, settings: settings, cfg: cfg}
}

func (s *service) Render(ctx context.Context, req domain.RenderRequest) (string, error) {
	if req.UserID == 0 {
		return "", domain.ErrMissingUID
	}

	recent, err := s.features.Recent(ctx, req.UserID, recentFeatureCount)
	if err != nil {
		return "", err
	}

	appearance, err := s.settings.EffectiveAppearance(ctx, req.UserID)
	if err != nil {
		return "", err
	}

	color := appearance.PrimaryColor
	if appearance.Customizable && hexColorRe.MatchString(req.Color) {
		color = req.Color
	}

	widgetFeatures := make([]domain.WidgetFeature, 0, len(recent))
	for _, f := range recent {
		widgetFeatures = append(widgetFeatures, domain.WidgetFeature{
			ID:          strconv.FormatInt(f.ID, 10),
			Title:       html.EscapeString(f.Title),
			Description: html.EscapeString(f.Description),
			FeatureType: html.EscapeString(string(f.FeatureType)),
		})
	}

	featuresJSON, err := json.Marshal(widgetFeatures)
	if err != nil {
		return "", fmt.Errorf("marshal features: %w", err)
	}

	var out strings.Builder
	err = scriptTemplate.Execute(&out, scriptData{
		UID:          strconv.FormatInt(req.UserID, 10),
		Color:        color,
		TrackURL:     s.cfg.PublicBaseURL + "/track",
		ShowBranding: !appearance.HideBranding,
		FeaturesJSON: string(featuresJSON),
	})
	if err != nil {
		return "", fmt.Errorf("render script: %w", err)
	}
	return out.String(), nil
}
