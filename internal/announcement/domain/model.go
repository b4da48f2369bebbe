package domain

import (
	"context"
	"errors"

	featuredomain "github.com/featureblastlabs/featureblast/internal/feature/domain"
)

// AnnouncementSet holds the generated copy for every channel. All four
// are produced together; a failure on any channel discards the rest.
type AnnouncementSet struct {
	Twitter   string `json:"twitter"`
	LinkedIn  string `json:"linkedin"`
	Changelog string `json:"changelog"`
	Popup     string `json:"popup"`
}

type GenerateRequest struct {
	Title       string                    `json:"title"`
	Description string                    `json:"description"`
	FeatureType featuredomain.FeatureType `json:"feature_type"`
}

var (
	ErrMissingInput     = errors.New("title, description and feature_type are required")
	ErrGenerationFailed = errors.New("announcement generation failed")
)

type Service interface {
	Generate(ctx context.Context, req GenerateRequest) (*AnnouncementSet, error)
}
