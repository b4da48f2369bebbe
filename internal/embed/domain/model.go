package domain

import (
	"context"
	"errors"
)

var ErrMissingUID = errors.New("missing user ID")

// WidgetFeature is one feature as embedded in the emitted script. Text
// fields are already HTML-entity escaped; the script inserts them into
// markup without further processing.
type WidgetFeature struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	FeatureType string `json:"feature_type"`
}

type RenderRequest struct {
	UserID int64
	// Color is the optional ?color= override from the script tag. It
	// only takes effect on plans that allow customization.
	Color string
}

type Service interface {
	Render(ctx context.Context, req RenderRequest) (string, error)
}
