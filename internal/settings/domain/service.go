package domain

import "context"

type UpdateSettingsRequest struct {
	PrimaryColor *string `json:"primary_color"`
	HideBranding *bool   `json:"hide_branding"`
}

type Service interface {
	// Get returns the stored settings, or defaults when the user has
	// never saved any.
	Get(ctx context.Context, userID int64) (*UserSettings, error)
	Update(ctx context.Context, userID int64, req UpdateSettingsRequest) (*UserSettings, error)
	SetPlan(ctx context.Context, userID int64, plan string) (*UserSettings, error)

	// EffectiveAppearance applies plan gating: free plan users get the
	// default color and always show the branding badge.
	EffectiveAppearance(ctx context.Context, userID int64) (Appearance, error)
}

type Repository interface {
	Find(ctx context.Context, userID int64) (*UserSettings, error)
	Upsert(ctx context.Context, settings *UserSettings) error
}
