package domain

import "time"

const (
	PlanFree    = "free"
	PlanStarter = "starter"
	PlanPro     = "pro"

	DefaultPrimaryColor = "#3b82f6"
)

func ValidPlan(plan string) bool {
	switch plan {
	case PlanFree, PlanStarter, PlanPro:
		return true
	}
	return false
}

// UserSettings stores widget customization and the subscription plan.
// Customization is persisted regardless of plan; whether it takes
// effect is decided when the widget is rendered.
type UserSettings struct {
	UserID       int64  `gorm:"primaryKey" json:"user_id,string"`
	PrimaryColor string `gorm:"size:16;default:'#3b82f6'" json:"primary_color"`
	HideBranding bool   `gorm:"default:false" json:"hide_branding"`
	Plan         string `gorm:"size:16;default:'free'" json:"plan"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (UserSettings) TableName() string { return "user_settings" }

func DefaultSettings(userID int64) *UserSettings {
	return &UserSettings{
		UserID:       userID,
		PrimaryColor: DefaultPrimaryColor,
		HideBranding: false,
		Plan:         PlanFree,
	}
}

// Appearance is what the embed widget actually renders after plan
// gating is applied. Customizable reports whether the plan allows
// overriding the defaults at all.
type Appearance struct {
	PrimaryColor string
	HideBranding bool
	Customizable bool
}
