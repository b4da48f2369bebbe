package service

import (
	"context"
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/featureblastlabs/featureblast/internal/config"
	"github.com/featureblastlabs/featureblast/internal/settings/domain"
	"github.com/featureblastlabs/featureblast/internal/settings/repository"
)

func newTestService(t *testing.T) domain.Service {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_loc=auto", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&domain.UserSettings{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	holder := config.NewStaticPlansConfigHolder(config.DefaultPlansConfig())
	return New(repository.New(db), holder)
}

func TestGetDefaultsWhenUnsaved(t *testing.T) {
	svc := newTestService(t)

	settings, err := svc.Get(context.Background(), 42)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if settings.PrimaryColor != domain.DefaultPrimaryColor {
		t.Errorf("primary color = %q, want %q", settings.PrimaryColor, domain.DefaultPrimaryColor)
	}
	if settings.Plan != domain.PlanFree {
		t.Errorf("plan = %q, want free", settings.Plan)
	}
	if settings.HideBranding {
		t.Error("hide_branding should default to false")
	}
}

func TestUpdateValidatesColor(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	bad := "not-a-color"
	if _, err := svc.Update(ctx, 42, domain.UpdateSettingsRequest{PrimaryColor: &bad}); err != domain.ErrInvalidColor {
		t.Fatalf("want ErrInvalidColor, got %v", err)
	}

	good := "#ff5733"
	settings, err := svc.Update(ctx, 42, domain.UpdateSettingsRequest{PrimaryColor: &good})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if settings.PrimaryColor != good {
		t.Errorf("primary color = %q, want %q", settings.PrimaryColor, good)
	}
}

func TestEffectiveAppearancePlanGating(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	color := "#ff5733"
	hide := true
	if _, err := svc.Update(ctx, 42, domain.UpdateSettingsRequest{PrimaryColor: &color, HideBranding: &hide}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	// Free plan: stored customization is ignored.
	appearance, err := svc.EffectiveAppearance(ctx, 42)
	if err != nil {
		t.Fatalf("EffectiveAppearance: %v", err)
	}
	if appearance.PrimaryColor != domain.DefaultPrimaryColor {
		t.Errorf("free plan color = %q, want default", appearance.PrimaryColor)
	}
	if appearance.HideBranding {
		t.Error("free plan must show branding")
	}

	if _, err := svc.SetPlan(ctx, 42, domain.PlanPro); err != nil {
		t.Fatalf("SetPlan: %v", err)
	}
	appearance, err = svc.EffectiveAppearance(ctx, 42)
	if err != nil {
		t.Fatalf("EffectiveAppearance: %v", err)
	}
	if appearance.PrimaryColor != color {
		t.Errorf("pro plan color = %q, want %q", appearance.PrimaryColor, color)
	}
	if !appearance.HideBranding {
		t.Error("pro plan should honor hide_branding")
	}
}

func TestSetPlanRejectsUnknown(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.SetPlan(context.Background(), 42, "enterprise"); err != domain.ErrInvalidPlan {
		t.Fatalf("want ErrInvalidPlan, got %v", err)
	}
}
