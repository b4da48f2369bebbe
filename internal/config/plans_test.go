package config

import (
	"testing"

	"go.uber.org/zap"
)

func TestPlansHolderDefaultsWithoutFile(t *testing.T) {
	holder, err := NewPlansConfigHolder(zap.NewNop())
	if err != nil {
		t.Fatalf("NewPlansConfigHolder: %v", err)
	}

	cfg := holder.Get()
	if cfg.Free.FeatureQuota != 3 || cfg.Free.Customization {
		t.Errorf("free plan = %+v", cfg.Free)
	}
	if cfg.Pro.FeatureQuota != 0 || !cfg.Pro.HideBranding {
		t.Errorf("pro plan = %+v", cfg.Pro)
	}
}

func TestForPlanMapping(t *testing.T) {
	cfg := DefaultPlansConfig()

	if got := cfg.ForPlan("  PRO "); got != cfg.Pro {
		t.Errorf("ForPlan(PRO) = %+v", got)
	}
	if got := cfg.ForPlan("starter"); got != cfg.Starter {
		t.Errorf("ForPlan(starter) = %+v", got)
	}
	// Unknown plans fall back to free limits.
	if got := cfg.ForPlan("enterprise"); got != cfg.Free {
		t.Errorf("ForPlan(enterprise) = %+v", got)
	}
}

func TestValidateRejectsNegativeQuota(t *testing.T) {
	cfg := DefaultPlansConfig()
	cfg.Starter.FeatureQuota = -1
	if err := validatePlansConfig(cfg); err == nil {
		t.Fatal("negative quota accepted")
	}
}
