package config

import (
	"errors"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// PlanLimits describes what a subscription tier is allowed to do.
// FeatureQuota is the number of feature creations allowed per trailing
// 30 days; zero means unlimited.
type PlanLimits struct {
	FeatureQuota  int  `mapstructure:"featureQuota"`
	Customization bool `mapstructure:"customization"`
	HideBranding  bool `mapstructure:"hideBranding"`
}

type PlansConfig struct {
	Free    PlanLimits `mapstructure:"free"`
	Starter PlanLimits `mapstructure:"starter"`
	Pro     PlanLimits `mapstructure:"pro"`
}

func DefaultPlansConfig() PlansConfig {
	return PlansConfig{
		Free:    PlanLimits{FeatureQuota: 3, Customization: false, HideBranding: false},
		Starter: PlanLimits{FeatureQuota: 0, Customization: true, HideBranding: true},
		Pro:     PlanLimits{FeatureQuota: 0, Customization: true, HideBranding: true},
	}
}

// PlansConfigHolder serves the current plan limits and hot-reloads them
// when the plans.yml file changes.
type PlansConfigHolder struct {
	current atomic.Value // holds PlansConfig
}

func NewPlansConfigHolder(logger *zap.Logger) (*PlansConfigHolder, error) {
	v := viper.New()

	v.SetConfigName("plans")
	v.SetConfigType("yml")
	v.AddConfigPath("/var/lib/featureblast/config")
	v.AddConfigPath("/etc/featureblast")
	v.AddConfigPath(".")

	v.SetEnvPrefix("FEATUREBLAST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultPlansConfig()
	v.SetDefault("plans.free", defaults.Free)
	v.SetDefault("plans.starter", defaults.Starter)
	v.SetDefault("plans.pro", defaults.Pro)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg PlansConfig
	if err := v.UnmarshalKey("plans", &cfg); err != nil {
		return nil, err
	}
	if err := validatePlansConfig(cfg); err != nil {
		return nil, err
	}

	holder := &PlansConfigHolder{}
	holder.current.Store(cfg)

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		var updated PlansConfig
		if err := v.UnmarshalKey("plans", &updated); err != nil {
			logger.Warn("plans config reload failed", zap.Error(err))
			return
		}
		if err := validatePlansConfig(updated); err != nil {
			logger.Warn("plans config invalid, keeping previous", zap.Error(err))
			return
		}
		holder.current.Store(updated)
		logger.Info("plans config reloaded", zap.String("file", e.Name))
	})

	return holder, nil
}

// NewStaticPlansConfigHolder wraps a fixed config with no file watching.
func NewStaticPlansConfigHolder(cfg PlansConfig) *PlansConfigHolder {
	holder := &PlansConfigHolder{}
	holder.current.Store(cfg)
	return holder
}

func (h *PlansConfigHolder) Get() PlansConfig {
	return h.current.Load().(PlansConfig)
}

// ForPlan maps a plan name to its limits; unknown plans get free limits.
func (c PlansConfig) ForPlan(plan string) PlanLimits {
	switch strings.ToLower(strings.TrimSpace(plan)) {
	case "starter":
		return c.Starter
	case "pro":
		return c.Pro
	default:
		return c.Free
	}
}

func validatePlansConfig(cfg PlansConfig) error {
	if cfg.Free.FeatureQuota < 0 || cfg.Starter.FeatureQuota < 0 || cfg.Pro.FeatureQuota < 0 {
		return errors.New("plans.featureQuota cannot be negative")
	}
	return nil
}
