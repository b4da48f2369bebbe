package ratelimit

import (
	"context"
	"errors"
	"strings"

	redis "github.com/redis/go-redis/v9"

	"github.com/featureblastlabs/featureblast/internal/config"
)

const keyTrackIP = "track:ip:"

// TrackLimiter throttles the public tracking endpoint per client IP.
// A nil limiter is valid and allows everything.
type TrackLimiter struct {
	enabled bool
	bucket  *TokenBucket
	rate    float64
	burst   int
}

func NewTrackLimiter(cfg config.Config) (*TrackLimiter, error) {
	limitCfg := cfg.TrackRateLimit
	if !limitCfg.Enabled || strings.TrimSpace(cfg.RedisAddr) == "" {
		return nil, nil
	}
	if limitCfg.Rate <= 0 || limitCfg.Burst <= 0 {
		return nil, errors.New("track rate limit must be positive")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     strings.TrimSpace(cfg.RedisAddr),
		Password: strings.TrimSpace(cfg.RedisPassword),
		DB:       cfg.RedisDB,
	})

	return &TrackLimiter{
		enabled: true,
		bucket:  NewTokenBucket(client),
		rate:    limitCfg.Rate,
		burst:   limitCfg.Burst,
	}, nil
}

func (l *TrackLimiter) Enabled() bool {
	return l != nil && l.enabled
}

func (l *TrackLimiter) Allow(ctx context.Context, clientIP string) (bool, error) {
	if !l.Enabled() {
		return true, nil
	}
	return l.bucket.Allow(ctx, keyTrackIP+strings.TrimSpace(clientIP), l.rate, l.burst)
}
