package domain

import (
	"context"
	"errors"
)

var ErrInvalidWindow = errors.New("days must be 7, 30 or 90")

// FeatureStats is one feature's engagement over the selected window.
// CTR is clicks/views as a percentage, rounded to two decimals, zero
// when there are no views.
type FeatureStats struct {
	FeatureID    int64   `json:"feature_id,string"`
	FeatureTitle string  `json:"feature_title"`
	Views        int64   `json:"views"`
	Clicks       int64   `json:"clicks"`
	CTR          float64 `json:"ctr"`
}

type Report struct {
	Days        int            `json:"days"`
	TotalViews  int64          `json:"total_views"`
	TotalClicks int64          `json:"total_clicks"`
	OverallCTR  float64        `json:"overall_ctr"`
	Features    []FeatureStats `json:"features"`
}

type Service interface {
	Report(ctx context.Context, userID int64, days int) (*Report, error)
}
