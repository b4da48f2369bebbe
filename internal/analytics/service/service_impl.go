package service

import (
	"context"
	"math"
	"time"

	"github.com/featureblastlabs/featureblast/internal/analytics/domain"
	featuredomain "github.com/featureblastlabs/featureblast/internal/feature/domain"
	impressiondomain "github.com/featureblastlabs/featureblast/internal/impression/domain"
)

type service struct {
	features    featuredomain.Service
	impressions impressiondomain.Repository
}

func New(features featuredomain.Service, impressions impressiondomain.Repository) domain.Service {
	return &service{features: features, impressions: impressions}
}

func (s *service) Report(ctx context.Context, userID int64, days int) (*domain.Report, error) {
	switch days {
	case 7, 30, 90:
	default:
		return nil, domain.ErrInvalidWindow
	}

	features, err := s.features.ListAll(ctx, userID)
	if err != nil {
		return nil, err
	}

	since := time.Now().UTC().AddDate(0, 0, -days)
	counts, err := s.impressions.CountByType(ctx, userID, since)
	if err != nil {
		return nil, err
	}

	views := make(map[int64]int64, len(counts))
	clicks := make(map[int64]int64, len(counts))
	for _, row := range counts {
		switch row.ImpressionType {
		case impressiondomain.TypeView:
			views[row.FeatureID] = row.Count
		case impressiondomain.TypeClick:
			clicks[row.FeatureID] = row.Count
		}
	}

	report := &domain.Report{
		Days:     days,
		Features: make([]domain.FeatureStats, 0, len(features)),
	}
	for _, feature := range features {
		v := views[feature.ID]
		c := clicks[feature.ID]
		report.TotalViews += v
		report.TotalClicks += c
		report.Features = append(report.Features, domain.FeatureStats{
			FeatureID:    feature.ID,
			FeatureTitle: feature.Title,
			Views:        v,
			Clicks:       c,
			CTR:          ctr(c, v),
		})
	}
	report.OverallCTR = ctr(report.TotalClicks, report.TotalViews)

	return report, nil
}

func ctr(clicks, views int64) float64 {
	if views == 0 {
		return 0
	}
	return math.Round(float64(clicks)/float64(views)*100*100) / 100
}
