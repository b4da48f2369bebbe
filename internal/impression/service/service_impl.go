package service

import (
	"context"
	"crypto/rand"
	"errors"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	featuredomain "github.com/featureblastlabs/featureblast/internal/feature/domain"
	"github.com/featureblastlabs/featureblast/internal/impression/domain"
)

type service struct {
	repo     domain.Repository
	features featuredomain.Service
	log      *zap.Logger
}

func New(repo domain.Repository, features featuredomain.Service, log *zap.Logger) domain.Service {
	return &service{repo: repo, features: features, log: log}
}

func (s *service) Track(ctx context.Context, req domain.TrackRequest) error {
	if req.FeatureID == 0 || req.UID == 0 || req.Type == "" {
		return domain.ErrMissingFields
	}
	if !req.Type.Valid() {
		return domain.ErrInvalidType
	}

	feature, err := s.features.Lookup(ctx, req.FeatureID)
	if err != nil {
		if errors.Is(err, featuredomain.ErrFeatureNotFound) {
			return domain.ErrFeatureUnauthorized
		}
		return err
	}
	if feature.UserID != req.UID {
		return domain.ErrFeatureUnauthorized
	}

	impression := &domain.Impression{
		ID:             ulid.MustNew(ulid.Timestamp(time.Now().UTC()), rand.Reader).String(),
		FeatureID:      req.FeatureID,
		UserID:         req.UID,
		ImpressionType: req.Type,
	}
	if err := s.repo.Insert(ctx, impression); err != nil {
		s.log.Error("impression insert failed",
			zap.Int64("feature_id", req.FeatureID),
			zap.Error(err))
		return domain.ErrTrackingFailed
	}

	// The counter bump rides outside the request path. A lost increment
	// only skews the denormalized counter; the event row is the source
	// of truth.
	if req.Type == domain.TypeView {
		go func() {
			bg, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := s.features.IncrementImpressions(bg, req.FeatureID); err != nil {
				s.log.Warn("view counter increment failed",
					zap.Int64("feature_id", req.FeatureID),
					zap.Error(err))
			}
		}()
	}

	return nil
}
