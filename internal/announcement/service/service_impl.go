package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/featureblastlabs/featureblast/internal/announcement/domain"
	"github.com/featureblastlabs/featureblast/internal/providers/ai"
)

type channelPrompt struct {
	system string
	user   string
	assign func(*domain.AnnouncementSet, string)
}

type service struct {
	provider ai.Provider
	log      *zap.Logger
}

func New(provider ai.Provider, log *zap.Logger) domain.Service {
	return &service{provider: provider, log: log}
}

func (s *service) Generate(ctx context.Context, req domain.GenerateRequest) (*domain.AnnouncementSet, error) {
	title := strings.TrimSpace(req.Title)
	description := strings.TrimSpace(req.Description)
	if title == "" || description == "" || !req.FeatureType.Valid() {
		return nil, domain.ErrMissingInput
	}

	prompts := []channelPrompt{
		{
			system: "You are a social media expert who creates engaging, concise announcements.",
			user: fmt.Sprintf(`Create a short, engaging tweet to announce this %s: "%s". Description: %s. Make it punchy, use relevant emojis, and keep it under 280 characters.`,
				req.FeatureType, title, description),
			assign: func(set *domain.AnnouncementSet, text string) { set.Twitter = text },
		},
		{
			system: "You are a professional content writer who creates engaging LinkedIn posts.",
			user: fmt.Sprintf(`Create a professional LinkedIn post to announce this %s: "%s". Description: %s. Make it story-driven, engaging, and around 150-200 words. Include relevant emojis.`,
				req.FeatureType, title, description),
			assign: func(set *domain.AnnouncementSet, text string) { set.LinkedIn = text },
		},
		{
			system: "You are a technical writer who creates clear changelog entries.",
			user: fmt.Sprintf(`Create a clear, structured changelog entry for this %s: "%s". Description: %s. Format it professionally with bullet points if needed.`,
				req.FeatureType, title, description),
			assign: func(set *domain.AnnouncementSet, text string) { set.Changelog = text },
		},
		{
			system: "You are a UX copywriter who creates concise, exciting in-app notifications.",
			user: fmt.Sprintf(`Create a brief, exciting in-app popup message for this %s: "%s". Description: %s. Keep it under 100 characters, make it exciting and clear.`,
				req.FeatureType, title, description),
			assign: func(set *domain.AnnouncementSet, text string) { set.Popup = text },
		},
	}

	// All channels run in parallel and the first failure cancels the
	// rest. No partial result is ever returned.
	set := &domain.AnnouncementSet{}
	g, gctx := errgroup.WithContext(ctx)
	for _, prompt := range prompts {
		g.Go(func() error {
			text, err := s.provider.Complete(gctx, prompt.system, prompt.user)
			if err != nil {
				return err
			}
			prompt.assign(set, text)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.log.Error("announcement generation failed",
			zap.String("title", title),
			zap.Error(err))
		if err == ai.ErrRateLimited {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}

	s.log.Info("generated announcements", zap.String("title", title))
	return set, nil
}
