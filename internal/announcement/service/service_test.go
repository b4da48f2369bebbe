package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"go.uber.org/zap"

	"github.com/featureblastlabs/featureblast/internal/announcement/domain"
	featuredomain "github.com/featureblastlabs/featureblast/internal/feature/domain"
)

type fakeProvider struct {
	mu    sync.Mutex
	calls []string

	reply func(systemPrompt, userPrompt string) (string, error)
}

func (f *fakeProvider) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, systemPrompt)
	f.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return "", err
	}
	return f.reply(systemPrompt, userPrompt)
}

func validReq() domain.GenerateRequest {
	return domain.GenerateRequest{
		Title:       "Dark mode",
		Description: "Switch the dashboard to a dark theme.",
		FeatureType: featuredomain.TypeNew,
	}
}

func TestGenerateAllChannels(t *testing.T) {
	provider := &fakeProvider{
		reply: func(systemPrompt, userPrompt string) (string, error) {
			switch {
			case strings.Contains(systemPrompt, "social media"):
				return "tweet copy", nil
			case strings.Contains(systemPrompt, "LinkedIn"):
				return "linkedin copy", nil
			case strings.Contains(systemPrompt, "changelog"):
				return "changelog copy", nil
			default:
				return "popup copy", nil
			}
		},
	}
	svc := New(provider, zap.NewNop())

	set, err := svc.Generate(context.Background(), validReq())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if set.Twitter != "tweet copy" || set.LinkedIn != "linkedin copy" ||
		set.Changelog != "changelog copy" || set.Popup != "popup copy" {
		t.Errorf("unexpected set: %+v", set)
	}
	if len(provider.calls) != 4 {
		t.Errorf("provider calls = %d, want 4", len(provider.calls))
	}
}

func TestGeneratePromptsCarryFeatureContext(t *testing.T) {
	var userPrompts []string
	var mu sync.Mutex
	provider := &fakeProvider{
		reply: func(systemPrompt, userPrompt string) (string, error) {
			mu.Lock()
			userPrompts = append(userPrompts, userPrompt)
			mu.Unlock()
			return "ok", nil
		},
	}
	svc := New(provider, zap.NewNop())

	if _, err := svc.Generate(context.Background(), validReq()); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for _, prompt := range userPrompts {
		if !strings.Contains(prompt, `"Dark mode"`) {
			t.Errorf("prompt missing title: %q", prompt)
		}
		if !strings.Contains(prompt, "new") {
			t.Errorf("prompt missing feature type: %q", prompt)
		}
	}
}

func TestGenerateNoPartialResults(t *testing.T) {
	provider := &fakeProvider{
		reply: func(systemPrompt, userPrompt string) (string, error) {
			if strings.Contains(systemPrompt, "changelog") {
				return "", errors.New("upstream down")
			}
			return "ok", nil
		},
	}
	svc := New(provider, zap.NewNop())

	set, err := svc.Generate(context.Background(), validReq())
	if !errors.Is(err, domain.ErrGenerationFailed) {
		t.Fatalf("want ErrGenerationFailed, got %v", err)
	}
	if set != nil {
		t.Errorf("partial result returned: %+v", set)
	}
}

func TestGenerateValidatesInput(t *testing.T) {
	svc := New(&fakeProvider{reply: func(string, string) (string, error) { return "ok", nil }}, zap.NewNop())
	ctx := context.Background()

	cases := []domain.GenerateRequest{
		{Description: "d", FeatureType: featuredomain.TypeNew},
		{Title: "t", FeatureType: featuredomain.TypeNew},
		{Title: "t", Description: "d", FeatureType: "beta"},
	}
	for i, req := range cases {
		if _, err := svc.Generate(ctx, req); err != domain.ErrMissingInput {
			t.Errorf("case %d: want ErrMissingInput, got %v", i, err)
		}
	}
}
