package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/featureblastlabs/featureblast/internal/config"
)

func newTestProvider(url string) *OpenAIProvider {
	return NewOpenAIProvider(config.AIConfig{
		APIKey:  "test-key",
		BaseURL: url,
		Model:   "google/gemini-2.5-flash",
		Timeout: 5 * time.Second,
	})
}

func TestCompleteSendsChatRequest(t *testing.T) {
	var gotAuth, gotPath string
	var gotBody chatRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"  Big news! \n"}}]}`))
	}))
	defer srv.Close()

	got, err := newTestProvider(srv.URL).Complete(context.Background(), "You write tweets.", "Announce dark mode.")
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if got != "Big news!" {
		t.Errorf("content = %q", got)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("authorization = %q", gotAuth)
	}
	if gotPath != "/chat/completions" {
		t.Errorf("path = %q", gotPath)
	}
	if gotBody.Model != "google/gemini-2.5-flash" {
		t.Errorf("model = %q", gotBody.Model)
	}
	if len(gotBody.Messages) != 2 || gotBody.Messages[0].Role != "system" || gotBody.Messages[1].Role != "user" {
		t.Errorf("messages = %+v", gotBody.Messages)
	}
}

func TestCompleteRateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	if _, err := newTestProvider(srv.URL).Complete(context.Background(), "", "hi"); err != ErrRateLimited {
		t.Fatalf("want ErrRateLimited, got %v", err)
	}
}

func TestCompleteUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream exploded"))
	}))
	defer srv.Close()

	if _, err := newTestProvider(srv.URL).Complete(context.Background(), "", "hi"); err == nil {
		t.Fatal("want error on 502")
	}
}

func TestCompleteEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	if _, err := newTestProvider(srv.URL).Complete(context.Background(), "", "hi"); err == nil {
		t.Fatal("want error on empty choices")
	}
}

func TestCompleteMissingKey(t *testing.T) {
	p := NewOpenAIProvider(config.AIConfig{BaseURL: "http://localhost:1", Model: "m", Timeout: time.Second})
	if _, err := p.Complete(context.Background(), "", "hi"); err == nil {
		t.Fatal("want error without api key")
	}
}
