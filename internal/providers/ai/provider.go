package ai

import "context"

// Provider is a chat completion backend.
type Provider interface {
	// Complete sends one system+user prompt pair and returns the
	// assistant's reply as plain text.
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
