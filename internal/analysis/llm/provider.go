package llm

import "context"

// Provider is the reasoner capability: given a prompt, return text or fail.
// Authentication, quota and transport failures are all the same to callers,
// every one of them triggers the fallback path.
type Provider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
