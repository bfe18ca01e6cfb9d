package analysis_test

import (
	"context"
)

// MockReasoner implements llm.Provider
type MockReasoner struct {
	// Control field to simulate different behaviors
	OnGenerate func(ctx context.Context, prompt string) (string, error)
}

func (m *MockReasoner) Generate(ctx context.Context, prompt string) (string, error) {
	if m.OnGenerate != nil {
		return m.OnGenerate(ctx, prompt)
	}
	return "mocked reasoner response", nil
}
