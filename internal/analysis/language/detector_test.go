package language

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubReasoner struct {
	OnGenerate func(ctx context.Context, prompt string) (string, error)
}

func (s *stubReasoner) Generate(ctx context.Context, prompt string) (string, error) {
	return s.OnGenerate(ctx, prompt)
}

func TestDetectUsesReasonerCode(t *testing.T) {
	d := NewDetector(&stubReasoner{
		OnGenerate: func(ctx context.Context, prompt string) (string, error) {
			return " 'es' ", nil
		},
	})

	assert.Equal(t, "es", d.Detect(context.Background(), "Este contrato es confidencial."))
}

func TestDetectFallsBackOnUnsupportedCode(t *testing.T) {
	d := NewDetector(&stubReasoner{
		OnGenerate: func(ctx context.Context, prompt string) (string, error) {
			return "Spanish", nil
		},
	})

	got := d.Detect(context.Background(), "Este acuerdo de confidencialidad se celebra entre las partes y establece las obligaciones de cada una.")
	assert.Equal(t, "es", got)
}

func TestDetectFallsBackOnReasonerError(t *testing.T) {
	d := NewDetector(&stubReasoner{
		OnGenerate: func(ctx context.Context, prompt string) (string, error) {
			return "", errors.New("quota exceeded")
		},
	})

	got := d.Detect(context.Background(), "This agreement shall be governed by the laws of the state and remains in effect until terminated.")
	assert.Equal(t, "en", got)
}

func TestDetectWithoutReasoner(t *testing.T) {
	d := NewDetector(nil)

	got := d.Detect(context.Background(), "Le présent contrat est conclu entre les parties et demeure confidentiel pendant toute sa durée.")
	assert.Equal(t, "fr", got)
}

func TestDetectEmptyTextDefaultsToEnglish(t *testing.T) {
	d := NewDetector(nil)
	assert.Equal(t, "en", d.Detect(context.Background(), "   "))
}

func TestNameDefaultsToEnglish(t *testing.T) {
	assert.Equal(t, "German", Name("de"))
	assert.Equal(t, "English", Name("xx"))
}
