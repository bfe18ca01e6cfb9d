package language

import (
	"context"
	"fmt"
	"strings"

	"github.com/pemistahl/lingua-go"
	"github.com/tkonduri/LegalAPI/internal/analysis/llm"
	"github.com/tkonduri/LegalAPI/internal/config"
	"github.com/tkonduri/LegalAPI/pkg/logger_i"
)

var logger = logger_i.NewLogger("LanguageDetector")

// statDetector is built once for the supported set. Norwegian is modelled as
// its two written standards, both normalize back to "no".
var statDetector = lingua.NewLanguageDetectorBuilder().FromLanguages(
	lingua.English,
	lingua.Spanish,
	lingua.French,
	lingua.German,
	lingua.Italian,
	lingua.Portuguese,
	lingua.Russian,
	lingua.Chinese,
	lingua.Japanese,
	lingua.Korean,
	lingua.Arabic,
	lingua.Hindi,
	lingua.Dutch,
	lingua.Swedish,
	lingua.Bokmal,
	lingua.Nynorsk,
	lingua.Danish,
	lingua.Finnish,
	lingua.Polish,
	lingua.Turkish,
	lingua.Hebrew,
).Build()

// Detector resolves the language of a document body. Reasoner may be nil, in
// which case only the statistical path runs.
type Detector struct {
	Reasoner llm.Provider
}

func NewDetector(reasoner llm.Provider) *Detector {
	return &Detector{Reasoner: reasoner}
}

// Detect returns a supported ISO 639-1 code, never an error: an unreadable
// sample degrades to the default language.
func (d *Detector) Detect(ctx context.Context, text string) string {
	if d.Reasoner != nil {
		if code, ok := d.detectWithReasoner(ctx, text); ok {
			return code
		}
	}
	if code, ok := detectStatistically(text); ok {
		return code
	}
	return config.DefaultLanguage
}

func (d *Detector) detectWithReasoner(ctx context.Context, text string) (string, bool) {
	log := logger.With("traceId", ctx.Value(config.TRACE_ID_KEY))

	prompt := fmt.Sprintf(
		"Detect the language of this text and respond with only the two-letter ISO 639-1 language code (e.g., 'en', 'es', 'fr'):\n\n%s",
		clipRunes(text, config.DetectPromptChars),
	)

	raw, err := d.Reasoner.Generate(ctx, prompt)
	if err != nil {
		log.Warn("Reasoner language detection failed, falling back", "error", err)
		return "", false
	}

	code := strings.ToLower(strings.Trim(strings.TrimSpace(raw), "'\"`."))
	if !IsSupported(code) {
		log.Warn("Reasoner returned unsupported language code", "code", code)
		return "", false
	}
	return code, true
}

func detectStatistically(text string) (string, bool) {
	sample := strings.TrimSpace(clipRunes(text, config.DetectSampleChars))
	if sample == "" {
		return "", false
	}

	lang, ok := statDetector.DetectLanguageOf(sample)
	if !ok {
		return "", false
	}

	code := strings.ToLower(lang.IsoCode639_1().String())
	// Bokmal / Nynorsk collapse to plain Norwegian.
	if code == "nb" || code == "nn" {
		code = "no"
	}
	if !IsSupported(code) {
		return "", false
	}
	return code, true
}

func clipRunes(s string, limit int) string {
	if utf8Len := len([]rune(s)); utf8Len <= limit {
		return s
	}
	return string([]rune(s)[:limit])
}
