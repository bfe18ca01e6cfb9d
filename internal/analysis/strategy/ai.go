package strategy

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/tkonduri/LegalAPI/internal/analysis/language"
	"github.com/tkonduri/LegalAPI/internal/analysis/llm"
	"github.com/tkonduri/LegalAPI/internal/analysis/patterns"
	"github.com/tkonduri/LegalAPI/internal/config"
	"github.com/tkonduri/LegalAPI/internal/domain/docModel"
	"github.com/tkonduri/LegalAPI/pkg/logger_i"
)

var logger = logger_i.NewLogger("AnalysisStrategy")

// AIAnalysis delegates the full analysis to the reasoner. Any capability
// failure produces the FallbackAnalysis result for the same text; there is no
// retry and no path back to the AI within one call.
type AIAnalysis struct {
	Reasoner llm.Provider
	fallback FallbackAnalysis
}

func NewAIAnalysis(reasoner llm.Provider) *AIAnalysis {
	return &AIAnalysis{Reasoner: reasoner}
}

// Analyze returns the record plus whether the reasoner answered. An
// unparseable answer still counts as answered: the capability is up, only the
// shape was off, so entity extraction may still use it.
func (a *AIAnalysis) Analyze(ctx context.Context, text string, targetLang string) (docModel.AnalysisRecord, bool) {
	log := logger.With("traceId", ctx.Value(config.TRACE_ID_KEY))

	raw, err := a.Reasoner.Generate(ctx, analysisPrompt(text, language.Name(targetLang)))
	if err != nil {
		log.Warn("AI analysis failed, using fallback", "error", err)
		record, _ := a.fallback.Analyze(ctx, text, targetLang)
		return record, false
	}

	record, err := parseRecord(raw)
	if err != nil {
		log.Warn("AI response was not valid JSON, degrading to summary-only record", "error", err)
		return summaryOnlyRecord(raw), true
	}
	return record, true
}

// ExtractEntities runs the AI entity prompt. A capability failure falls back
// to pattern extraction; a malformed answer yields an empty bundle.
func (a *AIAnalysis) ExtractEntities(ctx context.Context, text string, targetLang string) docModel.EntityBundle {
	log := logger.With("traceId", ctx.Value(config.TRACE_ID_KEY))

	raw, err := a.Reasoner.Generate(ctx, entityPrompt(text, language.Name(targetLang)))
	if err != nil {
		log.Warn("AI entity extraction failed, using patterns", "error", err)
		return patterns.ExtractEntities(text)
	}

	var parsed map[string][]string
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &parsed); err != nil {
		log.Warn("AI entity response was not valid JSON", "error", err)
		return docModel.NewEntityBundle()
	}

	bundle := docModel.NewEntityBundle()
	for _, t := range docModel.EntityTypes {
		seen := make(map[string]struct{})
		for _, v := range parsed[string(t)] {
			v = strings.TrimSpace(v)
			if v == "" {
				continue
			}
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}
			bundle[t] = append(bundle[t], v)
		}
	}
	return bundle
}

// Translate renders the text in the target language. On failure the original
// text is returned unchanged.
func (a *AIAnalysis) Translate(ctx context.Context, text string, sourceLang string, targetLang string) string {
	log := logger.With("traceId", ctx.Value(config.TRACE_ID_KEY))

	translated, err := a.Reasoner.Generate(ctx, translatePrompt(text, language.Name(sourceLang), language.Name(targetLang)))
	if err != nil {
		log.Warn("Translation failed, keeping original text", "error", err)
		return text
	}
	return translated
}

// parseRecord tolerates markdown code fences around the JSON body and
// normalizes the result so every slice and clause category is present.
func parseRecord(raw string) (docModel.AnalysisRecord, error) {
	var record docModel.AnalysisRecord
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &record); err != nil {
		return docModel.AnalysisRecord{}, err
	}

	if record.DocumentType == "" {
		record.DocumentType = "Legal Document"
	}
	record.Parties = dedupSlice(record.Parties)
	record.Dates = dedupSlice(record.Dates)
	record.FinancialTerms = dedupSlice(record.FinancialTerms)
	record.Risks = dedupSlice(record.Risks)
	record.Obligations = dedupSlice(record.Obligations)
	if record.Jurisdiction == "" {
		record.Jurisdiction = "Not specified"
	}

	clauses := docModel.EmptyClauses()
	for c, snippets := range record.Clauses {
		if _, ok := clauses[c]; ok {
			clauses[c] = dedupSlice(snippets)
		}
	}
	record.Clauses = clauses
	return record, nil
}

func summaryOnlyRecord(raw string) docModel.AnalysisRecord {
	summary := raw
	if runes := []rune(raw); len(runes) > config.SummaryTruncateLimit {
		summary = string(runes[:config.SummaryTruncateLimit]) + "..."
	}
	return docModel.AnalysisRecord{
		DocumentType:   "Legal Document",
		Parties:        []string{},
		Dates:          []string{},
		FinancialTerms: []string{},
		Clauses:        docModel.EmptyClauses(),
		Risks:          []string{},
		Obligations:    []string{},
		Jurisdiction:   "Not specified",
		Summary:        summary,
	}
}

func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// dedupSlice drops repeated strings, first occurrence wins. Always returns a
// non-nil slice so marshalled records carry [] instead of null.
func dedupSlice(s []string) []string {
	out := make([]string, 0, len(s))
	seen := make(map[string]struct{}, len(s))
	for _, v := range s {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
