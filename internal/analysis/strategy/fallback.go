package strategy

import (
	"context"
	"fmt"
	"strings"

	"github.com/tkonduri/LegalAPI/internal/analysis/patterns"
	"github.com/tkonduri/LegalAPI/internal/domain/docModel"
)

// FallbackAnalysis is the deterministic, regex-only strategy. It never fails:
// any input, the empty string included, yields a well-formed record with all
// five clause categories present.
type FallbackAnalysis struct{}

func (FallbackAnalysis) Analyze(ctx context.Context, text string, targetLang string) (docModel.AnalysisRecord, bool) {
	entities := patterns.ExtractEntities(text)

	// A name matching both the person and organization tables still appears
	// only once in the combined party list.
	parties := dedupSlice(append(append(
		make([]string, 0, len(entities[docModel.Persons])+len(entities[docModel.Organizations])),
		entities[docModel.Persons]...),
		entities[docModel.Organizations]...))

	return docModel.AnalysisRecord{
		DocumentType:   "Legal Document",
		Parties:        parties,
		Dates:          entities[docModel.Dates],
		FinancialTerms: entities[docModel.Money],
		Clauses:        patterns.ExtractClauses(text),
		Risks:          []string{"Basic analysis - configure an AI provider for detailed risk assessment"},
		Obligations:    []string{"Basic analysis - configure an AI provider for detailed obligation analysis"},
		Jurisdiction:   "Not detected",
		Summary:        fmt.Sprintf("Document contains %d words. Basic analysis performed.", len(strings.Fields(text))),
	}, false
}
