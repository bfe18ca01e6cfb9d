package patterns

import (
	"regexp"

	"github.com/tkonduri/LegalAPI/internal/domain/docModel"
)

// The trigger tables are plain data so a new clause category or entity type is
// a table edit, not an extractor change.

var clauseTriggers = map[docModel.ClauseCategory][]*regexp.Regexp{
	docModel.Termination: {
		regexp.MustCompile(`(?i)terminat(?:e[sd]?|ing|ion)`),
		regexp.MustCompile(`(?i)end(?:ing)?\s+(?:of\s+)?(?:this\s+)?(?:agreement|contract)`),
		regexp.MustCompile(`(?i)expir(?:es?|ed|ing|y|ation)`),
		regexp.MustCompile(`(?i)breach\s+of\s+contract`),
	},
	docModel.Confidentiality: {
		regexp.MustCompile(`(?i)confidential(?:ity)?`),
		regexp.MustCompile(`(?i)non-disclos(?:ure|e)`),
		regexp.MustCompile(`(?i)proprietary\s+information`),
	},
	docModel.Indemnity: {
		regexp.MustCompile(`(?i)indemnif(?:y|ies|ied|ication)`),
		regexp.MustCompile(`(?i)hold\s+harmless`),
		regexp.MustCompile(`(?i)liability\s+(?:for\s+)?damages`),
	},
	docModel.Payment: {
		regexp.MustCompile(`(?i)payment\s+terms?`),
		regexp.MustCompile(`(?i)invoice`),
		regexp.MustCompile(`(?i)compensation`),
		regexp.MustCompile(`(?i)fee(?:s)?\b`),
	},
	docModel.DisputeResolution: {
		regexp.MustCompile(`(?i)arbitration`),
		regexp.MustCompile(`(?i)mediation`),
		regexp.MustCompile(`(?i)dispute\s+resolution`),
		regexp.MustCompile(`(?i)governing\s+law`),
	},
}

var entityPatterns = map[docModel.EntityType][]*regexp.Regexp{
	docModel.Persons: {
		regexp.MustCompile(`\b[A-Z][a-z]+\s+[A-Z][a-z]+\b`),
	},
	docModel.Organizations: {
		regexp.MustCompile(`\b[A-Z][A-Za-z]*(?:\s+[A-Z][A-Za-z]*)*\s+(?:Inc\.|LLC|Corp\.|Company|Corporation|Ltd\.)`),
	},
	docModel.Dates: {
		regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b`),
	},
	docModel.Money: {
		regexp.MustCompile(`\$[\d,]+(?:\.\d{2})?`),
		regexp.MustCompile(`€[\d,]+(?:\.\d{2})?`),
		regexp.MustCompile(`£[\d,]+(?:\.\d{2})?`),
	},
	// No reliable lexical trigger for bare place names; locations come from the
	// AI extractor when it is available.
	docModel.Locations: {},
}
