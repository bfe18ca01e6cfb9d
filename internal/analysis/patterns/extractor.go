package patterns

import (
	"regexp"
	"strings"

	"github.com/tkonduri/LegalAPI/internal/config"
	"github.com/tkonduri/LegalAPI/internal/domain/docModel"
)

// Pure functions of their text input: same text in, same sequences out, in the
// same order.

var whitespaceRun = regexp.MustCompile(`\s+`)

// personMinLength drops pattern noise like initials picked up by the
// capitalized-pair rule.
const personMinLength = 4

// ExtractEntities collects every match of every pattern per entity type,
// trims, filters and dedups. All five types are always present in the bundle.
func ExtractEntities(text string) docModel.EntityBundle {
	bundle := docModel.NewEntityBundle()

	for _, entityType := range docModel.EntityTypes {
		seen := make(map[string]struct{})
		for _, pattern := range entityPatterns[entityType] {
			for _, match := range pattern.FindAllString(text, -1) {
				candidate := strings.TrimSpace(match)
				if candidate == "" {
					continue
				}
				if entityType == docModel.Persons && len(candidate) < personMinLength {
					continue
				}
				if _, dup := seen[candidate]; dup {
					continue
				}
				seen[candidate] = struct{}{}
				bundle[entityType] = append(bundle[entityType], candidate)
			}
		}
	}
	return bundle
}

// ExtractClauses takes a context window around every trigger match: 50 chars
// before the match start, 100 after the match end, clipped to the text bounds.
// First occurrence of a snippet wins, later duplicates are dropped. Categories
// without matches stay present with an empty sequence.
func ExtractClauses(text string) map[docModel.ClauseCategory][]string {
	clauses := docModel.EmptyClauses()

	for _, category := range docModel.ClauseCategories {
		seen := make(map[string]struct{})
		for _, pattern := range clauseTriggers[category] {
			for _, loc := range pattern.FindAllStringIndex(text, -1) {
				snippet := contextWindow(text, loc[0], loc[1])
				if snippet == "" {
					continue
				}
				if _, dup := seen[snippet]; dup {
					continue
				}
				seen[snippet] = struct{}{}
				clauses[category] = append(clauses[category], snippet)
			}
		}
	}
	return clauses
}

func contextWindow(text string, matchStart, matchEnd int) string {
	start := matchStart - config.ClauseWindowBefore
	if start < 0 {
		start = 0
	}
	end := matchEnd + config.ClauseWindowAfter
	if end > len(text) {
		end = len(text)
	}
	snippet := whitespaceRun.ReplaceAllString(text[start:end], " ")
	return strings.TrimSpace(snippet)
}
