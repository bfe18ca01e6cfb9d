package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/tkonduri/LegalAPI/internal/analysis/language"
	"github.com/tkonduri/LegalAPI/internal/domain/docModel"
)

// The two layouts the date bucketing understands. Anything else is listed in
// the report but skipped by the deadline analysis.
const (
	slashLayout = "1/2/2006"
	dashLayout  = "1-2-2006"
)

// BucketDates splits extracted date strings into future and past relative to
// now. Unparseable dates are dropped from both buckets.
func BucketDates(dates []string, now time.Time) (future []string, past []string) {
	for _, raw := range dates {
		var parsed time.Time
		var err error
		switch {
		case strings.Contains(raw, "/"):
			parsed, err = time.Parse(slashLayout, raw)
		case strings.Contains(raw, "-"):
			parsed, err = time.Parse(dashLayout, raw)
		default:
			continue
		}
		if err != nil {
			continue
		}
		if parsed.After(now) {
			future = append(future, raw)
		} else {
			past = append(past, raw)
		}
	}
	return future, past
}

// BuildTextReport renders a completed analysis as a plain-text report. It
// consumes the output read-only.
func BuildTextReport(documentName string, out docModel.OrchestrationOutput, generatedAt time.Time) string {
	engine := "Basic Analysis"
	if out.Engine == "ai" {
		engine = "AI Analysis"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "LEGAL DOCUMENT ANALYSIS REPORT (%s)\n", engine)
	fmt.Fprintf(&b, "Generated on: %s\n", generatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Document: %s\n", documentName)
	fmt.Fprintf(&b, "Original Language: %s\n", language.Name(out.DetectedLanguage))
	fmt.Fprintf(&b, "Target Language: %s\n", language.Name(out.TargetLanguage))
	fmt.Fprintf(&b, "Word Count: %d\n", out.WordCount)
	fmt.Fprintf(&b, "Character Count: %d\n", out.CharacterCount)

	b.WriteString("\nDOCUMENT SUMMARY:\n")
	b.WriteString(orDefault(out.Record.Summary, "No summary available"))
	b.WriteString("\n")

	fmt.Fprintf(&b, "\nDOCUMENT TYPE: %s\n", orDefault(out.Record.DocumentType, "Unknown"))
	fmt.Fprintf(&b, "JURISDICTION: %s\n", orDefault(out.Record.Jurisdiction, "Not specified"))

	writeBulletSection(&b, "KEY PARTIES:", out.Record.Parties)

	b.WriteString("\nENTITIES FOUND:\n")
	for _, et := range docModel.EntityTypes {
		values := out.Entities[et]
		if len(values) == 0 {
			continue
		}
		if len(values) > 10 {
			values = values[:10]
		}
		fmt.Fprintf(&b, "%s: %s\n", et, strings.Join(values, ", "))
	}

	writeBulletSection(&b, "IMPORTANT DATES:", out.Record.Dates)

	future, past := BucketDates(out.Record.Dates, generatedAt)
	fmt.Fprintf(&b, "\nDATE ANALYSIS: %d upcoming, %d past\n", len(future), len(past))

	writeBulletSection(&b, "FINANCIAL TERMS:", out.Record.FinancialTerms)

	b.WriteString("\nKEY CLAUSES:\n")
	for _, c := range docModel.ClauseCategories {
		snippets := out.Record.Clauses[c]
		if len(snippets) == 0 {
			continue
		}
		fmt.Fprintf(&b, "%s: %d found\n", categoryTitle(c), len(snippets))
	}

	writeBulletSection(&b, "RISK ANALYSIS:", out.Record.Risks)
	writeBulletSection(&b, "KEY OBLIGATIONS:", out.Record.Obligations)

	return b.String()
}

func writeBulletSection(b *strings.Builder, header string, items []string) {
	b.WriteString("\n" + header + "\n")
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
}

func categoryTitle(c docModel.ClauseCategory) string {
	words := strings.Split(string(c), "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

func orDefault(s string, def string) string {
	if s == "" {
		return def
	}
	return s
}
