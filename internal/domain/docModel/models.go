package docModel

import "time"

type DocFormat string

var (
	PDF   DocFormat = "pdf"
	DOCX  DocFormat = "docx"
	TXT   DocFormat = "txt"
	Plain DocFormat = "plain"
	ERR   DocFormat = "error"
)

// Document is the per-request input. It is discarded after text extraction.
type Document struct {
	Name       string    `json:"doc_name"`
	Path       string    `json:"doc_path,omitempty"`
	InlineText string    `json:"-"`
	Format     DocFormat `json:"format"`
}

// PlainText is the normalized body plus derived metrics. Immutable once produced.
type PlainText struct {
	Body          string `json:"-"`
	WordCount     int    `json:"word_count"`
	CharCount     int    `json:"character_count"`
	SentenceCount int    `json:"sentence_count"`
}

type ClauseCategory string

const (
	Termination       ClauseCategory = "termination"
	Confidentiality   ClauseCategory = "confidentiality"
	Indemnity         ClauseCategory = "indemnity"
	Payment           ClauseCategory = "payment"
	DisputeResolution ClauseCategory = "dispute_resolution"
)

// ClauseCategories fixes the iteration order of the five buckets.
var ClauseCategories = []ClauseCategory{
	Termination,
	Confidentiality,
	Indemnity,
	Payment,
	DisputeResolution,
}

type EntityType string

const (
	Persons       EntityType = "PERSONS"
	Organizations EntityType = "ORGANIZATIONS"
	Dates         EntityType = "DATES"
	Money         EntityType = "MONEY"
	Locations     EntityType = "LOCATIONS"
)

var EntityTypes = []EntityType{Persons, Organizations, Dates, Money, Locations}

// EntityBundle always carries all five entity types, each possibly empty.
type EntityBundle map[EntityType][]string

func NewEntityBundle() EntityBundle {
	b := make(EntityBundle, len(EntityTypes))
	for _, t := range EntityTypes {
		b[t] = []string{}
	}
	return b
}

// AnalysisRecord is the central result shape shared by both analysis engines
// and by the AI response contract.
type AnalysisRecord struct {
	DocumentType   string                      `json:"document_type"`
	Parties        []string                    `json:"parties"`
	Dates          []string                    `json:"dates"`
	FinancialTerms []string                    `json:"financial_terms"`
	Clauses        map[ClauseCategory][]string `json:"clauses"`
	Risks          []string                    `json:"risks"`
	Obligations    []string                    `json:"obligations"`
	Jurisdiction   string                      `json:"jurisdiction"`
	Summary        string                      `json:"summary"`
}

// EmptyClauses returns the fixed five-category map with empty sequences.
func EmptyClauses() map[ClauseCategory][]string {
	clauses := make(map[ClauseCategory][]string, len(ClauseCategories))
	for _, c := range ClauseCategories {
		clauses[c] = []string{}
	}
	return clauses
}

// OrchestrationOutput is the merged result of one analysis run. The caller owns
// it (display, report rendering, history persistence).
type OrchestrationOutput struct {
	Record           AnalysisRecord `json:"record"`
	Entities         EntityBundle   `json:"entities"`
	DetectedLanguage string         `json:"detected_language"`
	TargetLanguage   string         `json:"target_language"`
	WordCount        int            `json:"word_count"`
	CharacterCount   int            `json:"character_count"`
	SentenceCount    int            `json:"sentence_count"`
	TranslatedText   string         `json:"translated_text,omitempty"`
	Engine           string         `json:"engine"`
}

// HistoryEntry is written exactly once per completed run and never mutated.
type HistoryEntry struct {
	Id               string    `json:"id"`
	UserId           string    `json:"user_id"`
	DocumentName     string    `json:"document_name"`
	AnalysisDate     time.Time `json:"analysis_date"`
	DocumentType     string    `json:"document_type"`
	WordCount        int       `json:"word_count"`
	OriginalLanguage string    `json:"original_language"`
	TargetLanguage   string    `json:"target_language"`
	Summary          string    `json:"summary"`
}
