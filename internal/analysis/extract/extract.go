package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/tkonduri/LegalAPI/internal/domain/docModel"
	"github.com/tkonduri/LegalAPI/pkg/logger_i"
)

var logger = logger_i.NewLogger("TextExtractor")

// ExtractionError is terminal for the request: a structurally invalid payload
// produces no partial text.
type ExtractionError struct {
	Format docModel.DocFormat
	Cause  error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extracting %s document: %v", e.Format, e.Cause)
}

func (e *ExtractionError) Unwrap() error { return e.Cause }

// FormatFromName maps an uploaded filename to a declared format.
func FormatFromName(name string) docModel.DocFormat {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return docModel.PDF
	case ".docx":
		return docModel.DOCX
	case ".txt":
		return docModel.TXT
	default:
		return docModel.ERR
	}
}

// Text normalizes a document into PlainText. The input document is not
// mutated and is of no further use after this call.
func Text(doc docModel.Document) (docModel.PlainText, error) {
	var body string
	var err error

	switch doc.Format {
	case docModel.PDF:
		body, err = extractPDF(doc.Path)
	case docModel.DOCX:
		body, err = extractDocx(doc.Path)
	case docModel.TXT:
		body, err = extractTxt(doc)
	case docModel.Plain:
		body = doc.InlineText
	default:
		err = fmt.Errorf("unsupported format: %s", doc.Format)
	}

	if err != nil {
		logger.Error("Extraction failed", "document", doc.Name, "format", doc.Format, "error", err)
		return docModel.PlainText{}, &ExtractionError{Format: doc.Format, Cause: err}
	}
	return NewPlainText(body), nil
}

// NewPlainText derives the word/character/sentence metrics once; the result
// is treated as immutable downstream.
func NewPlainText(body string) docModel.PlainText {
	return docModel.PlainText{
		Body:          body,
		WordCount:     len(strings.Fields(body)),
		CharCount:     utf8.RuneCountInString(body),
		SentenceCount: len(strings.Split(body, ".")),
	}
}

func extractTxt(doc docModel.Document) (string, error) {
	if doc.Path == "" {
		return doc.InlineText, nil
	}
	data, err := os.ReadFile(doc.Path)
	if err != nil {
		return "", fmt.Errorf("failed to read txt: %w", err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("txt payload is not valid UTF-8")
	}
	return string(data), nil
}
