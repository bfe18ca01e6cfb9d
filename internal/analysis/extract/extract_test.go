package extract

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tkonduri/LegalAPI/internal/domain/docModel"
)

func TestFormatFromName(t *testing.T) {
	cases := []struct {
		name string
		want docModel.DocFormat
	}{
		{"contract.pdf", docModel.PDF},
		{"agreement.DOCX", docModel.DOCX},
		{"notes.Txt", docModel.TXT},
		{"ledger.xlsx", docModel.ERR},
		{"noextension", docModel.ERR},
		{"archive.tar.pdf", docModel.PDF},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatFromName(tc.name), "filename %q", tc.name)
	}
}

func TestNewPlainTextCounts(t *testing.T) {
	text := NewPlainText("This agreement is binding. Both parties agree.")

	assert.Equal(t, 7, text.WordCount)
	assert.Equal(t, 46, text.CharCount)
	assert.Equal(t, 3, text.SentenceCount)
}

func TestNewPlainTextCountsRunesNotBytes(t *testing.T) {
	text := NewPlainText("naïve café")

	assert.Equal(t, 2, text.WordCount)
	assert.Equal(t, 10, text.CharCount)
}

func TestTextPlainUsesInlineText(t *testing.T) {
	doc := docModel.Document{
		Name:       "pasted_text",
		InlineText: "The tenant shall pay rent monthly.",
		Format:     docModel.Plain,
	}

	text, err := Text(doc)

	require.NoError(t, err)
	assert.Equal(t, doc.InlineText, text.Body)
	assert.Equal(t, 6, text.WordCount)
}

func TestTextTxtReadsFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lease.txt")
	require.NoError(t, os.WriteFile(path, []byte("Lease begins 1/2/2026."), 0o600))

	text, err := Text(docModel.Document{Name: "lease.txt", Path: path, Format: docModel.TXT})

	require.NoError(t, err)
	assert.Equal(t, "Lease begins 1/2/2026.", text.Body)
}

func TestTextTxtWithoutPathUsesInlineText(t *testing.T) {
	doc := docModel.Document{InlineText: "inline body", Format: docModel.TXT}

	text, err := Text(doc)

	require.NoError(t, err)
	assert.Equal(t, "inline body", text.Body)
}

func TestTextTxtRejectsInvalidUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "binary.txt")
	require.NoError(t, os.WriteFile(path, []byte{0xff, 0xfe, 0x00, 0x41}, 0o600))

	_, err := Text(docModel.Document{Name: "binary.txt", Path: path, Format: docModel.TXT})

	require.Error(t, err)
	var extractionErr *ExtractionError
	assert.ErrorAs(t, err, &extractionErr)
	assert.Equal(t, docModel.TXT, extractionErr.Format)
}

func TestTextTxtMissingFile(t *testing.T) {
	_, err := Text(docModel.Document{Name: "ghost.txt", Path: "/nonexistent/ghost.txt", Format: docModel.TXT})

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestTextUnsupportedFormat(t *testing.T) {
	_, err := Text(docModel.Document{Name: "ledger.xlsx", Format: docModel.ERR})

	require.Error(t, err)
	var extractionErr *ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.Equal(t, docModel.ERR, extractionErr.Format)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestExtractionErrorUnwrap(t *testing.T) {
	cause := errors.New("page decode failed")
	err := &ExtractionError{Format: docModel.PDF, Cause: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "pdf")
}
