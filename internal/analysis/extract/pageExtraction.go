package extract

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dslipak/pdf"
	"github.com/lu4p/cat"
)

// extractPDF concatenates the text of every page in document order, one page
// per line. A page that cannot be decoded contributes an empty string instead
// of aborting the whole document.
func extractPDF(path string) (string, error) {
	f, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open pdf: %w", err)
	}

	numPages := f.NumPage()
	logger.Debug("extractPDF", "path", path, "pages", numPages)

	pages := make([]string, 0, numPages)
	for i := 1; i <= numPages; i++ {
		page := f.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}

		content, err := protectExtract(page)
		if err != nil {
			logger.Warn("Skipping undecodable pdf page", "page", i, "error", err)
			pages = append(pages, "")
			continue
		}
		pages = append(pages, content)
	}
	return strings.Join(pages, "\n"), nil
}

// extractDocx reads a .docx file paragraph by paragraph via cat.
func extractDocx(path string) (string, error) {
	text, err := cat.File(path)
	if err != nil {
		return "", fmt.Errorf("failed to extract docx: %w", err)
	}
	return text, nil
}

// protectExtract guards against the pdf library hanging on damaged page
// streams.
func protectExtract(page pdf.Page) (string, error) {
	type result struct {
		content string
		err     error
	}
	resChan := make(chan result, 1)

	go func() {
		content, err := page.GetPlainText(nil)
		resChan <- result{content, err}
	}()
	select {
	case r := <-resChan:
		return r.content, r.err
	case <-time.After(time.Second * 10):
		return "", errors.New("timeout")
	}
}
