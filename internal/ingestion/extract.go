// Package ingestion reads uploaded resume files into plain text. Plain-text
// files are read verbatim; PDFs are decoded page by page. Everything else is
// reported as unsupported so the screener can skip it.
package ingestion

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrUnsupportedType is returned for files that are neither .txt nor .pdf.
var ErrUnsupportedType = errors.New("unsupported file type")

// FileExtractor decodes resume files by extension.
type FileExtractor struct{}

// NewFileExtractor creates a FileExtractor.
func NewFileExtractor() *FileExtractor {
	return &FileExtractor{}
}

// ExtractText returns the plain text content of the named file.
func (e *FileExtractor) ExtractText(ctx context.Context, name string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	switch strings.ToLower(filepath.Ext(name)) {
	case ".txt":
		return string(data), nil
	case ".pdf":
		return extractPDFText(data)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, name)
	}
}

// extractPDFText concatenates each page's text content, separated by spaces.
func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var pages []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// A single undecodable page does not fail the document.
			continue
		}
		pages = append(pages, text)
	}
	return strings.Join(pages, " "), nil
}
