package pdftext

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Reader extracts the structured text layer of one PDF.
type Reader interface {
	Text(path string) (string, error)
}

// Compile-time interface checks.
var _ Reader = (*LayerReader)(nil)

// LayerReader is the primary reader: the pure-Go PDF text layer.
type LayerReader struct{}

// NewLayerReader creates the primary text-layer reader.
func NewLayerReader() *LayerReader { return &LayerReader{} }

// Text extracts plain text page by page.
func (r *LayerReader) Text(path string) (text string, err error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read pdf: %w", err)
	}
	if len(content) == 0 {
		return "", fmt.Errorf("empty PDF content")
	}
	// The parser panics on some malformed cross-reference tables; a broken
	// file must count as a failed reader, not kill the batch.
	defer func() {
		if rec := recover(); rec != nil {
			text = ""
			err = fmt.Errorf("pdf parser panic: %v", rec)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		pageText = strings.TrimSpace(pageText)
		if pageText == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(pageText)
	}
	return b.String(), nil
}
