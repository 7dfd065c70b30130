package pdftext

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// Rasterizer renders PDF pages to image files for OCR.
type Rasterizer interface {
	Render(path string, dpi int, outDir string) ([]string, error)
}

var (
	_ Reader     = (*FitzReader)(nil)
	_ Rasterizer = (*FitzReader)(nil)
)

// FitzReader is the secondary reader, backed by MuPDF. It often recovers
// fragments the primary reader scrambles, and doubles as the page
// rasterizer for the OCR fallback.
type FitzReader struct{}

// NewFitzReader creates the MuPDF-backed reader.
func NewFitzReader() *FitzReader { return &FitzReader{} }

// Text extracts plain text page by page.
func (r *FitzReader) Text(path string) (string, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer doc.Close()

	var b strings.Builder
	for i := 0; i < doc.NumPage(); i++ {
		pageText, err := doc.Text(i)
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

// Render rasterizes every page to a PNG under outDir and returns the file
// paths in page order.
func (r *FitzReader) Render(path string, dpi int, outDir string) ([]string, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer doc.Close()

	if doc.NumPage() == 0 {
		return nil, fmt.Errorf("PDF has no pages")
	}

	var paths []string
	for i := 0; i < doc.NumPage(); i++ {
		img, err := doc.ImageDPI(i, float64(dpi))
		if err != nil {
			return paths, fmt.Errorf("render page %d: %w", i+1, err)
		}
		outPath := filepath.Join(outDir, fmt.Sprintf("page-%03d.png", i+1))
		f, err := os.Create(outPath)
		if err != nil {
			return paths, fmt.Errorf("create page image: %w", err)
		}
		err = png.Encode(f, img)
		f.Close()
		if err != nil {
			return paths, fmt.Errorf("encode page %d: %w", i+1, err)
		}
		paths = append(paths, outPath)
	}
	return paths, nil
}
