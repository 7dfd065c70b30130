package pdftext

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// ocrPages rasterizes the document and runs tesseract over each page image.
// Failures on individual pages are collected as warnings, not fatal.
func (e *Extractor) ocrPages(ctx context.Context, path string) (string, []string, error) {
	tmpDir, err := os.MkdirTemp("", "calib-ocr-*")
	if err != nil {
		return "", nil, err
	}
	defer func(dir string) {
		if rerr := os.RemoveAll(dir); rerr != nil {
			e.logger.Warn("failed to remove temp dir", "dir", dir, "error", rerr)
		}
	}(tmpDir)

	images, err := e.raster.Render(path, e.cfg.DPI, tmpDir)
	if err != nil {
		return "", nil, err
	}
	if e.cfg.MaxPages > 0 && len(images) > e.cfg.MaxPages {
		images = images[:e.cfg.MaxPages]
	}

	var b strings.Builder
	var warns []string
	for _, img := range images {
		txt, err := e.tesseractOCR(ctx, img)
		if err != nil {
			warns = append(warns, err.Error())
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n\f\n") // keep a clear page break marker
		}
		b.WriteString(txt)
	}
	return b.String(), warns, nil
}

func (e *Extractor) tesseractOCR(ctx context.Context, imgPath string) (string, error) {
	// tesseract <file> stdout -l <lang>
	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, imgPath, "stdout", "-l", e.cfg.TesseractLang)
	if err != nil {
		return "", fmt.Errorf("tesseract: %w (%s)", err, truncate(string(errb), 512))
	}
	return strings.TrimSpace(string(out)), nil
}
