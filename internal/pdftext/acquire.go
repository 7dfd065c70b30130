package pdftext

import (
	"context"
	"log/slog"
	"strings"

	"github.com/Idelcio/calibration-extractor/internal/common"
)

// Config holds text-acquisition settings.
type Config struct {
	Tesseract     string // binary name or absolute path; if empty -> "tesseract"
	TesseractLang string // default "por"
	DPI           int    // rasterization DPI for scanned PDFs, default 300
	MinTextLen    int    // below this the OCR fallback kicks in, default 400
	MaxPages      int    // OCR page cap, 0 = no limit
}

// Extractor obtains the raw text of a single certificate PDF. It cascades:
// primary text layer, secondary layer when the primary looks corrupted
// (outputs concatenated, both may carry complementary fragments), then OCR
// when the combined text is too short to be a real certificate.
//
// Secondary reader, rasterizer and runner are all optional; a missing
// dependency skips its step instead of failing the pipeline.
type Extractor struct {
	primary   Reader
	secondary Reader
	raster    Rasterizer
	runner    Runner
	cfg       Config
	logger    *slog.Logger
}

// NewExtractor wires the default readers: pure-Go text layer as primary,
// MuPDF as secondary and rasterizer, tesseract through the exec runner.
func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	fitz := NewFitzReader()
	return NewExtractorWith(cfg, NewLayerReader(), fitz, fitz, execRunner{}, logger)
}

// NewExtractorWith builds an Extractor from explicit collaborators.
// Any of secondary, raster, runner may be nil.
func NewExtractorWith(cfg Config, primary Reader, secondary Reader, raster Rasterizer, runner Runner, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.TesseractLang == "" {
		cfg.TesseractLang = "por"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	if cfg.MinTextLen <= 0 {
		cfg.MinTextLen = 400
	}
	return &Extractor{
		primary:   primary,
		secondary: secondary,
		raster:    raster,
		runner:    runner,
		cfg:       cfg,
		logger:    logger,
	}
}

// Acquire returns the best text obtainable for the document. An empty final
// result yields common.ErrEmptyExtraction; individual reader failures only
// cost that reader's contribution.
func (e *Extractor) Acquire(ctx context.Context, path string) (string, error) {
	text, err := e.primary.Text(path)
	if err != nil {
		e.logger.Warn("acquire.primary.failed", "path", path, "error", err)
		text = ""
	}

	if LooksCorrupted(text) && e.secondary != nil {
		e.logger.Info("acquire.corrupted", "path", path, "primary_bytes", len(text))
		secText, err := e.secondary.Text(path)
		if err != nil {
			e.logger.Warn("acquire.secondary.failed", "path", path, "error", err)
		} else if secText != "" {
			// Concatenate, never replace: both layers may carry
			// complementary fragments of the same fields.
			text = text + "\n" + secText
		}
	}

	if len(text) < e.cfg.MinTextLen && e.raster != nil && e.runner != nil {
		e.logger.Info("acquire.ocr", "path", path, "text_bytes", len(text), "dpi", e.cfg.DPI)
		ocrText, warns, err := e.ocrPages(ctx, path)
		for _, w := range warns {
			e.logger.Warn("acquire.ocr.page", "path", path, "warning", w)
		}
		if err != nil {
			e.logger.Warn("acquire.ocr.failed", "path", path, "error", err)
		} else if len(ocrText) > len(text) {
			text = ocrText
		} else if ocrText != "" {
			text = text + "\n" + ocrText
		}
	}

	if strings.TrimSpace(text) == "" {
		return "", common.ErrEmptyExtraction
	}
	return text, nil
}
