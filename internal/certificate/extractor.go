package certificate

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Idelcio/calibration-extractor/internal/entity"
)

// TextSource is the text-acquisition collaborator (pdftext.Extractor in
// production, a stub in tests).
type TextSource interface {
	Acquire(ctx context.Context, path string) (string, error)
}

// InputFile is one certificate to process: where it sits on disk and the
// name it was submitted under.
type InputFile struct {
	Path         string
	OriginalName string
}

// DocumentExtractor produces one InstrumentRecord per certificate PDF:
// acquire text, dispatch on layout, extract fields.
type DocumentExtractor struct {
	source     TextSource
	dispatcher *Dispatcher
	logger     *slog.Logger
}

func NewDocumentExtractor(source TextSource, cfg Config, logger *slog.Logger) *DocumentExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &DocumentExtractor{
		source:     source,
		dispatcher: NewDispatcher(cfg),
		logger:     logger,
	}
}

// ExtractDocument runs the full single-document pipeline for one file.
func (e *DocumentExtractor) ExtractDocument(ctx context.Context, file InputFile) (entity.InstrumentRecord, error) {
	text, err := e.source.Acquire(ctx, file.Path)
	if err != nil {
		return entity.InstrumentRecord{}, fmt.Errorf("acquire text for %s: %w", file.OriginalName, err)
	}

	extractor := e.dispatcher.Select(text)
	rec := extractor.extract(text, file.OriginalName)
	rec.SourceFiles = []string{file.OriginalName}

	e.logger.Info("extract.ok",
		"file", file.OriginalName,
		"identification", rec.Identification.Value,
		"serial", rec.SerialNumber.Value,
		"specialized", rec.Specialized != nil,
		"calibration_date", rec.CalibrationDate,
	)
	return rec, nil
}
