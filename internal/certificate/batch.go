package certificate

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/Idelcio/calibration-extractor/internal/entity"
)

// Processor runs single-document extraction over a batch of files and folds
// the results into the final instrument list.
//
// Extraction is stateless per file and runs on a bounded worker pool (the
// limit exists to respect OCR rate limits, not correctness). The fold is a
// different story: Merge is not commutative, so results are collected into
// their submission slots and folded strictly in input order.
type Processor struct {
	extractor *DocumentExtractor
	workers   int
	logger    *slog.Logger
}

func NewProcessor(extractor *DocumentExtractor, workers int, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	if workers <= 0 {
		workers = 5
	}
	return &Processor{extractor: extractor, workers: workers, logger: logger}
}

// ProcessAll extracts every file and merges records describing the same
// instrument. A file that fails or yields no text is logged and skipped;
// the batch always returns however many records could be produced.
func (p *Processor) ProcessAll(ctx context.Context, files []InputFile) []entity.InstrumentRecord {
	runID := uuid.NewString()
	p.logger.Info("batch.start", "run_id", runID, "files", len(files))

	results := make([]*entity.InstrumentRecord, len(files))

	g := new(errgroup.Group)
	g.SetLimit(p.workers)
	for i, file := range files {
		g.Go(func() error {
			rec, err := p.extractor.ExtractDocument(ctx, file)
			if err != nil {
				p.logger.Warn("batch.file.failed",
					"run_id", runID, "file", file.OriginalName, "error", err)
				return nil
			}
			results[i] = &rec
			return nil
		})
	}
	_ = g.Wait()

	// Sequential fold in input order; see Merge for why order matters.
	byKey := make(map[string]int)
	var out []entity.InstrumentRecord
	for _, rec := range results {
		if rec == nil {
			continue
		}
		key, mergeable := mergeKey(*rec)
		if mergeable {
			if at, seen := byKey[key]; seen {
				p.logger.Info("batch.merge", "run_id", runID, "key", key)
				out[at] = Merge(out[at], *rec)
				continue
			}
			byKey[key] = len(out)
		}
		out = append(out, *rec)
	}

	p.logger.Info("batch.done",
		"run_id", runID,
		"files", len(files),
		"records", len(out),
	)
	return out
}
