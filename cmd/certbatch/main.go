package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joho/godotenv"

	"github.com/Idelcio/calibration-extractor/internal/certificate"
	"github.com/Idelcio/calibration-extractor/internal/common"
	"github.com/Idelcio/calibration-extractor/internal/export"
	"github.com/Idelcio/calibration-extractor/internal/pdftext"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	// Parse CLI flags
	var (
		dir     = flag.String("dir", "", "directory with certificate PDFs to process (required)")
		out     = flag.String("out", "", "output JSON file path (defaults to <dir>/instrumentos.json)")
		xlsxOut = flag.String("xlsx", "", "optional XLSX review report path")
		workers = flag.Int("workers", 0, "parallel extraction workers (default from BATCH_WORKERS or 5)")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}
	if *out == "" {
		*out = filepath.Join(*dir, "instrumentos.json")
	}

	// Setup logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Optional .env, then env config
	if err := godotenv.Load(); err == nil {
		logger.Debug("loaded .env file")
	}
	cfg := common.LoadConfig()
	if *workers <= 0 {
		*workers = cfg.Batch.Workers
	}

	ctx := context.Background()

	files, err := collectPDFs(*dir)
	if err != nil {
		logger.Error("failed to scan directory", "dir", *dir, "error", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		logger.Error("no PDF files found", "dir", *dir)
		os.Exit(1)
	}
	logger.Info("found certificates", "dir", *dir, "files", len(files))

	// Wire the pipeline
	acquirer := pdftext.NewExtractor(pdftext.Config{
		Tesseract:     cfg.OCR.Tesseract,
		TesseractLang: cfg.OCR.TesseractLang,
		DPI:           cfg.OCR.DPI,
		MinTextLen:    cfg.OCR.MinTextLen,
		MaxPages:      cfg.OCR.MaxPages,
	}, logger)
	extractor := certificate.NewDocumentExtractor(acquirer, certificate.Config{}, logger)
	processor := certificate.NewProcessor(extractor, *workers, logger)

	instruments := processor.ProcessAll(ctx, files)
	if len(instruments) == 0 {
		logger.Error("no instruments extracted", "files", len(files))
		os.Exit(1)
	}

	totalMeasurements := 0
	for _, inst := range instruments {
		totalMeasurements += len(inst.Measurements)
	}

	sinks := []export.Sink{export.NewJSONWriter(*out, logger)}
	if *xlsxOut != "" {
		sinks = append(sinks, export.NewXLSXWriter(*xlsxOut, logger))
	}
	for _, sink := range sinks {
		if err := sink.Save(ctx, instruments); err != nil {
			logger.Error("export failed", "error", err)
			os.Exit(1)
		}
	}

	logger.Info("batch complete",
		"files", len(files),
		"instruments", len(instruments),
		"measurements", totalMeasurements,
		"output", *out)

	fmt.Printf("Batch processing complete!\n")
	fmt.Printf("- Files processed: %d\n", len(files))
	fmt.Printf("- Instruments: %d\n", len(instruments))
	fmt.Printf("- Measurements: %d\n", totalMeasurements)
	fmt.Printf("- Output: %s\n", *out)
}

// collectPDFs lists the PDF files directly under dir, sorted by name so a
// rerun folds records in the same order.
func collectPDFs(dir string) ([]certificate.InputFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []certificate.InputFile
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			continue
		}
		files = append(files, certificate.InputFile{
			Path:         filepath.Join(dir, entry.Name()),
			OriginalName: entry.Name(),
		})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].OriginalName < files[j].OriginalName })
	return files, nil
}
