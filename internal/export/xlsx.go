package export

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Idelcio/calibration-extractor/constants"
	"github.com/Idelcio/calibration-extractor/internal/entity"
)

var _ Sink = (*XLSXWriter)(nil)

// XLSXWriter writes one worksheet row per instrument, for manual review of
// the fields the patterns could not fill.
type XLSXWriter struct {
	Path   string
	logger *slog.Logger
}

func NewXLSXWriter(path string, logger *slog.Logger) *XLSXWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &XLSXWriter{Path: path, logger: logger}
}

func (w *XLSXWriter) Save(_ context.Context, instruments []entity.InstrumentRecord) error {
	f := excelize.NewFile()
	const sheet = "Instruments"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	if index, _ := f.GetSheetIndex("Sheet1"); index != -1 {
		_ = f.DeleteSheet("Sheet1")
	}

	headers := []string{
		"Identification",
		"Name",
		"Manufacturer",
		"Model",
		"Serial Number",
		"Calibration Date",
		"Issue Date",
		"Status",
		"Responsible",
		"Measurements",
		"Source Files",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, inst := range instruments {
		values := []any{
			display(inst.Identification),
			display(inst.Name),
			display(inst.Manufacturer),
			display(inst.Model),
			display(inst.SerialNumber),
			inst.CalibrationDate,
			inst.IssueDate,
			display(inst.Status),
			display(inst.Responsible),
			len(inst.Measurements),
			strings.Join(inst.SourceFiles, "; "),
		}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		row++
	}

	if err := f.SaveAs(w.Path); err != nil {
		return fmt.Errorf("write %s: %w", w.Path, err)
	}
	w.logger.Info("export.xlsx.ok", "path", w.Path, "instruments", len(instruments))
	return nil
}

// display renders a field for the worksheet, sentinel included, mirroring
// the JSON form.
func display(f entity.Field) string {
	if !f.Set {
		return constants.NotInformed
	}
	return f.Value
}
