package certificate

import (
	"context"
	"testing"
)

func newTestProcessor(src stubSource, workers int) *Processor {
	e := NewDocumentExtractor(src, Config{}, quietLogger())
	return NewProcessor(e, workers, quietLogger())
}

func TestProcessAllMergesSameSerial(t *testing.T) {
	src := stubSource{"a1.pdf": certA1, "a2.pdf": certA2, "b.pdf": certB}
	p := newTestProcessor(src, 5)

	files := []InputFile{
		{Path: "a1.pdf", OriginalName: "a1.pdf"},
		{Path: "a2.pdf", OriginalName: "a2.pdf"},
		{Path: "b.pdf", OriginalName: "b.pdf"},
	}
	out := p.ProcessAll(context.Background(), files)
	if len(out) != 2 {
		t.Fatalf("got %d records, want 2", len(out))
	}

	merged := out[0]
	if merged.SerialNumber.Value != "ABC123" {
		t.Fatalf("first record serial = %q, want ABC123", merged.SerialNumber.Value)
	}
	// Complementary fields from both certificates of the same instrument.
	if merged.Manufacturer.Value != "Mitutoyo" {
		t.Errorf("manufacturer = %q", merged.Manufacturer.Value)
	}
	if merged.Model.Value != "TH-200" {
		t.Errorf("model = %q", merged.Model.Value)
	}
	if merged.CalibrationDate != "2024-01-10" || merged.IssueDate != "2024-01-12" {
		t.Errorf("dates = %q / %q", merged.CalibrationDate, merged.IssueDate)
	}
	if len(merged.SourceFiles) != 2 || merged.SourceFiles[0] != "a1.pdf" || merged.SourceFiles[1] != "a2.pdf" {
		t.Errorf("sourceFiles = %v, want submission order", merged.SourceFiles)
	}

	if out[1].SerialNumber.Value != "ZZZ999" {
		t.Errorf("second record serial = %q, want ZZZ999", out[1].SerialNumber.Value)
	}
}

func TestProcessAllDeterministicOrder(t *testing.T) {
	// Extraction runs on a worker pool, but the fold must follow submission
	// order regardless of which worker finishes first.
	src := stubSource{"a1.pdf": certA1, "a2.pdf": certA2, "b.pdf": certB}
	files := []InputFile{
		{Path: "b.pdf", OriginalName: "b.pdf"},
		{Path: "a2.pdf", OriginalName: "a2.pdf"},
		{Path: "a1.pdf", OriginalName: "a1.pdf"},
	}

	for range 10 {
		out := newTestProcessor(src, 5).ProcessAll(context.Background(), files)
		if len(out) != 2 {
			t.Fatalf("got %d records, want 2", len(out))
		}
		if out[0].SerialNumber.Value != "ZZZ999" || out[1].SerialNumber.Value != "ABC123" {
			t.Fatalf("order = [%s %s], want [ZZZ999 ABC123]",
				out[0].SerialNumber.Value, out[1].SerialNumber.Value)
		}
		if got := out[1].SourceFiles; len(got) != 2 || got[0] != "a2.pdf" || got[1] != "a1.pdf" {
			t.Fatalf("sourceFiles = %v, want [a2.pdf a1.pdf]", got)
		}
	}
}

func TestProcessAllSkipsFailedFiles(t *testing.T) {
	src := stubSource{"ok.pdf": certB}
	p := newTestProcessor(src, 2)

	files := []InputFile{
		{Path: "broken.pdf", OriginalName: "broken.pdf"},
		{Path: "ok.pdf", OriginalName: "ok.pdf"},
	}
	out := p.ProcessAll(context.Background(), files)
	if len(out) != 1 {
		t.Fatalf("got %d records, want 1 (failed file skipped)", len(out))
	}
	if out[0].SerialNumber.Value != "ZZZ999" {
		t.Errorf("serial = %q", out[0].SerialNumber.Value)
	}
}

func TestProcessAllMergesByIdentificationWithoutSerial(t *testing.T) {
	// No serial anywhere: the merge key falls back to identification, here
	// derived from the file name tag shared by both scans.
	blank := "sem nenhum campo rotulado\n"
	src := stubSource{"u1.pdf": blank, "u2.pdf": blank}
	p := newTestProcessor(src, 2)

	files := []InputFile{
		{Path: "u1.pdf", OriginalName: "TAG-9 frente.pdf"},
		{Path: "u2.pdf", OriginalName: "TAG-9 verso.pdf"},
	}
	out := p.ProcessAll(context.Background(), files)
	if len(out) != 1 {
		t.Fatalf("got %d records, want 1", len(out))
	}
	if out[0].Identification.Value != "TAG-9" {
		t.Errorf("identification = %q, want TAG-9", out[0].Identification.Value)
	}
	if got := out[0].SourceFiles; len(got) != 2 {
		t.Errorf("sourceFiles = %v, want both scans", got)
	}
}
