package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/Idelcio/calibration-extractor/internal/entity"
)

var _ Sink = (*JSONWriter)(nil)

// Document is the JSON envelope the import side expects.
type Document struct {
	ExtractedAt      string                    `json:"extractedAt"`
	TotalInstruments int                       `json:"totalInstruments"`
	Instruments      []entity.InstrumentRecord `json:"instruments"`
}

// JSONWriter writes the instrument list as a JSON document, validated
// against the shared schema before anything touches disk.
type JSONWriter struct {
	Path   string
	logger *slog.Logger
	now    func() time.Time
}

func NewJSONWriter(path string, logger *slog.Logger) *JSONWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &JSONWriter{Path: path, logger: logger, now: time.Now}
}

// Save marshals, validates and writes the document.
func (w *JSONWriter) Save(_ context.Context, instruments []entity.InstrumentRecord) error {
	if instruments == nil {
		instruments = []entity.InstrumentRecord{} // empty batch still yields a valid document
	}
	doc := Document{
		ExtractedAt:      w.now().Format(time.RFC3339),
		TotalInstruments: len(instruments),
		Instruments:      instruments,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal instruments: %w", err)
	}
	if err := ValidateAgainstSchema(BuildInstrumentsJSONSchema(), data); err != nil {
		return err
	}
	if err := os.WriteFile(w.Path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", w.Path, err)
	}
	w.logger.Info("export.json.ok", "path", w.Path, "instruments", len(instruments), "bytes", len(data))
	return nil
}

// ValidateAgainstSchema validates "data" against "schemaMap".
func ValidateAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
