package certificate

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/Idelcio/calibration-extractor/internal/entity"
)

// Pattern tables for the generic certificate layout. Order matters: the
// stricter variants come first (e.g. "Cliente :" with spacing before the
// loose "Cliente:" forms that can swallow "Identificação do Cliente").
var (
	namePatterns = compilePatterns(
		`Descrição:\s*([^\n]+?)(?:\s+Fabricante|$)`,
		`Instrumento:\s*([^\n]+)`,
		`Denominação:\s*([^\n]+)`,
		`ITEM CALIBRADO:\s*([^\n]+)`,
		`IDENTIFICAÇÃO DO ITEM CALIBRADO:\s*([^\n]+)`,
	)
	identificationPatterns = compilePatterns(
		`Autenticação:\s*([^\n]+)`,
		`Código\s+do\s+indicador:\s*([A-Z0-9\s\-]+?)(?:\s{2,}|Tipo|$)`,
		`Código:\s*([^\n]+)`,
		`Tag:\s*([^\n]+)`,
		`ID:\s*([^\n]+)`,
	)
	manufacturerPatterns = compilePatterns(
		`Fabricante:\s*([^\n]+)`,
		`Manufacturer:\s*([^\n]+)`,
		`Fabricante\s*:\s*([^\n\r]+?)(?:\s+N[°º]|$)`,
	)
	modelPatterns = compilePatterns(
		`Modelo:\s*([^\n]+)`,
		`Model:\s*([^\n]+)`,
		`Modelo\s*:\s*([^\n\r]+?)(?:\s+Fabricante|$)`,
	)
	serialPatterns = compilePatterns(
		`N[°º]\s*(?:de\s+)?Série:\s*([^\n]+)`,
		`Serial:\s*([^\n]+)`,
		`S/N:\s*([^\n]+)`,
		`N[°º]\s+S[eé]rie\s*:\s*([^\s\n\r]+)`,
		`Nº\s+Série\s*:\s*([^\s\n\r]+)`,
	)
	clientPatterns = compilePatterns(
		`Cliente\s+:\s+([^\n]+)`,
		`Contratante:\s*([^\n]+)`,
		`Solicitante:\s*([^\n]+)`,
		`Cliente\s*:\s*([^\n\r]+?)(?:\s*(?:Endere[çc]o|Endere.o))`,
		`Cliente\s*:\s*(.+?)(?:\n)`,
	)
	addressPatterns = compilePatterns(
		`Endereço:\s*([^\n]+)`,
		`Endereco:\s*([^\n]+)`,
		`Local:\s*([^\n]+)`,
		`Endereço\s*:\s*([^\n\r]+?)(?:\s+Cidade|$)`,
		`Endereco\s*:\s*([^\n\r]+?)(?:\s+Cidade|$)`,
	)
	calibrationDatePatterns = compileDatePatterns(
		`Data\s+(?:da\s+)?Calibração:\s*(\d{2}/\d{2}/\d{4})`,
		`Data\s+de\s+Calibração:\s*(\d{2}/\d{2}/\d{4})`,
		`Data\s+da\s+calibra[çc][ãa]o\s*:\s*(\d{2}/\d{2}/\d{4})`,
		`Calibração:\s*(\d{2}/\d{2}/\d{4})`,
		`Data\s+d[ae]\s+calibra\S*o\s*:\s*(\d{2}/\d{2}/\d{4})`,
		`Data\s+da\s+calibra[çc][ãa]o\s*:\s*(\d{1,2}-[a-z]{3}-\d{2})`,
		`calibra[çc][ãa]o\s*:\s*(\d{1,2}-[a-z]{3}-\d{2})`,
	)
	issueDatePatterns = compileDatePatterns(
		`Data\s+(?:da\s+)?Emissão:\s*(\d{2}/\d{2}/\d{4})`,
		`Data\s+de\s+Emissão:\s*(\d{2}/\d{2}/\d{4})`,
		`Data\s+de\s+Emissão\s+do\s+Certificado:\s*(\d{2}/\d{2}/\d{4})`,
		`Emissão:\s*(\d{2}/\d{2}/\d{4})`,
		`Data\s+da\s+emiss[ãa]o\s*:\s*(\d{1,2}-[a-z]{3}-\d{2})`,
		`emiss[ãa]o\s*:\s*(\d{1,2}-[a-z]{3}-\d{2})`,
	)
)

func compileDatePatterns(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(exprs))
	for _, expr := range exprs {
		out = append(out, regexp.MustCompile(`(?i)`+expr))
	}
	return out
}

// GenericExtractor handles the common certificate layout.
type GenericExtractor struct {
	cfg Config
}

func (g *GenericExtractor) extract(text, originalName string) entity.InstrumentRecord {
	rec := entity.NewInstrumentRecord()

	name := MatchField(text, namePatterns)

	identification := MatchField(text, identificationPatterns)
	// No explicit tag: fall back to the instrument name, then to the first
	// token of the file name.
	if !identification.Set && name.Set {
		identification = name
	}
	if !identification.Set {
		identification = entity.NewField(filenameTag(originalName))
	}

	rec.Identification = identification
	rec.Name = name
	rec.Manufacturer = MatchField(text, manufacturerPatterns)
	rec.Model = MatchField(text, modelPatterns)
	rec.SerialNumber = MatchField(text, serialPatterns)
	rec.Description = name
	rec.InstrumentFamily = name
	rec.Responsible = MatchField(text, clientPatterns)
	rec.Department = MatchField(text, addressPatterns)

	rec.CalibrationDate = ResolveDate(text, calibrationDatePatterns)
	if rec.CalibrationDate == "" {
		rec.CalibrationDate = aggressiveDate(text, "calibra", g.cfg.DateFreqThreshold)
	}
	rec.IssueDate = ResolveDate(text, issueDatePatterns)
	if rec.IssueDate == "" {
		rec.IssueDate = aggressiveDate(text, "emiss", g.cfg.DateFreqThreshold)
	}

	rec.Measurements = ExtractMeasurements(text)
	return rec
}

// filenameTag derives an identification tag from the original file name:
// the stem's first whitespace-separated token.
func filenameTag(originalName string) string {
	stem := strings.TrimSuffix(filepath.Base(originalName), filepath.Ext(originalName))
	if fields := strings.Fields(stem); len(fields) > 0 {
		return fields[0]
	}
	return stem
}
