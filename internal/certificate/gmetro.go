package certificate

import (
	"regexp"

	"github.com/Idelcio/calibration-extractor/internal/entity"
)

// Gmetro certificates use a tabular layout without the "label: value"
// colon convention, and print receipt, calibration and issue dates as a
// bare sequence right after the certificate number.
var (
	gmetroCertificatePatterns = compilePatterns(
		`N[°º]\s+do\s+Certificado\s+([A-Z0-9/]+)`,
		`Certificado\s+N[°º]?\s*:?\s*([A-Z0-9/]+)`,
		`\b(GMB\d+/\d+)\b`,
	)
	gmetroNamePatterns = compilePatterns(
		`Descrição\s*:?\s*([^\n]+)`,
		`Objeto\s*:?\s*([^\n]+)`,
		`Instrumento\s*:?\s*([^\n]+)`,
	)
	gmetroManufacturerPatterns = compilePatterns(
		`Fabricante\s*:?\s+([^\n]+)`,
	)
	gmetroModelPatterns = compilePatterns(
		`Modelo\s*:?\s+([^\n]+)`,
	)
	gmetroSerialPatterns = compilePatterns(
		`N[°º]\s+de\s+S[eé]rie\s*:?\s+([^\s\n]+)`,
		`S[eé]rie\s*:?\s+([^\s\n]+)`,
	)
	gmetroClientPatterns = compilePatterns(
		`Cliente\s*:?\s+([^\n]+)`,
	)
	gmetroAddressPatterns = compilePatterns(
		`Endere[çc]o\s*:?\s+([^\n]+)`,
	)
	gmetroReceivedDatePatterns = compileDatePatterns(
		`Data\s+Recebimento\s*:?\s*(\d{2}/\d{2}/\d{4})`,
		`Data\s+de\s+Recebimento\s*:?\s*(\d{2}/\d{2}/\d{4})`,
	)
	gmetroCalibrationDatePatterns = compileDatePatterns(
		`Data\s+da\s+Calibra[çc][ãa]o\s*:?\s*(\d{2}/\d{2}/\d{4})`,
	)
	gmetroIssueDatePatterns = compileDatePatterns(
		`Data\s+da\s+Emiss[ãa]o\s*:?\s*(\d{2}/\d{2}/\d{4})`,
	)
	gmetroLocationPatterns = compilePatterns(
		`Local\s+da\s+Calibra[çc][ãa]o\s*:?\s+([^\n]+)`,
	)
	gmetroSoftwarePatterns = compilePatterns(
		`Software\s*:?\s+([^\n]+)`,
	)
	gmetroConditionPatterns = compilePatterns(
		`Condi[çc][ãa]o\s+(?:do\s+item|ambiental)?\s*:?\s+([^\n]+)`,
	)
	gmetroLabPatterns = compilePatterns(
		`(GMETRO[^\n]*)`,
	)
	gmetroUnitPatterns = compilePatterns(
		`Unidade\s*:?\s+([^\s\n]+)`,
	)
	gmetroResolutionPatterns = compilePatterns(
		`Resolu[çc][ãa]o\s*:?\s+(\d+(?:[,.]\d+)?\s*[^\s\n]*)`,
	)
)

// GmetroExtractor handles the Gmetro laboratory layout. Same record shape
// as the generic path plus the vendor-only extras payload.
type GmetroExtractor struct {
	cfg Config
}

func (g *GmetroExtractor) extract(text, originalName string) entity.InstrumentRecord {
	rec := entity.NewInstrumentRecord()

	certificate := MatchField(text, gmetroCertificatePatterns)
	name := MatchField(text, gmetroNamePatterns)

	identification := certificate
	if !identification.Set && name.Set {
		identification = name
	}
	if !identification.Set {
		identification = entity.NewField(filenameTag(originalName))
	}

	rec.Identification = identification
	rec.Name = name
	rec.Manufacturer = MatchField(text, gmetroManufacturerPatterns)
	rec.Model = MatchField(text, gmetroModelPatterns)
	rec.SerialNumber = MatchField(text, gmetroSerialPatterns)
	rec.Description = name
	rec.InstrumentFamily = name
	rec.Responsible = MatchField(text, gmetroClientPatterns)
	rec.Department = MatchField(text, gmetroAddressPatterns)

	received := ResolveDate(text, gmetroReceivedDatePatterns)
	rec.CalibrationDate = ResolveDate(text, gmetroCalibrationDatePatterns)
	rec.IssueDate = ResolveDate(text, gmetroIssueDatePatterns)

	// Labeled dates missing: the layout prints the three dates inline after
	// the certificate number, in receipt/calibration/issue order.
	if received == "" || rec.CalibrationDate == "" || rec.IssueDate == "" {
		seq := inlineDateSequence(text, gmetroCertificatePatterns[0])
		if received == "" && len(seq) > 0 {
			received = seq[0]
		}
		if rec.CalibrationDate == "" && len(seq) > 1 {
			rec.CalibrationDate = seq[1]
		}
		if rec.IssueDate == "" && len(seq) > 2 {
			rec.IssueDate = seq[2]
		}
	}
	if rec.CalibrationDate == "" {
		rec.CalibrationDate = aggressiveDate(text, "calibra", g.cfg.DateFreqThreshold)
	}
	if rec.IssueDate == "" {
		rec.IssueDate = aggressiveDate(text, "emiss", g.cfg.DateFreqThreshold)
	}

	rec.Measurements = ExtractMeasurements(text)
	// The vendor table is more reliable than the free-text section when it
	// names unit/resolution explicitly.
	if unit := MatchField(text, gmetroUnitPatterns); unit.Set {
		rec.Measurements[0].Unit = unit
	}
	if resolution := MatchField(text, gmetroResolutionPatterns); resolution.Set {
		rec.Measurements[0].Resolution = resolution
	}

	lab := MatchField(text, gmetroLabPatterns)
	if !lab.Set {
		lab = entity.NewField("GMETRO")
	}
	rec.Specialized = &entity.SpecializedExtras{
		ReceivedDate:        received,
		CalibrationLocation: MatchField(text, gmetroLocationPatterns),
		Software:            MatchField(text, gmetroSoftwarePatterns),
		Condition:           MatchField(text, gmetroConditionPatterns),
		LaboratoryName:      lab,
	}
	return rec
}

// inlineDateSequence returns the valid DD/MM/YYYY tokens that follow the
// certificate number, normalized to ISO, in order of appearance.
func inlineDateSequence(text string, certPattern *regexp.Regexp) []string {
	start := 0
	if loc := certPattern.FindStringIndex(text); loc != nil {
		start = loc[1]
	}
	var dates []string
	for _, loc := range reSlashDate.FindAllStringIndex(text, -1) {
		if loc[0] < start {
			continue
		}
		token := text[loc[0]:loc[1]]
		if !validDate(token) {
			continue
		}
		dates = append(dates, slashToISO(token))
		if len(dates) == 3 {
			break
		}
	}
	return dates
}
