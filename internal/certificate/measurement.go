package certificate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Idelcio/calibration-extractor/constants"
	"github.com/Idelcio/calibration-extractor/internal/entity"
)

// Measurement-section patterns. The section is free text; range, resolution
// and unit can each appear in several shapes, including a "Resolução (mm):"
// form where the unit lives in the label instead of the value.
var (
	reUnitInLabel = regexp.MustCompile(`[Rr]esolu[çc][ãa]o\s*\(([^)]+)\)`)
	reRange       = regexp.MustCompile(`(?i)(?:Faixa de|de)\s+(\d+(?:,\d+)?)\s+a\s+(\d+(?:,\d+)?)\s*([°ºCcmMpPaA]+)`)

	reResolutionOf    = regexp.MustCompile(`[Rr]esolução\s+de\s+(\d+(?:[,.]\d+)?)\s*([°ºCcmMpPaA]+)?`)
	reResolutionLabel = regexp.MustCompile(`[Rr]esolu[çc][ãa]o\s*\(([^)]+)\)\s*:\s*(\d+(?:[,.]\d+)?)`)
	reResolutionColon = regexp.MustCompile(`[Rr]esolu[çc][ãa]o:\s*(\d+(?:[,.]\d+)?)\s*([°ºCcmMpPaA]+)?`)

	procedurePatterns = compilePatterns(
		`Procedimento:\s*([^\n]+)`,
		`Procedimento\s+([A-Z0-9]+\s*-[^\n]+)`,
	)
	methodPatterns = compilePatterns(
		`Método:\s*([^\n]+)`,
		`Método\s+([^\n]+)`,
	)
	uncertaintyPatterns = compilePatterns(
		`IE[:\s]+([±\d,.]+)`,
		`Incerteza[:\s]+([±\d,.]+)`,
		`±IE[:\s]+([±\d,.]+)`,
	)
)

type rangeInfo struct {
	nominalRange entity.Field
	resolution   entity.Field
	unit         entity.Field
}

// extractRangeInfo recovers the nominal range, resolution and unit from the
// measurement section.
func extractRangeInfo(text string) rangeInfo {
	var info rangeInfo

	if m := reUnitInLabel.FindStringSubmatch(text); m != nil {
		info.unit = entity.NewField(m[1])
	}

	// Ex: "Faixa de 0 a 300 °C" / "de 0 a 300 mm"
	if m := reRange.FindStringSubmatch(text); m != nil {
		min := strings.ReplaceAll(m[1], ",", ".")
		max := strings.ReplaceAll(m[2], ",", ".")
		unit := m[3]
		info.nominalRange = entity.NewField(fmt.Sprintf("%s a %s %s", min, max, unit))
		info.unit = entity.NewField(unit)
	}

	unitOrSentinel := func() string {
		if info.unit.Set {
			return info.unit.Value
		}
		return constants.NotInformed
	}

	// "Resolução de 0,01 °C"
	if m := reResolutionOf.FindStringSubmatch(text); m != nil {
		value := strings.ReplaceAll(m[1], ",", ".")
		unit := m[2]
		if unit == "" {
			unit = unitOrSentinel()
		}
		info.resolution = entity.NewField(value + " " + unit)
		return info
	}
	// "Resolução (mm): 0,0001" with the unit embedded in the label
	if m := reResolutionLabel.FindStringSubmatch(text); m != nil {
		unit := m[1]
		value := strings.ReplaceAll(m[2], ",", ".")
		info.resolution = entity.NewField(value + " " + unit)
		return info
	}
	// "Resolução: 0,01 °C"
	if m := reResolutionColon.FindStringSubmatch(text); m != nil {
		value := strings.ReplaceAll(m[1], ",", ".")
		unit := m[2]
		if unit == "" {
			unit = unitOrSentinel()
		}
		info.resolution = entity.NewField(value + " " + unit)
	}
	return info
}

// ExtractMeasurements recovers the calibrated quantities from the
// measurement section. The generic layout describes a single grandeza per
// certificate; vendor paths may overwrite unit/resolution afterwards.
func ExtractMeasurements(text string) []entity.MeasurementRecord {
	info := extractRangeInfo(text)

	procedure := MatchField(text, procedurePatterns)
	method := MatchField(text, methodPatterns)
	uncertainty := MatchField(text, uncertaintyPatterns)
	if !uncertainty.Set {
		uncertainty = entity.NewField(constants.DefaultProcessTolerance)
	}

	m := entity.NewMeasurementRecord()
	if procedure.Set {
		m.Services = []string{procedure.Value}
	}
	m.ProcessTolerance = uncertainty
	m.Unit = info.unit
	m.Resolution = info.resolution
	m.NominalRange = info.nominalRange
	m.AcceptanceCriterion = method

	return []entity.MeasurementRecord{m}
}
