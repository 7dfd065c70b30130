package certificate

import "github.com/Idelcio/calibration-extractor/internal/entity"

// mergeKey returns the identity used to decide that two records describe
// the same physical instrument: serial number first, identification tag as
// fallback. ok is false when neither is usable; such records are never
// merged with each other, a missing key cannot establish identity.
func mergeKey(rec entity.InstrumentRecord) (string, bool) {
	if !rec.SerialNumber.IsBlank() {
		return rec.SerialNumber.Value, true
	}
	if !rec.Identification.IsBlank() {
		return rec.Identification.Value, true
	}
	return "", false
}

// Merge folds incoming into existing for two records sharing a merge key.
// First non-empty value wins: incoming only fills gaps, it never overwrites
// a concrete value, so the fold order decides conflicts. Measurements are
// concatenated without dedup, so a duplicate certificate duplicates them.
// Source files accumulate in first-appearance order.
func Merge(existing, incoming entity.InstrumentRecord) entity.InstrumentRecord {
	merged := existing

	merged.Identification = existing.Identification.Or(incoming.Identification)
	merged.Name = existing.Name.Or(incoming.Name)
	merged.Manufacturer = existing.Manufacturer.Or(incoming.Manufacturer)
	merged.Model = existing.Model.Or(incoming.Model)
	merged.SerialNumber = existing.SerialNumber.Or(incoming.SerialNumber)
	merged.Description = existing.Description.Or(incoming.Description)
	merged.Department = existing.Department.Or(incoming.Department)
	merged.Responsible = existing.Responsible.Or(incoming.Responsible)
	merged.InstrumentFamily = existing.InstrumentFamily.Or(incoming.InstrumentFamily)
	merged.DevelopmentSeries = existing.DevelopmentSeries.Or(incoming.DevelopmentSeries)
	merged.Criticality = existing.Criticality.Or(incoming.Criticality)
	merged.CalibrationReason = existing.CalibrationReason.Or(incoming.CalibrationReason)
	merged.Status = existing.Status.Or(incoming.Status)

	if merged.CalibrationPeriodMonths == 0 {
		merged.CalibrationPeriodMonths = incoming.CalibrationPeriodMonths
	}
	if merged.Quantity == 0 {
		merged.Quantity = incoming.Quantity
	}
	if merged.CalibrationDate == "" {
		merged.CalibrationDate = incoming.CalibrationDate
	}
	if merged.IssueDate == "" {
		merged.IssueDate = incoming.IssueDate
	}
	if merged.Specialized == nil {
		merged.Specialized = incoming.Specialized
	}

	merged.Measurements = append(merged.Measurements, incoming.Measurements...)
	for _, src := range incoming.SourceFiles {
		if !containsString(merged.SourceFiles, src) {
			merged.SourceFiles = append(merged.SourceFiles, src)
		}
	}
	return merged
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
