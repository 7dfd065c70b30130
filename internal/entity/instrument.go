package entity

import "github.com/Idelcio/calibration-extractor/constants"

// InstrumentRecord is the canonical description of one physical measuring
// instrument, assembled from one or more calibration certificates.
// Dates are YYYY-MM-DD strings; empty means absent.
type InstrumentRecord struct {
	Identification          Field               `json:"identification"`
	Name                    Field               `json:"name"`
	Manufacturer            Field               `json:"manufacturer"`
	Model                   Field               `json:"model"`
	SerialNumber            Field               `json:"serialNumber"`
	Description             Field               `json:"description"`
	CalibrationPeriodMonths int                 `json:"calibrationPeriodMonths"`
	Department              Field               `json:"department"`
	Responsible             Field               `json:"responsible"`
	InstrumentFamily        Field               `json:"instrumentFamily"`
	DevelopmentSeries       Field               `json:"developmentSeries"`
	Criticality             Field               `json:"criticality"`
	CalibrationReason       Field               `json:"calibrationReason"`
	Status                  Field               `json:"status"`
	Quantity                int                 `json:"quantity"`
	CalibrationDate         string              `json:"calibrationDate,omitempty"`
	IssueDate               string              `json:"issueDate,omitempty"`
	Measurements            []MeasurementRecord `json:"measurements"`
	SourceFiles             []string            `json:"sourceFiles"`
	Specialized             *SpecializedExtras  `json:"specialized,omitempty"`
}

// MeasurementRecord is one calibrated quantity/service (grandeza) on an
// instrument. It has no identity of its own; it lives and dies with its
// parent record.
type MeasurementRecord struct {
	Services            []string `json:"services"`
	ProcessTolerance    Field    `json:"processTolerance"`
	SymmetricTolerance  bool     `json:"symmetricTolerance"`
	Unit                Field    `json:"unit"`
	Resolution          Field    `json:"resolution"`
	AcceptanceCriterion Field    `json:"acceptanceCriterion"`
	DecisionRuleID      int      `json:"decisionRuleId"`
	NominalRange        Field    `json:"nominalRange"`
	NormClass           Field    `json:"normClass"`
	Classification      Field    `json:"classification"`
	UsageRange          Field    `json:"usageRange"`
}

// SpecializedExtras carries the fields only a vendor-specific certificate
// layout provides. Present on a record only when that path ran.
type SpecializedExtras struct {
	ReceivedDate        string `json:"receivedDate,omitempty"`
	CalibrationLocation Field  `json:"calibrationLocation"`
	Software            Field  `json:"software"`
	Condition           Field  `json:"condition"`
	LaboratoryName      Field  `json:"laboratoryName"`
}

// NewInstrumentRecord returns a record with the domain defaults applied.
func NewInstrumentRecord() InstrumentRecord {
	return InstrumentRecord{
		CalibrationPeriodMonths: constants.DefaultCalibrationPeriodMonths,
		Quantity:                constants.DefaultQuantity,
		Status:                  NewField(constants.DefaultStatus),
		CalibrationReason:       NewField(constants.DefaultCalibrationReason),
	}
}

// NewMeasurementRecord returns a measurement with the domain defaults applied.
func NewMeasurementRecord() MeasurementRecord {
	return MeasurementRecord{
		Services:           []string{},
		SymmetricTolerance: true,
		DecisionRuleID:     constants.DefaultDecisionRuleID,
	}
}
