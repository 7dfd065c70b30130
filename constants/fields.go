package constants

// NotInformed is the sentinel emitted for textual fields whose patterns
// matched nothing. It only appears in the serialized representation;
// internal code checks presence through entity.Field.
const NotInformed = "n/i"

// Record defaults applied when a certificate carries no explicit value.
const (
	DefaultCalibrationPeriodMonths = 12
	DefaultQuantity                = 1
	DefaultStatus                  = "Sem Calibração"
	DefaultCalibrationReason       = "Calibração Periódica"
)

// Measurement defaults.
const (
	DefaultProcessTolerance = "0,20"
	DefaultDecisionRuleID   = 1
)
