package certificate

import (
	"regexp"

	"github.com/Idelcio/calibration-extractor/internal/entity"
)

// Config holds the tunable extraction thresholds. Both defaults come from
// observation of real certificate sets, not from any derivation; they are
// exposed here rather than hard-coded.
type Config struct {
	// DispatchThreshold is how many vendor indicators must match before the
	// specialized extractor is chosen. Default 2.
	DispatchThreshold int
	// DateFreqThreshold is how often a date must repeat before the
	// aggressive resolver trusts it by majority vote. Default 2.
	DateFreqThreshold int
}

func (c Config) withDefaults() Config {
	if c.DispatchThreshold <= 0 {
		c.DispatchThreshold = 2
	}
	if c.DateFreqThreshold <= 0 {
		c.DateFreqThreshold = 2
	}
	return c
}

// Indicators of the Gmetro layout: laboratory name, accreditation body,
// certificate code shape. Scored independently; a couple of matches is
// strong evidence, a single one is routinely a false positive (e.g. another
// lab's certificate merely citing the accreditation body).
var gmetroIndicators = []*regexp.Regexp{
	regexp.MustCompile(`(?i)gmetro`),
	regexp.MustCompile(`(?i)cgcre`),
	regexp.MustCompile(`\bGMB\d+/\d+\b`),
}

// formatExtractor turns certificate text into one instrument record.
type formatExtractor interface {
	extract(text, originalName string) entity.InstrumentRecord
}

// Dispatcher picks the extraction path for a certificate's text.
type Dispatcher struct {
	cfg     Config
	generic *GenericExtractor
	gmetro  *GmetroExtractor
}

// NewDispatcher creates a dispatcher with defaulted thresholds.
func NewDispatcher(cfg Config) *Dispatcher {
	cfg = cfg.withDefaults()
	return &Dispatcher{
		cfg:     cfg,
		generic: &GenericExtractor{cfg: cfg},
		gmetro:  &GmetroExtractor{cfg: cfg},
	}
}

// Select scores the vendor indicators and routes to the specialized
// extractor at or above the threshold, otherwise to the generic one.
func (d *Dispatcher) Select(text string) formatExtractor {
	score := 0
	for _, re := range gmetroIndicators {
		if re.MatchString(text) {
			score++
		}
	}
	if score >= d.cfg.DispatchThreshold {
		return d.gmetro
	}
	return d.generic
}
