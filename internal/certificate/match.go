package certificate

import (
	"regexp"
	"strings"

	"github.com/Idelcio/calibration-extractor/internal/entity"
)

// Each field is resolved by an ordered pattern table, most specific first.
// Later, more permissive patterns exist to catch looser formatting once the
// stricter ones (which dodge known false-positive contexts) have failed.
// Tables are compiled once at package init.

func compilePatterns(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(exprs))
	for _, expr := range exprs {
		out = append(out, regexp.MustCompile(`(?im)`+expr))
	}
	return out
}

// Placeholder tokens certificates print for empty form fields.
var placeholders = map[string]struct{}{
	"":    {},
	"-":   {},
	"--":  {},
	"---": {},
}

// MatchField tries each pattern in order; the first whose capture group
// trims to a real value wins. A match whose capture is a placeholder keeps
// the cascade going. No match at all yields an absent Field.
func MatchField(text string, patterns []*regexp.Regexp) entity.Field {
	for _, re := range patterns {
		m := re.FindStringSubmatch(text)
		if m == nil || len(m) < 2 {
			continue
		}
		value := strings.TrimSpace(m[1])
		if _, empty := placeholders[value]; empty {
			continue
		}
		return entity.NewField(value)
	}
	return entity.Field{}
}
