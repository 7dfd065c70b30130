package pdftext

import "regexp"

// Signature of a PDF text layer that interleaves label glyphs with value
// glyphs out of order, e.g. "033310///000676//22/0202025255". Narrow and
// empirically tuned; ordinary prose never matches.
var reCorrupted = regexp.MustCompile(`\d{3,}///\d{3,}//\d{2}/\d{6,}`)

// LooksCorrupted reports whether extracted text carries the corrupted
// date-run signature, meaning the structured text layer cannot be trusted
// on its own.
func LooksCorrupted(text string) bool {
	return reCorrupted.MatchString(text)
}
