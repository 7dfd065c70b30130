package certificate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Portuguese three-letter month abbreviations for the DD-mmm-YY form.
var monthAbbrev = map[string]string{
	"jan": "01", "fev": "02", "mar": "03", "abr": "04",
	"mai": "05", "jun": "06", "jul": "07", "ago": "08",
	"set": "09", "out": "10", "nov": "11", "dez": "12",
}

var reSlashDate = regexp.MustCompile(`(\d{2}/\d{2}/\d{4})`)

// Days per month, treating February as 29 regardless of year.
var daysInMonth = [12]int{31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// ResolveDate tries each labeled pattern in order and normalizes the first
// capture to YYYY-MM-DD. Two-digit years are prefixed with "20". A capture
// in neither known form is returned as matched. Empty string means absent.
func ResolveDate(text string, patterns []*regexp.Regexp) string {
	for _, re := range patterns {
		m := re.FindStringSubmatch(text)
		if m == nil || len(m) < 2 {
			continue
		}
		raw := strings.TrimSpace(m[1])
		if iso, ok := normalizeDate(raw); ok {
			return iso
		}
		return raw
	}
	return ""
}

func normalizeDate(raw string) (string, bool) {
	if strings.Contains(raw, "/") {
		parts := strings.Split(raw, "/")
		if len(parts) != 3 {
			return "", false
		}
		day, month, year := parts[0], parts[1], parts[2]
		if len(year) == 2 {
			year = "20" + year
		}
		return fmt.Sprintf("%s-%s-%s", year, pad2(month), pad2(day)), true
	}
	if strings.Contains(raw, "-") {
		parts := strings.Split(raw, "-")
		if len(parts) != 3 {
			return "", false
		}
		day, year := parts[0], parts[2]
		name := strings.ToLower(parts[1])
		if len(name) > 3 {
			name = name[:3]
		}
		month, ok := monthAbbrev[name]
		if !ok {
			return "", false
		}
		if len(year) == 2 {
			year = "20" + year
		}
		return fmt.Sprintf("%s-%s-%s", year, month, pad2(day)), true
	}
	return "", false
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

// validDate reports whether a DD/MM/YYYY token is a plausible calendar date.
func validDate(s string) bool {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return false
	}
	day, err1 := strconv.Atoi(parts[0])
	month, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return false
	}
	if _, err := strconv.Atoi(parts[2]); err != nil {
		return false
	}
	return month >= 1 && month <= 12 && day >= 1 && day <= daysInMonth[month-1]
}

func slashToISO(s string) string {
	parts := strings.Split(s, "/")
	return fmt.Sprintf("%s-%s-%s", parts[2], parts[1], parts[0])
}

// aggressiveDate recovers a date when no labeled pattern matched, which
// happens when the text layer separates labels from values. It scans every
// DD/MM/YYYY token with its offset, drops calendar-invalid ones, and:
//  1. returns the most frequent date when it repeats at least minFreq times
//     (the calibration date tends to repeat across header and body);
//  2. otherwise returns the first valid date after a "data da <context>"
//     anchor phrase;
//  3. otherwise falls back to the most frequent date even as a singleton.
//
// Empty string means no valid date exists at all.
func aggressiveDate(text, context string, minFreq int) string {
	type hit struct {
		date string
		pos  int
	}
	var hits []hit
	for _, loc := range reSlashDate.FindAllStringSubmatchIndex(text, -1) {
		hits = append(hits, hit{date: text[loc[2]:loc[3]], pos: loc[0]})
	}
	if len(hits) == 0 {
		return ""
	}

	counts := make(map[string]int)
	var order []string
	for _, h := range hits {
		if !validDate(h.date) {
			continue
		}
		if counts[h.date] == 0 {
			order = append(order, h.date)
		}
		counts[h.date]++
	}
	if len(order) == 0 {
		return ""
	}

	// Ties break toward first appearance.
	mostCommon, freq := "", 0
	for _, d := range order {
		if counts[d] > freq {
			mostCommon, freq = d, counts[d]
		}
	}
	if freq >= minFreq {
		return slashToISO(mostCommon)
	}

	anchor := regexp.MustCompile(`(?i)data\s+d[ae]\s+` + context)
	if loc := anchor.FindStringIndex(text); loc != nil {
		for _, h := range hits {
			if h.pos > loc[1] && validDate(h.date) {
				return slashToISO(h.date)
			}
		}
	}

	return slashToISO(mostCommon)
}
