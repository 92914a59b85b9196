package extract

import (
	"regexp"
	"strings"
	"time"
)

var (
	// Numeric day-first: 05/08/2024, 5-8-24, 05.08.2024.
	dateDayFirstRE = regexp.MustCompile(`\b(\d{1,2})[-/.](\d{1,2})[-/.](\d{2,4})\b`)
	// Numeric year-first: 2024/08/05.
	dateYearFirstRE = regexp.MustCompile(`\b(\d{4})[-/.](\d{1,2})[-/.](\d{1,2})\b`)
	// Textual: 12 Jan 2024, 5 September 23.
	dateTextualRE = regexp.MustCompile(`(?i)\b(\d{1,2})\s+(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+(\d{2,4})\b`)
)

var monthNumbers = map[string]string{
	"jan": "01", "feb": "02", "mar": "03", "apr": "04", "may": "05", "jun": "06",
	"jul": "07", "aug": "08", "sep": "09", "oct": "10", "nov": "11", "dec": "12",
}

// Date returns the first recognizable invoice date normalized to
// YYYY-MM-DD. Patterns are tried in order: numeric day-first, numeric
// year-first, then textual month. Ambiguous all-numeric matches resolve by
// which group is 4 digits wide; matches where neither side is a 4-digit
// year are skipped. When nothing matches, the current calendar date (UTC)
// is returned.
func Date(text string) string {
	if m := dateDayFirstRE.FindStringSubmatch(text); m != nil {
		if len(m[3]) == 4 {
			return m[3] + "-" + pad2(m[2]) + "-" + pad2(m[1])
		}
	}

	if m := dateYearFirstRE.FindStringSubmatch(text); m != nil {
		return m[1] + "-" + pad2(m[2]) + "-" + pad2(m[3])
	}

	if m := dateTextualRE.FindStringSubmatch(text); m != nil {
		day := pad2(m[1])
		month := monthNumbers[strings.ToLower(m[2])[:3]]
		year := m[3]
		if len(year) == 2 {
			year = "20" + year
		}
		return year + "-" + month + "-" + day
	}

	return time.Now().UTC().Format("2006-01-02")
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
