package extract

import (
	"regexp"
	"strings"
)

// knownMerchants is a lexicon of common Indian merchant brand names,
// matched case-insensitively against the top of the document.
var knownMerchants = []string{
	"swiggy", "zomato", "amazon", "flipkart", "myntra", "bigbasket",
	"dunzo", "grofers", "blinkit", "uber", "ola", "paytm", "phonepe",
	"dominos", "pizza hut", "kfc", "mcdonalds", "starbucks",
}

var (
	fourDigitRunRE = regexp.MustCompile(`\d{4}`)
	punctuationRE  = regexp.MustCompile(`[^\w\s]`)
)

// Merchant guesses the merchant name. Priority order:
//  1. a known brand name in the first 10 non-blank lines, title-cased;
//  2. the first of the top 5 lines that is 4-49 characters long and has no
//     4-digit run (a date or amount line would), with punctuation stripped;
//  3. "Unknown Merchant".
func Merchant(text string) string {
	lines := splitLines(text)

	for _, line := range head(lines, 10) {
		lower := strings.ToLower(line)
		for _, m := range knownMerchants {
			if strings.Contains(lower, m) {
				return titleCase(m)
			}
		}
	}

	for _, line := range head(lines, 5) {
		if len(line) > 3 && len(line) < 50 && !fourDigitRunRE.MatchString(line) {
			return punctuationRE.ReplaceAllString(line, "")
		}
	}

	return "Unknown Merchant"
}

func head(lines []string, n int) []string {
	if len(lines) < n {
		return lines
	}
	return lines[:n]
}
