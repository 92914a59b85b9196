// Package gstin validates Indian GST identification numbers.
//
// A GSTIN is 15 characters: a 2-digit state code, the 10-character PAN of
// the registrant, an entity character, the literal 'Z', and a base-36
// check character. The check character is fixed by the national standard
// and is computed here exactly as specified.
package gstin

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// alphabet is the 36-symbol numeral system used by the checksum.
const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

var (
	structureRE = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z]{1}[1-9A-Z]{1}Z[0-9A-Z]{1}$`)
	panRE       = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]{1}$`)
)

// Validate reports whether id is a structurally valid GSTIN with a correct
// check character. Malformed input is an expected case, never an error:
// any violation yields false.
func Validate(id string) bool {
	clean := normalize(id)
	if len(clean) != 15 {
		return false
	}
	if !structureRE.MatchString(clean) {
		return false
	}
	state, err := strconv.Atoi(clean[:2])
	if err != nil || state < 1 || state > 37 {
		return false
	}
	// PAN portion (characters 3-12) is re-checked on its own.
	if !panRE.MatchString(clean[2:12]) {
		return false
	}
	return clean[14] == checksum(clean[:14])
}

// checksum computes the base-36 check character over the first 14
// characters. Each code point is multiplied by 2, the product reduced to
// the sum of its base-36 digits, and the reductions accumulated; the check
// code point is (36 - sum mod 36) mod 36.
func checksum(s string) byte {
	const factor = 2
	sum := 0
	for i := len(s) - 1; i >= 0; i-- {
		code := strings.IndexByte(alphabet, s[i])
		product := factor * code
		sum += product/len(alphabet) + product%len(alphabet)
	}
	return alphabet[(len(alphabet)-sum%len(alphabet))%len(alphabet)]
}

// normalize strips all whitespace and uppercases.
func normalize(id string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToUpper(r)
	}, id)
}

// Format renders a GSTIN in display grouping, e.g. "29 AABCT 1332L 1Z U".
// Input that is not 15 characters after cleanup is returned unchanged.
func Format(id string) string {
	if id == "" {
		return ""
	}
	clean := normalize(id)
	if len(clean) != 15 {
		return id
	}
	return strings.Join([]string{clean[0:2], clean[2:7], clean[7:12], clean[12:14], clean[14:]}, " ")
}
