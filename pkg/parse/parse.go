// Package parse extracts structured signals from free-form model replies.
package parse

import (
	"strconv"
	"unicode"
)

// LeadingInt returns the first integer found in text. Model replies wrap the
// number in arbitrary prose ("I would rate this a 7.") so the scan looks for
// the first digit run rather than parsing from position zero. The second
// return is false when text contains no digits; each call site documents its
// own fallback for that case.
func LeadingInt(text string) (int, bool) {
	start := -1
	for i, r := range text {
		if unicode.IsDigit(r) {
			start = i
			break
		}
	}
	if start == -1 {
		return 0, false
	}

	end := start
	for end < len(text) && text[end] >= '0' && text[end] <= '9' {
		end++
	}

	n, err := strconv.Atoi(text[start:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
