package utils

import "unicode/utf8"

// Truncate silently caps s at max characters. The gateway rejects
// over-long fields, so values are clipped before transmission rather than
// erroring. Counting runes rather than bytes keeps Bengali names intact:
// a byte slice would cut mid-rune and ship invalid UTF-8.
func Truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}
