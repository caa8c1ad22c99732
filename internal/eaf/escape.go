package eaf

import "strings"

// CleanText drops characters that cannot appear in XML 1.0 output:
// C0 controls other than tab, line feed and carriage return, and DEL.
// Markup characters are escaped later by encoding/xml.
func CleanText(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\t', r == '\n', r == '\r':
			return r
		case r < 0x20, r == 0x7f:
			return -1
		}
		return r
	}, s)
}
