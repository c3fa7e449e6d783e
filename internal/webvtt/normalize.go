package webvtt

import "strings"

// normalize rewrites raw input before any cursor-based reading: NUL
// characters become the Unicode replacement character, CRLF pairs collapse
// to a single LF, and remaining lone CRs become LF. CRLF is handled first
// so a pair never turns into two terminators.
func normalize(s string) string {
	s = strings.ReplaceAll(s, "\x00", "\uFFFD")
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return s
}
