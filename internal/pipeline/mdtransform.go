package pipeline

import "regexp"

// Line ending normalization.
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// NormalizeLineEndings converts \r\n and \r to \n.
// The block classifier splits on \n; without this a CRLF document would
// carry a trailing \r into every block's text.
func NormalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}
