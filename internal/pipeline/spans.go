package pipeline

import "strings"

// SpanStyle is the inline formatting applied to a span.
type SpanStyle uint8

const (
	SpanPlain SpanStyle = iota
	SpanBold
	SpanItalic
	SpanCode
)

// String returns the style name for test failure messages.
func (s SpanStyle) String() string {
	switch s {
	case SpanPlain:
		return "plain"
	case SpanBold:
		return "bold"
	case SpanItalic:
		return "italic"
	case SpanCode:
		return "code"
	}
	return "unknown"
}

// Span is an inline-formatted fragment of a paragraph line. Spans are
// ordered and non-overlapping; concatenating their Text reproduces the
// source line with only the delimiter characters removed.
type Span struct {
	Text  string
	Style SpanStyle
}

// ParseSpans splits a paragraph line into styled spans for **bold**,
// *italic* and `inline code`.
//
// Single left-to-right scan. At each delimiter candidate the longest
// closable delimiter wins, so "**" is consumed as bold before its inner
// asterisks can be read as italics. An opener with no closer on the line
// is literal text. Delimiters are ASCII, so byte scanning is UTF-8 safe.
func ParseSpans(line string) []Span {
	var spans []Span
	var plain strings.Builder

	flush := func() {
		if plain.Len() > 0 {
			spans = append(spans, Span{Text: plain.String(), Style: SpanPlain})
			plain.Reset()
		}
	}

	i := 0
	for i < len(line) {
		if strings.HasPrefix(line[i:], "**") {
			if end := strings.Index(line[i+2:], "**"); end >= 0 {
				flush()
				spans = append(spans, Span{Text: line[i+2 : i+2+end], Style: SpanBold})
				i += end + 4
				continue
			}
			// No closing "**": the first asterisk may still pair with a
			// later single one, handled below.
		}

		switch line[i] {
		case '*':
			if end := strings.IndexByte(line[i+1:], '*'); end >= 0 {
				flush()
				spans = append(spans, Span{Text: line[i+1 : i+1+end], Style: SpanItalic})
				i += end + 2
				continue
			}
		case '`':
			if end := strings.IndexByte(line[i+1:], '`'); end >= 0 {
				flush()
				spans = append(spans, Span{Text: line[i+1 : i+1+end], Style: SpanCode})
				i += end + 2
				continue
			}
		}

		plain.WriteByte(line[i])
		i++
	}
	flush()

	// A line with no formatting is a single plain span.
	if spans == nil {
		spans = []Span{{Text: line, Style: SpanPlain}}
	}

	return spans
}

// JoinSpanText concatenates the text of all spans, ignoring styles.
// Used by tests to verify the no-character-loss invariant.
func JoinSpanText(spans []Span) string {
	var b strings.Builder
	for _, s := range spans {
		b.WriteString(s.Text)
	}
	return b.String()
}
