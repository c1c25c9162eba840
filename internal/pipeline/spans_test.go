package pipeline

import "testing"

func TestParseSpans(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want []Span
	}{
		{
			name: "plain line is a single span",
			line: "just words",
			want: []Span{{Text: "just words", Style: SpanPlain}},
		},
		{
			name: "empty line is a single empty span",
			line: "",
			want: []Span{{Text: "", Style: SpanPlain}},
		},
		{
			name: "bold run",
			line: "a **strong** b",
			want: []Span{
				{Text: "a ", Style: SpanPlain},
				{Text: "strong", Style: SpanBold},
				{Text: " b", Style: SpanPlain},
			},
		},
		{
			name: "italic run",
			line: "a *soft* b",
			want: []Span{
				{Text: "a ", Style: SpanPlain},
				{Text: "soft", Style: SpanItalic},
				{Text: " b", Style: SpanPlain},
			},
		},
		{
			name: "inline code run",
			line: "call `df.head()` first",
			want: []Span{
				{Text: "call ", Style: SpanPlain},
				{Text: "df.head()", Style: SpanCode},
				{Text: " first", Style: SpanPlain},
			},
		},
		{
			name: "double asterisk wins over single",
			line: "**a** and *b*",
			want: []Span{
				{Text: "a", Style: SpanBold},
				{Text: " and ", Style: SpanPlain},
				{Text: "b", Style: SpanItalic},
			},
		},
		{
			name: "unclosed asterisk stays literal",
			line: "5 * 3 = 15",
			want: []Span{{Text: "5 * 3 = 15", Style: SpanPlain}},
		},
		{
			name: "unclosed backtick stays literal",
			line: "a `b",
			want: []Span{{Text: "a `b", Style: SpanPlain}},
		},
		{
			name: "adjacent runs without separator",
			line: "**a**`b`",
			want: []Span{
				{Text: "a", Style: SpanBold},
				{Text: "b", Style: SpanCode},
			},
		},
		{
			name: "lone double asterisk pairs as empty italic",
			line: "a ** b",
			want: []Span{
				{Text: "a ", Style: SpanPlain},
				{Text: "", Style: SpanItalic},
				{Text: " b", Style: SpanPlain},
			},
		},
		{
			name: "earlier delimiter consumes a later one",
			line: "*a `b` c*",
			want: []Span{{Text: "a `b` c", Style: SpanItalic}},
		},
		{
			name: "bold markers inside italic pair up as italics",
			line: "*a **b** c*",
			want: []Span{
				{Text: "a ", Style: SpanItalic},
				{Text: "b", Style: SpanItalic},
				{Text: " c", Style: SpanItalic},
			},
		},
		{
			name: "utf8 text around delimiters",
			line: "résumé **naïve** café",
			want: []Span{
				{Text: "résumé ", Style: SpanPlain},
				{Text: "naïve", Style: SpanBold},
				{Text: " café", Style: SpanPlain},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ParseSpans(tt.line)
			if len(got) != len(tt.want) {
				t.Fatalf("ParseSpans(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("span %d = %v %q, want %v %q",
						i, got[i].Style, got[i].Text, tt.want[i].Style, tt.want[i].Text)
				}
			}
		})
	}
}

// Concatenating span text must reproduce the line minus its delimiters:
// styling never drops or reorders content characters.
func TestParseSpans_NoCharacterLoss(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line string
		want string
	}{
		{line: "no formatting at all", want: "no formatting at all"},
		{line: "**a** and *b*", want: "a and b"},
		{line: "x `y` z", want: "x y z"},
		{line: "a ** b", want: "a  b"},
		{line: "**bold** `code` *italic*", want: "bold code italic"},
		{line: "*a **b** c*", want: "a b c"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			t.Parallel()

			if got := JoinSpanText(ParseSpans(tt.line)); got != tt.want {
				t.Errorf("JoinSpanText(ParseSpans(%q)) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}
