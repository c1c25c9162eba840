package pipeline

import (
	"regexp"
	"strings"
)

// Precompiled line classification patterns.
var (
	// Numbered list item: "1. text"
	numberedItemPattern = regexp.MustCompile(`^\d+\.\s`)

	// Image line: ![alt](path), nothing else on the line
	imageLinePattern = regexp.MustCompile(`^!\[(.*)\]\((.*)\)$`)
)

// BlockKind classifies a parsed markdown block.
type BlockKind uint8

const (
	BlockHeading BlockKind = iota
	BlockBullet
	BlockNumbered
	BlockCode
	BlockImage
	BlockTableRow
	BlockBlank
	BlockParagraph
)

// String returns the kind name for test failure messages.
func (k BlockKind) String() string {
	switch k {
	case BlockHeading:
		return "heading"
	case BlockBullet:
		return "bullet"
	case BlockNumbered:
		return "numbered"
	case BlockCode:
		return "code"
	case BlockImage:
		return "image"
	case BlockTableRow:
		return "tableRow"
	case BlockBlank:
		return "blank"
	case BlockParagraph:
		return "paragraph"
	}
	return "unknown"
}

// Block is one classified unit of the source document. Which fields are
// meaningful depends on Kind:
//
//   - BlockHeading: Level (1-4) and Text
//   - BlockBullet, BlockNumbered: Text (marker stripped)
//   - BlockCode: Text (fence content joined by newline)
//   - BlockImage: Alt and Path (chart convention already rewritten)
//   - BlockTableRow: Text (the raw line; cells split by the writer)
//   - BlockBlank: nothing
//   - BlockParagraph: Spans
type Block struct {
	Kind  BlockKind
	Level int
	Text  string
	Alt   string
	Path  string
	Spans []Span
}

// parserState is the code-fence state threaded through the line fold.
// inCodeBlock toggles exactly on fence marker lines; codeBuf is non-empty
// only while inCodeBlock is true.
type parserState struct {
	inCodeBlock bool
	codeBuf     []string
}

// ParseBlocks classifies markdown content line by line into an ordered
// block sequence. chartDir overrides the chart rewrite target for image
// paths (empty = default). Fence markers override every other rule; the
// remaining precedence is heading > bullet > numbered > image > table row >
// blank > paragraph, first match wins.
func ParseBlocks(content, chartDir string) []Block {
	lines := strings.Split(content, "\n")
	blocks := make([]Block, 0, len(lines))

	var st parserState
	for _, line := range lines {
		blocks, st = classifyLine(blocks, st, line, chartDir)
	}

	// A fence left open at EOF still holds report content; flush it
	// rather than drop it.
	if st.inCodeBlock && len(st.codeBuf) > 0 {
		blocks = append(blocks, Block{Kind: BlockCode, Text: strings.Join(st.codeBuf, "\n")})
	}

	return blocks
}

// classifyLine is the transition function of the line fold: it appends zero
// or one block for the line and returns the next parser state.
func classifyLine(blocks []Block, st parserState, line, chartDir string) ([]Block, parserState) {
	// Fence markers toggle code state and are never emitted themselves.
	if strings.HasPrefix(line, "```") {
		if !st.inCodeBlock {
			return blocks, parserState{inCodeBlock: true}
		}
		if len(st.codeBuf) > 0 {
			blocks = append(blocks, Block{Kind: BlockCode, Text: strings.Join(st.codeBuf, "\n")})
		}
		return blocks, parserState{}
	}

	if st.inCodeBlock {
		st.codeBuf = append(st.codeBuf, line)
		return blocks, st
	}

	// Headings, longest prefix first so "#### " is not consumed by "# ".
	for i, prefix := range headingPrefixes {
		if strings.HasPrefix(line, prefix) {
			return append(blocks, Block{
				Kind:  BlockHeading,
				Level: len(headingPrefixes) - i,
				Text:  line[len(prefix):],
			}), st
		}
	}

	if strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ") {
		return append(blocks, Block{Kind: BlockBullet, Text: line[2:]}), st
	}

	if numberedItemPattern.MatchString(line) {
		return append(blocks, Block{
			Kind: BlockNumbered,
			Text: numberedItemPattern.ReplaceAllString(line, ""),
		}), st
	}

	if m := imageLinePattern.FindStringSubmatch(line); m != nil {
		return append(blocks, Block{
			Kind: BlockImage,
			Alt:  m[1],
			Path: RewriteChartPath(m[2], chartDir),
		}), st
	}

	if strings.Contains(line, "|") && strings.HasPrefix(strings.TrimSpace(line), "|") {
		// Markdown's header/body divider carries no content, and neither
		// does a degenerate row like "|" or "|x" with no closed cell.
		if isTableSeparator(line) || len(SplitTableCells(line)) == 0 {
			return blocks, st
		}
		return append(blocks, Block{Kind: BlockTableRow, Text: line}), st
	}

	if strings.TrimSpace(line) == "" {
		return append(blocks, Block{Kind: BlockBlank}), st
	}

	return append(blocks, Block{Kind: BlockParagraph, Spans: ParseSpans(line)}), st
}

// headingPrefixes ordered longest first; level = 4 - index.
var headingPrefixes = [...]string{"#### ", "### ", "## ", "# "}

// isTableSeparator reports whether every cell between the outer pipes
// consists of dashes only (after trimming), i.e. the row is a table
// header/body divider like "|---|-----|".
func isTableSeparator(line string) bool {
	cells := strings.Split(line, "|")
	if len(cells) < 3 {
		return false
	}
	cells = cells[1 : len(cells)-1]
	for _, cell := range cells {
		if strings.Trim(strings.TrimSpace(cell), "-") != "" {
			return false
		}
	}
	return true
}

// SplitTableCells decomposes a raw table row into trimmed cell texts,
// dropping the empty fragments outside the outer pipes.
func SplitTableCells(line string) []string {
	parts := strings.Split(strings.TrimSpace(line), "|")
	if len(parts) >= 2 {
		parts = parts[1 : len(parts)-1]
	}
	cells := make([]string, len(parts))
	for i, p := range parts {
		cells[i] = strings.TrimSpace(p)
	}
	return cells
}
