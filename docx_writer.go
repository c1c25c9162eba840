package md2docx

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fumiama/go-docx"

	"github.com/alnah/go-md2docx/internal/fileutil"
	"github.com/alnah/go-md2docx/internal/pipeline"
)

// docxWriter renders a block sequence into a document file at outputPath.
// Abstracted so tests can capture blocks without touching the filesystem.
type docxWriter interface {
	Write(title string, blocks []pipeline.Block, outputPath string) error
}

// Half-point font sizes for document elements.
const (
	titleSize    = "56" // 28pt
	heading1Size = "40" // 20pt
	heading2Size = "32" // 16pt
	heading3Size = "28" // 14pt
	heading4Size = "24" // 12pt
	codeSize     = "18" // 9pt, matches the analysis code style
	captionSize  = "20" // 10pt
)

const (
	headingColor = "2E74B5" // Word's default heading blue
	monoFont     = "Courier New"
	bulletMarker = "• "
	tableWidth   = 8000 // twentieths of a point
)

// godocxWriter implements docxWriter on fumiama/go-docx.
//
// go-docx exposes no named paragraph styles, so headings and captions are
// expressed as explicit run properties, and numbered lists carry their own
// ordinal text instead of a Word numbering definition.
type godocxWriter struct{}

func (w *godocxWriter) Write(title string, blocks []pipeline.Block, outputPath string) error {
	if err := fileutil.EnsureParentDir(outputPath); err != nil {
		return err
	}

	doc := docx.New().WithDefaultTheme()
	doc.AddParagraph().AddText(title).Size(titleSize).Bold()

	ordinal := 0 // consecutive numbered-item counter, reset by any other block
	for i := 0; i < len(blocks); i++ {
		b := blocks[i]
		if b.Kind != pipeline.BlockNumbered {
			ordinal = 0
		}

		switch b.Kind {
		case pipeline.BlockHeading:
			w.addHeading(doc, b.Level, b.Text)
		case pipeline.BlockBullet:
			doc.AddParagraph().AddText(bulletMarker + b.Text)
		case pipeline.BlockNumbered:
			ordinal++
			doc.AddParagraph().AddText(strconv.Itoa(ordinal) + ". " + b.Text)
		case pipeline.BlockCode:
			w.addCodeBlock(doc, b.Text)
		case pipeline.BlockImage:
			w.addImage(doc, b)
		case pipeline.BlockTableRow:
			// Consecutive table rows form one table.
			end := i
			for end < len(blocks) && blocks[end].Kind == pipeline.BlockTableRow {
				end++
			}
			w.addTable(doc, blocks[i:end])
			i = end - 1
		case pipeline.BlockBlank:
			doc.AddParagraph() // spacing paragraph
		case pipeline.BlockParagraph:
			w.addParagraph(doc, b.Spans)
		}
	}

	return w.save(doc, outputPath)
}

func (w *godocxWriter) addHeading(doc *docx.Docx, level int, text string) {
	size := heading4Size
	switch level {
	case 1:
		size = heading1Size
	case 2:
		size = heading2Size
	case 3:
		size = heading3Size
	}
	doc.AddParagraph().AddText(text).Size(size).Bold().Color(headingColor)
}

// addCodeBlock emits one monospace paragraph per code line. A single run
// holding embedded newlines would render them as nothing in Word.
func (w *godocxWriter) addCodeBlock(doc *docx.Docx, code string) {
	for _, line := range strings.Split(code, "\n") {
		doc.AddParagraph().AddText(line).
			Size(codeSize).
			Font(monoFont, monoFont, monoFont, "default")
	}
}

func (w *godocxWriter) addImage(doc *docx.Docx, b pipeline.Block) {
	if !fileutil.FileExists(b.Path) {
		doc.AddParagraph().AddText(fmt.Sprintf("[Image: %s - File not found: %s]", b.Alt, b.Path))
		return
	}

	p := doc.AddParagraph().Justification("center")
	if _, err := p.AddInlineDrawingFrom(b.Path); err != nil {
		doc.AddParagraph().AddText(fmt.Sprintf("[Image: %s - Could not load: %v]", b.Alt, err))
		return
	}

	// Centered italic caption under the embedded image.
	if b.Alt != "" {
		doc.AddParagraph().Justification("center").
			AddText(b.Alt).Size(captionSize).Italic()
	}
}

// addTable decomposes raw table-row lines into a cell grid. The first row
// is rendered as a bold header row. Separator rows never reach the writer;
// the classifier elides them.
func (w *godocxWriter) addTable(doc *docx.Docx, rows []pipeline.Block) {
	grid := make([][]string, len(rows))
	cols := 0
	for i, r := range rows {
		grid[i] = pipeline.SplitTableCells(r.Text)
		if len(grid[i]) > cols {
			cols = len(grid[i])
		}
	}
	if cols == 0 {
		return
	}

	tbl := doc.AddTable(len(grid), cols, tableWidth, nil)
	for i, row := range grid {
		for j, cell := range row {
			run := tbl.TableRows[i].TableCells[j].AddParagraph().AddText(cell)
			if i == 0 {
				run.Bold()
			}
		}
	}
}

func (w *godocxWriter) addParagraph(doc *docx.Docx, spans []pipeline.Span) {
	p := doc.AddParagraph()
	for _, s := range spans {
		run := p.AddText(s.Text)
		switch s.Style {
		case pipeline.SpanBold:
			run.Bold()
		case pipeline.SpanItalic:
			run.Italic()
		case pipeline.SpanCode:
			run.Font(monoFont, monoFont, monoFont, "default")
		}
	}
}

func (w *godocxWriter) save(doc *docx.Docx, outputPath string) error {
	f, err := os.Create(outputPath) // #nosec G304 -- caller controls the output path
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteDocument, err)
	}
	if _, err := doc.WriteTo(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w: %v", ErrWriteDocument, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteDocument, err)
	}
	return nil
}
