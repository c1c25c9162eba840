package md2docx

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-md2docx/internal/dateutil"
	"github.com/alnah/go-md2docx/internal/pipeline"
)

// Compile-time interface implementation checks.
// These ensure implementations satisfy their interfaces at compile time,
// catching signature mismatches before runtime.
var (
	_ pipeline.HTMLConverter = (*pipeline.GoldmarkConverter)(nil)
	_ docxWriter             = (*godocxWriter)(nil)
)

// Converter turns markdown report content into a DOCX document.
// Create with NewConverter and use Convert per document. A Converter holds
// no mutable state across calls, so it is safe for reuse; concurrent calls
// must use distinct output paths.
type Converter struct {
	cfg           converterConfig
	htmlConverter pipeline.HTMLConverter
	writer        docxWriter
}

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithReportTitle, WithChartDir).
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		cfg: converterConfig{now: time.Now},
	}

	for _, opt := range opts {
		opt(c)
	}

	// Create pipeline stages if not injected (e.g., by tests)
	if c.htmlConverter == nil {
		c.htmlConverter = pipeline.NewGoldmarkConverter()
	}
	if c.writer == nil {
		c.writer = &godocxWriter{}
	}

	return c
}

// Convert parses the markdown and writes the document to the resolved
// output path, creating missing directories on the way. The context is used
// for cancellation; a WithTimeout setting additionally bounds the call.
// Recovers internal panics so malformed input can never
// crash the calling agent runtime.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if c.cfg.timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.timeout)
		defer cancel()
	}

	if input.Markdown == "" {
		return nil, ErrEmptyMarkdown
	}

	outputPath := input.OutputPath
	if outputPath == "" {
		outputPath = c.defaultOutputPath()
	}

	content := pipeline.NormalizeLineEndings(input.Markdown)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	// Render the preview before the document save so a preview failure
	// cannot leave a half-reported conversion behind.
	var previewHTML string
	if input.HTMLPreview {
		previewHTML, err = c.htmlConverter.ToHTML(ctx, c.title(), content)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrHTMLPreview, err)
		}
	}

	blocks := pipeline.ParseBlocks(content, c.cfg.chartDir)
	if err := c.writer.Write(c.title(), blocks, outputPath); err != nil {
		return nil, err
	}

	result = &ConvertResult{Path: outputPath}
	if input.HTMLPreview {
		htmlPath := strings.TrimSuffix(outputPath, filepath.Ext(outputPath)) + ".html"
		if err := os.WriteFile(htmlPath, []byte(previewHTML), 0o600); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrHTMLPreview, err)
		}
		result.HTML = previewHTML
		result.HTMLPath = htmlPath
	}

	return result, nil
}

// title returns the configured report title, or the default.
func (c *Converter) title() string {
	if c.cfg.title != "" {
		return c.cfg.title
	}
	return DefaultReportTitle
}

// defaultOutputPath builds the timestamped fallback path.
func (c *Converter) defaultOutputPath() string {
	name := defaultOutputPrefix + dateutil.Stamp(c.cfg.now()) + docxExtension
	return filepath.Join(DefaultOutputDir, name)
}
