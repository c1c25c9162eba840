package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	md2docx "github.com/alnah/go-md2docx"
	"github.com/alnah/go-md2docx/internal/fileutil"
)

// markdownArgs mirrors the JSON argument object tool-calling frameworks emit.
type markdownArgs struct {
	MarkdownContent string `json:"markdown_content"`
	OutputPath      string `json:"output_path"`
}

// MarkdownToDocx converts markdown report content to a DOCX file.
// It wraps md2docx.Converter in the never-failing tool contract: any
// conversion error comes back as a descriptive string, never as a fault.
type MarkdownToDocx struct {
	converter *md2docx.Converter
}

// NewMarkdownToDocx creates the tool. Options are forwarded to the
// underlying converter (e.g., md2docx.WithChartDir).
func NewMarkdownToDocx(opts ...md2docx.Option) *MarkdownToDocx {
	return &MarkdownToDocx{converter: md2docx.NewConverter(opts...)}
}

func (t *MarkdownToDocx) Name() string { return "markdown_to_docx" }

func (t *MarkdownToDocx) Description() string {
	return "Converts markdown content to a DOCX file. " +
		"Provide the markdown content and output file path. " +
		"Automatically handles images and formatting."
}

// Run converts the markdown and reports the outcome as text. Input is
// either {"markdown_content": "...", "output_path": "..."}, the path of an
// existing markdown file, or the raw markdown itself (output path then
// defaults to a timestamped file under outputs/reports/).
func (t *MarkdownToDocx) Run(ctx context.Context, input string) string {
	content, outputPath := parseMarkdownArgs(input)

	result, err := t.converter.Convert(ctx, md2docx.Input{
		Markdown:   content,
		OutputPath: outputPath,
	})
	if err != nil {
		return fmt.Sprintf("Error converting markdown to DOCX: %v", err)
	}
	return fmt.Sprintf("Successfully converted markdown to DOCX: %s", result.Path)
}

// parseMarkdownArgs accepts the JSON argument object, an existing markdown
// file path, or raw markdown. Raw markdown that happens to start with "{"
// still falls through to the raw interpretation unless it decodes with a
// markdown_content field.
func parseMarkdownArgs(input string) (content, outputPath string) {
	trimmed := strings.TrimSpace(input)
	if strings.HasPrefix(trimmed, "{") {
		var args markdownArgs
		if err := json.Unmarshal([]byte(trimmed), &args); err == nil && args.MarkdownContent != "" {
			return args.MarkdownContent, args.OutputPath
		}
	}

	// Agents sometimes pass the report file instead of its content. A
	// single-line input naming an existing file is read in place.
	if !strings.Contains(trimmed, "\n") && fileutil.IsFilePath(trimmed) && fileutil.FileExists(trimmed) {
		if data, err := os.ReadFile(trimmed); err == nil { // #nosec G304 -- agent controls the input path
			return string(data), ""
		}
	}

	return input, ""
}
