package md2docx

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alnah/go-md2docx/internal/pipeline"
)

// fakeWriter captures what the converter hands to the document stage.
type fakeWriter struct {
	title  string
	blocks []pipeline.Block
	path   string
	err    error
}

func (f *fakeWriter) Write(title string, blocks []pipeline.Block, outputPath string) error {
	f.title = title
	f.blocks = blocks
	f.path = outputPath
	return f.err
}

// panicWriter exercises the Convert panic guard.
type panicWriter struct{}

func (panicWriter) Write(string, []pipeline.Block, string) error {
	panic("writer blew up")
}

// failingHTMLConverter exercises the preview error path.
type failingHTMLConverter struct{ err error }

func (f failingHTMLConverter) ToHTML(context.Context, string, string) (string, error) {
	return "", f.err
}

func newTestConverter(w docxWriter, opts ...Option) *Converter {
	c := NewConverter(opts...)
	c.writer = w
	return c
}

func TestConvert_EmptyMarkdown(t *testing.T) {
	t.Parallel()

	w := &fakeWriter{}
	_, err := newTestConverter(w).Convert(context.Background(), Input{})
	if !errors.Is(err, ErrEmptyMarkdown) {
		t.Fatalf("Convert() error = %v, want ErrEmptyMarkdown", err)
	}
	if w.path != "" {
		t.Errorf("writer was called with path %q, want no call", w.path)
	}
}

func TestConvert_DefaultOutputPath(t *testing.T) {
	t.Parallel()

	fixed := time.Date(2026, 1, 15, 14, 32, 7, 0, time.UTC)
	w := &fakeWriter{}
	c := newTestConverter(w, WithNow(func() time.Time { return fixed }))

	result, err := c.Convert(context.Background(), Input{Markdown: "# hi"})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	want := filepath.Join("outputs", "reports", "data_analysis_report_20260115_143207.docx")
	if result.Path != want {
		t.Errorf("result.Path = %q, want %q", result.Path, want)
	}
	if w.path != want {
		t.Errorf("writer path = %q, want %q", w.path, want)
	}
}

func TestConvert_ExplicitOutputPath(t *testing.T) {
	t.Parallel()

	w := &fakeWriter{}
	result, err := newTestConverter(w).Convert(context.Background(), Input{
		Markdown:   "# hi",
		OutputPath: "report.docx",
	})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if result.Path != "report.docx" {
		t.Errorf("result.Path = %q, want %q", result.Path, "report.docx")
	}
}

func TestConvert_TitleOption(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts []Option
		want string
	}{
		{name: "default title", want: "Data Analysis Report"},
		{name: "custom title", opts: []Option{WithReportTitle("Q3 Revenue")}, want: "Q3 Revenue"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := &fakeWriter{}
			if _, err := newTestConverter(w, tt.opts...).Convert(context.Background(), Input{
				Markdown:   "body",
				OutputPath: "x.docx",
			}); err != nil {
				t.Fatalf("Convert() error = %v", err)
			}
			if w.title != tt.want {
				t.Errorf("writer title = %q, want %q", w.title, tt.want)
			}
		})
	}
}

func TestConvert_NormalizesLineEndings(t *testing.T) {
	t.Parallel()

	w := &fakeWriter{}
	if _, err := newTestConverter(w).Convert(context.Background(), Input{
		Markdown:   "# Title\r\n\r\n- point\r\n",
		OutputPath: "x.docx",
	}); err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	wantKinds := []pipeline.BlockKind{
		pipeline.BlockHeading, pipeline.BlockBlank, pipeline.BlockBullet, pipeline.BlockBlank,
	}
	if len(w.blocks) != len(wantKinds) {
		t.Fatalf("writer got %d blocks, want %d: %+v", len(w.blocks), len(wantKinds), w.blocks)
	}
	for i, want := range wantKinds {
		if w.blocks[i].Kind != want {
			t.Errorf("block %d kind = %v, want %v", i, w.blocks[i].Kind, want)
		}
	}
	if w.blocks[0].Text != "Title" {
		t.Errorf("heading text = %q, want %q", w.blocks[0].Text, "Title")
	}
}

func TestConvert_WriterErrorPropagates(t *testing.T) {
	t.Parallel()

	w := &fakeWriter{err: ErrWriteDocument}
	_, err := newTestConverter(w).Convert(context.Background(), Input{
		Markdown:   "body",
		OutputPath: "x.docx",
	})
	if !errors.Is(err, ErrWriteDocument) {
		t.Fatalf("Convert() error = %v, want ErrWriteDocument", err)
	}
}

func TestConvert_RecoversWriterPanic(t *testing.T) {
	t.Parallel()

	_, err := newTestConverter(panicWriter{}).Convert(context.Background(), Input{
		Markdown:   "body",
		OutputPath: "x.docx",
	})
	if err == nil || !strings.Contains(err.Error(), "internal error") {
		t.Fatalf("Convert() error = %v, want internal error wrapping the panic", err)
	}
}

func TestConvert_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w := &fakeWriter{}
	_, err := newTestConverter(w).Convert(ctx, Input{Markdown: "body", OutputPath: "x.docx"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Convert() error = %v, want context.Canceled", err)
	}
	if w.path != "" {
		t.Errorf("writer was called with path %q, want no call", w.path)
	}
}

func TestConvert_TimeoutBoundsTheCall(t *testing.T) {
	t.Parallel()

	// A negative timeout yields an already-expired deadline, so the
	// context check fires deterministically before any stage runs.
	w := &fakeWriter{}
	c := newTestConverter(w, WithTimeout(-time.Nanosecond))

	_, err := c.Convert(context.Background(), Input{Markdown: "body", OutputPath: "x.docx"})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Convert() error = %v, want context.DeadlineExceeded", err)
	}
	if w.path != "" {
		t.Errorf("writer was called with path %q, want no call", w.path)
	}
}

func TestConvert_ZeroTimeoutMeansNoLimit(t *testing.T) {
	t.Parallel()

	w := &fakeWriter{}
	c := newTestConverter(w, WithTimeout(0))

	if _, err := c.Convert(context.Background(), Input{Markdown: "body", OutputPath: "x.docx"}); err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
}

func TestConvert_HTMLPreview(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	out := filepath.Join(dir, "report.docx")

	w := &fakeWriter{}
	result, err := newTestConverter(w).Convert(context.Background(), Input{
		Markdown:    "# Overview\n\nbody text",
		OutputPath:  out,
		HTMLPreview: true,
	})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	wantHTMLPath := filepath.Join(dir, "report.html")
	if result.HTMLPath != wantHTMLPath {
		t.Fatalf("result.HTMLPath = %q, want %q", result.HTMLPath, wantHTMLPath)
	}
	data, err := os.ReadFile(result.HTMLPath) // #nosec G304 -- path built from t.TempDir
	if err != nil {
		t.Fatalf("reading preview: %v", err)
	}
	for _, want := range []string{"<!DOCTYPE html>", "Overview", "body text"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("preview file missing %q", want)
		}
	}
	if result.HTML != string(data) {
		t.Errorf("result.HTML does not match preview file contents")
	}
}

func TestConvert_HTMLPreviewError(t *testing.T) {
	t.Parallel()

	c := newTestConverter(&fakeWriter{})
	c.htmlConverter = failingHTMLConverter{err: pipeline.ErrHTMLConversion}

	_, err := c.Convert(context.Background(), Input{
		Markdown:    "body",
		OutputPath:  "x.docx",
		HTMLPreview: true,
	})
	if !errors.Is(err, ErrHTMLPreview) {
		t.Fatalf("Convert() error = %v, want ErrHTMLPreview", err)
	}
}

func TestWithNow_NilPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatal("WithNow(nil) did not panic")
		}
	}()
	WithNow(nil)
}
