package md2docx

import "time"

// Default output naming. A conversion with no explicit output path lands at
// outputs/reports/data_analysis_report_<YYYYMMDD_HHMMSS>.docx.
const (
	DefaultReportTitle  = "Data Analysis Report"
	DefaultOutputDir    = "outputs/reports"
	defaultOutputPrefix = "data_analysis_report_"
	docxExtension       = ".docx"
)

// Input contains conversion parameters.
type Input struct {
	Markdown    string // Markdown content (required)
	OutputPath  string // Destination file (optional; empty = timestamped default)
	HTMLPreview bool   // Also write an HTML preview next to the DOCX (debugging)
}

// ConvertResult holds the outcome of a conversion.
type ConvertResult struct {
	Path     string // resolved DOCX path
	HTML     string // preview HTML content (only when Input.HTMLPreview)
	HTMLPath string // preview file path (only when Input.HTMLPreview)
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	title    string
	chartDir string
	timeout  time.Duration
	now      func() time.Time
}

// WithReportTitle overrides the document title inserted before the content.
func WithReportTitle(title string) Option {
	return func(c *Converter) {
		c.cfg.title = title
	}
}

// WithChartDir overrides the directory that "../charts/" image references
// are rewritten to (default "outputs/charts").
func WithChartDir(dir string) Option {
	return func(c *Converter) {
		c.cfg.chartDir = dir
	}
}

// WithTimeout bounds each Convert call. Zero disables the limit.
func WithTimeout(d time.Duration) Option {
	return func(c *Converter) {
		c.cfg.timeout = d
	}
}

// WithNow injects the clock used for timestamped default output paths.
// Panics if now is nil (programmer error, similar to time.NewTicker).
func WithNow(now func() time.Time) Option {
	if now == nil {
		panic("md2docx: WithNow func must be non-nil")
	}
	return func(c *Converter) {
		c.cfg.now = now
	}
}
