// Package md2docx converts markdown analysis reports to DOCX documents.
//
// # Quick Start
//
// Create a converter and convert markdown:
//
//	conv := md2docx.NewConverter()
//	result, err := conv.Convert(ctx, md2docx.Input{
//	    Markdown: "# Findings\n\n- revenue up 12%",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("wrote", result.Path)
//
// With no explicit Input.OutputPath the document lands at
// outputs/reports/data_analysis_report_<timestamp>.docx; missing directories
// are created automatically.
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Line-ending normalization
//  2. Line-by-line block classification (headings, lists, fenced code,
//     images, table rows, paragraphs with inline bold/italic/code spans)
//  3. DOCX assembly and save via fumiama/go-docx
//
// Chart images referenced as "../charts/<name>" are resolved against
// outputs/charts/ before embedding; a missing or unreadable image degrades
// to an inline placeholder paragraph instead of failing the conversion.
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv := md2docx.NewConverter(
//	    md2docx.WithReportTitle("Q3 Revenue Analysis"),
//	    md2docx.WithChartDir("artifacts/charts"),
//	)
//
// Set Input.HTMLPreview to additionally write a goldmark-rendered HTML
// preview next to the DOCX for debugging.
//
// # Agent Integration
//
// The tools package wraps this converter in the string-in/string-out,
// never-failing contract that agent orchestration frameworks expect.
package md2docx
