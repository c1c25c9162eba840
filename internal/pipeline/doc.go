// Package pipeline contains the markdown processing stages: line
// normalization, block classification, inline span extraction, chart path
// rewriting, and the optional HTML preview conversion.
//
// The block parser is deliberately not a CommonMark implementation. Report
// markdown comes from a text-generation step with a narrow, predictable
// shape (ATX headings, flat lists, fenced code, single-line images and
// table rows), and the document writer needs a flat block sequence rather
// than an AST. Goldmark is used only for the HTML preview, where full
// CommonMark rendering is wanted.
package pipeline
