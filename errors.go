package md2docx

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown = errors.New("markdown content cannot be empty")
	ErrWriteDocument = errors.New("failed to write document")
	ErrHTMLPreview   = errors.New("HTML preview generation failed")
)
