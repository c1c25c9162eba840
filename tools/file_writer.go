package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2docx/internal/fileutil"
)

// DefaultFileWriterDir is where report artifacts land when no directory is
// configured.
const DefaultFileWriterDir = "outputs/reports"

// fileWriterArgs mirrors the JSON argument object tool-calling frameworks emit.
type fileWriterArgs struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
}

// FileWriter writes text files under a fixed base directory. Filenames are
// confined to that directory; traversal attempts are rejected as text.
type FileWriter struct {
	dir string
}

// NewFileWriter creates the tool rooted at dir (empty = DefaultFileWriterDir).
func NewFileWriter(dir string) *FileWriter {
	if dir == "" {
		dir = DefaultFileWriterDir
	}
	return &FileWriter{dir: dir}
}

func (t *FileWriter) Name() string { return "file_writer" }

func (t *FileWriter) Description() string {
	return "Writes text content to a file in the reports directory. " +
		"Provide a filename and the content to write."
}

// Run writes the file and reports the outcome as text. Input must be
// {"filename": "...", "content": "..."}.
func (t *FileWriter) Run(ctx context.Context, input string) string {
	if err := ctx.Err(); err != nil {
		return fmt.Sprintf("Error writing file: %v", err)
	}

	var args fileWriterArgs
	if err := json.Unmarshal([]byte(input), &args); err != nil || args.Filename == "" {
		return "Error writing file: input must be JSON with filename and content fields"
	}

	path, err := t.resolve(args.Filename)
	if err != nil {
		return fmt.Sprintf("Error writing file: %v", err)
	}

	if err := fileutil.EnsureParentDir(path); err != nil {
		return fmt.Sprintf("Error writing file: %v", err)
	}
	if err := os.WriteFile(path, []byte(args.Content), 0o600); err != nil {
		return fmt.Sprintf("Error writing file: %v", err)
	}
	return fmt.Sprintf("Successfully wrote file: %s", path)
}

// resolve joins the filename onto the base directory and rejects anything
// that escapes it.
func (t *FileWriter) resolve(filename string) (string, error) {
	path := filepath.Clean(filepath.Join(t.dir, filename))
	base := filepath.Clean(t.dir)
	if path != base && !strings.HasPrefix(path, base+string(filepath.Separator)) {
		return "", fmt.Errorf("filename %q escapes base directory %q", filename, t.dir)
	}
	return path, nil
}
