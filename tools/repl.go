package tools

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/alnah/go-md2docx/internal/fileutil"
)

// CommandRunner abstracts command execution to enable testing without real
// subprocesses.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (stdout string, stderr string, err error)
}

// ExecRunner implements CommandRunner using os/exec.
type ExecRunner struct{}

func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// PythonREPL executes Python code and returns its printed output. It is a
// thin pass-through to the system interpreter; sandboxing is the
// responsibility of the environment the crew runs in.
type PythonREPL struct {
	runner CommandRunner
	python string
}

// NewPythonREPL creates the tool with a real command runner and the
// default interpreter name ("python3").
func NewPythonREPL() *PythonREPL {
	return &PythonREPL{runner: &ExecRunner{}, python: "python3"}
}

func (t *PythonREPL) Name() string { return "python_repl" }

func (t *PythonREPL) Description() string {
	return "A Python REPL tool. Use this to execute Python code. " +
		"Make sure to use print(...) to produce output."
}

// Run executes the input as Python source. On interpreter failure the
// stderr tail is folded into the error text; nothing is ever raised.
func (t *PythonREPL) Run(ctx context.Context, input string) string {
	if strings.TrimSpace(input) == "" {
		return ""
	}

	// Generated analysis scripts can run long; a temp file keeps them
	// clear of argv limits and gives tracebacks a real filename.
	path, cleanup, err := fileutil.WriteTempFile(input, "py")
	if err != nil {
		return fmt.Sprintf("Python REPL error: %v", err)
	}
	defer cleanup()

	stdout, stderr, err := t.runner.Run(ctx, t.python, path)
	if err != nil {
		msg := strings.TrimSpace(stderr)
		if msg == "" {
			msg = err.Error()
		}
		return fmt.Sprintf("Python REPL error: %s", msg)
	}
	return stdout
}
