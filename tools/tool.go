// Package tools exposes the converter and its collaborators through the
// contract agent orchestration frameworks expect: every tool takes textual
// input and returns textual output, and never returns an error. The
// orchestration layer treats tool output as always-succeeding text, so
// failures are reported as data.
//
// Tool input is either a JSON argument object (as LLM tool-calling
// frameworks emit) or raw text; each tool documents its accepted shape.
package tools

import (
	"context"
	"fmt"
	"sort"

	"github.com/charmbracelet/log"
)

// Tool is one callable capability of the crew.
type Tool interface {
	// Name is the identifier the framework dispatches on.
	Name() string
	// Description is shown to the model choosing tools.
	Description() string
	// Run executes the tool. The returned string is either the tool's
	// output or a human-readable error description; never empty on failure.
	Run(ctx context.Context, input string) string
}

// Registry resolves tools by name for the orchestration layer.
type Registry struct {
	logger *log.Logger
	tools  map[string]Tool
}

// NewRegistry creates an empty registry. logger may be nil to disable
// invocation logging.
func NewRegistry(logger *log.Logger) *Registry {
	return &Registry{
		logger: logger,
		tools:  make(map[string]Tool),
	}
}

// Register adds a tool, replacing any previous tool with the same name.
func (r *Registry) Register(t Tool) {
	r.tools[t.Name()] = t
}

// Get returns the named tool.
func (r *Registry) Get(name string) (Tool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

// Names returns the registered tool names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Run dispatches input to the named tool. An unknown name is reported as
// text, consistent with the never-fail contract.
func (r *Registry) Run(ctx context.Context, name, input string) string {
	t, ok := r.tools[name]
	if !ok {
		return fmt.Sprintf("Error: unknown tool %q", name)
	}
	if r.logger != nil {
		r.logger.Debug("running tool", "tool", name, "input_bytes", len(input))
	}
	out := t.Run(ctx, input)
	if r.logger != nil {
		r.logger.Debug("tool finished", "tool", name, "output_bytes", len(out))
	}
	return out
}
