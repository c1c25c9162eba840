// Package config loads the crew configuration: agent definitions from
// agents.yaml and task definitions from tasks.yaml. Parsing is strict so a
// typoed key fails loudly instead of silently disabling an attribute.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/alnah/go-md2docx/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
	ErrMissingField   = errors.New("missing required field")
	ErrUnknownAgent   = errors.New("task references unknown agent")
	ErrUnknownTask    = errors.New("task context references unknown task")
)

// AgentConfig defines one agent of the analytics crew.
type AgentConfig struct {
	Role             string   `yaml:"role"`
	Goal             string   `yaml:"goal"`
	Backstory        string   `yaml:"backstory"`
	Tools            []string `yaml:"tools"`
	AllowDelegation  bool     `yaml:"allow_delegation"`
	Verbose          bool     `yaml:"verbose"`
	MaxIter          int      `yaml:"max_iter"`
	MaxExecutionTime int      `yaml:"max_execution_time"` // seconds
}

// TaskConfig defines one task of the crew workflow.
type TaskConfig struct {
	Description    string   `yaml:"description"`
	ExpectedOutput string   `yaml:"expected_output"`
	Agent          string   `yaml:"agent"`
	Context        []string `yaml:"context"`     // names of tasks whose output feeds this one
	OutputFile     string   `yaml:"output_file"` // optional artifact path
}

// CrewConfig is the loaded and validated crew definition.
type CrewConfig struct {
	Agents map[string]AgentConfig
	Tasks  map[string]TaskConfig
}

// LoadAgents reads and strict-parses an agents.yaml file.
func LoadAgents(path string) (map[string]AgentConfig, error) {
	var agents map[string]AgentConfig
	if err := loadYAML(path, &agents); err != nil {
		return nil, err
	}
	for name, a := range agents {
		if a.Role == "" {
			return nil, fmt.Errorf("%w: agent %q has no role", ErrMissingField, name)
		}
		if a.Goal == "" {
			return nil, fmt.Errorf("%w: agent %q has no goal", ErrMissingField, name)
		}
	}
	return agents, nil
}

// LoadTasks reads and strict-parses a tasks.yaml file.
func LoadTasks(path string) (map[string]TaskConfig, error) {
	var tasks map[string]TaskConfig
	if err := loadYAML(path, &tasks); err != nil {
		return nil, err
	}
	for name, t := range tasks {
		if t.Description == "" {
			return nil, fmt.Errorf("%w: task %q has no description", ErrMissingField, name)
		}
		if t.Agent == "" {
			return nil, fmt.Errorf("%w: task %q has no agent", ErrMissingField, name)
		}
	}
	return tasks, nil
}

// LoadCrew loads both files and cross-validates the references between
// them: every task's agent must be defined, and every context entry must
// name another task.
func LoadCrew(agentsPath, tasksPath string) (*CrewConfig, error) {
	agents, err := LoadAgents(agentsPath)
	if err != nil {
		return nil, err
	}
	tasks, err := LoadTasks(tasksPath)
	if err != nil {
		return nil, err
	}

	for name, t := range tasks {
		if _, ok := agents[t.Agent]; !ok {
			return nil, fmt.Errorf("%w: task %q wants agent %q", ErrUnknownAgent, name, t.Agent)
		}
		for _, dep := range t.Context {
			if _, ok := tasks[dep]; !ok {
				return nil, fmt.Errorf("%w: task %q wants context %q", ErrUnknownTask, name, dep)
			}
		}
	}

	return &CrewConfig{Agents: agents, Tasks: tasks}, nil
}

func loadYAML(path string, v any) error {
	data, err := os.ReadFile(path) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := yamlutil.UnmarshalStrict(data, v); err != nil {
		return fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	return nil
}
