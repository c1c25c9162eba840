package main

import (
	"os"
	"sort"
	"strings"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without flags; flags win over env.
type envConfig struct {
	OutputDir string // MD2DOCX_OUTPUT_DIR: default output directory
	Title     string // MD2DOCX_TITLE: report title
	ChartDir  string // MD2DOCX_CHARTS_DIR: chart rewrite directory
}

// knownEnvVars lists valid MD2DOCX_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MD2DOCX_OUTPUT_DIR": true,
	"MD2DOCX_TITLE":      true,
	"MD2DOCX_CHARTS_DIR": true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig() *envConfig {
	return &envConfig{
		OutputDir: os.Getenv("MD2DOCX_OUTPUT_DIR"),
		Title:     os.Getenv("MD2DOCX_TITLE"),
		ChartDir:  os.Getenv("MD2DOCX_CHARTS_DIR"),
	}
}

// warnUnknownEnvVars reports MD2DOCX_* variables that are not recognized,
// catching typos like MD2DOCX_OUTPUTDIR.
func warnUnknownEnvVars(environ []string, warnf func(format string, args ...interface{})) {
	for _, kv := range environ {
		name, _, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(name, "MD2DOCX_") {
			continue
		}
		if !knownEnvVars[name] {
			warnf("unknown environment variable %s (known: %s)", name, strings.Join(knownEnvVarNames(), ", "))
		}
	}
}

func knownEnvVarNames() []string {
	names := make([]string, 0, len(knownEnvVars))
	for name := range knownEnvVars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
