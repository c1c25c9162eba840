package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// convertFlags holds all CLI flags.
type convertFlags struct {
	output   string
	title    string
	chartDir string
	html     bool
	quiet    bool
	verbose  bool
	version  bool

	checkCrew  bool
	agentsPath string
	tasksPath  string
}

// parseFlags parses CLI flags and returns the positional args
// (the markdown input file, or "-" for stdin).
func parseFlags(args []string) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("md2docx", flag.ContinueOnError)
	f := &convertFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output .docx path (default: timestamped under outputs/reports/)")
	fs.StringVar(&f.title, "title", "", "report title (default: \"Data Analysis Report\")")
	fs.StringVar(&f.chartDir, "charts-dir", "", "directory ../charts/ image refs resolve to (default: outputs/charts)")
	fs.BoolVar(&f.html, "html", false, "also write an HTML preview next to the DOCX")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed progress")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	fs.BoolVar(&f.checkCrew, "check-crew", false, "validate crew config files and exit")
	fs.StringVar(&f.agentsPath, "agents", "config/agents.yaml", "agents config file (with --check-crew)")
	fs.StringVar(&f.tasksPath, "tasks", "config/tasks.yaml", "tasks config file (with --check-crew)")

	fs.Usage = func() { printUsage(os.Stderr, fs) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
