package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	flag "github.com/spf13/pflag"

	md2docx "github.com/alnah/go-md2docx"
	"github.com/alnah/go-md2docx/internal/config"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput          = errors.New("no input file given (use - for stdin)")
	ErrReadMarkdown     = errors.New("failed to read markdown file")
	ErrInvalidExtension = errors.New("file must have .md or .markdown extension")
)

// run reads the markdown input, applies env overrides, and delegates to
// the conversion library.
func run(flags *convertFlags, args []string, stdin io.Reader, logger *log.Logger) error {
	if flags.checkCrew {
		return checkCrew(flags, logger)
	}

	if len(args) < 1 {
		return ErrNoInput
	}
	inputPath := args[0]

	mdContent, err := readInput(inputPath, stdin)
	if err != nil {
		return err
	}

	warnUnknownEnvVars(os.Environ(), logger.Warnf)

	env := loadEnvConfig()
	title := firstNonEmpty(flags.title, env.Title)
	chartDir := firstNonEmpty(flags.chartDir, env.ChartDir)
	outputPath := resolveOutputPath(flags.output, env.OutputDir, inputPath)

	var opts []md2docx.Option
	if title != "" {
		opts = append(opts, md2docx.WithReportTitle(title))
	}
	if chartDir != "" {
		opts = append(opts, md2docx.WithChartDir(chartDir))
	}

	logger.Debug("converting", "input", inputPath, "output", outputPath)

	conv := md2docx.NewConverter(opts...)
	result, err := conv.Convert(context.Background(), md2docx.Input{
		Markdown:    mdContent,
		OutputPath:  outputPath,
		HTMLPreview: flags.html,
	})
	if err != nil {
		return err
	}

	logger.Info("created " + result.Path)
	if result.HTMLPath != "" {
		logger.Info("created " + result.HTMLPath)
	}
	return nil
}

// checkCrew validates the agent and task definition files and their
// cross-references, without running a conversion.
func checkCrew(flags *convertFlags, logger *log.Logger) error {
	crew, err := config.LoadCrew(flags.agentsPath, flags.tasksPath)
	if err != nil {
		return err
	}
	logger.Info("crew config ok", "agents", len(crew.Agents), "tasks", len(crew.Tasks))
	return nil
}

// readInput loads markdown from a file or, for "-", from stdin.
func readInput(inputPath string, stdin io.Reader) (string, error) {
	if inputPath == "-" {
		content, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrReadMarkdown, err)
		}
		return string(content), nil
	}

	if err := validateMarkdownExtension(inputPath); err != nil {
		return "", err
	}
	content, err := readMarkdownFile(inputPath)
	if err != nil {
		return "", err
	}
	return content, nil
}

// readMarkdownFile reads the content of a Markdown file.
func readMarkdownFile(path string) (string, error) {
	content, err := os.ReadFile(path) // #nosec G304 -- user controls the input path
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}
	return string(content), nil
}

// validateMarkdownExtension checks that the file has a .md or .markdown extension.
func validateMarkdownExtension(path string) error {
	ext := filepath.Ext(path)
	if ext != ".md" && ext != ".markdown" {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, ext)
	}
	return nil
}

// resolveOutputPath applies the precedence: explicit flag, env output dir
// with the input's basename, then empty (library picks the timestamped
// default).
func resolveOutputPath(flagOutput, envOutputDir, inputPath string) string {
	if flagOutput != "" {
		return flagOutput
	}
	if envOutputDir != "" && inputPath != "-" {
		base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
		return filepath.Join(envOutputDir, base+".docx")
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "usage: md2docx [flags] <input.md | ->")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Converts a markdown analysis report to a DOCX document.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprint(w, fs.FlagUsages())
}
