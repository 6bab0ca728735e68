package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/Hanliang-Xu/asltools"
	"github.com/Hanliang-Xu/asltools/aslrules"
	"github.com/Hanliang-Xu/asltools/internal/naming"
	"github.com/Hanliang-Xu/asltools/sidecar"
)

// ExtractFlags contains flags for the extract command
type ExtractFlags struct {
	Quiet  bool
	Format string
}

// SetupExtractFlags creates and configures a FlagSet for the extract command.
// Returns the FlagSet and an ExtractFlags struct with bound flag variables.
func SetupExtractFlags() (*flag.FlagSet, *ExtractFlags) {
	fs := flag.NewFlagSet("extract", flag.ContinueOnError)
	flags := &ExtractFlags{}

	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output extraction result, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output extraction result, no diagnostic messages")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: asltools extract [flags] <file|->\n\n")
		Writef(fs.Output(), "Extract and check grouped ASL parameters from a sidecar file or stdin.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  asltools extract sub-01_asl.json\n")
		Writef(fs.Output(), "  asltools extract --format json sub-01_asl.json\n")
		Writef(fs.Output(), "  cat sub-01_asl.json | asltools extract -q -\n")
		Writef(fs.Output(), "\nExit Codes:\n")
		Writef(fs.Output(), "  0    Extraction successful with no errors\n")
		Writef(fs.Output(), "  1    One or more parameter checks failed\n")
	}

	return fs, flags
}

// extractGroup is the structured output shape for one parameter group
type extractGroup struct {
	Errors   []string       `json:"errors" yaml:"errors"`
	Warnings []string       `json:"warnings" yaml:"warnings"`
	Values   map[string]any `json:"values" yaml:"values"`
}

// extractOutput is the structured output shape for --format json/yaml
type extractOutput struct {
	HasErrors   bool         `json:"has_errors" yaml:"has_errors"`
	General     extractGroup `json:"general" yaml:"general"`
	Recommended extractGroup `json:"recommended" yaml:"recommended"`
	PCASL       extractGroup `json:"pcasl" yaml:"pcasl"`
}

func toExtractGroup(g aslrules.GroupResult) extractGroup {
	out := extractGroup{
		Errors:   g.Errors,
		Warnings: g.Warnings,
		Values:   g.Values,
	}
	if out.Errors == nil {
		out.Errors = []string{}
	}
	if out.Warnings == nil {
		out.Warnings = []string{}
	}
	return out
}

// HandleExtract executes the extract command
func HandleExtract(args []string) error {
	fs, flags := SetupExtractFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("extract command requires exactly one file path or '-' for stdin")
	}

	sidecarPath := fs.Arg(0)

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	var loaded *sidecar.LoadResult
	var err error
	if sidecarPath == StdinFilePath {
		loaded, err = sidecar.NewLoader().LoadReader(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
	} else {
		loaded, err = sidecar.NewLoader().Load(sidecarPath)
		if err != nil {
			return fmt.Errorf("loading sidecar: %w", err)
		}
	}

	report := aslrules.ExtractReport(loaded.Record)

	// Handle structured output formats
	if flags.Format == FormatJSON || flags.Format == FormatYAML {
		out := extractOutput{
			HasErrors:   report.HasErrors(),
			General:     toExtractGroup(report.General),
			Recommended: toExtractGroup(report.Recommended),
			PCASL:       toExtractGroup(report.PCASL),
		}
		if err := OutputStructured(out, flags.Format); err != nil {
			return err
		}

		if report.HasErrors() {
			os.Exit(1)
		}

		return nil
	}

	// Text format output
	if !flags.Quiet {
		Writef(os.Stderr, "ASL Parameter Extraction\n")
		Writef(os.Stderr, "========================\n\n")
		Writef(os.Stderr, "asltools version: %s\n", asltools.Version())
		Writef(os.Stderr, "Sidecar: %s\n", FormatSidecarPath(sidecarPath))
		Writef(os.Stderr, "Format: %s\n\n", loaded.SourceFormat)

		printGroup("General Parameters", report.General)
		printGroup("Recommended Values", report.Recommended)
		printGroup("PCASL Required Parameters", report.PCASL)

		if report.HasErrors() {
			Writef(os.Stderr, "✗ Extraction found %d error(s)", len(report.AllErrors()))
			if n := len(report.AllWarnings()); n > 0 {
				Writef(os.Stderr, ", %d warning(s)", n)
			}
			Writef(os.Stderr, "\n")
		} else {
			Writef(os.Stderr, "✓ Extraction passed")
			if n := len(report.AllWarnings()); n > 0 {
				Writef(os.Stderr, " with %d warning(s)", n)
			}
			Writef(os.Stderr, "\n")
		}
	}

	if report.HasErrors() {
		os.Exit(1)
	}

	return nil
}

// printGroup renders one parameter group to stderr with human-readable
// field labels
func printGroup(title string, g aslrules.GroupResult) {
	Writef(os.Stderr, "%s:\n", title)

	keys := make([]string, 0, len(g.Values))
	for k := range g.Values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		Writef(os.Stderr, "  %s: %v\n", naming.HumanLabel(k), g.Values[k])
	}

	for _, e := range g.Errors {
		Writef(os.Stderr, "  ✗ %s\n", e)
	}
	for _, w := range g.Warnings {
		Writef(os.Stderr, "  ⚠ %s\n", w)
	}
	Writef(os.Stderr, "\n")
}
