package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/Hanliang-Xu/asltools"
	"github.com/Hanliang-Xu/asltools/schema"
	"github.com/Hanliang-Xu/asltools/sidecar"
	"github.com/Hanliang-Xu/asltools/validator"
)

// ValidateFlags contains flags for the validate command
type ValidateFlags struct {
	NoWarnings bool
	Quiet      bool
	Format     string
	Schema     string
	OutDir     string
}

// SetupValidateFlags creates and configures a FlagSet for the validate command.
// Returns the FlagSet and a ValidateFlags struct with bound flag variables.
func SetupValidateFlags() (*flag.FlagSet, *ValidateFlags) {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	flags := &ValidateFlags{}

	fs.BoolVar(&flags.NoWarnings, "no-warnings", false, "suppress warning messages (only show errors)")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output validation result, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output validation result, no diagnostic messages")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.StringVar(&flags.Schema, "schema", "", "path to a custom YAML rule table (replaces the built-in schemas)")
	fs.StringVar(&flags.OutDir, "out-dir", "", "directory to write errors.json, warnings.json, and values.json to")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: asltools validate [flags] <file|->\n\n")
		Writef(fs.Output(), "Validate an ASL sidecar file or stdin against the required and recommended parameter schemas.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nOutput Formats:\n")
		Writef(fs.Output(), "  text (default)  Human-readable text output\n")
		Writef(fs.Output(), "  json            JSON format for programmatic processing\n")
		Writef(fs.Output(), "  yaml            YAML format for programmatic processing\n")
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  asltools validate sub-01_asl.json\n")
		Writef(fs.Output(), "  asltools validate --no-warnings sub-01_asl.json\n")
		Writef(fs.Output(), "  asltools validate --schema rules.yaml sub-01_asl.json\n")
		Writef(fs.Output(), "  asltools validate --out-dir results/ sub-01_asl.json\n")
		Writef(fs.Output(), "  cat sub-01_asl.json | asltools validate -q -\n")
		Writef(fs.Output(), "  asltools validate --format json sub-01_asl.json | jq '.valid'\n")
		Writef(fs.Output(), "\nPipelining:\n")
		Writef(fs.Output(), "  - Use '-' as the file path to read from stdin\n")
		Writef(fs.Output(), "  - Use --quiet/-q to suppress diagnostic output for pipelining\n")
		Writef(fs.Output(), "  - Use --format json/yaml for structured output that can be parsed\n")
		Writef(fs.Output(), "\nExit Codes:\n")
		Writef(fs.Output(), "  0    Validation successful\n")
		Writef(fs.Output(), "  1    Validation failed with errors\n")
	}

	return fs, flags
}

// validateOutput is the structured output shape for --format json/yaml
type validateOutput struct {
	Valid        bool              `json:"valid" yaml:"valid"`
	ErrorCount   int               `json:"error_count" yaml:"error_count"`
	WarningCount int               `json:"warning_count" yaml:"warning_count"`
	Errors       map[string]string `json:"errors" yaml:"errors"`
	Warnings     map[string]string `json:"warnings" yaml:"warnings"`
	Values       map[string]any    `json:"values" yaml:"values"`
	SourcePath   string            `json:"source_path,omitempty" yaml:"source_path,omitempty"`
	SourceFormat string            `json:"source_format,omitempty" yaml:"source_format,omitempty"`
}

// HandleValidate executes the validate command
func HandleValidate(args []string) error {
	fs, flags := SetupValidateFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("validate command requires exactly one file path or '-' for stdin")
	}

	sidecarPath := fs.Arg(0)

	// Validate format flag early to fail fast before expensive operations
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	// Build validation options
	validateOpts := []validator.Option{
		validator.WithIncludeWarnings(!flags.NoWarnings),
	}
	if flags.Schema != "" {
		required, recommended, err := schema.LoadFile(flags.Schema)
		if err != nil {
			return fmt.Errorf("loading schema file: %w", err)
		}
		validateOpts = append(validateOpts, validator.WithSchemas(required, recommended))
	}

	// Validate the file or stdin with timing
	startTime := time.Now()
	var result *validator.ValidationResult
	var err error

	if sidecarPath == StdinFilePath {
		loaded, loadErr := sidecar.NewLoader().LoadReader(os.Stdin)
		if loadErr != nil {
			return fmt.Errorf("reading stdin: %w", loadErr)
		}
		validateOpts = append(validateOpts, validator.WithRecord(loaded.Record))
		result, err = validator.ValidateWithOptions(validateOpts...)
		if err != nil {
			return fmt.Errorf("validating stdin: %w", err)
		}
		result.SourceFormat = loaded.SourceFormat
		result.SourceSize = loaded.SourceSize
		result.LoadTime = loaded.LoadTime
	} else {
		validateOpts = append(validateOpts, validator.WithFilePath(sidecarPath))
		result, err = validator.ValidateWithOptions(validateOpts...)
		if err != nil {
			return fmt.Errorf("validating file: %w", err)
		}
	}
	totalTime := time.Since(startTime)

	// Write the result files before any output so they land even when
	// validation failed
	if flags.OutDir != "" {
		if err := result.WriteFiles(flags.OutDir); err != nil {
			return fmt.Errorf("writing result files: %w", err)
		}
	}

	// Handle structured output formats
	if flags.Format == FormatJSON || flags.Format == FormatYAML {
		out := validateOutput{
			Valid:        result.Valid,
			ErrorCount:   result.ErrorCount,
			WarningCount: result.WarningCount,
			Errors:       result.Errors,
			Warnings:     result.Warnings,
			Values:       result.Values,
			SourcePath:   result.SourcePath,
			SourceFormat: string(result.SourceFormat),
		}
		if err := OutputStructured(out, flags.Format); err != nil {
			return err
		}

		// Exit with error if validation failed
		if !result.Valid {
			os.Exit(1)
		}

		return nil
	}

	// Text format output, always to stderr so stdout stays clean for
	// pipelining
	if !flags.Quiet {
		Writef(os.Stderr, "ASL Sidecar Validator\n")
		Writef(os.Stderr, "=====================\n\n")
		Writef(os.Stderr, "asltools version: %s\n", asltools.Version())
		Writef(os.Stderr, "Sidecar: %s\n", FormatSidecarPath(sidecarPath))
		Writef(os.Stderr, "Format: %s\n", result.SourceFormat)
		Writef(os.Stderr, "Source Size: %s\n", sidecar.FormatBytes(result.SourceSize))
		Writef(os.Stderr, "Load Time: %v\n", result.LoadTime)
		Writef(os.Stderr, "Total Time: %v\n\n", totalTime)

		issues := result.Issues()
		if len(issues) > 0 {
			Writef(os.Stderr, "Issues (%d):\n", len(issues))
			for _, issue := range issues {
				Writef(os.Stderr, "  %s\n", issue.String())
			}
			Writef(os.Stderr, "\n")
		}

		if result.Valid {
			Writef(os.Stderr, "✓ Validation passed")
			if result.WarningCount > 0 {
				Writef(os.Stderr, " with %d warning(s)", result.WarningCount)
			}
			Writef(os.Stderr, "\n")
		} else {
			Writef(os.Stderr, "✗ Validation failed: %d error(s)", result.ErrorCount)
			if result.WarningCount > 0 {
				Writef(os.Stderr, ", %d warning(s)", result.WarningCount)
			}
			Writef(os.Stderr, "\n")
		}
	}

	// Exit with error if validation failed
	if !result.Valid {
		os.Exit(1)
	}

	return nil
}
