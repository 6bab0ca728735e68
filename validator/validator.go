package validator

import (
	"fmt"
	"sort"
	"time"

	"github.com/Hanliang-Xu/asltools/internal/issues"
	"github.com/Hanliang-Xu/asltools/internal/severity"
	"github.com/Hanliang-Xu/asltools/schema"
	"github.com/Hanliang-Xu/asltools/sidecar"
)

// Severity indicates the severity level of a validation issue
type Severity = severity.Severity

const (
	// SeverityError indicates a violation that makes the sidecar invalid
	SeverityError = severity.SeverityError
	// SeverityWarning indicates an unusual but acceptable value
	SeverityWarning = severity.SeverityWarning
	// SeverityInfo indicates informational messages
	SeverityInfo = severity.SeverityInfo
)

// Sentinel values recorded in place of real values for fields that could
// not be checked.
const (
	// NotApplicable marks a field whose applicability condition does not
	// hold for the record.
	NotApplicable = "Not applicable"
	// RecommendedToSpecify marks an applicable recommended field that the
	// record does not provide.
	RecommendedToSpecify = "Recommended to be specified"
)

// missingRequiredMessage is reported for applicable required fields that
// are absent from the record.
const missingRequiredMessage = "Missing required parameter"

// ValidationIssue represents a single validation finding
type ValidationIssue = issues.Issue

// ValidationResult contains the results of validating an ASL sidecar.
// Errors, Warnings, and Values are keyed by field name; a field with an
// error never also carries a warning.
type ValidationResult struct {
	// Valid is true if no errors were found (warnings are allowed)
	Valid bool
	// Errors maps each failing field to its first error message
	Errors map[string]string
	// Warnings maps each suspicious field to its first warning message
	Warnings map[string]string
	// Values maps each checked field to its raw value, or to a sentinel
	// (NotApplicable, RecommendedToSpecify) when no value was checked
	Values map[string]any
	// ErrorCount is the number of fields with errors
	ErrorCount int
	// WarningCount is the number of fields with warnings
	WarningCount int
	// SourcePath is the path of the validated sidecar, if loaded from a source
	SourcePath string
	// SourceFormat is the format of the source (JSON or YAML)
	SourceFormat sidecar.SourceFormat
	// SourceSize is the size of the source data in bytes
	SourceSize int64
	// LoadTime is the time taken to load and parse the source
	LoadTime time.Duration
}

// Issues flattens the result into a slice of ValidationIssue sorted by
// field name, errors first. Useful for line-oriented display.
func (r *ValidationResult) Issues() []ValidationIssue {
	out := make([]ValidationIssue, 0, len(r.Errors)+len(r.Warnings))
	for _, field := range sortedKeys(r.Errors) {
		out = append(out, ValidationIssue{
			Field:    field,
			Message:  r.Errors[field],
			Severity: SeverityError,
			Value:    r.Values[field],
		})
	}
	for _, field := range sortedKeys(r.Warnings) {
		out = append(out, ValidationIssue{
			Field:    field,
			Message:  r.Warnings[field],
			Severity: SeverityWarning,
			Value:    r.Values[field],
		})
	}
	return out
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Report is the flat, list-shaped view of a validation pass. Unlike
// ValidationResult it preserves schema order and keeps every message,
// not just the first per field.
type Report struct {
	// Fields lists the reported fields in schema order
	Fields []string
	// Errors contains all error messages across fields
	Errors []string
	// Warnings contains all warning messages across fields
	Warnings []string
	// Values maps each field to its normalized value or sentinel
	Values map[string]any
}

// Validator checks sidecar records against required and recommended
// parameter schemas
type Validator struct {
	// IncludeWarnings determines whether warnings are reported
	IncludeWarnings bool
	// Required is the schema of required parameters
	Required schema.Schema
	// Recommended is the schema of recommended parameters
	Recommended schema.Schema
	// Logger receives diagnostics from loading and validation.
	// Defaults to no logging if not set.
	Logger sidecar.Logger
}

// New creates a new Validator with the built-in ASL schemas and default
// settings
func New() *Validator {
	return &Validator{
		IncludeWarnings: true,
		Required:        schema.Required(),
		Recommended:     schema.Recommended(),
	}
}

// ValidateWithOptions validates an ASL sidecar using functional options.
// This combines input source selection and configuration in a single call.
//
// Example:
//
//	result, err := validator.ValidateWithOptions(
//	    validator.WithFilePath("sub-01_asl.json"),
//	    validator.WithIncludeWarnings(false),
//	)
func ValidateWithOptions(opts ...Option) (*ValidationResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("validator: invalid options: %w", err)
	}

	v := &Validator{
		IncludeWarnings: cfg.includeWarnings,
		Required:        cfg.required,
		Recommended:     cfg.recommended,
		Logger:          cfg.logger,
	}

	// Route to the matching validation method based on input source.
	// Record input is checked first as it skips loading entirely.
	if cfg.record != nil {
		return v.ValidateRecord(*cfg.record), nil
	}
	// cfg.filePath must be non-nil here (validated by applyOptions)
	return v.Validate(*cfg.filePath)
}

// Validate loads a sidecar file and validates it against the configured
// schemas
func (v *Validator) Validate(path string) (*ValidationResult, error) {
	l := sidecar.NewLoader()
	l.Logger = v.Logger

	loaded, err := l.Load(path)
	if err != nil {
		return nil, fmt.Errorf("validator: failed to load sidecar: %w", err)
	}

	result := v.ValidateRecord(loaded.Record)
	result.SourcePath = loaded.SourcePath
	result.SourceFormat = loaded.SourceFormat
	result.SourceSize = loaded.SourceSize
	result.LoadTime = loaded.LoadTime
	return result, nil
}

// ValidateRecord validates an already loaded sidecar record
func (v *Validator) ValidateRecord(rec sidecar.Record) *ValidationResult {
	result := &ValidationResult{
		Errors:   make(map[string]string),
		Warnings: make(map[string]string),
		Values:   make(map[string]any),
	}

	for _, fr := range v.apply(rec, v.Required, true) {
		fr.fillMaps(result)
	}
	for _, fr := range v.apply(rec, v.Recommended, false) {
		fr.fillMaps(result)
	}

	result.ErrorCount = len(result.Errors)
	result.WarningCount = len(result.Warnings)
	result.Valid = result.ErrorCount == 0

	// Filter warnings if not included
	if !v.IncludeWarnings {
		result.Warnings = nil
		result.WarningCount = 0
	}

	return result
}

// Report validates a record and returns the flat, schema-ordered view
func (v *Validator) Report(rec sidecar.Record) *Report {
	rep := &Report{Values: make(map[string]any)}

	for _, fr := range v.apply(rec, v.Required, true) {
		fr.fillReport(rep, v.IncludeWarnings)
	}
	for _, fr := range v.apply(rec, v.Recommended, false) {
		fr.fillReport(rep, v.IncludeWarnings)
	}

	return rep
}

// fieldResult is the outcome of checking one schema entry against a record
type fieldResult struct {
	field    string
	errors   []string
	warnings []string
	rawValue any
	value    any
	hasValue bool
}

// apply runs every entry of a schema against the record. Required and
// recommended schemas differ only in how inapplicable and absent fields
// are reported: required entries are skipped when inapplicable and error
// when absent, recommended entries record a sentinel in both cases.
func (v *Validator) apply(rec sidecar.Record, sch schema.Schema, required bool) []fieldResult {
	results := make([]fieldResult, 0, len(sch))
	for _, entry := range sch {
		if !entry.Condition.Applies(rec) {
			if !required {
				results = append(results, fieldResult{
					field:    entry.Field,
					rawValue: NotApplicable,
					value:    NotApplicable,
					hasValue: true,
				})
			}
			continue
		}

		val := rec.Get(entry.Field)
		if val.IsAbsent() {
			if required {
				results = append(results, fieldResult{
					field:  entry.Field,
					errors: []string{missingRequiredMessage},
				})
			} else {
				results = append(results, fieldResult{
					field:    entry.Field,
					rawValue: RecommendedToSpecify,
					value:    RecommendedToSpecify,
					hasValue: true,
				})
			}
			continue
		}

		out := entry.Rule.Check(entry.Field, val)
		results = append(results, fieldResult{
			field:    entry.Field,
			errors:   out.Errors,
			warnings: out.Warnings,
			rawValue: val.Raw(),
			value:    out.Value,
			hasValue: true,
		})
	}
	return results
}

// fillMaps folds the field result into the map-shaped ValidationResult.
// Only the first message per field is kept, and an error suppresses the
// field's warnings.
func (fr fieldResult) fillMaps(result *ValidationResult) {
	if len(fr.errors) > 0 {
		result.Errors[fr.field] = fr.errors[0]
	} else if len(fr.warnings) > 0 {
		result.Warnings[fr.field] = fr.warnings[0]
	}
	if fr.hasValue {
		result.Values[fr.field] = fr.rawValue
	}
}

// fillReport folds the field result into the flat Report, keeping every
// message
func (fr fieldResult) fillReport(rep *Report, includeWarnings bool) {
	rep.Fields = append(rep.Fields, fr.field)
	rep.Errors = append(rep.Errors, fr.errors...)
	if includeWarnings && len(fr.errors) == 0 {
		rep.Warnings = append(rep.Warnings, fr.warnings...)
	}
	if fr.hasValue {
		rep.Values[fr.field] = fr.value
	}
}
