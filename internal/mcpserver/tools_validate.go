package mcpserver

import (
	"context"
	"sort"

	"github.com/Hanliang-Xu/asltools/validator"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type validateInput struct {
	Sidecar    sidecarInput `json:"sidecar"               jsonschema:"The ASL sidecar to validate"`
	NoWarnings *bool        `json:"no_warnings,omitempty" jsonschema:"Suppress warnings from output"`
}

type validateIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type validateOutput struct {
	Valid        bool            `json:"valid"`
	ErrorCount   int             `json:"error_count"`
	WarningCount int             `json:"warning_count"`
	Errors       []validateIssue `json:"errors,omitempty"`
	Warnings     []validateIssue `json:"warnings,omitempty"`
	Values       map[string]any  `json:"values,omitempty"`
}

func handleValidate(_ context.Context, _ *mcp.CallToolRequest, input validateInput) (*mcp.CallToolResult, validateOutput, error) {
	// Apply config defaults when input fields are omitted (nil).
	noWarnings := cfg.ValidateNoWarnings
	if input.NoWarnings != nil {
		noWarnings = *input.NoWarnings
	}

	loaded, err := input.Sidecar.resolve()
	if err != nil {
		return errResult(err), validateOutput{}, nil
	}

	result, err := validator.ValidateWithOptions(
		validator.WithRecord(loaded.Record),
		validator.WithIncludeWarnings(!noWarnings),
	)
	if err != nil {
		return errResult(err), validateOutput{}, nil
	}

	output := validateOutput{
		Valid:      result.Valid,
		ErrorCount: result.ErrorCount,
		Values:     result.Values,
	}

	output.Errors = issueList(result.Errors)
	if !noWarnings {
		output.WarningCount = result.WarningCount
		output.Warnings = issueList(result.Warnings)
	}

	return nil, output, nil
}

// issueList converts a field-keyed message map into a field-sorted slice.
func issueList(m map[string]string) []validateIssue {
	fields := make([]string, 0, len(m))
	for field := range m {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	issues := makeSlice[validateIssue](len(fields))
	for _, field := range fields {
		issues = append(issues, validateIssue{Field: field, Message: m[field]})
	}
	return issues
}
