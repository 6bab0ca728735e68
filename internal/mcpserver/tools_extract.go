package mcpserver

import (
	"context"

	"github.com/Hanliang-Xu/asltools/aslrules"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type extractInput struct {
	Sidecar sidecarInput `json:"sidecar" jsonschema:"The ASL sidecar to extract parameters from"`
}

type extractGroup struct {
	Errors   []string       `json:"errors,omitempty"`
	Warnings []string       `json:"warnings,omitempty"`
	Values   map[string]any `json:"values"`
}

type extractOutput struct {
	HasErrors   bool         `json:"has_errors"`
	General     extractGroup `json:"general"`
	Recommended extractGroup `json:"recommended"`
	PCASL       extractGroup `json:"pcasl"`
}

func handleExtract(_ context.Context, _ *mcp.CallToolRequest, input extractInput) (*mcp.CallToolResult, extractOutput, error) {
	loaded, err := input.Sidecar.resolve()
	if err != nil {
		return errResult(err), extractOutput{}, nil
	}

	report := aslrules.ExtractReport(loaded.Record)

	return nil, extractOutput{
		HasErrors:   report.HasErrors(),
		General:     toGroup(report.General),
		Recommended: toGroup(report.Recommended),
		PCASL:       toGroup(report.PCASL),
	}, nil
}

func toGroup(g aslrules.GroupResult) extractGroup {
	return extractGroup{
		Errors:   g.Errors,
		Warnings: g.Warnings,
		Values:   g.Values,
	}
}
