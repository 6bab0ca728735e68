// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes asltools capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/Hanliang-Xu/asltools"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `asltools MCP server — validates ASL (arterial spin labeling) sidecar metadata and extracts grouped parameter reports.

Configuration: All defaults are configurable via ASLTOOLS_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- ASLTOOLS_CACHE_FILE_TTL (default: 15m) — cache TTL for local sidecar files
- ASLTOOLS_CACHE_CONTENT_TTL (default: 15m) — cache TTL for inline content
- ASLTOOLS_CACHE_ENABLED (default: true) — disable sidecar caching entirely
- ASLTOOLS_VALIDATE_NO_WARNINGS (default: false) — suppress warnings by default
- ASLTOOLS_MAX_INLINE_SIZE (default: 1048576) — maximum inline content bytes

Caching: Loaded sidecars are cached per session. File entries use path+mtime as key (auto-invalidated on change); inline content is keyed by hash. A background sweeper removes expired entries every 60s.`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	if cfg.CacheEnabled {
		sidecarCache.startSweeper(ctx, cfg.CacheSweepInterval)
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: "asltools", Version: asltools.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "validate",
		Description: "Validate an ASL sidecar (JSON or YAML) against the required and recommended parameter schemas. Returns per-field errors and warnings plus the extracted values. Warning suppression defaults are configurable via the ASLTOOLS_VALIDATE_NO_WARNINGS env var.",
	}, handleValidate)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "extract",
		Description: "Extract ASL parameters from a sidecar (JSON or YAML) as a grouped report: general required parameters, recommended parameters, and PCASL-specific labeling parameters. Inapplicable parameters read 'Not applicable', applicable but missing ones read 'Not provided'.",
	}, handleExtract)
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
