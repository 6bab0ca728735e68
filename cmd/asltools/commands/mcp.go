package commands

import (
	"context"
	"errors"
	"flag"

	"github.com/Hanliang-Xu/asltools/internal/mcpserver"
)

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
func SetupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: asltools mcp\n\n")
		Writef(fs.Output(), "Run the asltools MCP server over stdio.\n\n")
		Writef(fs.Output(), "The server exposes the sidecar validation and extraction tools to MCP\n")
		Writef(fs.Output(), "clients. Configuration is read from ASLTOOLS_* environment variables;\n")
		Writef(fs.Output(), "see the server instructions for the full list.\n")
	}

	return fs
}

// HandleMCP executes the mcp command, blocking until the client disconnects
func HandleMCP(args []string) error {
	fs := SetupMCPFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	return mcpserver.Run(context.Background())
}
