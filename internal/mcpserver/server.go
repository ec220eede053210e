// Package mcpserver exposes the help extractor as MCP tools over stdio, so an
// agent can hand over a help screen and get feature records back.
package mcpserver

import (
	"bytes"
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/thellimist/parsehelp/internal/extract"
	"github.com/thellimist/parsehelp/internal/output"
	"github.com/thellimist/parsehelp/internal/sectionfilter"
)

const (
	ToolParseHelp    = "parse_help"
	ToolListSections = "list_sections"
)

type handlers struct {
	log *zap.Logger
}

// New builds an MCP server with the parse_help and list_sections tools.
func New(version string, log *zap.Logger) *server.MCPServer {
	h := &handlers{log: log}
	s := server.NewMCPServer("parsehelp", version)

	s.AddTool(
		mcp.NewTool(ToolParseHelp,
			mcp.WithDescription("Extracts flag records from CLI help text. Returns one JSON object per line with name, flag, description, section and slug."),
			mcp.WithString("text", mcp.Required(), mcp.Description("Full help screen text")),
			mcp.WithString("include_sections", mcp.Description("Comma-separated section headers to keep")),
			mcp.WithString("exclude_sections", mcp.Description("Comma-separated section headers to drop")),
		),
		h.parseHelp,
	)

	s.AddTool(
		mcp.NewTool(ToolListSections,
			mcp.WithDescription("Lists the section headers of CLI help text, one per line"),
			mcp.WithString("text", mcp.Required(), mcp.Description("Full help screen text")),
		),
		h.listSections,
	)

	return s
}

// Serve runs s on stdin/stdout until the client disconnects.
func Serve(s *server.MCPServer) error {
	return server.ServeStdio(s)
}

func (h *handlers) parseHelp(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	text, ok := args["text"].(string)
	if !ok {
		return mcp.NewToolResultError("missing required argument 'text'"), nil
	}

	features := extract.Extract(text)
	include := sectionfilter.ParseList(stringArg(args, "include_sections"))
	exclude := sectionfilter.ParseList(stringArg(args, "exclude_sections"))
	filtered, err := sectionfilter.Filter(features, extract.Headers(text), include, exclude)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var buf bytes.Buffer
	if err := output.Write(&buf, output.FormatNDJSON, filtered); err != nil {
		return nil, err
	}

	h.log.Debug("parse_help",
		zap.Int("bytes", len(text)),
		zap.Int("features", len(features)),
		zap.Int("returned", len(filtered)),
	)
	return textResult(buf.String()), nil
}

func (h *handlers) listSections(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, ok := request.GetArguments()["text"].(string)
	if !ok {
		return mcp.NewToolResultError("missing required argument 'text'"), nil
	}

	headers := extract.Headers(text)
	h.log.Debug("list_sections", zap.Int("sections", len(headers)))
	return textResult(strings.Join(headers, "\n")), nil
}

func stringArg(args map[string]any, key string) string {
	s, _ := args[key].(string)
	return s
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{
				Type: "text",
				Text: text,
			},
		},
	}
}
