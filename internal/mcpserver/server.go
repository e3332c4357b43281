package mcpserver

import (
	"context"
	"fmt"
	"slices"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"panectl/internal/layout"
	"panectl/internal/render"
	"panectl/internal/surface"
	"panectl/internal/views"
	"panectl/pkg/logging"
)

const subsystem = "MCPServer"

// LayoutStore is the part of the layout store the tools need.
// *store.Store satisfies it.
type LayoutStore interface {
	List() ([]string, error)
	Load(name string) (layout.Dump, error)
	SaveRaw(name string, data []byte) error
}

// Server registers the layout tools on an MCP server.
type Server struct {
	store LayoutStore
	mcp   *server.MCPServer
}

// New creates a server backed by st.
func New(st LayoutStore, version string) *Server {
	s := &Server{
		store: st,
		mcp: server.NewMCPServer(
			"panectl",
			version,
			server.WithToolCapabilities(false),
		),
	}
	s.mcp.AddTools(s.Tools()...)
	return s
}

// MCPServer returns the underlying protocol server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

// ServeStdio serves requests on stdin and stdout until the input closes.
func (s *Server) ServeStdio() error {
	logging.Info(subsystem, "Serving layout tools on stdio")
	return server.ServeStdio(s.mcp)
}

// Tools returns the layout tools with their handlers.
func (s *Server) Tools() []server.ServerTool {
	return []server.ServerTool{
		{
			Tool: mcp.NewTool("layout_list",
				mcp.WithDescription("List saved layouts and built-in presets"),
			),
			Handler: s.handleList,
		},
		{
			Tool: mcp.NewTool("layout_get",
				mcp.WithDescription("Get the dump of a saved layout or preset"),
				mcp.WithString("name",
					mcp.Required(),
					mcp.Description("Layout or preset name"),
				),
				mcp.WithString("format",
					mcp.Description("Output format: json or yaml"),
					mcp.Enum("json", "yaml"),
				),
			),
			Handler: s.handleGet,
		},
		{
			Tool: mcp.NewTool("layout_render",
				mcp.WithDescription("Render a saved layout or preset as terminal text"),
				mcp.WithString("name",
					mcp.Required(),
					mcp.Description("Layout or preset name"),
				),
				mcp.WithNumber("width",
					mcp.Description("Width in cells (default 80)"),
				),
				mcp.WithNumber("height",
					mcp.Description("Height in cells (default 24)"),
				),
				mcp.WithBoolean("outline",
					mcp.Description("Print the container tree instead of the drawing"),
				),
			),
			Handler: s.handleRender,
		},
		{
			Tool: mcp.NewTool("layout_validate",
				mcp.WithDescription("Check that a JSON or YAML dump restores into a layout"),
				mcp.WithString("dump",
					mcp.Required(),
					mcp.Description("The layout dump"),
				),
			),
			Handler: s.handleValidate,
		},
		{
			Tool: mcp.NewTool("layout_save",
				mcp.WithDescription("Validate a dump and save it under a name"),
				mcp.WithString("name",
					mcp.Required(),
					mcp.Description("Layout name"),
				),
				mcp.WithString("dump",
					mcp.Required(),
					mcp.Description("The layout dump, JSON or YAML"),
				),
			),
			Handler: s.handleSave,
		},
	}
}

// resolve loads name from the store, falling back to the presets.
func (s *Server) resolve(name string) (layout.Dump, error) {
	d, err := s.store.Load(name)
	if err == nil {
		return d, nil
	}
	if !views.IsPreset(name) {
		return nil, err
	}
	doc := surface.NewDocument()
	reg := views.NewDefaultRegistry(doc, views.Options{})
	b, perr := views.Preset(name, reg)
	if perr != nil {
		return nil, perr
	}
	root, perr := layout.NewRoot(b, doc)
	if perr != nil {
		return nil, perr
	}
	return root.Persist(), nil
}

// build restores d into a fresh document with the default views.
func build(d layout.Dump) (*layout.Root, error) {
	doc := surface.NewDocument()
	reg := views.NewDefaultRegistry(doc, views.Options{})
	return layout.RestoreRoot(d, reg.Resolve, doc)
}

func (s *Server) handleList(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	saved, err := s.store.List()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list layouts: %v", err)), nil
	}
	var presets []string
	for _, p := range views.PresetNames() {
		if !slices.Contains(saved, p) {
			presets = append(presets, p)
		}
	}
	return jsonResult(map[string]any{
		"layouts": nonNil(saved),
		"presets": nonNil(presets),
		"total":   len(saved) + len(presets),
	})
}

func (s *Server) handleGet(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError("name is required"), nil
	}
	d, err := s.resolve(name)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to load layout: %v", err)), nil
	}

	var data []byte
	switch format := req.GetString("format", "json"); format {
	case "json":
		data, err = layout.MarshalDumpIndent(d)
	case "yaml":
		data, err = layout.MarshalDumpYAML(d)
	default:
		return mcp.NewToolResultError(fmt.Sprintf("unknown format %q", format)), nil
	}
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to encode layout: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) handleRender(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError("name is required"), nil
	}
	width := req.GetInt("width", 80)
	height := req.GetInt("height", 24)
	if width <= 0 || height <= 0 {
		return mcp.NewToolResultError(fmt.Sprintf("invalid size %dx%d", width, height)), nil
	}

	d, err := s.resolve(name)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to load layout: %v", err)), nil
	}
	root, err := build(d)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to restore layout: %v", err)), nil
	}
	root.SetSize(layout.Size{Width: width, Height: height})

	if req.GetBool("outline", false) {
		return mcp.NewToolResultText(render.Outline(root)), nil
	}
	return mcp.NewToolResultText(render.Renderer{}.Render(root)), nil
}

func (s *Server) handleValidate(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := req.RequireString("dump")
	if err != nil {
		return mcp.NewToolResultError("dump is required"), nil
	}
	d, err := layout.DecodeDump([]byte(raw))
	if err != nil {
		return jsonResult(map[string]any{"valid": false, "error": err.Error()})
	}
	root, err := build(d)
	if err != nil {
		return jsonResult(map[string]any{"valid": false, "error": err.Error()})
	}
	return jsonResult(map[string]any{
		"valid":      true,
		"containers": layout.Count(root),
		"views":      len(layout.Leaves(root)),
	})
}

func (s *Server) handleSave(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError("name is required"), nil
	}
	raw, err := req.RequireString("dump")
	if err != nil {
		return mcp.NewToolResultError("dump is required"), nil
	}
	d, err := layout.DecodeDump([]byte(raw))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Invalid dump: %v", err)), nil
	}
	if _, err := build(d); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Invalid dump: %v", err)), nil
	}
	data, err := layout.MarshalDump(d)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to encode layout: %v", err)), nil
	}
	if err := s.store.SaveRaw(name, data); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to save layout: %v", err)), nil
	}
	logging.Info(subsystem, "Saved layout %q", name)
	return mcp.NewToolResultText(fmt.Sprintf("Saved layout %q", name)), nil
}
