package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/ziadkadry99/azkar/internal/actions"
	"github.com/ziadkadry99/azkar/internal/content"
	"github.com/ziadkadry99/azkar/internal/search"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes the content tree as tools.
type Server struct {
	store  *content.Store
	index  *search.Index
	sharer *actions.Sharer
	mcp    *server.MCPServer
}

// NewServer creates a new MCP server with the given dependencies.
func NewServer(store *content.Store, index *search.Index, sharer *actions.Sharer) *Server {
	s := &Server{
		store:  store,
		index:  index,
		sharer: sharer,
	}

	s.mcp = server.NewMCPServer(
		"azkar",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(listSectionsTool, s.handleListSections)
	s.mcp.AddTool(getCategoryTool, s.handleGetCategory)
	s.mcp.AddTool(getItemTool, s.handleGetItem)
	s.mcp.AddTool(searchItemsTool, s.handleSearchItems)
	s.mcp.AddTool(shareLinkTool, s.handleShareLink)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
