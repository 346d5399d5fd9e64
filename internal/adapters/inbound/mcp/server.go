package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/orderdesk/orderdesk/internal/domain"
)

// NewOrderDeskMCPServer creates an MCP server with all orderdesk tools and
// resources registered. Every call goes through api; pageSize is the limit
// used when a list tool is called without one.
func NewOrderDeskMCPServer(api domain.APIClient, pageSize int, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"orderdesk",
		version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	if pageSize <= 0 {
		pageSize = domain.DefaultPageSize
	}
	registerTools(s, api, pageSize)
	registerResources(s, api)

	return s
}
