package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/orderdesk/orderdesk/internal/application"
	"github.com/orderdesk/orderdesk/internal/domain"
)

const categoriesURI = "orderdesk://categories"

// registerResources registers all orderdesk MCP resources on the given server.
func registerResources(s *server.MCPServer, api domain.APIClient) {
	s.AddResource(
		mcplib.NewResource(
			categoriesURI,
			"Product Categories",
			mcplib.WithResourceDescription("Category ids and names, for filtering products"),
			mcplib.WithMIMEType("application/json"),
		),
		handleCategoriesResource(api),
	)
}

func handleCategoriesResource(api domain.APIClient) server.ResourceHandlerFunc {
	return func(ctx context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		cats := application.NewProductsController(api, domain.DefaultPageSize).LoadCategories(ctx)

		data, err := json.MarshalIndent(domain.ItemList[domain.Category]{Items: cats}, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling categories: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      categoriesURI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
