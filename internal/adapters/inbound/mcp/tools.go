package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/orderdesk/orderdesk/internal/application"
	"github.com/orderdesk/orderdesk/internal/domain"
)

// registerTools registers all orderdesk MCP tools on the given server.
func registerTools(s *server.MCPServer, api domain.APIClient, pageSize int) {
	// 1. orderdesk_list_products
	s.AddTool(
		mcplib.NewTool("orderdesk_list_products",
			mcplib.WithDescription("Lists one page of products, optionally filtered by category, search text and price range"),
			mcplib.WithNumber("category_id", mcplib.Description("Only products in this category")),
			mcplib.WithString("q", mcplib.Description("Search text matched against product name and SKU")),
			mcplib.WithString("min_price", mcplib.Description("Minimum price, e.g. 5 or 19.90")),
			mcplib.WithString("max_price", mcplib.Description("Maximum price")),
			mcplib.WithNumber("limit", mcplib.Description(fmt.Sprintf("Rows per page (1-%d)", domain.MaxPageSize))),
			mcplib.WithNumber("page", mcplib.Description("Page number starting at 1")),
		),
		handleListProducts(api, pageSize),
	)

	// 2. orderdesk_list_categories
	s.AddTool(
		mcplib.NewTool("orderdesk_list_categories",
			mcplib.WithDescription("Lists the product categories"),
		),
		handleListCategories(api),
	)

	// 3. orderdesk_list_orders
	s.AddTool(
		mcplib.NewTool("orderdesk_list_orders",
			mcplib.WithDescription("Lists one page of orders, optionally filtered by customer and order date"),
			mcplib.WithNumber("user_id", mcplib.Description("Only orders of this customer")),
			mcplib.WithString("start_date", mcplib.Description("Earliest order date, YYYY-MM-DD")),
			mcplib.WithString("end_date", mcplib.Description("Latest order date, YYYY-MM-DD")),
			mcplib.WithNumber("limit", mcplib.Description(fmt.Sprintf("Rows per page (1-%d)", domain.MaxPageSize))),
			mcplib.WithNumber("page", mcplib.Description("Page number starting at 1")),
		),
		handleListOrders(api, pageSize),
	)

	// 4. orderdesk_get_order
	s.AddTool(
		mcplib.NewTool("orderdesk_get_order",
			mcplib.WithDescription("Returns one order with its line items and line totals"),
			mcplib.WithString("order_id", mcplib.Required(), mcplib.Description("ID of the order")),
		),
		handleGetOrder(api),
	)

	// 5. orderdesk_create_order
	s.AddTool(
		mcplib.NewTool("orderdesk_create_order",
			mcplib.WithDescription("Creates an order. Each product may appear once; quantities default to 1."),
			mcplib.WithNumber("user_id", mcplib.Required(), mcplib.Description("Customer placing the order")),
			mcplib.WithString("status", mcplib.Description("Order status: "+domain.StatusNames()+" (default pending)")),
			mcplib.WithArray("items", mcplib.Required(),
				mcplib.Description("Line items"),
				mcplib.Items(map[string]any{
					"type": "object",
					"properties": map[string]any{
						"product_id": map[string]any{"type": "number"},
						"quantity":   map[string]any{"type": "number"},
					},
					"required": []string{"product_id"},
				}),
			),
		),
		handleCreateOrder(api),
	)

	// 6. orderdesk_daily_sales
	s.AddTool(
		mcplib.NewTool("orderdesk_daily_sales",
			mcplib.WithDescription("Returns total sales per day as {x: day, y: total} points"),
			mcplib.WithString("start_date", mcplib.Description("First day, YYYY-MM-DD")),
			mcplib.WithString("end_date", mcplib.Description("Last day, YYYY-MM-DD")),
		),
		handleDailySales(api),
	)
}

// listResult is the tool output of every list tool.
type listResult[R any] struct {
	Items      []R               `json:"items"`
	Page       domain.PageInfo   `json:"page"`
	Pagination domain.Pagination `json:"pagination"`
	Summary    string            `json:"summary"`
}

func handleListProducts(api domain.APIClient, pageSize int) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		args := request.GetArguments()
		pager, err := pagerArg(args, pageSize)
		if err != nil {
			return errorResult(domain.MessageOf(err)), nil
		}
		filter := domain.ProductFilter{
			CategoryID: argString(args, "category_id"),
			Query:      argString(args, "q"),
			MinPrice:   argString(args, "min_price"),
			MaxPrice:   argString(args, "max_price"),
		}

		ctl := application.NewProductsController(api, pager.Limit)
		if err := ctl.Mount(ctx, filter, pager); err != nil {
			return errorResult(domain.MessageOf(err)), nil
		}
		return jsonResult(toListResult(ctl.State(), ctl.Pagination()))
	}
}

func handleListCategories(api domain.APIClient) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		cats := application.NewProductsController(api, domain.DefaultPageSize).LoadCategories(ctx)
		return jsonResult(domain.ItemList[domain.Category]{Items: cats})
	}
}

func handleListOrders(api domain.APIClient, pageSize int) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		args := request.GetArguments()
		pager, err := pagerArg(args, pageSize)
		if err != nil {
			return errorResult(domain.MessageOf(err)), nil
		}
		filter := domain.OrderFilter{
			UserID:    argString(args, "user_id"),
			StartDate: argString(args, "start_date"),
			EndDate:   argString(args, "end_date"),
		}

		ctl := application.NewOrdersController(api, pager.Limit)
		if err := ctl.Mount(ctx, filter, pager); err != nil {
			return errorResult(domain.MessageOf(err)), nil
		}
		return jsonResult(toListResult(ctl.State(), ctl.Pagination()))
	}
}

// orderDetail adds the presentation-only line totals to an order.
type orderDetail struct {
	domain.Order
	LineTotals []string `json:"line_totals"`
	Total      string   `json:"total"`
}

func handleGetOrder(api domain.APIClient) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		id := argString(request.GetArguments(), "order_id")
		if id == "" {
			return errorResult("order_id is required"), nil
		}

		ctl := application.NewOrderDetailController(api)
		if err := ctl.Load(ctx, id); err != nil {
			return errorResult(domain.MessageOf(err)), nil
		}
		st := ctl.State()
		if st.View() == domain.ViewNotFound {
			return errorResult("No order found."), nil
		}

		out := orderDetail{Order: *st.Entity, LineTotals: make([]string, 0, len(st.Entity.Items))}
		for _, it := range st.Entity.Items {
			out.LineTotals = append(out.LineTotals, it.LineTotal().StringFixed(2))
		}
		out.Total = st.Entity.Total().StringFixed(2)
		return jsonResult(out)
	}
}

func handleCreateOrder(api domain.APIClient) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		args := request.GetArguments()
		status, err := domain.ParseOrderStatus(argString(args, "status"))
		if err != nil {
			return errorResult(domain.MessageOf(err)), nil
		}

		ctl := application.NewCreateOrderController(api)
		ctl.SetUserID(argString(args, "user_id"))
		ctl.SetStatus(status)

		rows, _ := args["items"].([]any)
		for i, raw := range rows {
			item, ok := raw.(map[string]any)
			if !ok {
				return errorResult(fmt.Sprintf("items[%d] must be an object", i)), nil
			}
			if i > 0 {
				ctl.AddItem()
			}
			qty := argString(item, "quantity")
			if qty == "" {
				qty = "1"
			}
			if err := ctl.UpdateItem(i, domain.FieldProductID, argString(item, "product_id")); err != nil {
				return errorResult(fmt.Sprintf("items[%d]: %s", i, domain.MessageOf(err))), nil
			}
			if err := ctl.UpdateItem(i, domain.FieldQuantity, qty); err != nil {
				return errorResult(fmt.Sprintf("items[%d]: %s", i, domain.MessageOf(err))), nil
			}
		}

		order, err := ctl.Submit(ctx)
		if err != nil {
			return errorResult(domain.MessageOf(err)), nil
		}
		return jsonResult(order)
	}
}

func handleDailySales(api domain.APIClient) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		args := request.GetArguments()
		ctl := application.NewAnalyticsController(api)
		ctl.SetWindow(domain.SalesWindow{
			StartDate: argString(args, "start_date"),
			EndDate:   argString(args, "end_date"),
		})
		if err := ctl.Apply(ctx); err != nil {
			return errorResult(domain.MessageOf(err)), nil
		}
		st := ctl.State()
		if st.Empty() {
			return textResult("No data for selected range."), nil
		}
		return jsonResult(st.Series)
	}
}

func toListResult[F domain.Filter, R any](st application.ListState[F, R], pg domain.Pagination) listResult[R] {
	return listResult[R]{Items: st.Rows, Page: st.Page, Pagination: pg, Summary: pg.Summary()}
}

// argString reads an argument as the text a user would have typed. JSON
// numbers arrive as float64 and are printed without a fraction when whole.
func argString(args map[string]any, key string) string {
	switch v := args[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// pagerArg builds the page window from the limit and page arguments.
func pagerArg(args map[string]any, pageSize int) (domain.Pager, error) {
	limit, page := pageSize, 1
	if s := argString(args, "limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 || n > domain.MaxPageSize {
			return domain.Pager{}, domain.Invalidf("limit must be between 1 and %d", domain.MaxPageSize)
		}
		limit = n
	}
	if s := argString(args, "page"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			return domain.Pager{}, domain.Invalidf("page must be 1 or greater")
		}
		page = n
	}
	pager := domain.NewPager(limit)
	pager.SeekPage(page)
	return pager, nil
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v any) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// textResult returns a plain text content result.
func textResult(text string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(text)},
	}
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
