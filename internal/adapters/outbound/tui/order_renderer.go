package tui

import (
	"fmt"
	"strings"

	"github.com/orderdesk/orderdesk/internal/domain"
)

// RenderOrderDetail renders exactly one of loading, error, not found or the
// order itself, selected by view.
func RenderOrderDetail(view domain.View, order *domain.Order, errMsg string) string {
	switch view {
	case domain.ViewLoading:
		return RenderLoading()
	case domain.ViewError:
		return RenderError(errMsg)
	case domain.ViewNotFound:
		return "  " + dimStyle.Render("No order found.") + "\n"
	}

	var b strings.Builder
	header := titleStyle.Render(fmt.Sprintf("Order %d", order.ID)) + "  " + statusBadge(order.Status) + "\n" +
		labelStyle.Render("User ID: ") + fmt.Sprintf("%d", order.UserID) + "\n" +
		labelStyle.Render("Date:    ") + order.OrderDate.Display()
	b.WriteString("\n")
	b.WriteString(indent(boxStyle.Render(header)))
	b.WriteString("\n")

	cols := []column{
		{key: "Product"},
		{key: "SKU"},
		{key: "UnitPrice", numeric: true},
		{key: "Quantity", numeric: true},
		{key: "LineTotal", numeric: true},
	}
	data := make([][]string, 0, len(order.Items)+1)
	for _, it := range order.Items {
		sku := it.ProductSKU
		if sku == "" {
			sku = "-"
		}
		data = append(data, []string{
			it.Label(),
			sku,
			Money(it.UnitPrice),
			fmt.Sprintf("%d", it.Quantity),
			Money(it.LineTotal()),
		})
	}
	b.WriteString(renderTable(cols, data, "No items."))
	b.WriteString(fmt.Sprintf("  %s %s\n", labelStyle.Render("Order total:"), titleStyle.Render(Money(order.Total()))))
	return b.String()
}

// RenderProductDetail renders a single product.
func RenderProductDetail(view domain.View, p *domain.Product, errMsg string) string {
	switch view {
	case domain.ViewLoading:
		return RenderLoading()
	case domain.ViewError:
		return RenderError(errMsg)
	case domain.ViewNotFound:
		return "  " + dimStyle.Render("No product found.") + "\n"
	}

	body := titleStyle.Render(p.Name) + "  " + dimStyle.Render(p.SKU) + "\n" +
		labelStyle.Render("Price:    ") + Money(p.Price) + "\n" +
		labelStyle.Render("In stock: ") + fmt.Sprintf("%d", p.InStock) + "\n" +
		labelStyle.Render("Category: ") + fmt.Sprintf("%d", p.CategoryID)
	return "\n" + indent(boxStyle.Render(body))
}

// RenderOrderCreated confirms a successful submission.
func RenderOrderCreated(order *domain.Order) string {
	return fmt.Sprintf("  %s %s\n  %s\n",
		passStyle.Render("✓"),
		fmt.Sprintf("Order created with ID %d.", order.ID),
		dimStyle.Render(fmt.Sprintf("View it with: orderdesk order %d", order.ID)),
	)
}

// RenderDraft shows the draft rows, used when a submission is rejected.
func RenderDraft(d domain.OrderDraft) string {
	var b strings.Builder
	renderTitle(&b, "Order draft")
	userID := d.UserID
	if userID == "" {
		userID = "-"
	}
	b.WriteString(fmt.Sprintf("  %s %s   %s %s\n",
		labelStyle.Render("User ID:"), userID,
		labelStyle.Render("Status:"), statusBadge(d.Status)))
	data := make([][]string, 0, len(d.Items))
	for i, it := range d.Items {
		data = append(data, []string{fmt.Sprintf("%d", i+1), it.ProductID, it.Quantity})
	}
	b.WriteString(renderTable([]column{{key: "Row", numeric: true}, {key: "ProductID"}, {key: "Quantity"}}, data, ""))
	return b.String()
}
